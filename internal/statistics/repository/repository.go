// Package repository provides data access layer for the statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/crewmatch/staffing/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetMarketplaceStatistics returns aggregate counts over requests, slots and offers.
	GetMarketplaceStatistics(ctx context.Context) (*model.MarketplaceStatistics, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetMarketplaceStatistics returns aggregate counts over requests, slots and offers.
func (r *repository) GetMarketplaceStatistics(ctx context.Context) (*model.MarketplaceStatistics, error) {
	var requests struct {
		Total      int64 `gorm:"column:total"`
		Incomplete int64 `gorm:"column:incomplete"`
		Complete   int64 `gorm:"column:complete"`
	}
	err := r.db.WithContext(ctx).
		Table("team_requests").
		Select(`
			COUNT(*) as total,
			COALESCE(SUM(CASE WHEN state = 'INCOMPLETE' THEN 1 ELSE 0 END), 0) as incomplete,
			COALESCE(SUM(CASE WHEN state = 'COMPLETE' THEN 1 ELSE 0 END), 0) as complete
		`).
		Scan(&requests).Error
	if err != nil {
		r.logger.Errorw("GetMarketplaceStatistics request counts failed", "error", err)
		return nil, err
	}

	var slots struct {
		Total  int64 `gorm:"column:total"`
		Filled int64 `gorm:"column:filled"`
		Open   int64 `gorm:"column:open"`
	}
	err = r.db.WithContext(ctx).
		Table("role_slots").
		Select(`
			COUNT(*) as total,
			COALESCE(SUM(CASE WHEN worker_id IS NOT NULL THEN 1 ELSE 0 END), 0) as filled,
			COALESCE(SUM(CASE WHEN worker_id IS NULL THEN 1 ELSE 0 END), 0) as open
		`).
		Scan(&slots).Error
	if err != nil {
		r.logger.Errorw("GetMarketplaceStatistics slot counts failed", "error", err)
		return nil, err
	}

	var activeOffers int64
	err = r.db.WithContext(ctx).
		Table("offers").
		Where("active = ?", true).
		Count(&activeOffers).Error
	if err != nil {
		r.logger.Errorw("GetMarketplaceStatistics offer count failed", "error", err)
		return nil, err
	}

	fillRate := 0.0
	if slots.Total > 0 {
		fillRate = float64(slots.Filled) / float64(slots.Total)
	}

	return &model.MarketplaceStatistics{
		TotalRequests:      int(requests.Total),
		IncompleteRequests: int(requests.Incomplete),
		CompleteRequests:   int(requests.Complete),
		TotalSlots:         int(slots.Total),
		FilledSlots:        int(slots.Filled),
		OpenSlots:          int(slots.Open),
		ActiveOffers:       int(activeOffers),
		FillRate:           fillRate,
	}, nil
}
