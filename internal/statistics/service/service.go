// Package service provides business logic layer for the statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/crewmatch/staffing/internal/statistics/model"
	"github.com/crewmatch/staffing/internal/statistics/repository"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetMarketplaceStatistics returns aggregate marketplace counts.
	GetMarketplaceStatistics(ctx context.Context) (*model.MarketplaceStatisticsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetMarketplaceStatistics returns aggregate marketplace counts.
func (s *service) GetMarketplaceStatistics(ctx context.Context) (*model.MarketplaceStatisticsResponse, error) {
	stats, err := s.repo.GetMarketplaceStatistics(ctx)
	if err != nil {
		s.logger.Errorw("GetMarketplaceStatistics failed", "error", err)
		return nil, err
	}

	return &model.MarketplaceStatisticsResponse{
		Statistics: *stats,
	}, nil
}
