// Package repository provides data access layer for the teamrequest module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	teamrequestModel "github.com/crewmatch/staffing/internal/teamrequest/model"
)

// CoordinatorLoad represents the number of team requests assigned to one coordinator.
type CoordinatorLoad struct {
	CoordinatorID int64 `gorm:"column:coordinator_id"`
	Count         int64 `gorm:"column:request_count"`
}

// Repository defines the interface for teamrequest data access operations.
type Repository interface {
	// Create creates a new team request.
	Create(ctx context.Context, request *teamrequestModel.TeamRequest) error

	// CreateSlots creates role slots in one batch.
	CreateSlots(ctx context.Context, slots []teamrequestModel.RoleSlot) error

	// GetByID finds a team request by id.
	GetByID(ctx context.Context, id int64) (*teamrequestModel.TeamRequest, error)

	// GetSlots returns all role slots of a team request ordered by id.
	GetSlots(ctx context.Context, teamRequestID int64) ([]teamrequestModel.RoleSlot, error)

	// GetCoordinatorLoads returns per-coordinator team request counts.
	GetCoordinatorLoads(ctx context.Context) ([]CoordinatorLoad, error)

	// GetRoleSummary returns aggregate slot and offer counts per role.
	GetRoleSummary(ctx context.Context, teamRequestID int64) ([]teamrequestModel.RoleSummary, error)

	// MarkComplete transitions a team request to COMPLETE.
	// Returns false when the request was already COMPLETE.
	MarkComplete(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new teamrequest repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates a new team request.
func (r *repository) Create(ctx context.Context, request *teamrequestModel.TeamRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// CreateSlots creates role slots in one batch.
func (r *repository) CreateSlots(ctx context.Context, slots []teamrequestModel.RoleSlot) error {
	if len(slots) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&slots).Error
}

// GetByID finds a team request by id.
func (r *repository) GetByID(ctx context.Context, id int64) (*teamrequestModel.TeamRequest, error) {
	var request teamrequestModel.TeamRequest
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&request).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamrequestModel.ErrTeamRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// GetSlots returns all role slots of a team request ordered by id.
func (r *repository) GetSlots(ctx context.Context, teamRequestID int64) ([]teamrequestModel.RoleSlot, error) {
	var slots []teamrequestModel.RoleSlot
	err := r.db.WithContext(ctx).
		Where("team_request_id = ?", teamRequestID).
		Order("id ASC").
		Find(&slots).Error

	if err != nil {
		return nil, err
	}

	if slots == nil {
		return []teamrequestModel.RoleSlot{}, nil
	}

	return slots, nil
}

// GetCoordinatorLoads returns per-coordinator team request counts.
func (r *repository) GetCoordinatorLoads(ctx context.Context) ([]CoordinatorLoad, error) {
	var loads []CoordinatorLoad
	err := r.db.WithContext(ctx).
		Table("team_requests").
		Select("coordinator_id, COUNT(*) as request_count").
		Where("coordinator_id IS NOT NULL").
		Group("coordinator_id").
		Scan(&loads).Error

	if err != nil {
		return nil, err
	}

	if loads == nil {
		return []CoordinatorLoad{}, nil
	}

	return loads, nil
}

// GetRoleSummary returns aggregate slot and offer counts per role.
func (r *repository) GetRoleSummary(ctx context.Context, teamRequestID int64) ([]teamrequestModel.RoleSummary, error) {
	var summary []teamrequestModel.RoleSummary
	err := r.db.WithContext(ctx).
		Table("role_slots").
		Select(`
			MIN(TRIM(role_slots.role)) as role,
			COUNT(*) as total,
			SUM(CASE WHEN role_slots.worker_id IS NOT NULL THEN 1 ELSE 0 END) as filled,
			SUM(CASE WHEN role_slots.worker_id IS NULL THEN 1 ELSE 0 END) as open,
			COALESCE(SUM(offer_counts.offer_count), 0) as proposals_sent
		`).
		Joins(`
			LEFT JOIN (
				SELECT slot_id, COUNT(*) as offer_count
				FROM offers
				GROUP BY slot_id
			) offer_counts ON offer_counts.slot_id = role_slots.id
		`).
		Where("role_slots.team_request_id = ?", teamRequestID).
		Group("LOWER(TRIM(role_slots.role))").
		Order("LOWER(TRIM(role_slots.role)) ASC").
		Scan(&summary).Error

	if err != nil {
		return nil, err
	}

	if summary == nil {
		return []teamrequestModel.RoleSummary{}, nil
	}

	return summary, nil
}

// MarkComplete transitions a team request to COMPLETE.
// The transition is terminal and never reverts; repeating it is a no-op.
func (r *repository) MarkComplete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&teamrequestModel.TeamRequest{}).
		Where("id = ? AND state = ?", id, teamrequestModel.StateIncomplete).
		Update("state", teamrequestModel.StateComplete)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
