// Package repository provides data access layer for the offer module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	offerModel "github.com/crewmatch/staffing/internal/offer/model"
	teamrequestModel "github.com/crewmatch/staffing/internal/teamrequest/model"
)

// Repository defines the interface for offer data access operations.
type Repository interface {
	// GetSlotByID finds a role slot by id.
	GetSlotByID(ctx context.Context, slotID int64) (*teamrequestModel.RoleSlot, error)

	// GetOpenPoolSlots returns open slots of a (team request, role) pool ordered by id.
	GetOpenPoolSlots(ctx context.Context, teamRequestID int64, normalizedRole string) ([]teamrequestModel.RoleSlot, error)

	// GetAssignedWorkerIDs returns ids of workers holding an assigned slot in the team request.
	GetAssignedWorkerIDs(ctx context.Context, teamRequestID int64) ([]int64, error)

	// HasActiveOffer reports whether an active offer exists for (slot, worker).
	HasActiveOffer(ctx context.Context, slotID, workerID int64) (bool, error)

	// HasActiveOfferInPool reports whether the worker holds an active offer for
	// any slot of the (team request, role) pool.
	HasActiveOfferInPool(ctx context.Context, teamRequestID int64, normalizedRole string, workerID int64) (bool, error)

	// CreateOffers persists offers in one batch.
	CreateOffers(ctx context.Context, offers []offerModel.Offer) error

	// AssignSlot sets the worker on a slot if and only if the slot is still open.
	// Returns false when the slot was already taken.
	AssignSlot(ctx context.Context, slotID, workerID int64, acceptedAt time.Time) (bool, error)

	// DeactivatePoolOffers deactivates every active offer the worker holds
	// against slots of the (team request, role) pool.
	DeactivatePoolOffers(ctx context.Context, teamRequestID int64, normalizedRole string, workerID int64) error

	// CountOpenSlots returns the number of open slots in the team request.
	CountOpenSlots(ctx context.Context, teamRequestID int64) (int64, error)

	// GetWorkerOffers returns all offers addressed to the worker, active or not,
	// joined with their slot and team request, in issuance order.
	GetWorkerOffers(ctx context.Context, workerID int64) ([]offerModel.OfferRecord, error)

	// GetWorkerAssignments returns slots assigned to the worker joined with
	// their team request, most recent acceptance first.
	GetWorkerAssignments(ctx context.Context, workerID int64) ([]offerModel.AssignmentRecord, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new offer repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetSlotByID finds a role slot by id.
func (r *repository) GetSlotByID(ctx context.Context, slotID int64) (*teamrequestModel.RoleSlot, error) {
	var slot teamrequestModel.RoleSlot
	err := r.db.WithContext(ctx).
		Where("id = ?", slotID).
		First(&slot).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, offerModel.ErrSlotNotFound
		}
		return nil, err
	}

	return &slot, nil
}

// GetOpenPoolSlots returns open slots of a (team request, role) pool ordered by id.
func (r *repository) GetOpenPoolSlots(
	ctx context.Context,
	teamRequestID int64,
	normalizedRole string,
) ([]teamrequestModel.RoleSlot, error) {
	var slots []teamrequestModel.RoleSlot
	err := r.db.WithContext(ctx).
		Where("team_request_id = ? AND LOWER(TRIM(role)) = ? AND worker_id IS NULL", teamRequestID, normalizedRole).
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

// GetAssignedWorkerIDs returns ids of workers holding an assigned slot in the team request.
func (r *repository) GetAssignedWorkerIDs(ctx context.Context, teamRequestID int64) ([]int64, error) {
	var workerIDs []int64
	err := r.db.WithContext(ctx).
		Model(&teamrequestModel.RoleSlot{}).
		Where("team_request_id = ? AND worker_id IS NOT NULL", teamRequestID).
		Pluck("worker_id", &workerIDs).Error

	if err != nil {
		return nil, err
	}

	if workerIDs == nil {
		return []int64{}, nil
	}

	return workerIDs, nil
}

// HasActiveOffer reports whether an active offer exists for (slot, worker).
func (r *repository) HasActiveOffer(ctx context.Context, slotID, workerID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&offerModel.Offer{}).
		Where("slot_id = ? AND worker_id = ? AND active = ?", slotID, workerID, true).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// HasActiveOfferInPool reports whether the worker holds an active offer for
// any slot of the (team request, role) pool.
func (r *repository) HasActiveOfferInPool(
	ctx context.Context,
	teamRequestID int64,
	normalizedRole string,
	workerID int64,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("offers").
		Joins("JOIN role_slots ON role_slots.id = offers.slot_id").
		Where("offers.worker_id = ? AND offers.active = ?", workerID, true).
		Where("role_slots.team_request_id = ? AND LOWER(TRIM(role_slots.role)) = ?", teamRequestID, normalizedRole).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// CreateOffers persists offers in one batch.
func (r *repository) CreateOffers(ctx context.Context, offers []offerModel.Offer) error {
	if len(offers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&offers).Error
}

// AssignSlot sets the worker on a slot if and only if the slot is still open.
// The guarded UPDATE makes concurrent acceptances of the same slot resolve
// to exactly one winner; the loser sees zero affected rows.
func (r *repository) AssignSlot(ctx context.Context, slotID, workerID int64, acceptedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&teamrequestModel.RoleSlot{}).
		Where("id = ? AND worker_id IS NULL", slotID).
		Updates(map[string]interface{}{
			"worker_id":   workerID,
			"accepted_at": acceptedAt,
		})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// DeactivatePoolOffers deactivates every active offer the worker holds
// against slots of the (team request, role) pool.
func (r *repository) DeactivatePoolOffers(
	ctx context.Context,
	teamRequestID int64,
	normalizedRole string,
	workerID int64,
) error {
	return r.db.WithContext(ctx).
		Model(&offerModel.Offer{}).
		Where("worker_id = ? AND active = ?", workerID, true).
		Where("slot_id IN (?)",
			r.db.Model(&teamrequestModel.RoleSlot{}).
				Select("id").
				Where("team_request_id = ? AND LOWER(TRIM(role)) = ?", teamRequestID, normalizedRole),
		).
		Update("active", false).Error
}

// CountOpenSlots returns the number of open slots in the team request.
func (r *repository) CountOpenSlots(ctx context.Context, teamRequestID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&teamrequestModel.RoleSlot{}).
		Where("team_request_id = ? AND worker_id IS NULL", teamRequestID).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return count, nil
}

// GetWorkerOffers returns all offers addressed to the worker, active or not,
// joined with their slot and team request, in issuance order.
func (r *repository) GetWorkerOffers(ctx context.Context, workerID int64) ([]offerModel.OfferRecord, error) {
	var records []offerModel.OfferRecord
	err := r.db.WithContext(ctx).
		Table("offers").
		Select(`
			offers.id as offer_id,
			offers.slot_id,
			offers.active,
			role_slots.team_request_id,
			role_slots.role,
			role_slots.worker_id as slot_worker_id,
			team_requests.name as request_name,
			team_requests.state as request_state,
			team_requests.start_date,
			team_requests.end_date
		`).
		Joins("JOIN role_slots ON role_slots.id = offers.slot_id").
		Joins("JOIN team_requests ON team_requests.id = role_slots.team_request_id").
		Where("offers.worker_id = ?", workerID).
		Order("offers.id ASC").
		Scan(&records).Error

	if err != nil {
		return nil, err
	}

	if records == nil {
		return []offerModel.OfferRecord{}, nil
	}

	return records, nil
}

// GetWorkerAssignments returns slots assigned to the worker joined with
// their team request, most recent acceptance first.
func (r *repository) GetWorkerAssignments(ctx context.Context, workerID int64) ([]offerModel.AssignmentRecord, error) {
	var records []offerModel.AssignmentRecord
	err := r.db.WithContext(ctx).
		Table("role_slots").
		Select(`
			role_slots.id as slot_id,
			role_slots.team_request_id,
			role_slots.role,
			role_slots.accepted_at,
			team_requests.company_id,
			team_requests.name as request_name,
			team_requests.state as request_state,
			team_requests.start_date,
			team_requests.end_date
		`).
		Joins("JOIN team_requests ON team_requests.id = role_slots.team_request_id").
		Where("role_slots.worker_id = ?", workerID).
		Order("role_slots.accepted_at DESC").
		Scan(&records).Error

	if err != nil {
		return nil, err
	}

	if records == nil {
		return []offerModel.AssignmentRecord{}, nil
	}

	return records, nil
}
