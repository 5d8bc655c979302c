// Package repository provides data access layer for the account directory.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	accountModel "github.com/crewmatch/staffing/internal/account/model"
)

// Repository defines the interface for account directory lookups.
type Repository interface {
	// GetByID finds an account by id.
	GetByID(ctx context.Context, id int64) (*accountModel.Account, error)

	// ExistsWorker reports whether an active worker account with the given id exists.
	ExistsWorker(ctx context.Context, id int64) (bool, error)

	// ListCoordinators returns all coordinator accounts ordered by id.
	ListCoordinators(ctx context.Context) ([]accountModel.Account, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new account repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetByID finds an account by id.
func (r *repository) GetByID(ctx context.Context, id int64) (*accountModel.Account, error) {
	var account accountModel.Account
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&account).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accountModel.ErrAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}

// ExistsWorker reports whether an active worker account with the given id exists.
func (r *repository) ExistsWorker(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&accountModel.Account{}).
		Where("id = ? AND account_type = ? AND is_active = ?", id, accountModel.TypeWorker, true).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ListCoordinators returns all coordinator accounts ordered by id.
func (r *repository) ListCoordinators(ctx context.Context) ([]accountModel.Account, error) {
	var coordinators []accountModel.Account
	err := r.db.WithContext(ctx).
		Where("account_type = ?", accountModel.TypeCoordinator).
		Order("id ASC").
		Find(&coordinators).Error

	if err != nil {
		return nil, err
	}

	if coordinators == nil {
		return []accountModel.Account{}, nil
	}

	return coordinators, nil
}
