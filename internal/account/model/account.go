// Package model provides domain models for the account directory.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Account types stored in the accounts table.
const (
	TypeCompany     = "COMPANY"
	TypeWorker      = "WORKER"
	TypeCoordinator = "COORDINATOR"
)

// Account represents an account entity in the system.
// Matches the accounts table schema.
type Account struct {
	ID        int64     `gorm:"primaryKey;column:id;type:bigserial"                                        json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"                                     json:"name"`
	Type      string    `gorm:"column:account_type;type:account_type_enum;not null;index:idx_accounts_type" json:"account_type"`
	IsActive  bool      `gorm:"column:is_active;type:boolean;not null;default:true"                        json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"                  json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"                  json:"-"`
}

// TableName specifies the table name for GORM.
func (Account) TableName() string {
	return "accounts"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return nil
}
