package model

import "time"

// Offer represents an invitation binding one worker to one role slot.
// Matches the offers table schema. Offers are never deleted, only deactivated.
type Offer struct {
	ID        int64     `gorm:"primaryKey;column:id;type:bigserial"                                      json:"id"`
	SlotID    int64     `gorm:"column:slot_id;type:bigint;not null;index:idx_offers_slot_id"             json:"slot_id"`
	WorkerID  int64     `gorm:"column:worker_id;type:bigint;not null;index:idx_offers_worker_id"         json:"worker_id"`
	Active    bool      `gorm:"column:active;type:boolean;not null;default:true"                         json:"active"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"                json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Offer) TableName() string {
	return "offers"
}

// OfferRecord is one offer joined with its slot and team request,
// as loaded for the worker reconciliation view.
type OfferRecord struct {
	OfferID       int64      `gorm:"column:offer_id"`
	SlotID        int64      `gorm:"column:slot_id"`
	Active        bool       `gorm:"column:active"`
	TeamRequestID int64      `gorm:"column:team_request_id"`
	Role          string     `gorm:"column:role"`
	SlotWorkerID  *int64     `gorm:"column:slot_worker_id"`
	RequestName   string     `gorm:"column:request_name"`
	RequestState  string     `gorm:"column:request_state"`
	StartDate     *time.Time `gorm:"column:start_date"`
	EndDate       *time.Time `gorm:"column:end_date"`
}

// AssignmentRecord is a slot assigned to the worker joined with its team request.
type AssignmentRecord struct {
	SlotID        int64      `gorm:"column:slot_id"`
	TeamRequestID int64      `gorm:"column:team_request_id"`
	Role          string     `gorm:"column:role"`
	AcceptedAt    time.Time  `gorm:"column:accepted_at"`
	CompanyID     int64      `gorm:"column:company_id"`
	RequestName   string     `gorm:"column:request_name"`
	RequestState  string     `gorm:"column:request_state"`
	StartDate     *time.Time `gorm:"column:start_date"`
	EndDate       *time.Time `gorm:"column:end_date"`
}
