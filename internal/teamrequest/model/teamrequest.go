package model

import (
	"strings"
	"time"
)

// TeamRequest states.
const (
	StateIncomplete = "INCOMPLETE"
	StateComplete   = "COMPLETE"
)

// TeamRequest represents a company's demand for a group of workers.
// Matches the team_requests table schema.
type TeamRequest struct {
	ID            int64      `gorm:"primaryKey;column:id;type:bigserial"                                                        json:"id"`
	CompanyID     int64      `gorm:"column:company_id;type:bigint;not null;index:idx_team_requests_company_id"                  json:"company_id"`
	Name          string     `gorm:"column:name;type:varchar(255);not null"                                                     json:"name"`
	Description   string     `gorm:"column:description;type:text;not null"                                                      json:"description"`
	Location      string     `gorm:"column:location;type:varchar(255);not null"                                                 json:"location"`
	State         string     `gorm:"column:state;type:request_state_enum;not null;index:idx_team_requests_state"                json:"state"`
	CoordinatorID *int64     `gorm:"column:coordinator_id;type:bigint;index:idx_team_requests_coordinator_id"                   json:"coordinator_id,omitempty"`
	StartDate     *time.Time `gorm:"column:start_date;type:timestamptz"                                                         json:"start_date,omitempty"`
	EndDate       *time.Time `gorm:"column:end_date;type:timestamptz"                                                           json:"end_date,omitempty"`
	CreatedAt     time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now()"                                  json:"created_at"`
}

// TableName specifies the table name for GORM.
func (TeamRequest) TableName() string {
	return "team_requests"
}

// Concluded reports whether the request no longer accepts acceptances:
// it is COMPLETE or its active window has already ended.
func (t *TeamRequest) Concluded(now time.Time) bool {
	if t.State == StateComplete {
		return true
	}
	return t.EndDate != nil && t.EndDate.Before(now)
}

// RoleSlot represents one concrete vacancy for a role within a team request.
// Matches the role_slots table schema.
type RoleSlot struct {
	ID            int64      `gorm:"primaryKey;column:id;type:bigserial"                                                 json:"id"`
	TeamRequestID int64      `gorm:"column:team_request_id;type:bigint;not null;index:idx_role_slots_team_request_id"    json:"team_request_id"`
	Role          string     `gorm:"column:role;type:varchar(255);not null"                                              json:"role"`
	Compensation  *string    `gorm:"column:compensation;type:varchar(255)"                                               json:"compensation,omitempty"`
	WorkerID      *int64     `gorm:"column:worker_id;type:bigint;index:idx_role_slots_worker_id"                         json:"worker_id,omitempty"`
	AcceptedAt    *time.Time `gorm:"column:accepted_at;type:timestamptz"                                                 json:"accepted_at,omitempty"`
	CreatedAt     time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now()"                           json:"created_at"`
}

// TableName specifies the table name for GORM.
func (RoleSlot) TableName() string {
	return "role_slots"
}

// Open reports whether the slot has no assigned worker.
func (s *RoleSlot) Open() bool {
	return s.WorkerID == nil
}

// NormalizeRole canonicalizes a role name for comparisons.
// Roles are free text, compared trimmed and case-folded.
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
