// Package model provides data transfer objects and domain models for the teamrequest module.
package model

import "time"

// RoleRequirement describes one requested role and its vacancy count.
type RoleRequirement struct {
	Role         string  `json:"role"  binding:"required"`
	Count        int     `json:"count" binding:"required"`
	Compensation *string `json:"compensation,omitempty"`
}

// CreateDemandRequest represents the request to create a team request.
type CreateDemandRequest struct {
	CompanyID   int64             `json:"company_id" binding:"required"`
	Name        string            `json:"name"       binding:"required"`
	Description string            `json:"description"`
	Location    string            `json:"location"`
	StartDate   *time.Time        `json:"start_date,omitempty"`
	EndDate     *time.Time        `json:"end_date,omitempty"`
	Roles       []RoleRequirement `json:"roles"      binding:"required"`
}

// RoleSlotResponse represents one role slot in a demand response.
type RoleSlotResponse struct {
	ID           int64   `json:"id"`
	Role         string  `json:"role"`
	Compensation *string `json:"compensation,omitempty"`
	WorkerID     *int64  `json:"worker_id,omitempty"`
	AcceptedAt   string  `json:"accepted_at,omitempty"`
}

// TeamRequestResponse represents a team request with its slots.
type TeamRequestResponse struct {
	ID            int64              `json:"id"`
	CompanyID     int64              `json:"company_id"`
	CompanyName   string             `json:"company_name,omitempty"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Location      string             `json:"location"`
	State         string             `json:"state"`
	CoordinatorID *int64             `json:"coordinator_id,omitempty"`
	StartDate     string             `json:"start_date,omitempty"`
	EndDate       string             `json:"end_date,omitempty"`
	CreatedAt     string             `json:"created_at"`
	Slots         []RoleSlotResponse `json:"slots"`
}

// RoleSummary represents aggregate slot and offer counts for one role.
type RoleSummary struct {
	Role          string `json:"role"`
	Total         int    `json:"total"`
	Filled        int    `json:"filled"`
	Open          int    `json:"open"`
	ProposalsSent int    `json:"proposals_sent"`
}

// RoleSummaryResponse represents the role summary projection of a demand.
type RoleSummaryResponse struct {
	TeamRequestID int64         `json:"team_request_id"`
	Roles         []RoleSummary `json:"roles"`
}
