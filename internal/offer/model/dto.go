// Package model provides data transfer objects and domain models for the offer module.
package model

// SendOffersRequest represents the request to batch-invite candidates to a role pool.
type SendOffersRequest struct {
	TeamRequestID int64   `json:"team_request_id" binding:"required"`
	Role          string  `json:"role"            binding:"required"`
	CandidateIDs  []int64 `json:"candidate_ids"   binding:"required"`
	CoordinatorID int64   `json:"coordinator_id"  binding:"required"`
}

// SendOffersResponse represents the response after batch-creating offers.
type SendOffersResponse struct {
	Created int `json:"created"`
}

// AcceptOfferRequest represents the request to accept an invitation.
type AcceptOfferRequest struct {
	SlotID   int64 `json:"slot_id"   binding:"required"`
	WorkerID int64 `json:"worker_id" binding:"required"`
}

// AllocationResult represents the filled slot after a successful acceptance.
type AllocationResult struct {
	SlotID        int64  `json:"slot_id"`
	TeamRequestID int64  `json:"team_request_id"`
	Role          string `json:"role"`
	WorkerID      int64  `json:"worker_id"`
	AcceptedAt    string `json:"accepted_at"`
	RequestState  string `json:"request_state"`
}

// OfferView is one entry of the worker's reconciled offer list.
// ACCEPTED entries are keyed by slot id and never merged; OPEN/CLOSED
// entries are grouped per (team request, role).
type OfferView struct {
	TeamRequestID int64  `json:"team_request_id"`
	RequestName   string `json:"request_name"`
	Role          string `json:"role"`
	Status        Status `json:"status"`
	SlotID        int64  `json:"slot_id,omitempty"`
}

// ListOffersResponse represents the reconciled offer list of a worker.
type ListOffersResponse struct {
	Offers []OfferView `json:"offers"`
}

// WorkerSummaryResponse represents derived profile metrics for a worker.
type WorkerSummaryResponse struct {
	OpenInvitations int    `json:"open_invitations"`
	CurrentEmployer string `json:"current_employer,omitempty"`
}
