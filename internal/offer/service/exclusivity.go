package service

import (
	"time"

	offerModel "github.com/crewmatch/staffing/internal/offer/model"
)

// workerHoldsSlot reports whether the worker already appears in the set of
// assigned workers of a team request (team-exclusivity predicate).
func workerHoldsSlot(assignedWorkerIDs []int64, workerID int64) bool {
	for _, id := range assignedWorkerIDs {
		if id == workerID {
			return true
		}
	}
	return false
}

// overlapsSchedule reports whether any of the worker's assignments in a
// different team request has an active window overlapping [start, end)
// (schedule-exclusivity predicate). Windows with a missing bound are
// unconstrained and never overlap; touching boundaries (end == start) do
// not overlap.
func overlapsSchedule(
	assignments []offerModel.AssignmentRecord,
	teamRequestID int64,
	start, end time.Time,
	excludeSlotID int64,
) bool {
	for _, assignment := range assignments {
		if assignment.TeamRequestID == teamRequestID || assignment.SlotID == excludeSlotID {
			continue
		}
		if assignment.StartDate == nil || assignment.EndDate == nil {
			continue
		}
		if assignment.StartDate.Before(end) && assignment.EndDate.After(start) {
			return true
		}
	}
	return false
}
