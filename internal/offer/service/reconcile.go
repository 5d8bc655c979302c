package service

import (
	"time"

	offerModel "github.com/crewmatch/staffing/internal/offer/model"
	teamrequestModel "github.com/crewmatch/staffing/internal/teamrequest/model"
)

// groupKey identifies a (team request, role) pool in the reconciled view.
type groupKey struct {
	teamRequestID int64
	role          string
}

// concluded reports whether a team request no longer accepts acceptances.
func concluded(state string, endDate *time.Time, now time.Time) bool {
	if state == teamrequestModel.StateComplete {
		return true
	}
	return endDate != nil && endDate.Before(now)
}

// reconcileOffers derives the worker's unified offer view from raw offer
// records and personal acceptances.
//
// Every acceptance is emitted as its own ACCEPTED entry keyed by slot id.
// All other offers collapse into one entry per (team request, role) group,
// with statuses joined by Status.Merge so the outcome does not depend on
// record order. A personal acceptance hides the generic group entry for the
// same pool.
func reconcileOffers(
	offers []offerModel.OfferRecord,
	assignments []offerModel.AssignmentRecord,
	now time.Time,
) []offerModel.OfferView {
	acceptedSlots := make(map[int64]bool, len(assignments))
	for _, assignment := range assignments {
		acceptedSlots[assignment.SlotID] = true
	}

	grouped := make(map[groupKey]*offerModel.OfferView)
	var groupOrder []groupKey
	accepted := make(map[int64]offerModel.OfferView)
	var acceptedOrder []int64

	for _, record := range offers {
		if acceptedSlots[record.SlotID] {
			if _, ok := accepted[record.SlotID]; !ok {
				accepted[record.SlotID] = offerModel.OfferView{
					TeamRequestID: record.TeamRequestID,
					RequestName:   record.RequestName,
					Role:          record.Role,
					Status:        offerModel.StatusAccepted,
					SlotID:        record.SlotID,
				}
				acceptedOrder = append(acceptedOrder, record.SlotID)
			}
			continue
		}

		status := offerModel.StatusClosed
		if record.SlotWorkerID == nil && !concluded(record.RequestState, record.EndDate, now) {
			status = offerModel.StatusOpen
		}

		key := groupKey{
			teamRequestID: record.TeamRequestID,
			role:          teamrequestModel.NormalizeRole(record.Role),
		}
		if existing, ok := grouped[key]; ok {
			existing.Status = existing.Status.Merge(status)
		} else {
			grouped[key] = &offerModel.OfferView{
				TeamRequestID: record.TeamRequestID,
				RequestName:   record.RequestName,
				Role:          record.Role,
				Status:        status,
			}
			groupOrder = append(groupOrder, key)
		}
	}

	// A personal acceptance supersedes the generic pool view for that role.
	for _, assignment := range assignments {
		if _, ok := accepted[assignment.SlotID]; !ok {
			accepted[assignment.SlotID] = offerModel.OfferView{
				TeamRequestID: assignment.TeamRequestID,
				RequestName:   assignment.RequestName,
				Role:          assignment.Role,
				Status:        offerModel.StatusAccepted,
				SlotID:        assignment.SlotID,
			}
			acceptedOrder = append(acceptedOrder, assignment.SlotID)
		}
		delete(grouped, groupKey{
			teamRequestID: assignment.TeamRequestID,
			role:          teamrequestModel.NormalizeRole(assignment.Role),
		})
	}

	result := make([]offerModel.OfferView, 0, len(groupOrder)+len(acceptedOrder))
	for _, key := range groupOrder {
		if view, ok := grouped[key]; ok {
			result = append(result, *view)
		}
	}
	for _, slotID := range acceptedOrder {
		result = append(result, accepted[slotID])
	}

	return result
}
