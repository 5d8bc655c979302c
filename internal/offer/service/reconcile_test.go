package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	offerModel "github.com/crewmatch/staffing/internal/offer/model"
	teamrequestModel "github.com/crewmatch/staffing/internal/teamrequest/model"
)

func TestReconcileOffers(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 30)

	openOffer := func(offerID, slotID, requestID int64, role string) offerModel.OfferRecord {
		return offerModel.OfferRecord{
			OfferID:       offerID,
			SlotID:        slotID,
			Active:        true,
			TeamRequestID: requestID,
			Role:          role,
			RequestName:   "Harbor Crew",
			RequestState:  teamrequestModel.StateIncomplete,
			EndDate:       &future,
		}
	}

	t.Run("offers against one pool collapse to a single entry", func(t *testing.T) {
		offers := []offerModel.OfferRecord{
			openOffer(1, 10, 100, "Welder"),
			openOffer(2, 11, 100, "Welder"),
		}

		views := reconcileOffers(offers, nil, now)

		require.Len(t, views, 1)
		assert.Equal(t, int64(100), views[0].TeamRequestID)
		assert.Equal(t, "Welder", views[0].Role)
		assert.Equal(t, offerModel.StatusOpen, views[0].Status)
		assert.Zero(t, views[0].SlotID)
	})

	t.Run("group is open while any slot of the pool is open", func(t *testing.T) {
		someoneElse := int64(999)
		taken := openOffer(1, 10, 100, "Welder")
		taken.SlotWorkerID = &someoneElse

		views := reconcileOffers([]offerModel.OfferRecord{taken, openOffer(2, 11, 100, "Welder")}, nil, now)

		require.Len(t, views, 1)
		assert.Equal(t, offerModel.StatusOpen, views[0].Status)
	})

	t.Run("merge result does not depend on record order", func(t *testing.T) {
		someoneElse := int64(999)
		taken := openOffer(1, 10, 100, "Welder")
		taken.SlotWorkerID = &someoneElse
		open := openOffer(2, 11, 100, "Welder")

		forward := reconcileOffers([]offerModel.OfferRecord{taken, open}, nil, now)
		backward := reconcileOffers([]offerModel.OfferRecord{open, taken}, nil, now)

		require.Len(t, forward, 1)
		require.Len(t, backward, 1)
		assert.Equal(t, forward[0].Status, backward[0].Status)
	})

	t.Run("complete request closes the group", func(t *testing.T) {
		offer := openOffer(1, 10, 100, "Welder")
		offer.RequestState = teamrequestModel.StateComplete

		views := reconcileOffers([]offerModel.OfferRecord{offer}, nil, now)

		require.Len(t, views, 1)
		assert.Equal(t, offerModel.StatusClosed, views[0].Status)
	})

	t.Run("expired window closes the group", func(t *testing.T) {
		offer := openOffer(1, 10, 100, "Welder")
		offer.EndDate = &past

		views := reconcileOffers([]offerModel.OfferRecord{offer}, nil, now)

		require.Len(t, views, 1)
		assert.Equal(t, offerModel.StatusClosed, views[0].Status)
	})

	t.Run("acceptance supersedes the pool group", func(t *testing.T) {
		offers := []offerModel.OfferRecord{
			openOffer(1, 10, 100, "Welder"),
			openOffer(2, 11, 100, "Welder"),
		}
		assignments := []offerModel.AssignmentRecord{
			{SlotID: 11, TeamRequestID: 100, Role: "Welder", RequestName: "Harbor Crew", AcceptedAt: now},
		}

		views := reconcileOffers(offers, assignments, now)

		require.Len(t, views, 1)
		assert.Equal(t, offerModel.StatusAccepted, views[0].Status)
		assert.Equal(t, int64(11), views[0].SlotID)
	})

	t.Run("acceptance without a matching offer record still appears", func(t *testing.T) {
		assignments := []offerModel.AssignmentRecord{
			{SlotID: 11, TeamRequestID: 100, Role: "Welder", RequestName: "Harbor Crew", AcceptedAt: now},
		}

		views := reconcileOffers(nil, assignments, now)

		require.Len(t, views, 1)
		assert.Equal(t, offerModel.StatusAccepted, views[0].Status)
	})

	t.Run("distinct pools keep distinct entries", func(t *testing.T) {
		offers := []offerModel.OfferRecord{
			openOffer(1, 10, 100, "Welder"),
			openOffer(2, 20, 100, "Driver"),
			openOffer(3, 30, 200, "Welder"),
		}

		views := reconcileOffers(offers, nil, now)

		assert.Len(t, views, 3)
	})

	t.Run("role grouping is case insensitive", func(t *testing.T) {
		offers := []offerModel.OfferRecord{
			openOffer(1, 10, 100, "Welder"),
			openOffer(2, 11, 100, "welder"),
		}

		views := reconcileOffers(offers, nil, now)

		assert.Len(t, views, 1)
	})

	t.Run("empty inputs produce empty view", func(t *testing.T) {
		assert.Empty(t, reconcileOffers(nil, nil, now))
	})
}
