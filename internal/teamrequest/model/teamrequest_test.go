package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, "welder", NormalizeRole("Welder"))
	assert.Equal(t, "welder", NormalizeRole("  WELDER "))
	assert.Equal(t, "crane operator", NormalizeRole("Crane Operator"))
	assert.Equal(t, "", NormalizeRole("   "))
	assert.Equal(t, "", NormalizeRole(""))
}

func TestTeamRequest_Concluded(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	t.Run("complete request is concluded", func(t *testing.T) {
		request := TeamRequest{State: StateComplete}
		assert.True(t, request.Concluded(now))
	})

	t.Run("expired window is concluded", func(t *testing.T) {
		request := TeamRequest{State: StateIncomplete, EndDate: &past}
		assert.True(t, request.Concluded(now))
	})

	t.Run("running window is not concluded", func(t *testing.T) {
		request := TeamRequest{State: StateIncomplete, EndDate: &future}
		assert.False(t, request.Concluded(now))
	})

	t.Run("missing window is not concluded", func(t *testing.T) {
		request := TeamRequest{State: StateIncomplete}
		assert.False(t, request.Concluded(now))
	})
}

func TestRoleSlot_Open(t *testing.T) {
	workerID := int64(3)

	slot := RoleSlot{}
	assert.True(t, slot.Open())

	slot.WorkerID = &workerID
	assert.False(t, slot.Open())
}
