package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Merge(t *testing.T) {
	t.Run("accepted wins over everything", func(t *testing.T) {
		assert.Equal(t, StatusAccepted, StatusAccepted.Merge(StatusOpen))
		assert.Equal(t, StatusAccepted, StatusAccepted.Merge(StatusClosed))
		assert.Equal(t, StatusAccepted, StatusOpen.Merge(StatusAccepted))
		assert.Equal(t, StatusAccepted, StatusClosed.Merge(StatusAccepted))
	})

	t.Run("open wins over closed", func(t *testing.T) {
		assert.Equal(t, StatusOpen, StatusOpen.Merge(StatusClosed))
		assert.Equal(t, StatusOpen, StatusClosed.Merge(StatusOpen))
	})

	t.Run("merge is idempotent", func(t *testing.T) {
		for _, s := range []Status{StatusOpen, StatusClosed, StatusAccepted} {
			assert.Equal(t, s, s.Merge(s))
		}
	})

	t.Run("merge is commutative", func(t *testing.T) {
		statuses := []Status{StatusOpen, StatusClosed, StatusAccepted}
		for _, a := range statuses {
			for _, b := range statuses {
				assert.Equal(t, a.Merge(b), b.Merge(a))
			}
		}
	})

	t.Run("merge is associative", func(t *testing.T) {
		statuses := []Status{StatusOpen, StatusClosed, StatusAccepted}
		for _, a := range statuses {
			for _, b := range statuses {
				for _, c := range statuses {
					assert.Equal(t, a.Merge(b).Merge(c), a.Merge(b.Merge(c)))
				}
			}
		}
	})
}
