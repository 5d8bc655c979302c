package model

// Status is the derived state of an offer view entry.
type Status string

// Offer view statuses.
const (
	StatusOpen     Status = "OPEN"
	StatusClosed   Status = "CLOSED"
	StatusAccepted Status = "ACCEPTED"
)

// rank orders statuses for the merge join: ACCEPTED > OPEN > CLOSED.
func (s Status) rank() int {
	switch s {
	case StatusAccepted:
		return 2
	case StatusOpen:
		return 1
	default:
		return 0
	}
}

// Merge joins two status observations of the same (team request, role) group.
// ACCEPTED always wins; OPEN wins over CLOSED. The join is commutative and
// associative, so the merge result does not depend on observation order.
func (s Status) Merge(other Status) Status {
	if other.rank() > s.rank() {
		return other
	}
	return s
}
