package domain

// Activity statuses. Transitions are monotonic: upcoming -> active -> closed.
const (
	StatusUpcoming = "upcoming"
	StatusActive   = "active"
	StatusClosed   = "closed"
)

var statusRank = map[string]int{
	StatusUpcoming: 0,
	StatusActive:   1,
	StatusClosed:   2,
}

// ValidStatus reports whether s is a known activity status.
func ValidStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionStatus reports whether an activity may move from one status to
// another. Re-asserting the current status is allowed.
func CanTransitionStatus(from, to string) bool {
	a, ok := statusRank[from]
	if !ok {
		return false
	}
	b, ok := statusRank[to]
	if !ok {
		return false
	}
	return b >= a
}
