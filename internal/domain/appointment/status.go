package appointment

import (
	"slices"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var transitions = map[Status][]Status{
	StatusScheduled: {StatusCancelled, StatusCompleted},
}

func InitialStatus() Status {
	return StatusScheduled
}

// Terminal statuses accept no further changes.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// Transition fails with invalid_state unless next is reachable from current.
func Transition(current, next Status) error {
	if !slices.Contains(transitions[current], next) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
