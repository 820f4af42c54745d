package schedule

import (
	"errors"
	"fmt"
)

var (
	ErrBreakOutsideHours   = errors.New("break outside working hours")
	ErrBreakEndBeforeStart = errors.New("break end before start")
	ErrBreaksOverlap       = errors.New("breaks overlap")
	ErrStartNotBeforeEnd   = errors.New("start must be before end")

	ErrDayClosed           = errors.New("day is closed")
	ErrOutsideWorkingHours = errors.New("outside working hours")
	ErrBreakConflict       = errors.New("overlaps a break")
	ErrTimeConflict        = errors.New("time conflict")
)

// ValidationError qualifies a validation failure with the weekday and the
// position of the offending break. Index is -1 when the failure concerns the
// day window itself.
type ValidationError struct {
	Day   string
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	msg := e.Err.Error()
	if e.Index >= 0 {
		msg = fmt.Sprintf("break %d: %s", e.Index+1, msg)
	}
	if e.Day != "" {
		msg = e.Day + ": " + msg
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
