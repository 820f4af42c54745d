package schedule

import "time"

// SlotStep is the grid granularity. It does not depend on the service duration.
const SlotStep = 20

// ComputeSlots lists the candidate start times of a day for a service of
// durationMinutes. Inactive or malformed days produce an empty result.
//
// A point is included when it is bookable or falls inside a break, and only
// if the service still fits before the end of the day. A start whose service
// would run into a break is not available.
func ComputeSlots(
	hours WorkingHours,
	breaks []BreakInterval,
	appointments []Busy,
	restMinutes int,
	date time.Time,
	durationMinutes int,
) []SlotCandidate {
	out := []SlotCandidate{}

	if !hours.Open() || durationMinutes <= 0 {
		return out
	}
	if restMinutes < 0 {
		restMinutes = 0
	}

	seen := make(map[string]struct{})

	for t := hours.Start; t <= hours.End; t = t.Add(SlotStep) {
		appointmentEnd := t.Add(durationMinutes)
		hasEnoughTime := appointmentEnd <= hours.End

		isBreak := inBreak(t, breaks)
		isAvailable := fitsDay(hours, breaks, t, appointmentEnd) &&
			!conflictsAny(t, appointmentEnd, appointments, restMinutes)

		if !(isAvailable || isBreak) || !hasEnoughTime {
			continue
		}

		slot := SlotCandidate{
			Time:      t.On(date),
			Available: isAvailable,
			IsBreak:   isBreak,
		}

		label := slot.Label()
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}

		out = append(out, slot)
	}

	return out
}

func inBreak(t Clock, breaks []BreakInterval) bool {
	for _, b := range breaks {
		if b.Contains(t) {
			return true
		}
	}
	return false
}

// fitsDay checks the working window and that [start, end) stays clear of breaks.
func fitsDay(hours WorkingHours, breaks []BreakInterval, start, end Clock) bool {
	if start < hours.Start || end > hours.End {
		return false
	}
	for _, b := range breaks {
		if b.Overlaps(start, end) {
			return false
		}
	}
	return true
}

// conflicts applies the rest-buffer test against one existing appointment.
// The buffer end is exclusive when the new appointment starts and inclusive
// when it ends or spans.
func conflicts(start, end Clock, a Busy, restMinutes int) bool {
	bufferEnd := a.End.Add(restMinutes)

	startsDuring := start >= a.Start && start < bufferEnd
	endsDuring := end > a.Start && end <= bufferEnd
	spans := start <= a.Start && end >= bufferEnd

	return startsDuring || endsDuring || spans
}

func conflictsAny(start, end Clock, appointments []Busy, restMinutes int) bool {
	for _, a := range appointments {
		if conflicts(start, end, a, restMinutes) {
			return true
		}
	}
	return false
}
