package schedule

// CheckBooking reports why an appointment starting at start could not be
// booked on day, using the same rules as ComputeSlots. Grid alignment is not
// required.
func CheckBooking(day DayConfig, appointments []Busy, restMinutes int, start Clock, durationMinutes int) error {
	if !day.Hours.Open() {
		return ErrDayClosed
	}
	if restMinutes < 0 {
		restMinutes = 0
	}

	end := start.Add(durationMinutes)
	if durationMinutes <= 0 || start < day.Hours.Start || end > day.Hours.End {
		return ErrOutsideWorkingHours
	}

	for _, b := range day.Breaks {
		if b.Overlaps(start, end) {
			return ErrBreakConflict
		}
	}

	if conflictsAny(start, end, appointments, restMinutes) {
		return ErrTimeConflict
	}

	return nil
}
