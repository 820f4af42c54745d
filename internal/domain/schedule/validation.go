package schedule

import (
	"errors"
	"sort"
)

// ValidateBreaks checks that breaks sit inside [dayStart, dayEnd], are well
// formed and do not overlap each other. The input slice is not modified.
func ValidateBreaks(breaks []BreakInterval, dayStart, dayEnd Clock) error {
	order := make([]int, len(breaks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return breaks[order[a]].Start < breaks[order[b]].Start
	})

	lastEnd := dayStart
	for _, i := range order {
		b := breaks[i]

		if b.Start < dayStart || b.End > dayEnd {
			return &ValidationError{Index: i, Err: ErrBreakOutsideHours}
		}
		if b.Start >= b.End {
			return &ValidationError{Index: i, Err: ErrBreakEndBeforeStart}
		}
		if b.Start < lastEnd {
			return &ValidationError{Index: i, Err: ErrBreaksOverlap}
		}
		lastEnd = b.End
	}

	return nil
}

// ValidateBusinessHours validates every active day of the week. Inactive days
// are not constrained.
func ValidateBusinessHours(week Week) error {
	for d := Sunday; d <= Saturday; d++ {
		day := week[d]
		if !day.Hours.Active {
			continue
		}

		if !day.Hours.Start.Valid() || !day.Hours.End.Valid() || day.Hours.Start >= day.Hours.End {
			return &ValidationError{Day: d.String(), Index: -1, Err: ErrStartNotBeforeEnd}
		}

		if err := ValidateBreaks(day.Breaks, day.Hours.Start, day.Hours.End); err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				return &ValidationError{Day: d.String(), Index: ve.Index, Err: ve.Err}
			}
			return err
		}
	}

	return nil
}
