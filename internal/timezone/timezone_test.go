package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation(t *testing.T) {
	assert.Equal(t, "Europe/Lisbon", Location("Europe/Lisbon").String())
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Mars/Olympus").String())
	assert.False(t, IsValid("Mars/Olympus"))
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("Europe/Lisbon", "2026-03-10", "09:40")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 40, got.Minute())
	assert.Equal(t, "Europe/Lisbon", got.Location().String())

	_, err = ParseDateTime("Europe/Lisbon", "2026-03-10", "9h40")
	assert.Error(t, err)
}

func TestDayBounds_DST(t *testing.T) {
	loc := Location("Europe/Lisbon")
	// last Sunday of March is 23 hours long
	start, end := DayBounds(time.Date(2026, 3, 29, 15, 0, 0, 0, loc))

	assert.Equal(t, 23*time.Hour, end.Sub(start))
	assert.Equal(t, 0, start.Hour())
}
