package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMondayOfEveryWeekday(t *testing.T) {
	// 2024-01-01 is a Monday
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for offset := 0; offset < 7; offset++ {
		ref := monday.AddDate(0, 0, offset)
		got := MondayOf(ref)
		assert.Equal(t, monday, got, "weekday %s must map to the same Monday", ref.Weekday())
	}
}

func TestMondayOfSunday(t *testing.T) {
	// Sunday is ISO day 7: step back six days, never forward a week
	sunday := time.Date(2024, 1, 7, 18, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), MondayOf(sunday))
}

func TestMondayOfIdempotent(t *testing.T) {
	ref := time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)
	once := MondayOf(ref)
	assert.Equal(t, once, MondayOf(once))
}

func TestMondayOfTruncatesTimeOfDay(t *testing.T) {
	ref := time.Date(2024, 1, 1, 23, 59, 59, 999, time.UTC)
	got := MondayOf(ref)
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, time.UTC, got.Location())
}

func TestWeekWindow(t *testing.T) {
	start, end := WeekWindow(time.Date(2024, 1, 4, 12, 0, 0, 0, time.UTC)) // a Thursday
	assert.Equal(t, "2024-01-01", YMD(start))
	assert.Equal(t, "2024-01-08", YMD(end))
	assert.Equal(t, 7*24*time.Hour, end.Sub(start))
}

func TestParseYMDRoundTrip(t *testing.T) {
	day, err := ParseYMD("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", YMD(day))
	assert.Equal(t, time.UTC, day.Location())
}
