// Package planner reconstructs the weekly planning grid from the flat
// session records the store hands back, and moves whole weeks around. It is
// a pure transform layer: no state survives between calls and nothing here
// talks to the database directly (the transfer engine goes through the
// narrow Store contract).
package planner

import (
	"time"
)

// YMDLayout is the day-key format used throughout the grid.
const YMDLayout = "2006-01-02"

// MondayOf returns the Monday of the week containing t, truncated to UTC
// midnight. Monday is day 1; Sunday counts as day 7, so a Sunday reference
// steps back six days, never forward.
func MondayOf(t time.Time) time.Time {
	t = t.UTC()
	weekday := int(t.Weekday())
	if weekday == 0 { // time.Sunday
		weekday = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -(weekday - 1))
}

// WeekWindow returns the half-open [Monday, Monday+7d) window containing
// ref, both bounds at UTC midnight. This is the window shape the store
// contract expects.
func WeekWindow(ref time.Time) (start, end time.Time) {
	start = MondayOf(ref)
	return start, start.AddDate(0, 0, 7)
}

// YMD formats a day-bucket key.
func YMD(t time.Time) string {
	return t.UTC().Format(YMDLayout)
}

// ParseYMD parses a day-bucket key back into a UTC midnight instant.
func ParseYMD(s string) (time.Time, error) {
	return time.ParseInLocation(YMDLayout, s, time.UTC)
}
