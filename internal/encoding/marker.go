// Package encoding implements the sentinel marker scheme that multiplexes
// day flags, grid meta rows and exercise lists into the title/description
// text fields of a flat session record. The sentinel strings are a wire
// format shared with every other component reading the same store and must
// stay bit-exact.
package encoding

import (
	"strings"

	"clubmanager/internal/domain"
)

// Sentinel literals. These are persisted inside session descriptions;
// changing them breaks every record already written.
const (
	dayFlagMorning   = "[DAYFLAG:morning]"
	dayFlagAfternoon = "[DAYFLAG:afternoon]"
	gridMetaPrefix   = "[GRID:meta:"
	ExerciseSentinel = "[EXERCISES]"
)

// Kind is the decoded role of a session record. Classification is total:
// every description resolves to exactly one kind.
type Kind int

const (
	KindPlainNote Kind = iota
	KindDayFlag
	KindGridMeta
	KindExerciseList
)

func (k Kind) String() string {
	switch k {
	case KindDayFlag:
		return "day-flag"
	case KindGridMeta:
		return "grid-meta"
	case KindExerciseList:
		return "exercise-list"
	default:
		return "plain-note"
	}
}

// Classify determines the role a description plays. Day-flag and grid-meta
// sentinels must be literal prefixes; the exercise sentinel may appear
// anywhere (human notes can precede it) and is located by last occurrence.
func Classify(description string) Kind {
	if _, ok := DayFlagTurn(description); ok {
		return KindDayFlag
	}
	if _, ok := GridMetaRow(description); ok {
		return KindGridMeta
	}
	if strings.Contains(description, ExerciseSentinel) {
		return KindExerciseList
	}
	return KindPlainNote
}

// DayFlagTurn reports which turn a day-flag description addresses. Matching
// is prefix-exact against the two known sentinels, never fuzzy.
func DayFlagTurn(description string) (domain.Turn, bool) {
	switch {
	case strings.HasPrefix(description, dayFlagMorning):
		return domain.TurnMorning, true
	case strings.HasPrefix(description, dayFlagAfternoon):
		return domain.TurnAfternoon, true
	}
	return "", false
}

// dayFlagSentinel builds the description prefix for a turn.
func dayFlagSentinel(turn domain.Turn) string {
	return "[DAYFLAG:" + string(turn) + "]"
}

// GridMetaRow extracts the row name from a grid-meta description. The row
// name is an opaque caller-defined label; no enumeration is enforced here.
func GridMetaRow(description string) (string, bool) {
	if !strings.HasPrefix(description, gridMetaPrefix) {
		return "", false
	}
	rest := description[len(gridMetaPrefix):]
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		// unterminated sentinel, treat as a plain note
		return "", false
	}
	return rest[:end], true
}

// gridMetaSentinel builds the description prefix for a named row.
func gridMetaSentinel(rowName string) string {
	return gridMetaPrefix + rowName + "]"
}

// splitExercisePayload locates the exercise sentinel by last occurrence and
// returns the human-readable prefix (trailing whitespace trimmed) and the
// single whitespace-delimited token that follows the sentinel. ok is false
// when the description carries no exercise sentinel at all; an empty token
// with ok=true means the sentinel is present but the payload is missing.
func splitExercisePayload(description string) (prefix, token string, ok bool) {
	idx := strings.LastIndex(description, ExerciseSentinel)
	if idx < 0 {
		return "", "", false
	}
	prefix = strings.TrimRight(description[:idx], " \t\r\n")
	fields := strings.Fields(description[idx+len(ExerciseSentinel):])
	if len(fields) > 0 {
		token = fields[0]
	}
	return prefix, token, true
}
