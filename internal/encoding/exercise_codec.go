package encoding

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"clubmanager/internal/domain"
)

// DefaultMaxExercises caps how many items one session can carry. The cap is
// a configuration value (planner.max_exercises); this is only its fallback.
const DefaultMaxExercises = 100

// DecodedExercises is the result of pulling an exercise list out of a
// description. DecodeError is advisory: a malformed payload still yields a
// usable (empty) result, never a failure that aborts the caller.
type DecodedExercises struct {
	Prefix      string
	Items       []domain.ExerciseItem
	DecodeError bool
}

// EncodeExercises serializes items into a single opaque token appended
// after the exercise sentinel. prefix is kept verbatim as a human-readable
// lead-in, minus trailing whitespace. Lists longer than maxItems are
// truncated silently; maxItems <= 0 means DefaultMaxExercises.
func EncodeExercises(prefix string, items []domain.ExerciseItem, maxItems int) string {
	if maxItems <= 0 {
		maxItems = DefaultMaxExercises
	}
	if len(items) > maxItems {
		items = items[:maxItems]
	}
	if items == nil {
		items = []domain.ExerciseItem{}
	}
	// Marshalling a slice of plain structs cannot fail.
	raw, _ := json.Marshal(items)
	token := base64.StdEncoding.EncodeToString(raw)

	desc := strings.TrimRight(prefix, " \t\r\n")
	if desc != "" {
		desc += "\n"
	}
	return desc + ExerciseSentinel + " " + token
}

// DecodeExercises is the inverse of EncodeExercises. The returned items are
// normalized to display order (ascending Order, original position kept for
// ties). A missing or malformed token classifies the record as an exercise
// list all the same, but with an empty list and DecodeError set.
func DecodeExercises(description string) DecodedExercises {
	prefix, token, ok := splitExercisePayload(description)
	if !ok {
		// No sentinel: the whole text is a plain note. Callers normally
		// Classify first; be forgiving here anyway.
		return DecodedExercises{Prefix: strings.TrimRight(description, " \t\r\n"), Items: []domain.ExerciseItem{}, DecodeError: true}
	}
	if token == "" {
		return DecodedExercises{Prefix: prefix, Items: []domain.ExerciseItem{}, DecodeError: true}
	}
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return DecodedExercises{Prefix: prefix, Items: []domain.ExerciseItem{}, DecodeError: true}
	}
	var items []domain.ExerciseItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return DecodedExercises{Prefix: prefix, Items: []domain.ExerciseItem{}, DecodeError: true}
	}
	if items == nil {
		items = []domain.ExerciseItem{}
	}
	return DecodedExercises{Prefix: prefix, Items: domain.SortExerciseItems(items)}
}
