package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubmanager/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        Kind
	}{
		{"empty", "", KindPlainNote},
		{"plain note", "double session, bring cones", KindPlainNote},
		{"day flag morning", "[DAYFLAG:morning]", KindDayFlag},
		{"day flag afternoon", "[DAYFLAG:afternoon]", KindDayFlag},
		{"day flag unknown turn is a note", "[DAYFLAG:evening]", KindPlainNote},
		{"day flag must be prefix", "note [DAYFLAG:morning]", KindPlainNote},
		{"grid meta", "[GRID:meta:location]", KindGridMeta},
		{"grid meta unterminated", "[GRID:meta:location", KindPlainNote},
		{"exercise sentinel anywhere", "warmup notes\n[EXERCISES] e30=", KindExerciseList},
		{"exercise sentinel without token", "notes [EXERCISES]", KindExerciseList},
		{"day flag wins over exercise sentinel", "[DAYFLAG:morning] [EXERCISES] x", KindDayFlag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.description))
		})
	}
}

func TestDayFlagTurn(t *testing.T) {
	turn, ok := DayFlagTurn("[DAYFLAG:morning] extra text is fine")
	require.True(t, ok)
	assert.Equal(t, domain.TurnMorning, turn)

	turn, ok = DayFlagTurn("[DAYFLAG:afternoon]")
	require.True(t, ok)
	assert.Equal(t, domain.TurnAfternoon, turn)

	_, ok = DayFlagTurn("[dayflag:morning]")
	assert.False(t, ok, "matching is case-exact")
}

func TestGridMetaRow(t *testing.T) {
	row, ok := GridMetaRow("[GRID:meta:videoLink]")
	require.True(t, ok)
	assert.Equal(t, "videoLink", row)

	// row names are opaque, anything up to the first ']' goes
	row, ok = GridMetaRow("[GRID:meta:campo de entrenamiento]")
	require.True(t, ok)
	assert.Equal(t, "campo de entrenamiento", row)

	_, ok = GridMetaRow("[GRID:meta:location")
	assert.False(t, ok)
}

func TestSplitExercisePayload(t *testing.T) {
	prefix, token, ok := splitExercisePayload("notes here [EXERCISES] abc def")
	require.True(t, ok)
	assert.Equal(t, "notes here", prefix)
	assert.Equal(t, "abc", token, "only the first whitespace-delimited token counts")

	// last occurrence wins so human text may mention the sentinel
	prefix, token, ok = splitExercisePayload("see [EXERCISES] below\n[EXERCISES] e30=")
	require.True(t, ok)
	assert.Equal(t, "see [EXERCISES] below", prefix)
	assert.Equal(t, "e30=", token)

	_, _, ok = splitExercisePayload("no sentinel at all")
	assert.False(t, ok)
}
