package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubmanager/internal/domain"
)

func TestExerciseRoundTrip(t *testing.T) {
	items := []domain.ExerciseItem{
		{ID: "ex-3", Order: 2, Note: "8 min each side"},
		{ID: "ex-1", Order: 1},
		{ID: "ex-2", Order: 2, Note: "high press"},
	}
	desc := EncodeExercises("Tuesday strength block  \n", items, 0)

	got := DecodeExercises(desc)
	require.False(t, got.DecodeError)
	assert.Equal(t, "Tuesday strength block", got.Prefix, "prefix survives minus trailing whitespace")
	// normalized: ascending order, original position kept for the tie at 2
	want := []domain.ExerciseItem{
		{ID: "ex-1", Order: 1},
		{ID: "ex-3", Order: 2, Note: "8 min each side"},
		{ID: "ex-2", Order: 2, Note: "high press"},
	}
	assert.Equal(t, want, got.Items)
}

func TestExerciseEmptyList(t *testing.T) {
	desc := EncodeExercises("", nil, 0)
	assert.True(t, strings.HasPrefix(desc, ExerciseSentinel), "no prefix means the sentinel leads")

	got := DecodeExercises(desc)
	require.False(t, got.DecodeError)
	assert.Empty(t, got.Items)
	assert.Equal(t, "", got.Prefix)
}

func TestExerciseMalformedToken(t *testing.T) {
	got := DecodeExercises("notes here [EXERCISES]not-base64!!")
	assert.Equal(t, "notes here", got.Prefix)
	assert.Empty(t, got.Items)
	assert.True(t, got.DecodeError)
}

func TestExerciseMissingToken(t *testing.T) {
	got := DecodeExercises("plan pending [EXERCISES]")
	assert.Equal(t, "plan pending", got.Prefix)
	assert.Empty(t, got.Items)
	assert.True(t, got.DecodeError)
}

func TestExerciseTokenNotAList(t *testing.T) {
	// valid base64, valid JSON, but an object instead of a list
	got := DecodeExercises(`[EXERCISES] eyJpZCI6ICJ4In0=`)
	assert.Empty(t, got.Items)
	assert.True(t, got.DecodeError)
}

func TestExerciseCapTruncatesSilently(t *testing.T) {
	items := make([]domain.ExerciseItem, 150)
	for i := range items {
		items[i] = domain.ExerciseItem{ID: "e", Order: i}
	}
	got := DecodeExercises(EncodeExercises("", items, 0))
	require.False(t, got.DecodeError)
	assert.Len(t, got.Items, DefaultMaxExercises)

	got = DecodeExercises(EncodeExercises("", items, 10))
	assert.Len(t, got.Items, 10)
}

func TestExercisePrefixMayMentionSentinel(t *testing.T) {
	desc := EncodeExercises("see [EXERCISES] note", []domain.ExerciseItem{{ID: "a", Order: 1}}, 0)
	got := DecodeExercises(desc)
	require.False(t, got.DecodeError)
	assert.Equal(t, "see [EXERCISES] note", got.Prefix)
	assert.Len(t, got.Items, 1)
}
