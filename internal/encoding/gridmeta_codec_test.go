package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridMetaRoundTrip(t *testing.T) {
	title, desc := EncodeGridMeta("location", "Ciudad Deportiva, pitch 2")
	assert.Equal(t, "[GRID:meta:location]", desc)

	row, value, ok := DecodeGridMeta(desc, title)
	require.True(t, ok)
	assert.Equal(t, "location", row)
	assert.Equal(t, "Ciudad Deportiva, pitch 2", value)
}

func TestGridMetaValueIsVerbatim(t *testing.T) {
	// values with separators or URLs pass through untouched
	title, desc := EncodeGridMeta("videoLink", "https://video.example/abc?t=10")
	_, value, ok := DecodeGridMeta(desc, title)
	require.True(t, ok)
	assert.Equal(t, "https://video.example/abc?t=10", value)
}

func TestGridMetaRejectsOtherDescriptions(t *testing.T) {
	_, _, ok := DecodeGridMeta("[DAYFLAG:morning]", "10:30")
	assert.False(t, ok)

	_, _, ok = DecodeGridMeta("free text", "10:30")
	assert.False(t, ok)
}
