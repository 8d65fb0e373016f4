package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubmanager/internal/domain"
)

func TestDayFlagRoundTripPartido(t *testing.T) {
	in := domain.DayFlag{Kind: domain.FlagPartido, Rival: "Boca", LogoURL: "https://x"}
	title, desc := EncodeDayFlag(domain.TurnMorning, in)
	assert.Equal(t, "[DAYFLAG:morning]", desc)
	assert.Equal(t, "PARTIDO|Boca|https://x", title)

	turn, flag, ok := DecodeDayFlag(desc, title)
	require.True(t, ok)
	assert.Equal(t, domain.TurnMorning, turn)
	assert.Equal(t, in, flag)
}

func TestDayFlagTrailingFieldsOmitted(t *testing.T) {
	title, _ := EncodeDayFlag(domain.TurnAfternoon, domain.DayFlag{Kind: domain.FlagPartido, Rival: "River Plate"})
	assert.Equal(t, "PARTIDO|River Plate", title)

	title, _ = EncodeDayFlag(domain.TurnAfternoon, domain.DayFlag{Kind: domain.FlagLibre})
	assert.Equal(t, "LIBRE", title)
}

func TestDayFlagDecodeLibre(t *testing.T) {
	turn, flag, ok := DecodeDayFlag("[DAYFLAG:afternoon]", "LIBRE")
	require.True(t, ok)
	assert.Equal(t, domain.TurnAfternoon, turn)
	assert.Equal(t, domain.FlagLibre, flag.Kind)
}

func TestDayFlagUnknownKindIsNone(t *testing.T) {
	_, flag, ok := DecodeDayFlag("[DAYFLAG:morning]", "FIESTA|whoever")
	require.True(t, ok)
	assert.Equal(t, domain.FlagNone, flag.Kind)

	_, flag, ok = DecodeDayFlag("[DAYFLAG:morning]", "")
	require.True(t, ok)
	assert.Equal(t, domain.FlagNone, flag.Kind)
}

func TestDayFlagPlainDescriptionIsNotAFlag(t *testing.T) {
	_, _, ok := DecodeDayFlag("regular training notes", "PARTIDO|Boca")
	assert.False(t, ok)
}
