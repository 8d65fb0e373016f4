package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubmanager/internal/domain"
	"clubmanager/internal/encoding"
)

func day(ymd string, hour int) time.Time {
	d, err := ParseYMD(ymd)
	if err != nil {
		panic(err)
	}
	return d.Add(time.Duration(hour) * time.Hour)
}

func session(ymd string, hour int, typ domain.SessionType, title, desc string) domain.Session {
	return domain.Session{
		ID:          primitive.NewObjectID(),
		Date:        day(ymd, hour),
		Type:        typ,
		Title:       title,
		Description: desc,
	}
}

func TestAssembleWeekCompleteness(t *testing.T) {
	grid := AssembleWeek(day("2024-01-04", 15), nil, nil)

	assert.Equal(t, "2024-01-01", grid.WeekStart)
	assert.Equal(t, "2024-01-07", grid.WeekEnd)
	require.Len(t, grid.Days, 7)
	for i, bucket := range grid.Days {
		assert.Equal(t, YMD(day("2024-01-01", 0).AddDate(0, 0, i)), bucket.Date)
		assert.NotNil(t, bucket.Flags)
		assert.NotNil(t, bucket.Cells)
		assert.NotNil(t, bucket.Meta)
	}
	assert.Empty(t, grid.Diagnostics)
}

func TestAssembleWeekRouting(t *testing.T) {
	flagTitle, flagDesc := encoding.EncodeDayFlag(domain.TurnMorning, domain.DayFlag{
		Kind: domain.FlagPartido, Rival: "Boca Juniors", LogoURL: "https://cdn/boca.png",
	})
	metaTitle, metaDesc := encoding.EncodeGridMeta("location", "Estadio Norte")
	exDesc := encoding.EncodeExercises("press drills", []domain.ExerciseItem{{ID: "e1", Order: 1}}, 0)

	sessions := []domain.Session{
		session("2024-01-01", 9, domain.SessionGeneral, flagTitle, flagDesc),
		session("2024-01-01", 10, domain.SessionGeneral, metaTitle, metaDesc),
		session("2024-01-02", 11, domain.SessionTactical, "Pressing", exDesc),
		session("2024-01-03", 11, domain.SessionRecovery, "Pool", "easy swim, 30 min"),
	}
	grid := AssembleWeek(day("2024-01-01", 0), sessions, nil)
	require.Empty(t, grid.Diagnostics)

	monday := grid.Days[0]
	require.Contains(t, monday.Flags, domain.TurnMorning)
	assert.Equal(t, "Boca Juniors", monday.Flags[domain.TurnMorning].Rival)
	require.Contains(t, monday.Meta, "location")
	assert.Equal(t, "Estadio Norte", monday.Meta["location"].Value)

	tuesday := grid.Days[1]
	cell, ok := tuesday.Cells["tactical"]
	require.True(t, ok, "content cells bucket by session type by default")
	assert.Equal(t, encoding.KindExerciseList, cell.Kind)
	assert.Equal(t, "press drills", cell.Notes)
	require.Len(t, cell.Exercises, 1)

	wednesday := grid.Days[2]
	note, ok := wednesday.Cells["recovery"]
	require.True(t, ok)
	assert.Equal(t, encoding.KindPlainNote, note.Kind)
	assert.Equal(t, "easy swim, 30 min", note.Notes)
	assert.Nil(t, note.Exercises)
}

func TestAssembleWeekCustomRowMapper(t *testing.T) {
	s := session("2024-01-01", 9, domain.SessionStrength, "Gym", "squats")
	grid := AssembleWeek(day("2024-01-01", 0), []domain.Session{s}, func(domain.Session) string {
		return "gym-row"
	})
	assert.Contains(t, grid.Days[0].Cells, "gym-row")
}

func TestAssembleWeekFlagCollisionLatestWins(t *testing.T) {
	title, desc := encoding.EncodeDayFlag(domain.TurnMorning, domain.DayFlag{Kind: domain.FlagLibre})
	older := session("2024-01-01", 8, domain.SessionGeneral, title, desc)
	title2, desc2 := encoding.EncodeDayFlag(domain.TurnMorning, domain.DayFlag{Kind: domain.FlagPartido, Rival: "River Plate"})
	newer := session("2024-01-01", 17, domain.SessionGeneral, title2, desc2)

	// insertion order must not matter
	for _, order := range [][]domain.Session{{older, newer}, {newer, older}} {
		grid := AssembleWeek(day("2024-01-01", 0), order, nil)
		flag := grid.Days[0].Flags[domain.TurnMorning]
		assert.Equal(t, domain.FlagPartido, flag.Kind)
		require.Len(t, grid.Diagnostics, 1)
		assert.Equal(t, older.ID.Hex(), grid.Diagnostics[0].SessionID)
		assert.Equal(t, "flag:morning", grid.Diagnostics[0].Slot)
	}
}

func TestAssembleWeekCollisionTieBreaksByID(t *testing.T) {
	title, desc := encoding.EncodeGridMeta("time", "10:00")
	a := session("2024-01-01", 9, domain.SessionGeneral, title, desc)
	title2, desc2 := encoding.EncodeGridMeta("time", "16:00")
	b := session("2024-01-01", 9, domain.SessionGeneral, title2, desc2)

	wantKept := a
	if b.ID.Hex() > a.ID.Hex() {
		wantKept = b
	}
	grid := AssembleWeek(day("2024-01-01", 0), []domain.Session{a, b}, nil)
	assert.Equal(t, wantKept.Title, grid.Days[0].Meta["time"].Value)
	require.Len(t, grid.Diagnostics, 1)
}

func TestAssembleWeekMalformedPayloadDegradesToEmptyCell(t *testing.T) {
	s := session("2024-01-01", 9, domain.SessionGeneral, "Drills", "notes here [EXERCISES]not-base64!!")
	grid := AssembleWeek(day("2024-01-01", 0), []domain.Session{s}, nil)

	cell := grid.Days[0].Cells["general"]
	assert.True(t, cell.DecodeError)
	assert.Empty(t, cell.Exercises)
	assert.Equal(t, "notes here", cell.Notes)
	require.Len(t, grid.Diagnostics, 1)
	assert.Contains(t, grid.Diagnostics[0].Reason, "failed to decode")
}

func TestAssembleWeekIgnoresRecordsOutsideWindow(t *testing.T) {
	s := session("2024-01-09", 9, domain.SessionGeneral, "next week", "note")
	grid := AssembleWeek(day("2024-01-01", 0), []domain.Session{s}, nil)

	for _, bucket := range grid.Days {
		assert.Empty(t, bucket.Cells)
	}
	require.Len(t, grid.Diagnostics, 1)
	assert.Contains(t, grid.Diagnostics[0].Reason, "outside week window")
}
