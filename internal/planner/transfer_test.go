package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubmanager/internal/domain"
	"clubmanager/internal/encoding"
)

// fakeStore is an in-memory Store for transfer tests.
type fakeStore struct {
	sessions []domain.Session

	failCreateAfter int // fail the Nth create when >= 0
	created         int
	listErr         error
	deleteErr       error
}

func newFakeStore() *fakeStore {
	return &fakeStore{failCreateAfter: -1}
}

func (f *fakeStore) ListRecords(_ context.Context, teamID primitive.ObjectID, start, end time.Time) ([]domain.Session, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.Session
	for _, s := range f.sessions {
		if s.TeamID == teamID && !s.Date.Before(start) && s.Date.Before(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateRecord(_ context.Context, session *domain.Session) (primitive.ObjectID, error) {
	if f.failCreateAfter >= 0 && f.created >= f.failCreateAfter {
		return primitive.NilObjectID, errors.New("store unavailable")
	}
	session.ID = primitive.NewObjectID()
	f.sessions = append(f.sessions, *session)
	f.created++
	return session.ID, nil
}

func (f *fakeStore) DeleteRecords(_ context.Context, teamID primitive.ObjectID, start, end time.Time) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	var kept []domain.Session
	var deleted int64
	for _, s := range f.sessions {
		if s.TeamID == teamID && !s.Date.Before(start) && s.Date.Before(end) {
			deleted++
			continue
		}
		kept = append(kept, s)
	}
	f.sessions = kept
	return deleted, nil
}

func seedWeek(store *fakeStore, teamID primitive.ObjectID) {
	flagTitle, flagDesc := encoding.EncodeDayFlag(domain.TurnAfternoon, domain.DayFlag{
		Kind: domain.FlagPartido, Rival: "Boca Juniors", LogoURL: "https://cdn/boca.png",
	})
	metaTitle, metaDesc := encoding.EncodeGridMeta("location", "Estadio Norte")
	exDesc := encoding.EncodeExercises("rondos", []domain.ExerciseItem{{ID: "e1", Order: 1}}, 0)

	for _, s := range []domain.Session{
		{TeamID: teamID, Date: day("2024-01-01", 10), Type: domain.SessionGeneral, Title: flagTitle, Description: flagDesc},
		{TeamID: teamID, Date: day("2024-01-03", 10), Type: domain.SessionTactical, Title: metaTitle, Description: metaDesc},
		{TeamID: teamID, Date: day("2024-01-05", 16), Type: domain.SessionStrength, Title: "Gym", Description: exDesc},
	} {
		s.ID = primitive.NewObjectID()
		store.sessions = append(store.sessions, s)
	}
}

func TestDuplicateWeekOffset(t *testing.T) {
	teamID := primitive.NewObjectID()
	actor := primitive.NewObjectID()
	store := newFakeStore()
	seedWeek(store, teamID)
	// a leftover record in the target week that overwrite must clear
	store.sessions = append(store.sessions, domain.Session{
		ID: primitive.NewObjectID(), TeamID: teamID,
		Date: day("2024-01-16", 9), Type: domain.SessionGeneral, Description: "stale",
	})

	tr := NewTransfer(store)
	report, err := tr.DuplicateWeek(context.Background(),
		teamID, actor, day("2024-01-01", 0), day("2024-01-15", 0), true)
	require.NoError(t, err)

	assert.Equal(t, 14, report.DeltaDays)
	assert.Equal(t, int64(1), report.Deleted)
	assert.Equal(t, 3, report.Created)
	assert.Equal(t, 3, report.Attempted)

	target, err := store.ListRecords(context.Background(), teamID, day("2024-01-15", 0), day("2024-01-22", 0))
	require.NoError(t, err)
	require.Len(t, target, 3)
	for _, s := range target {
		assert.NotEqual(t, "stale", s.Description)
	}
	// every source record shifted by exactly 14 days, payloads verbatim
	src, _ := store.ListRecords(context.Background(), teamID, day("2024-01-01", 0), day("2024-01-08", 0))
	for i, s := range src {
		assert.Equal(t, s.Date.AddDate(0, 0, 14), target[i].Date)
		assert.Equal(t, s.Title, target[i].Title)
		assert.Equal(t, s.Description, target[i].Description)
	}
}

func TestDuplicateWeekBackwards(t *testing.T) {
	teamID := primitive.NewObjectID()
	store := newFakeStore()
	seedWeek(store, teamID)

	report, err := NewTransfer(store).DuplicateWeek(context.Background(),
		teamID, primitive.NewObjectID(), day("2024-01-01", 0), day("2023-12-20", 0), false)
	require.NoError(t, err)
	assert.Equal(t, -14, report.DeltaDays)
	assert.Equal(t, int64(0), report.Deleted, "no overwrite, no deletes")
	assert.Equal(t, 3, report.Created)
}

func TestDuplicateWeekPartialFailureReportsCounts(t *testing.T) {
	teamID := primitive.NewObjectID()
	store := newFakeStore()
	seedWeek(store, teamID)
	store.failCreateAfter = 2

	report, err := NewTransfer(store).DuplicateWeek(context.Background(),
		teamID, primitive.NewObjectID(), day("2024-01-01", 0), day("2024-01-15", 0), false)
	require.Error(t, err)
	assert.Equal(t, 2, report.Created)
	assert.Equal(t, 3, report.Attempted)
	assert.Contains(t, err.Error(), "created 2 of 3")
}

func TestDuplicateWeekStoreErrorPropagates(t *testing.T) {
	teamID := primitive.NewObjectID()
	store := newFakeStore()
	store.listErr = errors.New("timeout")

	_, err := NewTransfer(store).DuplicateWeek(context.Background(),
		teamID, primitive.NewObjectID(), day("2024-01-01", 0), day("2024-01-15", 0), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2024-01-01")
}

func TestExportWeekDocument(t *testing.T) {
	teamID := primitive.NewObjectID()
	store := newFakeStore()
	seedWeek(store, teamID)

	doc, err := NewTransfer(store).ExportWeek(context.Background(), teamID, day("2024-01-04", 12))
	require.NoError(t, err)

	assert.Equal(t, ExportVersion, doc.Version)
	assert.Equal(t, "2024-01-01", doc.WeekStart)
	assert.Equal(t, "2024-01-07", doc.WeekEnd)
	assert.Equal(t, 3, doc.Count)
	require.Len(t, doc.Records, 3)
	for _, r := range doc.Records {
		assert.NotEmpty(t, r.Description)
		assert.False(t, r.Date.IsZero())
	}
}

func TestExportImportMatchesDuplicate(t *testing.T) {
	teamID := primitive.NewObjectID()
	actor := primitive.NewObjectID()

	dupStore := newFakeStore()
	seedWeek(dupStore, teamID)
	impStore := newFakeStore()
	seedWeek(impStore, teamID)

	_, err := NewTransfer(dupStore).DuplicateWeek(context.Background(),
		teamID, actor, day("2024-01-01", 0), day("2024-01-15", 0), true)
	require.NoError(t, err)

	doc, err := NewTransfer(impStore).ExportWeek(context.Background(), teamID, day("2024-01-01", 0))
	require.NoError(t, err)
	_, err = NewTransfer(impStore).ImportWeek(context.Background(), teamID, actor, doc, day("2024-01-15", 0), true)
	require.NoError(t, err)

	ref := day("2024-01-15", 0)
	gridFromDup := AssembleWeek(ref, listWeek(t, dupStore, teamID, ref), nil)
	gridFromImp := AssembleWeek(ref, listWeek(t, impStore, teamID, ref), nil)

	require.Empty(t, gridFromDup.Diagnostics)
	require.Empty(t, gridFromImp.Diagnostics)
	for i := range gridFromDup.Days {
		a, b := gridFromDup.Days[i], gridFromImp.Days[i]
		assert.Equal(t, a.Date, b.Date)
		assert.Equal(t, a.Flags, b.Flags)
		require.Equal(t, len(a.Cells), len(b.Cells))
		for row, cell := range a.Cells {
			assert.Equal(t, cell.Notes, b.Cells[row].Notes)
			assert.Equal(t, cell.Exercises, b.Cells[row].Exercises)
		}
		require.Equal(t, len(a.Meta), len(b.Meta))
		for row, meta := range a.Meta {
			assert.Equal(t, meta.Value, b.Meta[row].Value)
		}
	}
}

func TestImportWeekRejectsUnknownVersion(t *testing.T) {
	_, err := NewTransfer(newFakeStore()).ImportWeek(context.Background(),
		primitive.NewObjectID(), primitive.NewObjectID(),
		&ExportDocument{Version: 99}, day("2024-01-15", 0), false)
	assert.ErrorIs(t, err, ErrUnsupportedExportVersion)
}

func listWeek(t *testing.T, store *fakeStore, teamID primitive.ObjectID, ref time.Time) []domain.Session {
	t.Helper()
	start, end := WeekWindow(ref)
	sessions, err := store.ListRecords(context.Background(), teamID, start, end)
	require.NoError(t, err)
	return sessions
}
