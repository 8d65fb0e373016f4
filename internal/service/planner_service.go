package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubmanager/internal/domain"
	"clubmanager/internal/encoding"
	"clubmanager/internal/planner"
	"clubmanager/internal/repository"
)

// --- Error Definitions ---
var (
	ErrInvalidTurn        = errors.New("turn must be morning or afternoon")
	ErrInvalidSessionType = errors.New("unknown session type")
	ErrInvalidFlagKind    = errors.New("day flag kind must be PARTIDO, LIBRE or NONE")
	ErrEmptyRowName       = errors.New("grid meta row name cannot be empty")
)

// --- Service Interface ---

// PlannerService owns everything the weekly planner view needs: grid
// assembly, slot writes (day flags, meta rows, exercise lists), week
// transfers and rival resolution. It never holds state between calls.
type PlannerService interface {
	GetWeekGrid(ctx context.Context, teamID primitive.ObjectID, ref time.Time) (*planner.WeekGrid, error)

	SetDayFlag(ctx context.Context, teamID, actor primitive.ObjectID, day time.Time, turn domain.Turn, flag domain.DayFlag) (*domain.Session, error)
	SetGridMeta(ctx context.Context, teamID, actor primitive.ObjectID, day time.Time, rowName, value string) (*domain.Session, error)
	SaveExerciseList(ctx context.Context, teamID, actor primitive.ObjectID, day time.Time, sessionType domain.SessionType, title, prefix string, items []domain.ExerciseItem) (*domain.Session, error)

	DuplicateWeek(ctx context.Context, teamID, actor primitive.ObjectID, from, to time.Time, overwrite bool) (planner.TransferReport, error)
	ExportWeek(ctx context.Context, teamID primitive.ObjectID, ref time.Time) (*planner.ExportDocument, error)
	ImportWeek(ctx context.Context, teamID, actor primitive.ObjectID, doc *planner.ExportDocument, to time.Time, overwrite bool) (planner.TransferReport, error)

	ResolveRival(ctx context.Context, clubID primitive.ObjectID, text string) (planner.Resolution, error)
}

// --- Service Implementation ---

type plannerService struct {
	sessionRepo  repository.SessionRepository
	opponentRepo repository.OpponentRepository
	transfer     *planner.Transfer
	maxExercises int
}

// NewPlannerService creates a new instance of plannerService. maxExercises
// caps encoded exercise lists; zero means the codec default.
func NewPlannerService(sessionRepo repository.SessionRepository, opponentRepo repository.OpponentRepository, maxExercises int) PlannerService {
	return &plannerService{
		sessionRepo:  sessionRepo,
		opponentRepo: opponentRepo,
		transfer:     planner.NewTransfer(sessionRepo),
		maxExercises: maxExercises,
	}
}

// GetWeekGrid fetches one week of flat records and assembles the grid. A
// store failure propagates; decode problems inside the week do not — they
// ride along as diagnostics on a complete grid.
func (s *plannerService) GetWeekGrid(ctx context.Context, teamID primitive.ObjectID, ref time.Time) (*planner.WeekGrid, error) {
	start, end := planner.WeekWindow(ref)
	sessions, err := s.sessionRepo.ListRecords(ctx, teamID, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetching week %s: %w", planner.YMD(start), err)
	}
	return planner.AssembleWeek(ref, sessions, nil), nil
}

// SetDayFlag writes (or clears) the flag slot for one day and turn. The
// slot is an upsert: an existing flag record for that (day, turn) is
// rewritten in place rather than duplicated. Setting a NONE flag deletes
// the record, returning (nil, nil).
func (s *plannerService) SetDayFlag(ctx context.Context, teamID, actor primitive.ObjectID, day time.Time, turn domain.Turn, flag domain.DayFlag) (*domain.Session, error) {
	if !domain.ValidTurn(turn) {
		return nil, ErrInvalidTurn
	}
	switch flag.Kind {
	case "", domain.FlagNone, domain.FlagLibre, domain.FlagPartido:
	default:
		return nil, ErrInvalidFlagKind
	}

	existing, err := s.findDaySlot(ctx, teamID, day, func(sess domain.Session) bool {
		t, _, ok := encoding.DecodeDayFlag(sess.Description, sess.Title)
		return ok && t == turn
	})
	if err != nil {
		return nil, err
	}

	if flag.IsZero() {
		if existing != nil {
			if err := s.sessionRepo.Delete(ctx, existing.ID, teamID); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	title, description := encoding.EncodeDayFlag(turn, flag)
	return s.upsertSlot(ctx, teamID, actor, day, domain.SessionGeneral, title, description, existing)
}

// SetGridMeta writes the single-valued meta row for one day. An empty
// value clears the slot.
func (s *plannerService) SetGridMeta(ctx context.Context, teamID, actor primitive.ObjectID, day time.Time, rowName, value string) (*domain.Session, error) {
	if rowName == "" {
		return nil, ErrEmptyRowName
	}

	existing, err := s.findDaySlot(ctx, teamID, day, func(sess domain.Session) bool {
		row, _, ok := encoding.DecodeGridMeta(sess.Description, sess.Title)
		return ok && row == rowName
	})
	if err != nil {
		return nil, err
	}

	if value == "" {
		if existing != nil {
			if err := s.sessionRepo.Delete(ctx, existing.ID, teamID); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	title, description := encoding.EncodeGridMeta(rowName, value)
	return s.upsertSlot(ctx, teamID, actor, day, domain.SessionGeneral, title, description, existing)
}

// SaveExerciseList encodes items into the content slot for (day, type).
func (s *plannerService) SaveExerciseList(ctx context.Context, teamID, actor primitive.ObjectID, day time.Time, sessionType domain.SessionType, title, prefix string, items []domain.ExerciseItem) (*domain.Session, error) {
	if !domain.ValidSessionType(sessionType) {
		return nil, ErrInvalidSessionType
	}

	existing, err := s.findDaySlot(ctx, teamID, day, func(sess domain.Session) bool {
		kind := encoding.Classify(sess.Description)
		return (kind == encoding.KindExerciseList || kind == encoding.KindPlainNote) && sess.Type == sessionType
	})
	if err != nil {
		return nil, err
	}

	description := encoding.EncodeExercises(prefix, items, s.maxExercises)
	return s.upsertSlot(ctx, teamID, actor, day, sessionType, title, description, existing)
}

func (s *plannerService) DuplicateWeek(ctx context.Context, teamID, actor primitive.ObjectID, from, to time.Time, overwrite bool) (planner.TransferReport, error) {
	return s.transfer.DuplicateWeek(ctx, teamID, actor, from, to, overwrite)
}

func (s *plannerService) ExportWeek(ctx context.Context, teamID primitive.ObjectID, ref time.Time) (*planner.ExportDocument, error) {
	return s.transfer.ExportWeek(ctx, teamID, ref)
}

func (s *plannerService) ImportWeek(ctx context.Context, teamID, actor primitive.ObjectID, doc *planner.ExportDocument, to time.Time, overwrite bool) (planner.TransferReport, error) {
	return s.transfer.ImportWeek(ctx, teamID, actor, doc, to, overwrite)
}

// ResolveRival resolves free text against the club's opponent registry.
func (s *plannerService) ResolveRival(ctx context.Context, clubID primitive.ObjectID, text string) (planner.Resolution, error) {
	registry, err := s.opponentRepo.ListByClubID(ctx, clubID)
	if err != nil {
		return planner.Resolution{}, err
	}
	return planner.ResolveRival(text, registry), nil
}

// findDaySlot scans one day's records for the slot owner. ListRecords
// returns records sorted by date then ID, so keeping the last match
// implements the documented latest-wins collision policy.
func (s *plannerService) findDaySlot(ctx context.Context, teamID primitive.ObjectID, day time.Time, claims func(domain.Session) bool) (*domain.Session, error) {
	day = day.UTC()
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	sessions, err := s.sessionRepo.ListRecords(ctx, teamID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("fetching day %s: %w", planner.YMD(dayStart), err)
	}
	var found *domain.Session
	for i := range sessions {
		if claims(sessions[i]) {
			found = &sessions[i]
		}
	}
	return found, nil
}

// upsertSlot updates the existing slot record in place or creates a fresh
// one at UTC midnight of the target day.
func (s *plannerService) upsertSlot(ctx context.Context, teamID, actor primitive.ObjectID, day time.Time, sessionType domain.SessionType, title, description string, existing *domain.Session) (*domain.Session, error) {
	if existing != nil {
		existing.Type = sessionType
		existing.Title = title
		existing.Description = description
		if err := s.sessionRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	day = day.UTC()
	session := &domain.Session{
		TeamID:      teamID,
		Date:        time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
		Type:        sessionType,
		Title:       title,
		Description: description,
		CreatedBy:   actor,
	}
	id, err := s.sessionRepo.CreateRecord(ctx, session)
	if err != nil {
		return nil, err
	}
	session.ID = id
	return session, nil
}
