package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubmanager/internal/domain"
	"clubmanager/internal/planner"
	"clubmanager/internal/repository"
)

// --- Error Definitions ---
var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionAccessDenied = errors.New("access denied to this session")
	ErrValidationFailed    = errors.New("validation failed")
)

// --- Service Interface ---

// SessionService is the plain CRUD surface for planner records. It treats
// title/description as opaque text; the planner service owns the encoded
// slots.
type SessionService interface {
	CreateSession(ctx context.Context, teamID, actor primitive.ObjectID, date time.Time, sessionType domain.SessionType, title, description string) (*domain.Session, error)
	GetSession(ctx context.Context, teamID, id primitive.ObjectID) (*domain.Session, error)
	ListWeek(ctx context.Context, teamID primitive.ObjectID, ref time.Time) ([]domain.Session, error)
	UpdateSession(ctx context.Context, teamID, id primitive.ObjectID, date time.Time, sessionType domain.SessionType, title, description string) (*domain.Session, error)
	DeleteSession(ctx context.Context, teamID, id primitive.ObjectID) error
}

// --- Service Implementation ---

type sessionService struct {
	sessionRepo repository.SessionRepository
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(sessionRepo repository.SessionRepository) SessionService {
	return &sessionService{sessionRepo: sessionRepo}
}

// CreateSession validates and stores a new planner record.
func (s *sessionService) CreateSession(ctx context.Context, teamID, actor primitive.ObjectID, date time.Time, sessionType domain.SessionType, title, description string) (*domain.Session, error) {
	if teamID == primitive.NilObjectID || date.IsZero() {
		return nil, ErrValidationFailed
	}
	if !domain.ValidSessionType(sessionType) {
		return nil, ErrInvalidSessionType
	}

	session := &domain.Session{
		TeamID:      teamID,
		Date:        date.UTC(),
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

// GetSession fetches one record and checks team ownership.
func (s *sessionService) GetSession(ctx context.Context, teamID, id primitive.ObjectID) (*domain.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.TeamID != teamID {
		return nil, ErrSessionAccessDenied
	}
	return session, nil
}

// ListWeek returns the raw records of the week containing ref, Monday
// aligned, sorted by date then ID.
func (s *sessionService) ListWeek(ctx context.Context, teamID primitive.ObjectID, ref time.Time) ([]domain.Session, error) {
	start, end := planner.WeekWindow(ref)
	return s.sessionRepo.ListRecords(ctx, teamID, start, end)
}

// UpdateSession rewrites a record's mutable fields after an ownership check.
func (s *sessionService) UpdateSession(ctx context.Context, teamID, id primitive.ObjectID, date time.Time, sessionType domain.SessionType, title, description string) (*domain.Session, error) {
	session, err := s.GetSession(ctx, teamID, id)
	if err != nil {
		return nil, err
	}
	if !date.IsZero() {
		session.Date = date.UTC()
	}
	if sessionType != "" {
		if !domain.ValidSessionType(sessionType) {
			return nil, ErrInvalidSessionType
		}
		session.Type = sessionType
	}
	session.Title = title
	session.Description = description

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// DeleteSession removes one record, scoped to the team.
func (s *sessionService) DeleteSession(ctx context.Context, teamID, id primitive.ObjectID) error {
	err := s.sessionRepo.Delete(ctx, id, teamID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrSessionNotFound
	}
	return err
}
