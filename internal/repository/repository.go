package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubmanager/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// SessionRepository defines the store surface for flat planner records.
// ListRecords/CreateRecord/DeleteRecords form the narrow window contract
// the planner package consumes (it declares its own Store interface with
// exactly these three methods); the rest is ordinary CRUD for handlers.
type SessionRepository interface {
	ListRecords(ctx context.Context, teamID primitive.ObjectID, start, end time.Time) ([]domain.Session, error)
	CreateRecord(ctx context.Context, session *domain.Session) (primitive.ObjectID, error)
	DeleteRecords(ctx context.Context, teamID primitive.ObjectID, start, end time.Time) (int64, error)

	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Session, error)
	Update(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id, teamID primitive.ObjectID) error
}

// OpponentRepository defines the interface for the per-club rival registry.
// ListByClubID must return a stable alphabetical order: the rival resolver
// depends on it for deterministic first-match-wins resolution.
type OpponentRepository interface {
	Create(ctx context.Context, opponent *domain.Opponent) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Opponent, error)
	ListByClubID(ctx context.Context, clubID primitive.ObjectID) ([]domain.Opponent, error)
	Update(ctx context.Context, opponent *domain.Opponent) error
	Delete(ctx context.Context, id, clubID primitive.ObjectID) error
}

// ExerciseRepository defines the interface for the club exercise catalog.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	ListByClubID(ctx context.Context, clubID primitive.ObjectID) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id, clubID primitive.ObjectID) error
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}
