package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubmanager/internal/domain"
	"clubmanager/internal/repository"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound     = errors.New("exercise not found")
	ErrExerciseAccessDenied = errors.New("access denied to this exercise")
)

// --- Service Interface ---

// ExerciseService manages the club's drill catalog. Encoded exercise lists
// reference these entries by ID.
type ExerciseService interface {
	CreateExercise(ctx context.Context, clubID primitive.ObjectID, name, description, category, videoURL string) (*domain.Exercise, error)
	GetExercise(ctx context.Context, clubID, id primitive.ObjectID) (*domain.Exercise, error)
	ListExercises(ctx context.Context, clubID primitive.ObjectID) ([]domain.Exercise, error)
	UpdateExercise(ctx context.Context, clubID, id primitive.ObjectID, name, description, category, videoURL string) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, clubID, id primitive.ObjectID) error
}

// --- Service Implementation ---

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo}
}

func (s *exerciseService) CreateExercise(ctx context.Context, clubID primitive.ObjectID, name, description, category, videoURL string) (*domain.Exercise, error) {
	if name == "" {
		return nil, ErrValidationFailed
	}
	exercise := &domain.Exercise{
		ClubID:      clubID,
		Name:        name,
		Description: description,
		Category:    category,
		VideoURL:    videoURL,
	}
	id, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, err
	}
	exercise.ID = id
	return exercise, nil
}

func (s *exerciseService) GetExercise(ctx context.Context, clubID, id primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	if exercise.ClubID != clubID {
		return nil, ErrExerciseAccessDenied
	}
	return exercise, nil
}

func (s *exerciseService) ListExercises(ctx context.Context, clubID primitive.ObjectID) ([]domain.Exercise, error) {
	return s.exerciseRepo.ListByClubID(ctx, clubID)
}

func (s *exerciseService) UpdateExercise(ctx context.Context, clubID, id primitive.ObjectID, name, description, category, videoURL string) (*domain.Exercise, error) {
	exercise, err := s.GetExercise(ctx, clubID, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		exercise.Name = name
	}
	exercise.Description = description
	exercise.Category = category
	exercise.VideoURL = videoURL

	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) DeleteExercise(ctx context.Context, clubID, id primitive.ObjectID) error {
	if _, err := s.GetExercise(ctx, clubID, id); err != nil {
		return err
	}
	err := s.exerciseRepo.Delete(ctx, id, clubID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrExerciseNotFound
	}
	return err
}
