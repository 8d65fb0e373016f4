package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubmanager/internal/domain"
	"clubmanager/internal/repository"
	"clubmanager/internal/storage"
)

// --- Error Definitions ---
var (
	ErrOpponentNotFound     = errors.New("opponent not found")
	ErrOpponentAccessDenied = errors.New("access denied to this opponent")
	ErrOpponentNameRequired = errors.New("opponent name is required")
)

// CrestUpload is a pending crest image upload: a presigned PUT URL plus the
// object key the client should confirm once the upload succeeds.
type CrestUpload struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// --- Service Interface ---

// OpponentService manages a club's rival registry and the crest images
// attached to it.
type OpponentService interface {
	CreateOpponent(ctx context.Context, clubID primitive.ObjectID, name, crestURL string) (*domain.Opponent, error)
	ListOpponents(ctx context.Context, clubID primitive.ObjectID) ([]domain.Opponent, error)
	UpdateOpponent(ctx context.Context, clubID, id primitive.ObjectID, name, crestURL string) (*domain.Opponent, error)
	DeleteOpponent(ctx context.Context, clubID, id primitive.ObjectID) error

	RequestCrestUpload(ctx context.Context, clubID, id primitive.ObjectID, contentType string) (*CrestUpload, error)
	CrestDownloadURL(ctx context.Context, clubID, id primitive.ObjectID) (string, error)
}

// --- Service Implementation ---

type opponentService struct {
	opponentRepo repository.OpponentRepository
	fileStorage  storage.FileStorage
}

// NewOpponentService creates a new instance of opponentService.
func NewOpponentService(opponentRepo repository.OpponentRepository, fileStorage storage.FileStorage) OpponentService {
	return &opponentService{
		opponentRepo: opponentRepo,
		fileStorage:  fileStorage,
	}
}

// CreateOpponent adds a rival to the club registry.
func (s *opponentService) CreateOpponent(ctx context.Context, clubID primitive.ObjectID, name, crestURL string) (*domain.Opponent, error) {
	if name == "" {
		return nil, ErrOpponentNameRequired
	}
	opponent := &domain.Opponent{
		ClubID:   clubID,
		Name:     name,
		CrestURL: crestURL,
	}
	id, err := s.opponentRepo.Create(ctx, opponent)
	if err != nil {
		return nil, err
	}
	opponent.ID = id
	return opponent, nil
}

// ListOpponents returns the registry in its stable alphabetical order.
func (s *opponentService) ListOpponents(ctx context.Context, clubID primitive.ObjectID) ([]domain.Opponent, error) {
	return s.opponentRepo.ListByClubID(ctx, clubID)
}

// UpdateOpponent renames a rival or swaps its crest URL.
func (s *opponentService) UpdateOpponent(ctx context.Context, clubID, id primitive.ObjectID, name, crestURL string) (*domain.Opponent, error) {
	opponent, err := s.getOwned(ctx, clubID, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		opponent.Name = name
	}
	opponent.CrestURL = crestURL

	if err := s.opponentRepo.Update(ctx, opponent); err != nil {
		return nil, err
	}
	return opponent, nil
}

// DeleteOpponent removes a rival and its stored crest object, if any.
func (s *opponentService) DeleteOpponent(ctx context.Context, clubID, id primitive.ObjectID) error {
	opponent, err := s.getOwned(ctx, clubID, id)
	if err != nil {
		return err
	}
	if opponent.CrestKey != "" {
		// best-effort: a dangling object is preferable to a blocked delete
		_ = s.fileStorage.DeleteObject(ctx, opponent.CrestKey)
	}
	err = s.opponentRepo.Delete(ctx, id, clubID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrOpponentNotFound
	}
	return err
}

// RequestCrestUpload reserves an object key for the rival's crest image and
// hands back a presigned PUT URL. Any previously stored crest object is
// deleted so keys do not accumulate.
func (s *opponentService) RequestCrestUpload(ctx context.Context, clubID, id primitive.ObjectID, contentType string) (*CrestUpload, error) {
	opponent, err := s.getOwned(ctx, clubID, id)
	if err != nil {
		return nil, err
	}

	key := "crests/" + clubID.Hex() + "/" + uuid.NewString()
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, key, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}

	if opponent.CrestKey != "" && opponent.CrestKey != key {
		_ = s.fileStorage.DeleteObject(ctx, opponent.CrestKey)
	}
	opponent.CrestKey = key
	if err := s.opponentRepo.Update(ctx, opponent); err != nil {
		return nil, err
	}

	return &CrestUpload{UploadURL: uploadURL, ObjectKey: key}, nil
}

// CrestDownloadURL produces a short-lived URL for the stored crest image.
func (s *opponentService) CrestDownloadURL(ctx context.Context, clubID, id primitive.ObjectID) (string, error) {
	opponent, err := s.getOwned(ctx, clubID, id)
	if err != nil {
		return "", err
	}
	if opponent.CrestKey == "" {
		return "", ErrOpponentNotFound
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, opponent.CrestKey, 1*time.Hour)
}

func (s *opponentService) getOwned(ctx context.Context, clubID, id primitive.ObjectID) (*domain.Opponent, error) {
	opponent, err := s.opponentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOpponentNotFound
		}
		return nil, err
	}
	if opponent.ClubID != clubID {
		return nil, ErrOpponentAccessDenied
	}
	return opponent, nil
}
