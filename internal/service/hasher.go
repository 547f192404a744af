package service

import (
	"context"
	"fmt"

	"github.com/h3tools/hashtrack/internal/domain"
	"github.com/h3tools/hashtrack/internal/repository"
)

var (
	ErrHasherNotFound = repository.ErrHasherNotFound
	ErrNothingUpdated = repository.ErrNothingUpdated
)

const recentHasherLimit = 25

type HasherRepository interface {
	Create(ctx context.Context, hasher domain.Hasher) (domain.Hasher, error)
	Update(ctx context.Context, hasher domain.Hasher) (domain.Hasher, error)
	FullRecord(ctx context.Context, id uint) (domain.HasherRecord, error)
	SearchByTerm(ctx context.Context, term string) ([]domain.Hasher, error)
	ListMostRecent(ctx context.Context, limit int) ([]domain.Hasher, error)
	ListNotAtEvent(ctx context.Context, eventID uint) ([]domain.Hasher, error)
}

type HasherService struct {
	repo HasherRepository
}

func NewHasherService(repo HasherRepository) *HasherService {
	return &HasherService{
		repo: repo,
	}
}

func (s *HasherService) CreateHasher(ctx context.Context, hasher domain.Hasher) (domain.Hasher, error) {
	created, err := s.repo.Create(ctx, hasher)
	if err != nil {
		return domain.Hasher{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *HasherService) UpdateHasher(ctx context.Context, hasher domain.Hasher) (domain.Hasher, error) {
	if hasher.ID == 0 {
		return domain.Hasher{}, fmt.Errorf("%w: hasher id is required", ErrInvalidArgument)
	}

	updated, err := s.repo.Update(ctx, hasher)
	if err != nil {
		return domain.Hasher{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *HasherService) GetHasherRecord(ctx context.Context, id uint) (domain.HasherRecord, error) {
	if id == 0 {
		return domain.HasherRecord{}, fmt.Errorf("%w: hasher id is required", ErrInvalidArgument)
	}

	record, err := s.repo.FullRecord(ctx, id)
	if err != nil {
		return domain.HasherRecord{}, fmt.Errorf("s.repo.FullRecord -> %w", err)
	}

	return record, nil
}

func (s *HasherService) SearchHashers(ctx context.Context, term string) ([]domain.Hasher, error) {
	hashers, err := s.repo.SearchByTerm(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("s.repo.SearchByTerm -> %w", err)
	}

	return hashers, nil
}

func (s *HasherService) ListRecentHashers(ctx context.Context) ([]domain.Hasher, error) {
	hashers, err := s.repo.ListMostRecent(ctx, recentHasherLimit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListMostRecent -> %w", err)
	}

	return hashers, nil
}

// ListHashersNotAtEvent feeds the add-to-roster form: everyone who is
// not already on the event's roster.
func (s *HasherService) ListHashersNotAtEvent(ctx context.Context, eventID uint) ([]domain.Hasher, error) {
	if eventID == 0 {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidArgument)
	}

	hashers, err := s.repo.ListNotAtEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListNotAtEvent -> %w", err)
	}

	return hashers, nil
}
