package service

import (
	"context"
	"fmt"

	"github.com/h3tools/hashtrack/internal/domain"
	"github.com/h3tools/hashtrack/internal/repository"
)

var ErrHonorNotFound = repository.ErrHonorNotFound

type HonorRepository interface {
	CreateDef(ctx context.Context, def domain.HonorDef) (domain.HonorDef, error)
	ListDefsByKennel(ctx context.Context, kennelID uint) ([]domain.HonorDef, error)
	FindDefByID(ctx context.Context, id uint) (domain.HonorDef, error)
	CreateDelivery(ctx context.Context, delivery domain.HonorDelivery) (domain.HonorDelivery, error)
	HonorsDueByKennel(ctx context.Context, kennelID uint) ([]domain.HonorDue, error)
	HonorsDueByEvent(ctx context.Context, eventID uint) ([]domain.HonorDue, error)
}

type HonorService struct {
	repo HonorRepository
}

func NewHonorService(repo HonorRepository) *HonorService {
	return &HonorService{
		repo: repo,
	}
}

// HonorsDueForKennel lists honors earned but not yet delivered across a
// kennel. On a persistence failure the caller gets a nil slice and the
// error, never a partial result; an empty report and a failed report
// must stay distinguishable.
func (s *HonorService) HonorsDueForKennel(ctx context.Context, kennelID uint) ([]domain.HonorDue, error) {
	if kennelID == 0 {
		return nil, fmt.Errorf("%w: kennel id is required", ErrInvalidArgument)
	}

	due, err := s.repo.HonorsDueByKennel(ctx, kennelID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.HonorsDueByKennel -> %w", err)
	}

	return due, nil
}

// HonorsDueForEvent restricts the evaluation to the event's roster.
func (s *HonorService) HonorsDueForEvent(ctx context.Context, eventID uint) ([]domain.HonorDue, error) {
	if eventID == 0 {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidArgument)
	}

	due, err := s.repo.HonorsDueByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.HonorsDueByEvent -> %w", err)
	}

	return due, nil
}

// RecordDelivery appends one delivery row after resolving the award
// definition; a stale honor id surfaces as ErrHonorNotFound instead of
// a dangling ledger entry.
func (s *HonorService) RecordDelivery(ctx context.Context, delivery domain.HonorDelivery) (domain.HonorDelivery, error) {
	if delivery.HonorID == 0 || delivery.HasherID == 0 || delivery.EventID == 0 {
		return domain.HonorDelivery{}, fmt.Errorf(
			"%w: honor, hasher and event ids are required", ErrInvalidArgument)
	}

	if _, err := s.repo.FindDefByID(ctx, delivery.HonorID); err != nil {
		return domain.HonorDelivery{}, fmt.Errorf("s.repo.FindDefByID -> %w", err)
	}

	created, err := s.repo.CreateDelivery(ctx, delivery)
	if err != nil {
		return domain.HonorDelivery{}, fmt.Errorf("s.repo.CreateDelivery -> %w", err)
	}

	return created, nil
}

type DeliveryResult struct {
	Delivery domain.HonorDelivery
	Err      error
}

// RecordDeliveries applies RecordDelivery to each item in order. One
// failure does not abort the rest; the result slice is parallel to the
// input so the caller can report per-item outcomes.
func (s *HonorService) RecordDeliveries(ctx context.Context, deliveries []domain.HonorDelivery) []DeliveryResult {
	results := make([]DeliveryResult, len(deliveries))
	for i, delivery := range deliveries {
		created, err := s.RecordDelivery(ctx, delivery)
		results[i] = DeliveryResult{
			Delivery: created,
			Err:      err,
		}
	}

	return results
}

func (s *HonorService) CreateDef(ctx context.Context, def domain.HonorDef) (domain.HonorDef, error) {
	switch def.Category {
	case domain.CategoryHash, domain.CategoryHare, domain.CategoryJedi:
	default:
		return domain.HonorDef{}, fmt.Errorf("%w: unknown category %q", ErrInvalidArgument, def.Category)
	}
	if def.KennelID == 0 {
		return domain.HonorDef{}, fmt.Errorf("%w: kennel id is required", ErrInvalidArgument)
	}

	created, err := s.repo.CreateDef(ctx, def)
	if err != nil {
		return domain.HonorDef{}, fmt.Errorf("s.repo.CreateDef -> %w", err)
	}

	return created, nil
}

func (s *HonorService) ListDefsByKennel(ctx context.Context, kennelID uint) ([]domain.HonorDef, error) {
	if kennelID == 0 {
		return nil, fmt.Errorf("%w: kennel id is required", ErrInvalidArgument)
	}

	defs, err := s.repo.ListDefsByKennel(ctx, kennelID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListDefsByKennel -> %w", err)
	}

	return defs, nil
}
