package service

import (
	"context"
	"fmt"

	"github.com/h3tools/hashtrack/internal/domain"
	"github.com/h3tools/hashtrack/internal/repository"
)

var (
	ErrEventNotFound  = repository.ErrEventNotFound
	ErrAlreadyLinked  = repository.ErrAlreadyLinked
	ErrNothingDeleted = repository.ErrNothingDeleted
)

const recentEventLimit = 25

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	FullRecord(ctx context.Context, id uint) (domain.EventRecord, error)
	SearchByTerm(ctx context.Context, term string) ([]domain.Event, error)
	ListMostRecent(ctx context.Context, limit int) ([]domain.Event, error)
	LinkHasher(ctx context.Context, link domain.Participation) error
	UnlinkHashers(ctx context.Context, hasherIDs []uint, eventID uint) error
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	if event.Kennel.ID == 0 {
		return domain.Event{}, fmt.Errorf("%w: kennel id is required", ErrInvalidArgument)
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	if event.ID == 0 || event.Kennel.ID == 0 {
		return domain.Event{}, fmt.Errorf("%w: event and kennel ids are required", ErrInvalidArgument)
	}

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EventService) GetEventRecord(ctx context.Context, id uint) (domain.EventRecord, error) {
	if id == 0 {
		return domain.EventRecord{}, fmt.Errorf("%w: event id is required", ErrInvalidArgument)
	}

	record, err := s.repo.FullRecord(ctx, id)
	if err != nil {
		return domain.EventRecord{}, fmt.Errorf("s.repo.FullRecord -> %w", err)
	}

	return record, nil
}

func (s *EventService) SearchEvents(ctx context.Context, term string) ([]domain.Event, error) {
	events, err := s.repo.SearchByTerm(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("s.repo.SearchByTerm -> %w", err)
	}

	return events, nil
}

func (s *EventService) ListRecentEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.ListMostRecent(ctx, recentEventLimit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListMostRecent -> %w", err)
	}

	return events, nil
}

// LinkHasherToEvent adds one hasher to an event's roster. The role
// flags arrive through the request layer as strict booleans; anything
// truthy-but-not-boolean has already been rejected there.
func (s *EventService) LinkHasherToEvent(ctx context.Context, link domain.Participation) error {
	if link.EventID == 0 || link.HasherID == 0 {
		return fmt.Errorf("%w: event and hasher ids are required", ErrInvalidArgument)
	}

	if err := s.repo.LinkHasher(ctx, link); err != nil {
		return fmt.Errorf("s.repo.LinkHasher -> %w", err)
	}

	return nil
}

// UnlinkHashers drops roster rows for the given hashers. Non-positive
// ids are filtered out first; an empty remainder is reported as an
// invalid argument, not sent to the store.
func (s *EventService) UnlinkHashers(ctx context.Context, hasherIDs []uint, eventID uint) error {
	if eventID == 0 {
		return fmt.Errorf("%w: event id is required", ErrInvalidArgument)
	}

	valid := make([]uint, 0, len(hasherIDs))
	for _, id := range hasherIDs {
		if id > 0 {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return fmt.Errorf("%w: no hasher ids to unlink", ErrInvalidArgument)
	}

	if err := s.repo.UnlinkHashers(ctx, valid, eventID); err != nil {
		return fmt.Errorf("s.repo.UnlinkHashers -> %w", err)
	}

	return nil
}
