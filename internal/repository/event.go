package repository

import (
	"context"
	"fmt"

	"github.com/h3tools/hashtrack/internal/domain"
	"github.com/h3tools/hashtrack/internal/repository/dao"
)

var (
	ErrEventNotFound  = dao.ErrEventNotFound
	ErrAlreadyLinked  = dao.ErrAlreadyLinked
	ErrNothingDeleted = dao.ErrNothingDeleted
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	SearchByTerm(ctx context.Context, term string) ([]dao.Event, error)
	ListMostRecent(ctx context.Context, limit int) ([]dao.Event, error)
	LinkHasher(ctx context.Context, link dao.EventHasher) error
	UnlinkHashers(ctx context.Context, hasherIDs []uint, eventID uint) error
	ListParticipants(ctx context.Context, eventID uint) ([]dao.ParticipantRow, error)
	ListDeliveries(ctx context.Context, eventID uint) ([]dao.DeliveredHonorRow, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) FullRecord(ctx context.Context, id uint) (domain.EventRecord, error) {
	event, err := r.FindByID(ctx, id)
	if err != nil {
		return domain.EventRecord{}, err
	}

	participants, err := r.dao.ListParticipants(ctx, id)
	if err != nil {
		return domain.EventRecord{}, fmt.Errorf("r.dao.ListParticipants -> %w", err)
	}

	deliveries, err := r.dao.ListDeliveries(ctx, id)
	if err != nil {
		return domain.EventRecord{}, fmt.Errorf("r.dao.ListDeliveries -> %w", err)
	}

	record := domain.EventRecord{
		Event:      event,
		Hashers:    make([]domain.Participant, len(participants)),
		Deliveries: make([]domain.DeliveredHonor, len(deliveries)),
	}
	for i, p := range participants {
		record.Hashers[i] = domain.Participant{
			HasherID: p.HasherID,
			RealName: p.RealName,
			HashName: p.HashName,
			Hare:     p.Hare,
			Jedi:     p.Jedi,
		}
	}
	for i, d := range deliveries {
		record.Deliveries[i] = domain.DeliveredHonor{
			HonorID:    d.HonorID,
			Title:      d.Title,
			Category:   d.Category,
			HasherID:   d.HasherID,
			HasherName: d.HasherName,
		}
	}

	return record, nil
}

func (r *EventRepository) SearchByTerm(ctx context.Context, term string) ([]domain.Event, error) {
	found, err := r.dao.SearchByTerm(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("r.dao.SearchByTerm -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *EventRepository) ListMostRecent(ctx context.Context, limit int) ([]domain.Event, error) {
	found, err := r.dao.ListMostRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListMostRecent -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *EventRepository) LinkHasher(ctx context.Context, link domain.Participation) error {
	err := r.dao.LinkHasher(ctx, dao.EventHasher{
		EventID:  link.EventID,
		HasherID: link.HasherID,
		Hare:     link.Hare,
		Jedi:     link.Jedi,
	})
	if err != nil {
		return fmt.Errorf("r.dao.LinkHasher -> %w", err)
	}

	return nil
}

func (r *EventRepository) UnlinkHashers(ctx context.Context, hasherIDs []uint, eventID uint) error {
	if err := r.dao.UnlinkHashers(ctx, hasherIDs, eventID); err != nil {
		return fmt.Errorf("r.dao.UnlinkHashers -> %w", err)
	}

	return nil
}

func (r *EventRepository) domainToDao(e domain.Event) dao.Event {
	return dao.Event{
		ID:       e.ID,
		KennelID: e.Kennel.ID,
		Title:    e.Title,
		Number:   e.Number,
		EvDate:   e.EvDate,
		Location: e.Location,
		Notes:    e.Notes,
	}
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:       e.ID,
		Kennel:   kennelDaoToDomain(e.Kennel),
		Title:    e.Title,
		Number:   e.Number,
		EvDate:   e.EvDate,
		Location: e.Location,
		Notes:    e.Notes,
		Updated:  e.Updated,
	}
}

func (r *EventRepository) daosToDomain(found []dao.Event) []domain.Event {
	events := make([]domain.Event, len(found))
	for i, e := range found {
		events[i] = r.daoToDomain(e)
	}
	return events
}
