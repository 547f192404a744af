package repository

import (
	"context"
	"fmt"

	"github.com/h3tools/hashtrack/internal/domain"
	"github.com/h3tools/hashtrack/internal/repository/dao"
)

var (
	ErrHasherNotFound = dao.ErrHasherNotFound
	ErrNothingUpdated = dao.ErrNothingUpdated
)

type HasherDAO interface {
	Insert(ctx context.Context, hasher dao.Hasher) (dao.Hasher, error)
	Update(ctx context.Context, hasher dao.Hasher) (dao.Hasher, error)
	FindByID(ctx context.Context, id uint) (dao.Hasher, error)
	SearchByTerm(ctx context.Context, term string) ([]dao.Hasher, error)
	ListMostRecent(ctx context.Context, limit int) ([]dao.Hasher, error)
	ListNotAtEvent(ctx context.Context, eventID uint) ([]dao.Hasher, error)
	ListAttendance(ctx context.Context, hasherID uint) ([]dao.AttendanceRow, error)
	ListReceivedHonors(ctx context.Context, hasherID uint) ([]dao.ReceivedHonorRow, error)
}

type HasherRepository struct {
	dao HasherDAO
}

func NewHasherRepository(dao HasherDAO) *HasherRepository {
	return &HasherRepository{
		dao: dao,
	}
}

func (r *HasherRepository) Create(ctx context.Context, hasher domain.Hasher) (domain.Hasher, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(hasher))
	if err != nil {
		return domain.Hasher{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *HasherRepository) Update(ctx context.Context, hasher domain.Hasher) (domain.Hasher, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(hasher))
	if err != nil {
		return domain.Hasher{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *HasherRepository) FindByID(ctx context.Context, id uint) (domain.Hasher, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Hasher{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

// FullRecord issues three point queries: the hasher row, the attendance
// list and the received honors. They are not wrapped in a snapshot; each
// is atomic on its own, matching the request model.
func (r *HasherRepository) FullRecord(ctx context.Context, id uint) (domain.HasherRecord, error) {
	hasher, err := r.FindByID(ctx, id)
	if err != nil {
		return domain.HasherRecord{}, err
	}

	attendance, err := r.dao.ListAttendance(ctx, id)
	if err != nil {
		return domain.HasherRecord{}, fmt.Errorf("r.dao.ListAttendance -> %w", err)
	}

	honors, err := r.dao.ListReceivedHonors(ctx, id)
	if err != nil {
		return domain.HasherRecord{}, fmt.Errorf("r.dao.ListReceivedHonors -> %w", err)
	}

	record := domain.HasherRecord{
		Hasher: hasher,
		Events: make([]domain.Attendance, len(attendance)),
		Honors: make([]domain.ReceivedHonor, len(honors)),
	}
	for i, a := range attendance {
		record.Events[i] = domain.Attendance{
			EventID: a.EventID,
			Title:   a.Title,
			Number:  a.Number,
			EvDate:  a.EvDate,
			Kennel:  a.Kennel,
			Hare:    a.Hare,
			Jedi:    a.Jedi,
		}
	}
	for i, h := range honors {
		record.Honors[i] = domain.ReceivedHonor{
			HonorID:  h.HonorID,
			Title:    h.Title,
			Category: h.Category,
			EventID:  h.EventID,
		}
	}

	return record, nil
}

func (r *HasherRepository) SearchByTerm(ctx context.Context, term string) ([]domain.Hasher, error) {
	found, err := r.dao.SearchByTerm(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("r.dao.SearchByTerm -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *HasherRepository) ListMostRecent(ctx context.Context, limit int) ([]domain.Hasher, error) {
	found, err := r.dao.ListMostRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListMostRecent -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *HasherRepository) ListNotAtEvent(ctx context.Context, eventID uint) ([]domain.Hasher, error) {
	found, err := r.dao.ListNotAtEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListNotAtEvent -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *HasherRepository) domainToDao(h domain.Hasher) dao.Hasher {
	return dao.Hasher{
		ID:       h.ID,
		RealName: h.RealName,
		HashName: h.HashName,
		FBName:   h.FBName,
		FBURL:    h.FBURL,
		KennelID: h.Kennel.ID,
		Notes:    h.Notes,
	}
}

func (r *HasherRepository) daoToDomain(h dao.Hasher) domain.Hasher {
	return domain.Hasher{
		ID:       h.ID,
		RealName: h.RealName,
		HashName: h.HashName,
		FBName:   h.FBName,
		FBURL:    h.FBURL,
		Kennel:   kennelDaoToDomain(h.Kennel),
		Notes:    h.Notes,
		Updated:  h.Updated,
	}
}

func (r *HasherRepository) daosToDomain(found []dao.Hasher) []domain.Hasher {
	hashers := make([]domain.Hasher, len(found))
	for i, h := range found {
		hashers[i] = r.daoToDomain(h)
	}
	return hashers
}
