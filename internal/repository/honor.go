package repository

import (
	"context"
	"fmt"

	"github.com/h3tools/hashtrack/internal/domain"
	"github.com/h3tools/hashtrack/internal/repository/dao"
)

var ErrHonorNotFound = dao.ErrHonorNotFound

type HonorDAO interface {
	InsertDef(ctx context.Context, def dao.HonorDef) (dao.HonorDef, error)
	ListDefsByKennel(ctx context.Context, kennelID uint) ([]dao.HonorDef, error)
	FindDefByID(ctx context.Context, id uint) (dao.HonorDef, error)
	InsertDelivery(ctx context.Context, delivery dao.HonorDelivery) (dao.HonorDelivery, error)
	HonorsDueByKennel(ctx context.Context, kennelID uint) ([]dao.HonorDueRow, error)
	HonorsDueByEvent(ctx context.Context, eventID uint) ([]dao.HonorDueRow, error)
}

type HonorRepository struct {
	dao HonorDAO
}

func NewHonorRepository(dao HonorDAO) *HonorRepository {
	return &HonorRepository{
		dao: dao,
	}
}

func (r *HonorRepository) CreateDef(ctx context.Context, def domain.HonorDef) (domain.HonorDef, error) {
	created, err := r.dao.InsertDef(ctx, dao.HonorDef{
		KennelID: def.KennelID,
		Kind:     def.Category,
		Num:      def.Threshold,
		Title:    def.Title,
	})
	if err != nil {
		return domain.HonorDef{}, fmt.Errorf("r.dao.InsertDef -> %w", err)
	}

	return r.defDaoToDomain(created), nil
}

func (r *HonorRepository) ListDefsByKennel(ctx context.Context, kennelID uint) ([]domain.HonorDef, error) {
	found, err := r.dao.ListDefsByKennel(ctx, kennelID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListDefsByKennel -> %w", err)
	}

	defs := make([]domain.HonorDef, len(found))
	for i, d := range found {
		defs[i] = r.defDaoToDomain(d)
	}

	return defs, nil
}

func (r *HonorRepository) FindDefByID(ctx context.Context, id uint) (domain.HonorDef, error) {
	found, err := r.dao.FindDefByID(ctx, id)
	if err != nil {
		return domain.HonorDef{}, fmt.Errorf("r.dao.FindDefByID -> %w", err)
	}

	return r.defDaoToDomain(found), nil
}

func (r *HonorRepository) CreateDelivery(ctx context.Context, delivery domain.HonorDelivery) (domain.HonorDelivery, error) {
	created, err := r.dao.InsertDelivery(ctx, dao.HonorDelivery{
		HonorID:  delivery.HonorID,
		HasherID: delivery.HasherID,
		EventID:  delivery.EventID,
	})
	if err != nil {
		return domain.HonorDelivery{}, fmt.Errorf("r.dao.InsertDelivery -> %w", err)
	}

	return domain.HonorDelivery{
		ID:       created.ID,
		HonorID:  created.HonorID,
		HasherID: created.HasherID,
		EventID:  created.EventID,
	}, nil
}

func (r *HonorRepository) HonorsDueByKennel(ctx context.Context, kennelID uint) ([]domain.HonorDue, error) {
	rows, err := r.dao.HonorsDueByKennel(ctx, kennelID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.HonorsDueByKennel -> %w", err)
	}

	return r.dueRowsToDomain(rows), nil
}

func (r *HonorRepository) HonorsDueByEvent(ctx context.Context, eventID uint) ([]domain.HonorDue, error) {
	rows, err := r.dao.HonorsDueByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.HonorsDueByEvent -> %w", err)
	}

	return r.dueRowsToDomain(rows), nil
}

func (r *HonorRepository) defDaoToDomain(d dao.HonorDef) domain.HonorDef {
	return domain.HonorDef{
		ID:        d.ID,
		KennelID:  d.KennelID,
		Category:  d.Kind,
		Threshold: d.Num,
		Title:     d.Title,
	}
}

func (r *HonorRepository) dueRowsToDomain(rows []dao.HonorDueRow) []domain.HonorDue {
	due := make([]domain.HonorDue, len(rows))
	for i, row := range rows {
		due[i] = domain.HonorDue{
			HasherID:   row.HasherID,
			HasherName: row.HasherName,
			HonorID:    row.HonorID,
			HonorTitle: row.HonorTitle,
			Threshold:  row.Threshold,
			Category:   row.Category,
		}
	}
	return due
}
