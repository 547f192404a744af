package repository

import (
	"context"
	"fmt"

	"github.com/h3tools/hashtrack/internal/domain"
	"github.com/h3tools/hashtrack/internal/repository/dao"
)

var (
	ErrKennelNotFound   = dao.ErrKennelNotFound
	ErrKennelNameExists = dao.ErrKennelNameExists
)

type KennelDAO interface {
	Insert(ctx context.Context, kennel dao.Kennel) (dao.Kennel, error)
	FindByID(ctx context.Context, id uint) (dao.Kennel, error)
	List(ctx context.Context) ([]dao.Kennel, error)
}

type KennelRepository struct {
	dao KennelDAO
}

func NewKennelRepository(dao KennelDAO) *KennelRepository {
	return &KennelRepository{
		dao: dao,
	}
}

func (r *KennelRepository) Create(ctx context.Context, kennel domain.Kennel) (domain.Kennel, error) {
	created, err := r.dao.Insert(ctx, dao.Kennel{Name: kennel.Name})
	if err != nil {
		return domain.Kennel{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return kennelDaoToDomain(created), nil
}

func (r *KennelRepository) FindByID(ctx context.Context, id uint) (domain.Kennel, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Kennel{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return kennelDaoToDomain(found), nil
}

func (r *KennelRepository) List(ctx context.Context) ([]domain.Kennel, error) {
	found, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	kennels := make([]domain.Kennel, len(found))
	for i, k := range found {
		kennels[i] = kennelDaoToDomain(k)
	}

	return kennels, nil
}

func kennelDaoToDomain(k dao.Kennel) domain.Kennel {
	return domain.Kennel{
		ID:   k.ID,
		Name: k.Name,
	}
}
