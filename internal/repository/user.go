package repository

import (
	"context"
	"fmt"

	"github.com/h3tools/hashtrack/internal/domain"
	"github.com/h3tools/hashtrack/internal/repository/dao"
)

var ErrUserNotFound = dao.ErrUserNotFound

type UserDAO interface {
	Insert(ctx context.Context, user dao.AuthUser) (dao.AuthUser, error)
	FindByID(ctx context.Context, id uint) (dao.AuthUser, error)
	FindByProviderKey(ctx context.Context, key string) (dao.AuthUser, error)
	UpdateProfile(ctx context.Context, id uint, name, email string) (dao.AuthUser, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.AuthUser{
		ProviderKey: user.ProviderKey,
		Name:        user.Name,
		Email:       user.Email,
		Permissions: user.Permissions,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByProviderKey(ctx context.Context, key string) (domain.User, error) {
	found, err := r.dao.FindByProviderKey(ctx, key)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByProviderKey -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uint, name, email string) (domain.User, error) {
	updated, err := r.dao.UpdateProfile(ctx, id, name, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.UpdateProfile -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *UserRepository) daoToDomain(u dao.AuthUser) domain.User {
	return domain.User{
		ID:          u.ID,
		ProviderKey: u.ProviderKey,
		Name:        u.Name,
		Email:       u.Email,
		Permissions: u.Permissions,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
