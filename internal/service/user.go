package service

import (
	"context"
	"fmt"

	"github.com/h3tools/hashtrack/internal/domain"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	UpdateProfile(ctx context.Context, id uint, name, email string) (domain.User, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id uint, name, email string) (domain.User, error) {
	if id == 0 {
		return domain.User{}, fmt.Errorf("%w: user id is required", ErrInvalidArgument)
	}

	user, err := s.repo.UpdateProfile(ctx, id, name, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.UpdateProfile -> %w", err)
	}

	return user, nil
}
