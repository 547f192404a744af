package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/h3tools/hashtrack/internal/domain"
	"github.com/h3tools/hashtrack/internal/repository"
)

var ErrUserNotFound = repository.ErrUserNotFound

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByProviderKey(ctx context.Context, key string) (domain.User, error)
}

type AuthService struct {
	repo AuthUserRepository
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// Exchange maps an identity-provider key to the local user record.
// A key never seen before gets a fresh record with no permissions,
// mirroring the first-login flow: someone signs in, then waits for an
// admin to grant data_entry.
func (s *AuthService) Exchange(ctx context.Context, providerKey string) (domain.User, error) {
	if providerKey == "" {
		return domain.User{}, fmt.Errorf("%w: provider key is required", ErrInvalidArgument)
	}

	user, err := s.repo.FindByProviderKey(ctx, providerKey)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, fmt.Errorf("s.repo.FindByProviderKey -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.User{
		ProviderKey: providerKey,
		Permissions: domain.PermissionNone,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
