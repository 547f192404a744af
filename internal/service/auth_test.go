package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h3tools/hashtrack/internal/domain"
)

type FakeAuthUserRepo struct {
	CreateFunc            func(ctx context.Context, user domain.User) (domain.User, error)
	FindByProviderKeyFunc func(ctx context.Context, key string) (domain.User, error)
}

func (f *FakeAuthUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	return f.CreateFunc(ctx, user)
}

func (f *FakeAuthUserRepo) FindByProviderKey(ctx context.Context, key string) (domain.User, error) {
	return f.FindByProviderKeyFunc(ctx, key)
}

func TestExchange(t *testing.T) {
	t.Run("known key returns the existing user", func(t *testing.T) {
		fakeRepo := &FakeAuthUserRepo{
			FindByProviderKeyFunc: func(ctx context.Context, key string) (domain.User, error) {
				return domain.User{ID: 7, ProviderKey: key, Permissions: domain.PermissionAdmin}, nil
			},
		}

		svc := NewAuthService(fakeRepo)

		user, err := svc.Exchange(context.Background(), "auth0|abc123")

		require.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)
		assert.Equal(t, domain.PermissionAdmin, user.Permissions)
	})

	t.Run("unknown key creates a user with no permissions", func(t *testing.T) {
		var created domain.User
		fakeRepo := &FakeAuthUserRepo{
			FindByProviderKeyFunc: func(ctx context.Context, key string) (domain.User, error) {
				return domain.User{}, ErrUserNotFound
			},
			CreateFunc: func(ctx context.Context, user domain.User) (domain.User, error) {
				user.ID = 8
				created = user
				return user, nil
			},
		}

		svc := NewAuthService(fakeRepo)

		user, err := svc.Exchange(context.Background(), "auth0|new")

		require.NoError(t, err)
		assert.Equal(t, uint(8), user.ID)
		assert.Equal(t, domain.PermissionNone, created.Permissions)
		assert.False(t, user.CanEnterData())
	})

	t.Run("empty key is rejected", func(t *testing.T) {
		svc := NewAuthService(&FakeAuthUserRepo{})

		_, err := svc.Exchange(context.Background(), "")

		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("lookup failure does not create an account", func(t *testing.T) {
		createCalled := false
		fakeRepo := &FakeAuthUserRepo{
			FindByProviderKeyFunc: func(ctx context.Context, key string) (domain.User, error) {
				return domain.User{}, errors.New("connection refused")
			},
			CreateFunc: func(ctx context.Context, user domain.User) (domain.User, error) {
				createCalled = true
				return user, nil
			},
		}

		svc := NewAuthService(fakeRepo)

		_, err := svc.Exchange(context.Background(), "auth0|abc123")

		require.Error(t, err)
		assert.False(t, createCalled)
	})
}
