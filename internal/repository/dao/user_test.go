package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByProviderKey(t *testing.T) {
	resetTables(t)
	users := NewUserDAO(testDB)

	_, err := users.FindByProviderKey(context.Background(), "auth0|missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	created, err := users.Insert(context.Background(), AuthUser{
		ProviderKey: "auth0|abc123",
		Name:        "Mary Smith",
	})
	require.NoError(t, err)

	found, err := users.FindByProviderKey(context.Background(), "auth0|abc123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "none", found.Permissions, "new accounts start with no permissions")
}

func TestUpdateProfile(t *testing.T) {
	resetTables(t)
	users := NewUserDAO(testDB)

	created, err := users.Insert(context.Background(), AuthUser{ProviderKey: "auth0|abc123"})
	require.NoError(t, err)

	updated, err := users.UpdateProfile(context.Background(), created.ID, "Mary Smith", "mary@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Mary Smith", updated.Name)
	assert.Equal(t, "mary@example.com", updated.Email)

	_, err = users.UpdateProfile(context.Background(), 4242, "Nobody", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
