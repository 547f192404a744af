package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertKennelDuplicateName(t *testing.T) {
	f := newFixture(t)
	f.kennel("Metro H3")

	_, err := f.kennels.Insert(context.Background(), Kennel{Name: "Metro H3"})
	assert.ErrorIs(t, err, ErrKennelNameExists)
}

func TestListKennelsSortedByName(t *testing.T) {
	f := newFixture(t)
	f.kennel("Harbor H3")
	f.kennel("Airport H3")

	kennels, err := f.kennels.List(context.Background())
	require.NoError(t, err)
	require.Len(t, kennels, 2)
	assert.Equal(t, "Airport H3", kennels[0].Name)
}
