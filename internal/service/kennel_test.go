package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h3tools/hashtrack/internal/domain"
)

type FakeKennelRepo struct {
	CreateFunc   func(ctx context.Context, kennel domain.Kennel) (domain.Kennel, error)
	FindByIDFunc func(ctx context.Context, id uint) (domain.Kennel, error)
	ListFunc     func(ctx context.Context) ([]domain.Kennel, error)
}

func (f *FakeKennelRepo) Create(ctx context.Context, kennel domain.Kennel) (domain.Kennel, error) {
	return f.CreateFunc(ctx, kennel)
}

func (f *FakeKennelRepo) FindByID(ctx context.Context, id uint) (domain.Kennel, error) {
	return f.FindByIDFunc(ctx, id)
}

func (f *FakeKennelRepo) List(ctx context.Context) ([]domain.Kennel, error) {
	return f.ListFunc(ctx)
}

func TestGetKennel(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fakeRepo := &FakeKennelRepo{
			FindByIDFunc: func(ctx context.Context, id uint) (domain.Kennel, error) {
				return domain.Kennel{ID: id, Name: "Metro H3"}, nil
			},
		}

		svc := NewKennelService(fakeRepo)

		kennel, err := svc.GetKennel(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, "Metro H3", kennel.Name)
	})

	t.Run("unknown id surfaces not-found", func(t *testing.T) {
		fakeRepo := &FakeKennelRepo{
			FindByIDFunc: func(ctx context.Context, id uint) (domain.Kennel, error) {
				return domain.Kennel{}, ErrKennelNotFound
			},
		}

		svc := NewKennelService(fakeRepo)

		_, err := svc.GetKennel(context.Background(), 99)

		assert.ErrorIs(t, err, ErrKennelNotFound)
	})

	t.Run("zero id rejected before any query", func(t *testing.T) {
		svc := NewKennelService(&FakeKennelRepo{})

		_, err := svc.GetKennel(context.Background(), 0)

		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestCreateKennelDuplicate(t *testing.T) {
	fakeRepo := &FakeKennelRepo{
		CreateFunc: func(ctx context.Context, kennel domain.Kennel) (domain.Kennel, error) {
			return domain.Kennel{}, ErrKennelNameExists
		},
	}

	svc := NewKennelService(fakeRepo)

	_, err := svc.CreateKennel(context.Background(), domain.Kennel{Name: "Metro H3"})

	assert.ErrorIs(t, err, ErrKennelNameExists)
}
