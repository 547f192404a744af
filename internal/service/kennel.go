package service

import (
	"context"
	"fmt"

	"github.com/h3tools/hashtrack/internal/domain"
	"github.com/h3tools/hashtrack/internal/repository"
)

var (
	ErrKennelNotFound   = repository.ErrKennelNotFound
	ErrKennelNameExists = repository.ErrKennelNameExists
)

type KennelRepository interface {
	Create(ctx context.Context, kennel domain.Kennel) (domain.Kennel, error)
	FindByID(ctx context.Context, id uint) (domain.Kennel, error)
	List(ctx context.Context) ([]domain.Kennel, error)
}

type KennelService struct {
	repo KennelRepository
}

func NewKennelService(repo KennelRepository) *KennelService {
	return &KennelService{
		repo: repo,
	}
}

func (s *KennelService) CreateKennel(ctx context.Context, kennel domain.Kennel) (domain.Kennel, error) {
	created, err := s.repo.Create(ctx, kennel)
	if err != nil {
		return domain.Kennel{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *KennelService) GetKennel(ctx context.Context, id uint) (domain.Kennel, error) {
	if id == 0 {
		return domain.Kennel{}, fmt.Errorf("%w: kennel id is required", ErrInvalidArgument)
	}

	kennel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Kennel{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return kennel, nil
}

func (s *KennelService) ListKennels(ctx context.Context) ([]domain.Kennel, error) {
	kennels, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return kennels, nil
}
