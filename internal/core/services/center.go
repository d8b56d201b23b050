package services

import (
	"context"

	"github.com/google/uuid"

	"lx-registry-service/internal/core/domain"
	"lx-registry-service/internal/core/ports/output"
)

type CenterService struct {
	repo ports.CenterRepository
}

func NewCenterService(repo ports.CenterRepository) *CenterService {
	return &CenterService{repo: repo}
}

func (s *CenterService) Create(ctx context.Context, center *domain.Center) (*domain.Center, error) {
	if center.ID == uuid.Nil {
		center.ID = uuid.New()
	}
	if err := s.repo.Create(ctx, center); err != nil {
		return nil, err
	}
	return center, nil
}

func (s *CenterService) Get(ctx context.Context, id uuid.UUID) (*domain.Center, error) {
	return s.repo.GetByID(ctx, id)
}

// Replace overwrites every field of the stored center with the given values.
func (s *CenterService) Replace(ctx context.Context, id uuid.UUID, center *domain.Center) (*domain.Center, error) {
	center.ID = id
	if err := s.repo.Update(ctx, center); err != nil {
		return nil, err
	}
	return center, nil
}

func (s *CenterService) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Center, int, error) {
	return s.repo.List(ctx, NormalizeFilter(filter))
}

func (s *CenterService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
