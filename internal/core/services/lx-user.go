package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lx-registry-service/internal/core/domain"
	"lx-registry-service/internal/core/ports/output"
)

// LxUserService is the natural-key manager for users.
type LxUserService struct {
	repo    ports.LxUserRepository
	metrics ports.MetricsRecorder
}

func NewLxUserService(repo ports.LxUserRepository, metrics ports.MetricsRecorder) *LxUserService {
	return &LxUserService{repo: repo, metrics: metrics}
}

func (s *LxUserService) Create(ctx context.Context, name, description string) (*domain.LxUser, error) {
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	now := time.Now().UTC()
	user := &domain.LxUser{
		ID:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        name,
		Description: description,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *LxUserService) GetByName(ctx context.Context, name string) (*domain.LxUser, error) {
	user, err := s.repo.GetByName(ctx, name)
	if s.metrics != nil {
		s.metrics.RecordLookup("lx_user", err == nil)
	}
	return user, err
}

func (s *LxUserService) List(ctx context.Context, filter ports.ListFilter) ([]*domain.LxUser, int, error) {
	return s.repo.List(ctx, NormalizeFilter(filter))
}

func (s *LxUserService) Delete(ctx context.Context, name string) error {
	return s.repo.Delete(ctx, name)
}
