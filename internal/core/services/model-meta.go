package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lx-registry-service/internal/core/domain"
	"lx-registry-service/internal/core/ports/output"
)

type ModelMetaService struct {
	repo ports.ModelMetaRepository
}

func NewModelMetaService(repo ports.ModelMetaRepository) *ModelMetaService {
	return &ModelMetaService{repo: repo}
}

func (s *ModelMetaService) Create(ctx context.Context, name, version, description string) (*domain.ModelMeta, error) {
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	meta := &domain.ModelMeta{
		ID:          uuid.New(),
		CreatedAt:   time.Now().UTC(),
		Name:        name,
		Version:     version,
		Description: description,
	}
	if err := s.repo.Create(ctx, meta); err != nil {
		return nil, err
	}
	return meta, nil
}

func (s *ModelMetaService) Get(ctx context.Context, id uuid.UUID) (*domain.ModelMeta, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes the ModelMeta. Active models that pointed at it keep
// existing with a null link; the storage layer enforces that.
func (s *ModelMetaService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
