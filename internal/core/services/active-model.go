package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lx-registry-service/internal/core/domain"
	"lx-registry-service/internal/core/ports/output"
)

// ActiveModelService is the natural-key manager for active models.
type ActiveModelService struct {
	repo     ports.ActiveModelRepository
	metaRepo ports.ModelMetaRepository
	metrics  ports.MetricsRecorder
}

func NewActiveModelService(repo ports.ActiveModelRepository, metaRepo ports.ModelMetaRepository, metrics ports.MetricsRecorder) *ActiveModelService {
	return &ActiveModelService{repo: repo, metaRepo: metaRepo, metrics: metrics}
}

func (s *ActiveModelService) Create(ctx context.Context, name string, modelMetaID *uuid.UUID) (*domain.ActiveModel, error) {
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if modelMetaID != nil {
		if _, err := s.metaRepo.GetByID(ctx, *modelMetaID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	model := &domain.ActiveModel{
		ID:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        name,
		ModelMetaID: modelMetaID,
	}

	if err := s.repo.Create(ctx, model); err != nil {
		return nil, err
	}
	return model, nil
}

// GetByName returns the active model whose name matches exactly.
func (s *ActiveModelService) GetByName(ctx context.Context, name string) (*domain.ActiveModel, error) {
	model, err := s.repo.GetByName(ctx, name)
	s.recordLookup(err)
	return model, err
}

// Activate points the named active model at another ModelMeta, or clears the
// link when modelMetaID is nil.
func (s *ActiveModelService) Activate(ctx context.Context, name string, modelMetaID *uuid.UUID) (*domain.ActiveModel, error) {
	model, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if modelMetaID != nil {
		if _, err := s.metaRepo.GetByID(ctx, *modelMetaID); err != nil {
			return nil, err
		}
	}

	model.ModelMetaID = modelMetaID
	model.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, model); err != nil {
		return nil, err
	}
	return model, nil
}

func (s *ActiveModelService) List(ctx context.Context, filter ports.ListFilter) ([]*domain.ActiveModel, int, error) {
	return s.repo.List(ctx, NormalizeFilter(filter))
}

func (s *ActiveModelService) Delete(ctx context.Context, name string) error {
	return s.repo.Delete(ctx, name)
}

func (s *ActiveModelService) recordLookup(err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordLookup("active_model", err == nil)
}
