package services

import (
	"context"

	"github.com/google/uuid"

	"lx-registry-service/internal/core/domain"
	"lx-registry-service/internal/core/ports/output"
)

// ============================================================================
// Frames
// ============================================================================

type FrameService struct {
	repo ports.FrameRepository
}

func NewFrameService(repo ports.FrameRepository) *FrameService {
	return &FrameService{repo: repo}
}

func (s *FrameService) Create(ctx context.Context, frame *domain.Frame) (*domain.Frame, error) {
	if frame.ID == uuid.Nil {
		frame.ID = uuid.New()
	}
	if err := s.repo.Create(ctx, frame); err != nil {
		return nil, err
	}
	return frame, nil
}

func (s *FrameService) Get(ctx context.Context, id uuid.UUID) (*domain.Frame, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FrameService) Replace(ctx context.Context, id uuid.UUID, frame *domain.Frame) (*domain.Frame, error) {
	frame.ID = id
	if err := s.repo.Update(ctx, frame); err != nil {
		return nil, err
	}
	return frame, nil
}

func (s *FrameService) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Frame, int, error) {
	return s.repo.List(ctx, NormalizeFilter(filter))
}

func (s *FrameService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// ============================================================================
// Legacy Frames
// ============================================================================

type LegacyFrameService struct {
	repo ports.LegacyFrameRepository
}

func NewLegacyFrameService(repo ports.LegacyFrameRepository) *LegacyFrameService {
	return &LegacyFrameService{repo: repo}
}

func (s *LegacyFrameService) Create(ctx context.Context, frame *domain.LegacyFrame) (*domain.LegacyFrame, error) {
	if frame.ID == uuid.Nil {
		frame.ID = uuid.New()
	}
	if err := s.repo.Create(ctx, frame); err != nil {
		return nil, err
	}
	return frame, nil
}

func (s *LegacyFrameService) Get(ctx context.Context, id uuid.UUID) (*domain.LegacyFrame, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LegacyFrameService) Replace(ctx context.Context, id uuid.UUID, frame *domain.LegacyFrame) (*domain.LegacyFrame, error) {
	frame.ID = id
	if err := s.repo.Update(ctx, frame); err != nil {
		return nil, err
	}
	return frame, nil
}

func (s *LegacyFrameService) List(ctx context.Context, filter ports.ListFilter) ([]*domain.LegacyFrame, int, error) {
	return s.repo.List(ctx, NormalizeFilter(filter))
}

func (s *LegacyFrameService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
