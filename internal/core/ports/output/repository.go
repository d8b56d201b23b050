package ports

import (
	"context"

	"github.com/google/uuid"

	"lx-registry-service/internal/core/domain"
)

type ListFilter struct {
	Search string
	Limit  int
	Offset int
}

// ============================================================================
// Owned entities (natural-key managers)
// ============================================================================

type ActiveModelRepository interface {
	Create(ctx context.Context, model *domain.ActiveModel) error
	GetByName(ctx context.Context, name string) (*domain.ActiveModel, error)
	Update(ctx context.Context, model *domain.ActiveModel) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context, filter ListFilter) ([]*domain.ActiveModel, int, error)
}

type ModelMetaRepository interface {
	Create(ctx context.Context, meta *domain.ModelMeta) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ModelMeta, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type LxUserRepository interface {
	Create(ctx context.Context, user *domain.LxUser) error
	GetByName(ctx context.Context, name string) (*domain.LxUser, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context, filter ListFilter) ([]*domain.LxUser, int, error)
}

// ============================================================================
// Externally-owned entities (serialized as-is)
// ============================================================================

type CenterRepository interface {
	Create(ctx context.Context, center *domain.Center) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Center, error)
	Update(ctx context.Context, center *domain.Center) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ListFilter) ([]*domain.Center, int, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	Update(ctx context.Context, patient *domain.Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ListFilter) ([]*domain.Patient, int, error)
}

type FrameRepository interface {
	Create(ctx context.Context, frame *domain.Frame) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Frame, error)
	Update(ctx context.Context, frame *domain.Frame) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ListFilter) ([]*domain.Frame, int, error)
}

type LegacyFrameRepository interface {
	Create(ctx context.Context, frame *domain.LegacyFrame) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LegacyFrame, error)
	Update(ctx context.Context, frame *domain.LegacyFrame) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ListFilter) ([]*domain.LegacyFrame, int, error)
}

// PeriodicTaskRepository touches the scheduler's task store. DeleteAll is an
// unfiltered wipe and returns the number of removed rows.
type PeriodicTaskRepository interface {
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}
