package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lx-registry-service/internal/core/domain"
	"lx-registry-service/internal/core/ports/output"
)

// MockActiveModelRepo is a mock of ActiveModelRepository.
type MockActiveModelRepo struct {
	mock.Mock
}

func (m *MockActiveModelRepo) Create(ctx context.Context, model *domain.ActiveModel) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockActiveModelRepo) GetByName(ctx context.Context, name string) (*domain.ActiveModel, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActiveModel), args.Error(1)
}

func (m *MockActiveModelRepo) Update(ctx context.Context, model *domain.ActiveModel) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockActiveModelRepo) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockActiveModelRepo) List(ctx context.Context, filter ports.ListFilter) ([]*domain.ActiveModel, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.ActiveModel), args.Int(1), args.Error(2)
}

// MockModelMetaRepo is a mock of ModelMetaRepository.
type MockModelMetaRepo struct {
	mock.Mock
}

func (m *MockModelMetaRepo) Create(ctx context.Context, meta *domain.ModelMeta) error {
	args := m.Called(ctx, meta)
	return args.Error(0)
}

func (m *MockModelMetaRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ModelMeta, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModelMeta), args.Error(1)
}

func (m *MockModelMetaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLxUserRepo is a mock of LxUserRepository.
type MockLxUserRepo struct {
	mock.Mock
}

func (m *MockLxUserRepo) Create(ctx context.Context, user *domain.LxUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockLxUserRepo) GetByName(ctx context.Context, name string) (*domain.LxUser, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LxUser), args.Error(1)
}

func (m *MockLxUserRepo) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockLxUserRepo) List(ctx context.Context, filter ports.ListFilter) ([]*domain.LxUser, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.LxUser), args.Int(1), args.Error(2)
}

// MockCenterRepo is a mock of CenterRepository.
type MockCenterRepo struct {
	mock.Mock
}

func (m *MockCenterRepo) Create(ctx context.Context, center *domain.Center) error {
	args := m.Called(ctx, center)
	return args.Error(0)
}

func (m *MockCenterRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Center, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Center), args.Error(1)
}

func (m *MockCenterRepo) Update(ctx context.Context, center *domain.Center) error {
	args := m.Called(ctx, center)
	return args.Error(0)
}

func (m *MockCenterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCenterRepo) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Center, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Center), args.Int(1), args.Error(2)
}

// MockPatientRepo is a mock of PatientRepository.
type MockPatientRepo struct {
	mock.Mock
}

func (m *MockPatientRepo) Create(ctx context.Context, patient *domain.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Patient), args.Error(1)
}

func (m *MockPatientRepo) Update(ctx context.Context, patient *domain.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPatientRepo) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Patient, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Patient), args.Int(1), args.Error(2)
}

// MockFrameRepo is a mock of FrameRepository.
type MockFrameRepo struct {
	mock.Mock
}

func (m *MockFrameRepo) Create(ctx context.Context, frame *domain.Frame) error {
	args := m.Called(ctx, frame)
	return args.Error(0)
}

func (m *MockFrameRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Frame, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Frame), args.Error(1)
}

func (m *MockFrameRepo) Update(ctx context.Context, frame *domain.Frame) error {
	args := m.Called(ctx, frame)
	return args.Error(0)
}

func (m *MockFrameRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFrameRepo) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Frame, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Frame), args.Int(1), args.Error(2)
}

// MockLegacyFrameRepo is a mock of LegacyFrameRepository.
type MockLegacyFrameRepo struct {
	mock.Mock
}

func (m *MockLegacyFrameRepo) Create(ctx context.Context, frame *domain.LegacyFrame) error {
	args := m.Called(ctx, frame)
	return args.Error(0)
}

func (m *MockLegacyFrameRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LegacyFrame, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LegacyFrame), args.Error(1)
}

func (m *MockLegacyFrameRepo) Update(ctx context.Context, frame *domain.LegacyFrame) error {
	args := m.Called(ctx, frame)
	return args.Error(0)
}

func (m *MockLegacyFrameRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLegacyFrameRepo) List(ctx context.Context, filter ports.ListFilter) ([]*domain.LegacyFrame, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.LegacyFrame), args.Int(1), args.Error(2)
}

// MockPeriodicTaskRepo is a mock of PeriodicTaskRepository.
type MockPeriodicTaskRepo struct {
	mock.Mock
}

func (m *MockPeriodicTaskRepo) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPeriodicTaskRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockMetricsRecorder is a mock of MetricsRecorder.
type MockMetricsRecorder struct {
	mock.Mock
}

func (m *MockMetricsRecorder) RecordPeriodicTasksPurged(count int64) {
	m.Called(count)
}

func (m *MockMetricsRecorder) RecordLookup(entity string, found bool) {
	m.Called(entity, found)
}
