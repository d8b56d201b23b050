package services

import (
	"context"

	"github.com/google/uuid"

	"lx-registry-service/internal/core/domain"
	"lx-registry-service/internal/core/ports/output"
)

type PatientService struct {
	repo       ports.PatientRepository
	centerRepo ports.CenterRepository
}

func NewPatientService(repo ports.PatientRepository, centerRepo ports.CenterRepository) *PatientService {
	return &PatientService{repo: repo, centerRepo: centerRepo}
}

func (s *PatientService) Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	if err := s.checkCenter(ctx, patient.CenterID); err != nil {
		return nil, err
	}
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) Get(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PatientService) Replace(ctx context.Context, id uuid.UUID, patient *domain.Patient) (*domain.Patient, error) {
	if err := s.checkCenter(ctx, patient.CenterID); err != nil {
		return nil, err
	}
	patient.ID = id
	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Patient, int, error) {
	return s.repo.List(ctx, NormalizeFilter(filter))
}

func (s *PatientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *PatientService) checkCenter(ctx context.Context, centerID *uuid.UUID) error {
	if centerID == nil {
		return nil
	}
	_, err := s.centerRepo.GetByID(ctx, *centerID)
	return err
}
