package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lx-registry-service/internal/core/domain"
	"lx-registry-service/internal/testutil"
)

func TestFrameService_Create_KeepsProvidedID(t *testing.T) {
	repo := new(testutil.MockFrameRepo)
	svc := NewFrameService(repo)

	id := uuid.New()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Frame")).Return(nil)

	frame, err := svc.Create(context.Background(), &domain.Frame{ID: id, FrameNumber: 7})
	require.NoError(t, err)
	assert.Equal(t, id, frame.ID)
}

func TestFrameService_Create_Conflict(t *testing.T) {
	repo := new(testutil.MockFrameRepo)
	svc := NewFrameService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Frame")).Return(domain.ErrFrameConflict)

	_, err := svc.Create(context.Background(), &domain.Frame{FrameNumber: 7})
	assert.ErrorIs(t, err, domain.ErrFrameConflict)
}

func TestLegacyFrameService_Create(t *testing.T) {
	repo := new(testutil.MockLegacyFrameRepo)
	svc := NewLegacyFrameService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.LegacyFrame")).Return(nil)

	frame, err := svc.Create(context.Background(), &domain.LegacyFrame{FrameNumber: 1})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, frame.ID)
}

func TestCenterService_Replace(t *testing.T) {
	repo := new(testutil.MockCenterRepo)
	svc := NewCenterService(repo)

	id := uuid.New()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Center")).Return(domain.ErrCenterNotFound)

	_, err := svc.Replace(context.Background(), id, &domain.Center{Name: "Uniklinik"})
	assert.ErrorIs(t, err, domain.ErrCenterNotFound)
}
