package dto

import (
	"time"

	"github.com/google/uuid"

	"lx-registry-service/internal/core/domain"
)

// ============================================================================
// Active Model DTOs
// ============================================================================

type CreateActiveModelRequest struct {
	Name        string     `json:"name" binding:"required,max=255"`
	ModelMetaID *uuid.UUID `json:"model_meta_id"`
}

// ActivateModelRequest rebinds an active model; a null model_meta_id detaches it.
type ActivateModelRequest struct {
	ModelMetaID *uuid.UUID `json:"model_meta_id"`
}

type ActiveModelResponse struct {
	ID          uuid.UUID  `json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Name        string     `json:"name"`
	ModelMetaID *uuid.UUID `json:"model_meta_id"`
}

func ToActiveModelResponse(m *domain.ActiveModel) ActiveModelResponse {
	return ActiveModelResponse{
		ID:          m.ID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Name:        m.Name,
		ModelMetaID: m.ModelMetaID,
	}
}

// ============================================================================
// Model Meta DTOs
// ============================================================================

type CreateModelMetaRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Version     string `json:"version" binding:"required,max=255"`
	Description string `json:"description"`
}

type ModelMetaResponse struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	Description string    `json:"description"`
}

func ToModelMetaResponse(m *domain.ModelMeta) ModelMetaResponse {
	return ModelMetaResponse{
		ID:          m.ID,
		CreatedAt:   m.CreatedAt,
		Name:        m.Name,
		Version:     m.Version,
		Description: m.Description,
	}
}
