package dto

import (
	"time"

	"github.com/google/uuid"

	"lx-registry-service/internal/core/domain"
)

type CreateLxUserRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

type LxUserResponse struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

func ToLxUserResponse(u *domain.LxUser) LxUserResponse {
	return LxUserResponse{
		ID:          u.ID,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		Name:        u.Name,
		Description: u.Description,
	}
}
