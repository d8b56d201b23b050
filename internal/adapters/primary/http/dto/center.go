package dto

import (
	"github.com/google/uuid"

	"lx-registry-service/internal/core/domain"
)

// CenterDTO exposes every Center field. Binding tags mirror the table
// constraints.
type CenterDTO struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name" binding:"required,max=255"`
	NameDe string    `json:"name_de" binding:"max=255"`
	NameEn string    `json:"name_en" binding:"max=255"`
}

type CenterSerializer struct{}

func (CenterSerializer) Serialize(c *domain.Center) CenterDTO {
	return CenterDTO{
		ID:     c.ID,
		Name:   c.Name,
		NameDe: c.NameDe,
		NameEn: c.NameEn,
	}
}

func (CenterSerializer) Deserialize(d CenterDTO) (*domain.Center, error) {
	return &domain.Center{
		ID:     d.ID,
		Name:   d.Name,
		NameDe: d.NameDe,
		NameEn: d.NameEn,
	}, nil
}
