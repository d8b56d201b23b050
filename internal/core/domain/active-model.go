package domain

import (
	"time"

	"github.com/google/uuid"
)

// ModelMeta describes a trained model build. The active_model table points at
// one row of it at a time.
type ModelMeta struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	Description string    `json:"description"`
}

// ActiveModel binds a unique name to the ModelMeta currently in use under it.
// ModelMetaID becomes nil when the referenced ModelMeta is deleted.
type ActiveModel struct {
	ID          uuid.UUID  `json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Name        string     `json:"name"`
	ModelMetaID *uuid.UUID `json:"model_meta_id"`
}

// NaturalKey returns the name used by lookups.
func (m *ActiveModel) NaturalKey() string {
	return m.Name
}
