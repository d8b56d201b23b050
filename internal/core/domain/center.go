package domain

import "github.com/google/uuid"

// Center is a clinical center. Its shape is owned by the clinical data module;
// this service only stores and re-exposes it.
type Center struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	NameDe string    `json:"name_de"`
	NameEn string    `json:"name_en"`
}
