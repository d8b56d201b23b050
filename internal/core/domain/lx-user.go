package domain

import (
	"time"

	"github.com/google/uuid"
)

// LxUser is a named platform user. Only name and description are defined so far.
type LxUser struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

func (u *LxUser) NaturalKey() string {
	return u.Name
}
