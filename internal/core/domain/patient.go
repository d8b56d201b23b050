package domain

import (
	"time"

	"github.com/google/uuid"
)

// Patient is owned by the clinical data module.
type Patient struct {
	ID           uuid.UUID  `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Dob          *time.Time `json:"dob"`
	Gender       string     `json:"gender"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	CenterID     *uuid.UUID `json:"center_id"`
	IsRealPerson bool       `json:"is_real_person"`
}
