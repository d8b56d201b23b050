package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"lx-registry-service/internal/core/domain"
)

const dateFormat = "2006-01-02"

// PatientDTO carries every Patient column. An omitted is_real_person
// deserializes to true, the column default.
type PatientDTO struct {
	ID           uuid.UUID  `json:"id"`
	FirstName    string     `json:"first_name" binding:"required,max=255"`
	LastName     string     `json:"last_name" binding:"required,max=255"`
	Dob          *string    `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	Gender       string     `json:"gender" binding:"max=255"`
	Email        string     `json:"email" binding:"omitempty,email,max=255"`
	Phone        string     `json:"phone" binding:"max=255"`
	CenterID     *uuid.UUID `json:"center_id"`
	IsRealPerson *bool      `json:"is_real_person"`
}

type PatientSerializer struct{}

func (PatientSerializer) Serialize(p *domain.Patient) PatientDTO {
	isRealPerson := p.IsRealPerson
	d := PatientDTO{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Gender:       p.Gender,
		Email:        p.Email,
		Phone:        p.Phone,
		CenterID:     p.CenterID,
		IsRealPerson: &isRealPerson,
	}
	if p.Dob != nil {
		dob := p.Dob.Format(dateFormat)
		d.Dob = &dob
	}
	return d
}

func (PatientSerializer) Deserialize(d PatientDTO) (*domain.Patient, error) {
	p := &domain.Patient{
		ID:           d.ID,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Gender:       d.Gender,
		Email:        d.Email,
		Phone:        d.Phone,
		CenterID:     d.CenterID,
		IsRealPerson: true,
	}
	if d.IsRealPerson != nil {
		p.IsRealPerson = *d.IsRealPerson
	}
	if d.Dob != nil {
		dob, err := time.Parse(dateFormat, *d.Dob)
		if err != nil {
			return nil, fmt.Errorf("parse dob: %w", err)
		}
		p.Dob = &dob
	}
	return p, nil
}
