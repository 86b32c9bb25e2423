package model

import (
	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// PatientRef is the summary projection substituted for a patient
// reference on reads. Bills carry name and phone only, so age is
// omitted when unset.
type PatientRef struct {
	Name  string `json:"name"`
	Age   int    `json:"age,omitempty"`
	Phone string `json:"phone"`
}

type Patient struct {
	Base
	Name       string     `db:"name" json:"name"`
	Age        int        `db:"age" json:"age"`
	Gender     Gender     `db:"gender" json:"gender"`
	Phone      string     `db:"phone" json:"phone"`
	Email      string     `db:"email" json:"email,omitempty"`
	Address    string     `db:"address" json:"address,omitempty"`
	Department string     `db:"department" json:"department"`
	DoctorID   *uuid.UUID `db:"doctor_id" json:"-"`

	// Doctor is resolved at read time from DoctorID; nil when the
	// reference is absent or dangling.
	Doctor *DoctorRef `db:"-" json:"doctor,omitempty"`
}

type CreatePatientRequest struct {
	Name       string     `json:"name" binding:"required"`
	Age        int        `json:"age" binding:"required"`
	Gender     Gender     `json:"gender" binding:"required,enum"`
	Phone      string     `json:"phone" binding:"required"`
	Email      string     `json:"email" binding:"omitempty,email"`
	Address    string     `json:"address"`
	Department string     `json:"department" binding:"required"`
	Doctor     *uuid.UUID `json:"doctor"`
}

type UpdatePatientRequest struct {
	Name       *string    `json:"name"`
	Age        *int       `json:"age"`
	Gender     *Gender    `json:"gender" binding:"omitempty,enum"`
	Phone      *string    `json:"phone"`
	Email      *string    `json:"email" binding:"omitempty,email"`
	Address    *string    `json:"address"`
	Department *string    `json:"department"`
	Doctor     *uuid.UUID `json:"doctor"`
}
