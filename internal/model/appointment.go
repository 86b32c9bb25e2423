package model

import (
	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled   AppointmentStatus = "Scheduled"
	AppointmentStatusCompleted   AppointmentStatus = "Completed"
	AppointmentStatusCancelled   AppointmentStatus = "Cancelled"
	AppointmentStatusRescheduled AppointmentStatus = "Rescheduled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted,
		AppointmentStatusCancelled, AppointmentStatusRescheduled:
		return true
	}
	return false
}

// AppointmentRef is the summary projection substituted for an
// appointment reference on bill reads.
type AppointmentRef struct {
	Date Date   `json:"date"`
	Time string `json:"time"`
}

type Appointment struct {
	Base
	PatientID uuid.UUID         `db:"patient_id" json:"-"`
	DoctorID  uuid.UUID         `db:"doctor_id" json:"-"`
	Date      Date              `db:"date" json:"date"`
	Time      string            `db:"time" json:"time"`
	Status    AppointmentStatus `db:"status" json:"status"`
	Notes     string            `db:"notes" json:"notes,omitempty"`

	// Resolved at read time; nil when the reference dangles.
	Patient *PatientRef `db:"-" json:"patient,omitempty"`
	Doctor  *DoctorRef  `db:"-" json:"doctor,omitempty"`
}

type CreateAppointmentRequest struct {
	Patient uuid.UUID         `json:"patient" binding:"required"`
	Doctor  uuid.UUID         `json:"doctor" binding:"required"`
	Date    Date              `json:"date" binding:"required"`
	Time    string            `json:"time" binding:"required"`
	Status  AppointmentStatus `json:"status" binding:"omitempty,enum"`
	Notes   string            `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Patient *uuid.UUID         `json:"patient"`
	Doctor  *uuid.UUID         `json:"doctor"`
	Date    *Date              `json:"date"`
	Time    *string            `json:"time"`
	Status  *AppointmentStatus `json:"status" binding:"omitempty,enum"`
	Notes   *string            `json:"notes"`
}
