package model

type Availability string

const (
	AvailabilityAvailable Availability = "Available"
	AvailabilityBusy      Availability = "Busy"
	AvailabilityOnLeave   Availability = "On Leave"
)

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityOnLeave:
		return true
	}
	return false
}

// DoctorRef is the summary projection substituted for a doctor
// reference on reads.
type DoctorRef struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

type Doctor struct {
	Base
	Name           string       `db:"name" json:"name"`
	Specialization string       `db:"specialization" json:"specialization"`
	Phone          string       `db:"phone" json:"phone"`
	Email          string       `db:"email" json:"email"`
	Department     string       `db:"department" json:"department"`
	Availability   Availability `db:"availability" json:"availability"`
	Experience     int          `db:"experience" json:"experience"`
}

type CreateDoctorRequest struct {
	Name           string       `json:"name" binding:"required"`
	Specialization string       `json:"specialization" binding:"required"`
	Phone          string       `json:"phone" binding:"required"`
	Email          string       `json:"email" binding:"required,email"`
	Department     string       `json:"department" binding:"required"`
	Availability   Availability `json:"availability" binding:"omitempty,enum"`
	Experience     *int         `json:"experience"`
}

type UpdateDoctorRequest struct {
	Name           *string       `json:"name"`
	Specialization *string       `json:"specialization"`
	Phone          *string       `json:"phone"`
	Email          *string       `json:"email" binding:"omitempty,email"`
	Department     *string       `json:"department"`
	Availability   *Availability `json:"availability" binding:"omitempty,enum"`
	Experience     *int          `json:"experience"`
}
