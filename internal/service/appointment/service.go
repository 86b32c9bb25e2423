package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/medisuite/hospital-api/internal/model"
	"github.com/medisuite/hospital-api/internal/repository"
	apperrors "github.com/medisuite/hospital-api/pkg/errors"
)

type Service struct {
	repo     repository.AppointmentRepository
	patients repository.PatientRepository
	doctors  repository.DoctorRepository
}

func NewService(repo repository.AppointmentRepository, patients repository.PatientRepository, doctors repository.DoctorRepository) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		doctors:  doctors,
	}
}

func (s *Service) ListAppointments(ctx context.Context) ([]*model.Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	status := req.Status
	if status == "" {
		status = model.AppointmentStatusScheduled
	}
	if !status.Valid() {
		return nil, apperrors.Validation("invalid appointment status")
	}

	// Both references are expected to resolve at creation time; the
	// storage layer does not enforce this.
	if _, err := s.patients.Get(ctx, req.Patient); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Validation("patient does not exist")
		}
		return nil, err
	}
	if _, err := s.doctors.Get(ctx, req.Doctor); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Validation("doctor does not exist")
		}
		return nil, err
	}

	appointment := &model.Appointment{
		Base:      model.Base{ID: uuid.New()},
		PatientID: req.Patient,
		DoctorID:  req.Doctor,
		Date:      req.Date,
		Time:      req.Time,
		Status:    status,
		Notes:     req.Notes,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *Service) UpdateAppointment(ctx context.Context, id uuid.UUID, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Patient != nil {
		appointment.PatientID = *req.Patient
	}
	if req.Doctor != nil {
		appointment.DoctorID = *req.Doctor
	}
	if req.Date != nil {
		appointment.Date = *req.Date
	}
	if req.Time != nil {
		appointment.Time = *req.Time
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, apperrors.Validation("invalid appointment status")
		}
		appointment.Status = *req.Status
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
