package patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/medisuite/hospital-api/internal/model"
	"github.com/medisuite/hospital-api/internal/repository"
	apperrors "github.com/medisuite/hospital-api/pkg/errors"
)

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	patient := &model.Patient{
		Base:       model.Base{ID: uuid.New()},
		Name:       req.Name,
		Age:        req.Age,
		Gender:     req.Gender,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		Department: req.Department,
		DoctorID:   req.Doctor,
	}

	if err := validatePatient(patient); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Age != nil {
		patient.Age = *req.Age
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.Department != nil {
		patient.Department = *req.Department
	}
	if req.Doctor != nil {
		patient.DoctorID = req.Doctor
	}

	if err := validatePatient(patient); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, err
	}

	// Re-read so the response carries the resolved doctor projection.
	return s.repo.Get(ctx, id)
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// validatePatient re-checks the merged record against the same
// constraints as creation.
func validatePatient(patient *model.Patient) error {
	if patient.Name == "" {
		return apperrors.Validation("name is required")
	}
	if patient.Age <= 0 {
		return apperrors.Validation("age is required")
	}
	if !patient.Gender.Valid() {
		return apperrors.Validation("invalid gender")
	}
	if patient.Phone == "" {
		return apperrors.Validation("phone is required")
	}
	if patient.Department == "" {
		return apperrors.Validation("department is required")
	}
	return nil
}
