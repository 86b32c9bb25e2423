package doctor

import (
	"context"

	"github.com/google/uuid"

	"github.com/medisuite/hospital-api/internal/model"
	"github.com/medisuite/hospital-api/internal/repository"
	apperrors "github.com/medisuite/hospital-api/pkg/errors"
)

type Service struct {
	repo repository.DoctorRepository
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	availability := req.Availability
	if availability == "" {
		availability = model.AvailabilityAvailable
	}

	experience := 0
	if req.Experience != nil {
		experience = *req.Experience
	}

	doctor := &model.Doctor{
		Base:           model.Base{ID: uuid.New()},
		Name:           req.Name,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		Email:          req.Email,
		Department:     req.Department,
		Availability:   availability,
		Experience:     experience,
	}

	if err := validateDoctor(doctor); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *Service) UpdateDoctor(ctx context.Context, id uuid.UUID, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}
	if req.Phone != nil {
		doctor.Phone = *req.Phone
	}
	if req.Email != nil {
		doctor.Email = *req.Email
	}
	if req.Department != nil {
		doctor.Department = *req.Department
	}
	if req.Availability != nil {
		doctor.Availability = *req.Availability
	}
	if req.Experience != nil {
		doctor.Experience = *req.Experience
	}

	if err := validateDoctor(doctor); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func validateDoctor(doctor *model.Doctor) error {
	if doctor.Name == "" {
		return apperrors.Validation("name is required")
	}
	if doctor.Specialization == "" {
		return apperrors.Validation("specialization is required")
	}
	if doctor.Phone == "" {
		return apperrors.Validation("phone is required")
	}
	if doctor.Email == "" {
		return apperrors.Validation("email is required")
	}
	if doctor.Department == "" {
		return apperrors.Validation("department is required")
	}
	if !doctor.Availability.Valid() {
		return apperrors.Validation("invalid availability")
	}
	return nil
}
