package doctor

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medisuite/hospital-api/internal/model"
	apperrors "github.com/medisuite/hospital-api/pkg/errors"
)

type fakeRepo struct {
	doctors map[uuid.UUID]model.Doctor
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{doctors: make(map[uuid.UUID]model.Doctor)}
}

func (r *fakeRepo) Create(_ context.Context, d *model.Doctor) error {
	r.doctors[d.ID] = *d
	return nil
}

func (r *fakeRepo) Get(_ context.Context, id uuid.UUID) (*model.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, apperrors.NotFound("doctor", nil)
	}
	return &d, nil
}

func (r *fakeRepo) Update(_ context.Context, d *model.Doctor) error {
	if _, ok := r.doctors[d.ID]; !ok {
		return apperrors.NotFound("doctor", nil)
	}
	r.doctors[d.ID] = *d
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.doctors[id]; !ok {
		return apperrors.NotFound("doctor", nil)
	}
	delete(r.doctors, id)
	return nil
}

func (r *fakeRepo) List(_ context.Context) ([]*model.Doctor, error) {
	out := make([]*model.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		d := d
		out = append(out, &d)
	}
	return out, nil
}

func (r *fakeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.doctors)), nil
}

func validCreate() *model.CreateDoctorRequest {
	return &model.CreateDoctorRequest{
		Name:           "Dr. John Smith",
		Specialization: "Cardiology",
		Phone:          "555-0200",
		Email:          "doctor@hospital.com",
		Department:     "Cardiology",
	}
}

func TestCreateDoctorDefaultsToAvailable(t *testing.T) {
	svc := NewService(newFakeRepo())

	doctor, err := svc.CreateDoctor(context.Background(), validCreate())
	require.NoError(t, err)
	assert.Equal(t, model.AvailabilityAvailable, doctor.Availability)
	assert.Zero(t, doctor.Experience)
}

func TestCreateDoctorRejectsBadAvailability(t *testing.T) {
	svc := NewService(newFakeRepo())

	req := validCreate()
	req.Availability = "Sometimes"
	_, err := svc.CreateDoctor(context.Background(), req)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateDoctorAvailability(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created, err := svc.CreateDoctor(context.Background(), validCreate())
	require.NoError(t, err)

	onLeave := model.AvailabilityOnLeave
	updated, err := svc.UpdateDoctor(context.Background(), created.ID, &model.UpdateDoctorRequest{
		Availability: &onLeave,
	})
	require.NoError(t, err)
	assert.Equal(t, model.AvailabilityOnLeave, updated.Availability)
	assert.Equal(t, created.Name, updated.Name)
}

func TestUpdateDoctorNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())

	name := "Nobody"
	_, err := svc.UpdateDoctor(context.Background(), uuid.New(), &model.UpdateDoctorRequest{Name: &name})
	assert.True(t, apperrors.IsNotFound(err))
}
