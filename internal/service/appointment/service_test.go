package appointment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medisuite/hospital-api/internal/model"
	apperrors "github.com/medisuite/hospital-api/pkg/errors"
)

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]model.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uuid.UUID]model.Appointment)}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, a *model.Appointment) error {
	r.appointments[a.ID] = *a
	return nil
}

func (r *fakeAppointmentRepo) Get(_ context.Context, id uuid.UUID) (*model.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, apperrors.NotFound("appointment", nil)
	}
	return &a, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, a *model.Appointment) error {
	if _, ok := r.appointments[a.ID]; !ok {
		return apperrors.NotFound("appointment", nil)
	}
	r.appointments[a.ID] = *a
	return nil
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.appointments[id]; !ok {
		return apperrors.NotFound("appointment", nil)
	}
	delete(r.appointments, id)
	return nil
}

func (r *fakeAppointmentRepo) List(_ context.Context) ([]*model.Appointment, error) {
	out := make([]*model.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		a := a
		out = append(out, &a)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.appointments)), nil
}

type fakePatients struct{ ids map[uuid.UUID]bool }

func (r *fakePatients) Create(context.Context, *model.Patient) error   { return nil }
func (r *fakePatients) Update(context.Context, *model.Patient) error   { return nil }
func (r *fakePatients) Delete(context.Context, uuid.UUID) error        { return nil }
func (r *fakePatients) List(context.Context) ([]*model.Patient, error) { return nil, nil }
func (r *fakePatients) Count(context.Context) (int64, error)           { return 0, nil }

func (r *fakePatients) Get(_ context.Context, id uuid.UUID) (*model.Patient, error) {
	if r.ids[id] {
		return &model.Patient{Base: model.Base{ID: id}}, nil
	}
	return nil, apperrors.NotFound("patient", nil)
}

type fakeDoctors struct{ ids map[uuid.UUID]bool }

func (r *fakeDoctors) Create(context.Context, *model.Doctor) error   { return nil }
func (r *fakeDoctors) Update(context.Context, *model.Doctor) error   { return nil }
func (r *fakeDoctors) Delete(context.Context, uuid.UUID) error       { return nil }
func (r *fakeDoctors) List(context.Context) ([]*model.Doctor, error) { return nil, nil }
func (r *fakeDoctors) Count(context.Context) (int64, error)          { return 0, nil }

func (r *fakeDoctors) Get(_ context.Context, id uuid.UUID) (*model.Doctor, error) {
	if r.ids[id] {
		return &model.Doctor{Base: model.Base{ID: id}}, nil
	}
	return nil, apperrors.NotFound("doctor", nil)
}

func newTestService() (*Service, uuid.UUID, uuid.UUID) {
	patientID := uuid.New()
	doctorID := uuid.New()
	svc := NewService(
		newFakeAppointmentRepo(),
		&fakePatients{ids: map[uuid.UUID]bool{patientID: true}},
		&fakeDoctors{ids: map[uuid.UUID]bool{doctorID: true}},
	)
	return svc, patientID, doctorID
}

func mustDate(t *testing.T, s string) model.Date {
	t.Helper()
	var d model.Date
	require.NoError(t, d.UnmarshalJSON([]byte(`"`+s+`"`)))
	return d
}

func TestCreateAppointmentDefaultsToScheduled(t *testing.T) {
	svc, patientID, doctorID := newTestService()

	appt, err := svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		Patient: patientID,
		Doctor:  doctorID,
		Date:    mustDate(t, "2026-09-01"),
		Time:    "10:30",
	})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusScheduled, appt.Status)
}

func TestCreateAppointmentRejectsUnknownPatient(t *testing.T) {
	svc, _, doctorID := newTestService()

	_, err := svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		Patient: uuid.New(),
		Doctor:  doctorID,
		Date:    mustDate(t, "2026-09-01"),
		Time:    "10:30",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "patient does not exist")
}

func TestCreateAppointmentRejectsUnknownDoctor(t *testing.T) {
	svc, patientID, _ := newTestService()

	_, err := svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		Patient: patientID,
		Doctor:  uuid.New(),
		Date:    mustDate(t, "2026-09-01"),
		Time:    "10:30",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "doctor does not exist")
}

func TestUpdateAppointmentStatus(t *testing.T) {
	svc, patientID, doctorID := newTestService()

	created, err := svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		Patient: patientID,
		Doctor:  doctorID,
		Date:    mustDate(t, "2026-09-01"),
		Time:    "10:30",
	})
	require.NoError(t, err)

	completed := model.AppointmentStatusCompleted
	updated, err := svc.UpdateAppointment(context.Background(), created.ID, &model.UpdateAppointmentRequest{
		Status: &completed,
	})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCompleted, updated.Status)
	assert.Equal(t, created.Time, updated.Time)
}

func TestUpdateAppointmentRejectsInvalidStatus(t *testing.T) {
	svc, patientID, doctorID := newTestService()

	created, err := svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		Patient: patientID,
		Doctor:  doctorID,
		Date:    mustDate(t, "2026-09-01"),
		Time:    "10:30",
	})
	require.NoError(t, err)

	bad := model.AppointmentStatus("Finished")
	_, err = svc.UpdateAppointment(context.Background(), created.ID, &model.UpdateAppointmentRequest{
		Status: &bad,
	})
	assert.True(t, apperrors.IsValidation(err))
}
