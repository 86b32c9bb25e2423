package report

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medisuite/hospital-api/internal/model"
)

type countRepo struct{ count int64 }

func (r *countRepo) Count(_ context.Context) (int64, error) { return r.count, nil }

type fakePatients struct{ countRepo }

func (r *fakePatients) Create(context.Context, *model.Patient) error { return nil }
func (r *fakePatients) Get(context.Context, uuid.UUID) (*model.Patient, error) {
	return nil, nil
}
func (r *fakePatients) Update(context.Context, *model.Patient) error { return nil }
func (r *fakePatients) Delete(context.Context, uuid.UUID) error      { return nil }
func (r *fakePatients) List(context.Context) ([]*model.Patient, error) {
	return nil, nil
}

type fakeDoctors struct{ countRepo }

func (r *fakeDoctors) Create(context.Context, *model.Doctor) error { return nil }
func (r *fakeDoctors) Get(context.Context, uuid.UUID) (*model.Doctor, error) {
	return nil, nil
}
func (r *fakeDoctors) Update(context.Context, *model.Doctor) error { return nil }
func (r *fakeDoctors) Delete(context.Context, uuid.UUID) error     { return nil }
func (r *fakeDoctors) List(context.Context) ([]*model.Doctor, error) {
	return nil, nil
}

type fakeAppointments struct{ countRepo }

func (r *fakeAppointments) Create(context.Context, *model.Appointment) error { return nil }
func (r *fakeAppointments) Get(context.Context, uuid.UUID) (*model.Appointment, error) {
	return nil, nil
}
func (r *fakeAppointments) Update(context.Context, *model.Appointment) error { return nil }
func (r *fakeAppointments) Delete(context.Context, uuid.UUID) error          { return nil }
func (r *fakeAppointments) List(context.Context) ([]*model.Appointment, error) {
	return nil, nil
}

type fakeBills struct{ bills []*model.Bill }

func (r *fakeBills) Create(context.Context, *model.Bill) error { return nil }
func (r *fakeBills) Get(context.Context, uuid.UUID) (*model.Bill, error) {
	return nil, nil
}
func (r *fakeBills) Update(context.Context, *model.Bill) error { return nil }
func (r *fakeBills) Delete(context.Context, uuid.UUID) error   { return nil }
func (r *fakeBills) List(context.Context) ([]*model.Bill, error) {
	return r.bills, nil
}

func bill(amount float64, status model.PaymentStatus) *model.Bill {
	return &model.Bill{
		Base:          model.Base{ID: uuid.New()},
		Amount:        amount,
		PaymentStatus: status,
	}
}

func TestComputeStatsSumsOnlyPaidBills(t *testing.T) {
	svc := NewService(
		&fakePatients{countRepo{count: 12}},
		&fakeDoctors{countRepo{count: 4}},
		&fakeAppointments{countRepo{count: 30}},
		&fakeBills{bills: []*model.Bill{
			bill(100, model.PaymentStatusPaid),
			bill(250, model.PaymentStatusPaid),
			bill(999, model.PaymentStatusPending),
			bill(500, model.PaymentStatusPartial),
		}},
	)

	stats, err := svc.ComputeStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), stats.TotalPatients)
	assert.Equal(t, int64(4), stats.TotalDoctors)
	assert.Equal(t, int64(30), stats.TotalAppointments)
	// Partial bills count as unpaid; nothing of their amount is revenue.
	assert.Equal(t, 350.0, stats.TotalRevenue)
}

func TestComputeStatsEmpty(t *testing.T) {
	svc := NewService(&fakePatients{}, &fakeDoctors{}, &fakeAppointments{}, &fakeBills{})

	stats, err := svc.ComputeStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.TotalPatients)
}
