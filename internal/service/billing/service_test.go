package billing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medisuite/hospital-api/internal/config"
	"github.com/medisuite/hospital-api/internal/email"
	"github.com/medisuite/hospital-api/internal/model"
	apperrors "github.com/medisuite/hospital-api/pkg/errors"
)

// fakeBillRepo keeps bills in memory and hands out copies so tests can
// assert that unspecified fields survive an update untouched.
type fakeBillRepo struct {
	bills map[uuid.UUID]model.Bill
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[uuid.UUID]model.Bill)}
}

func (r *fakeBillRepo) Create(_ context.Context, bill *model.Bill) error {
	bill.CreatedAt = time.Now()
	r.bills[bill.ID] = copyBill(*bill)
	return nil
}

func (r *fakeBillRepo) Get(_ context.Context, id uuid.UUID) (*model.Bill, error) {
	bill, ok := r.bills[id]
	if !ok {
		return nil, apperrors.NotFound("bill", nil)
	}
	out := copyBill(bill)
	return &out, nil
}

func (r *fakeBillRepo) Update(_ context.Context, bill *model.Bill) error {
	if _, ok := r.bills[bill.ID]; !ok {
		return apperrors.NotFound("bill", nil)
	}
	r.bills[bill.ID] = copyBill(*bill)
	return nil
}

func (r *fakeBillRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.bills[id]; !ok {
		return apperrors.NotFound("bill", nil)
	}
	delete(r.bills, id)
	return nil
}

func (r *fakeBillRepo) List(_ context.Context) ([]*model.Bill, error) {
	out := make([]*model.Bill, 0, len(r.bills))
	for _, bill := range r.bills {
		b := copyBill(bill)
		out = append(out, &b)
	}
	return out, nil
}

func copyBill(b model.Bill) model.Bill {
	items := make(model.BillItems, len(b.Items))
	copy(items, b.Items)
	b.Items = items
	return b
}

type fakePatientRepo struct {
	patients map[uuid.UUID]model.Patient
}

func (r *fakePatientRepo) Create(_ context.Context, p *model.Patient) error { return nil }
func (r *fakePatientRepo) Update(_ context.Context, p *model.Patient) error { return nil }
func (r *fakePatientRepo) Delete(_ context.Context, id uuid.UUID) error     { return nil }
func (r *fakePatientRepo) List(_ context.Context) ([]*model.Patient, error) { return nil, nil }
func (r *fakePatientRepo) Count(_ context.Context) (int64, error)           { return 0, nil }

func (r *fakePatientRepo) Get(_ context.Context, id uuid.UUID) (*model.Patient, error) {
	if p, ok := r.patients[id]; ok {
		return &p, nil
	}
	return nil, apperrors.NotFound("patient", nil)
}

func newService() (*Service, *fakeBillRepo) {
	repo := newFakeBillRepo()
	patients := &fakePatientRepo{patients: make(map[uuid.UUID]model.Patient)}
	mailer := email.NewService(config.SMTPConfig{})
	return NewService(repo, patients, mailer, nil), repo
}

func TestCreateBillFiltersItemsAndComputesAmount(t *testing.T) {
	svc, _ := newService()
	patientID := uuid.New()

	bill, err := svc.CreateBill(context.Background(), &model.CreateBillRequest{
		Patient: &patientID,
		Items: []model.BillItemInput{
			{Description: "Consult", Quantity: 1.0, Price: 100.0},
			{Description: "", Quantity: 1.0, Price: 50.0},
			{Description: "  ", Quantity: 2.0, Price: 25.0},
			{Description: "Free sample", Quantity: 0.0, Price: 10.0},
			{Description: "Refund", Quantity: 1.0, Price: -5.0},
		},
	})
	require.NoError(t, err)

	require.Len(t, bill.Items, 1)
	assert.Equal(t, "Consult", bill.Items[0].Description)
	assert.Equal(t, 100.0, bill.Amount)
	assert.Equal(t, model.PaymentStatusPending, bill.PaymentStatus)
	assert.Nil(t, bill.PaymentDate)
}

func TestCreateBillCoercesNonNumericValues(t *testing.T) {
	svc, _ := newService()
	patientID := uuid.New()

	bill, err := svc.CreateBill(context.Background(), &model.CreateBillRequest{
		Patient: &patientID,
		Items: []model.BillItemInput{
			{Description: "X-ray", Quantity: "2", Price: 75.0},
			{Description: "Junk", Quantity: "not a number", Price: 10.0},
		},
	})
	require.NoError(t, err)

	require.Len(t, bill.Items, 1)
	assert.Equal(t, 150.0, bill.Amount)
}

func TestCreateBillRequiresPatient(t *testing.T) {
	svc, _ := newService()

	_, err := svc.CreateBill(context.Background(), &model.CreateBillRequest{
		Items: []model.BillItemInput{{Description: "Consult", Quantity: 1.0, Price: 100.0}},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateBillRejectsWhenNoItemSurvives(t *testing.T) {
	svc, _ := newService()
	patientID := uuid.New()

	_, err := svc.CreateBill(context.Background(), &model.CreateBillRequest{
		Patient: &patientID,
		Items: []model.BillItemInput{
			{Description: "", Quantity: 1.0, Price: 50.0},
			{Description: "Nothing", Quantity: 0.0, Price: 50.0},
		},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateBillPaidSetsPaymentDate(t *testing.T) {
	svc, _ := newService()
	patientID := uuid.New()

	bill, err := svc.CreateBill(context.Background(), &model.CreateBillRequest{
		Patient:       &patientID,
		Items:         []model.BillItemInput{{Description: "Consult", Quantity: 1.0, Price: 100.0}},
		PaymentStatus: model.PaymentStatusPaid,
	})
	require.NoError(t, err)
	require.NotNil(t, bill.PaymentDate)
	assert.WithinDuration(t, time.Now(), *bill.PaymentDate, 2*time.Second)
}

func TestCreateBillExplicitPaymentDateWins(t *testing.T) {
	svc, _ := newService()
	patientID := uuid.New()

	bill, err := svc.CreateBill(context.Background(), &model.CreateBillRequest{
		Patient:       &patientID,
		Items:         []model.BillItemInput{{Description: "Consult", Quantity: 1.0, Price: 100.0}},
		PaymentStatus: model.PaymentStatusPaid,
		PaymentDate:   "2024-06-01",
	})
	require.NoError(t, err)
	require.NotNil(t, bill.PaymentDate)
	assert.Equal(t, 2024, bill.PaymentDate.Year())
	assert.Equal(t, time.June, bill.PaymentDate.Month())
}

func TestUpdateBillPartialMergeLeavesOtherFieldsUntouched(t *testing.T) {
	svc, repo := newService()
	patientID := uuid.New()

	created, err := svc.CreateBill(context.Background(), &model.CreateBillRequest{
		Patient: &patientID,
		Items:   []model.BillItemInput{{Description: "Consult", Quantity: 1.0, Price: 100.0}},
	})
	require.NoError(t, err)

	paid := model.PaymentStatusPaid
	updated, err := svc.UpdateBill(context.Background(), created.ID, &model.UpdateBillRequest{
		PaymentStatus: &paid,
	})
	require.NoError(t, err)

	assert.Equal(t, model.PaymentStatusPaid, updated.PaymentStatus)
	require.NotNil(t, updated.PaymentDate)
	assert.WithinDuration(t, time.Now(), *updated.PaymentDate, 2*time.Second)
	assert.Equal(t, 100.0, updated.Amount)
	assert.Equal(t, created.Items, updated.Items)

	stored, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Items, stored.Items)
	assert.Equal(t, created.PatientID, stored.PatientID)
}

func TestUpdateBillPaidWithExplicitDate(t *testing.T) {
	svc, _ := newService()
	patientID := uuid.New()

	created, err := svc.CreateBill(context.Background(), &model.CreateBillRequest{
		Patient: &patientID,
		Items:   []model.BillItemInput{{Description: "Consult", Quantity: 1.0, Price: 100.0}},
	})
	require.NoError(t, err)

	paid := model.PaymentStatusPaid
	date := "2024-03-15"
	updated, err := svc.UpdateBill(context.Background(), created.ID, &model.UpdateBillRequest{
		PaymentStatus: &paid,
		PaymentDate:   &date,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.PaymentDate)
	assert.Equal(t, 15, updated.PaymentDate.Day())
}

func TestUpdateBillClearsPaymentDate(t *testing.T) {
	svc, _ := newService()
	patientID := uuid.New()

	created, err := svc.CreateBill(context.Background(), &model.CreateBillRequest{
		Patient:       &patientID,
		Items:         []model.BillItemInput{{Description: "Consult", Quantity: 1.0, Price: 100.0}},
		PaymentStatus: model.PaymentStatusPaid,
	})
	require.NoError(t, err)
	require.NotNil(t, created.PaymentDate)

	empty := ""
	updated, err := svc.UpdateBill(context.Background(), created.ID, &model.UpdateBillRequest{
		PaymentDate: &empty,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.PaymentDate)
}

func TestUpdateBillValidation(t *testing.T) {
	svc, _ := newService()
	patientID := uuid.New()

	created, err := svc.CreateBill(context.Background(), &model.CreateBillRequest{
		Patient: &patientID,
		Items:   []model.BillItemInput{{Description: "Consult", Quantity: 1.0, Price: 100.0}},
	})
	require.NoError(t, err)

	badAmount := 0.0
	_, err = svc.UpdateBill(context.Background(), created.ID, &model.UpdateBillRequest{Amount: &badAmount})
	assert.True(t, apperrors.IsValidation(err))

	emptyItems := []model.BillItemInput{}
	_, err = svc.UpdateBill(context.Background(), created.ID, &model.UpdateBillRequest{Items: &emptyItems})
	assert.True(t, apperrors.IsValidation(err))

	badAppointment := "not-a-uuid"
	_, err = svc.UpdateBill(context.Background(), created.ID, &model.UpdateBillRequest{Appointment: &badAppointment})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateBillAmountMayDivergeFromItems(t *testing.T) {
	svc, _ := newService()
	patientID := uuid.New()

	created, err := svc.CreateBill(context.Background(), &model.CreateBillRequest{
		Patient: &patientID,
		Items:   []model.BillItemInput{{Description: "Consult", Quantity: 1.0, Price: 100.0}},
	})
	require.NoError(t, err)

	// A direct amount update is not reconciled against the stored items.
	newAmount := 250.0
	updated, err := svc.UpdateBill(context.Background(), created.ID, &model.UpdateBillRequest{Amount: &newAmount})
	require.NoError(t, err)
	assert.Equal(t, 250.0, updated.Amount)
	assert.Equal(t, created.Items, updated.Items)
}

func TestUpdateBillClearsAppointment(t *testing.T) {
	svc, _ := newService()
	patientID := uuid.New()
	appointmentID := uuid.New()

	created, err := svc.CreateBill(context.Background(), &model.CreateBillRequest{
		Patient:     &patientID,
		Appointment: &appointmentID,
		Items:       []model.BillItemInput{{Description: "Consult", Quantity: 1.0, Price: 100.0}},
	})
	require.NoError(t, err)
	require.NotNil(t, created.AppointmentID)

	empty := ""
	updated, err := svc.UpdateBill(context.Background(), created.ID, &model.UpdateBillRequest{Appointment: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.AppointmentID)
}

func TestUpdateBillNotFound(t *testing.T) {
	svc, _ := newService()

	paid := model.PaymentStatusPaid
	_, err := svc.UpdateBill(context.Background(), uuid.New(), &model.UpdateBillRequest{PaymentStatus: &paid})
	assert.True(t, apperrors.IsNotFound(err))
}
