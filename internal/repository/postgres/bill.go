package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/medisuite/hospital-api/internal/model"
	"github.com/medisuite/hospital-api/internal/repository"
)

type billRepository struct {
	BaseRepository
}

func NewBillRepository(db *sqlx.DB) repository.BillRepository {
	return &billRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *billRepository) Create(ctx context.Context, bill *model.Bill) error {
	query := `
		INSERT INTO bills (id, patient_id, appointment_id, amount, items, payment_status, payment_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	bill.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		bill.ID,
		bill.PatientID,
		bill.AppointmentID,
		bill.Amount,
		bill.Items,
		bill.PaymentStatus,
		bill.PaymentDate,
		bill.CreatedAt,
	)
	if err != nil {
		return r.wrap("bill", err)
	}
	return r.populate(ctx, bill)
}

func (r *billRepository) Get(ctx context.Context, id uuid.UUID) (*model.Bill, error) {
	query := `SELECT * FROM bills WHERE id = $1`
	var bill model.Bill
	if err := r.db.GetContext(ctx, &bill, query, id); err != nil {
		return nil, r.wrap("bill", err)
	}
	if err := r.populate(ctx, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) Update(ctx context.Context, bill *model.Bill) error {
	query := `
		UPDATE bills
		SET patient_id = $1, appointment_id = $2, amount = $3, items = $4,
		    payment_status = $5, payment_date = $6
		WHERE id = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		bill.PatientID,
		bill.AppointmentID,
		bill.Amount,
		bill.Items,
		bill.PaymentStatus,
		bill.PaymentDate,
		bill.ID,
	)
	if err := r.affected("bill", res, err); err != nil {
		return err
	}
	return r.populate(ctx, bill)
}

func (r *billRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bills WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	return r.affected("bill", res, err)
}

func (r *billRepository) List(ctx context.Context) ([]*model.Bill, error) {
	query := `SELECT * FROM bills ORDER BY created_at DESC`
	var bills []*model.Bill
	if err := r.db.SelectContext(ctx, &bills, query); err != nil {
		return nil, r.wrap("bill", err)
	}

	patientIDs := make([]uuid.UUID, 0, len(bills))
	appointmentIDs := make([]uuid.UUID, 0, len(bills))
	for _, b := range bills {
		patientIDs = append(patientIDs, b.PatientID)
		if b.AppointmentID != nil {
			appointmentIDs = append(appointmentIDs, *b.AppointmentID)
		}
	}

	patientRefs, err := r.resolvePatientRefs(ctx, patientIDs)
	if err != nil {
		return nil, err
	}
	appointmentRefs, err := r.resolveAppointmentRefs(ctx, appointmentIDs)
	if err != nil {
		return nil, err
	}

	for _, b := range bills {
		b.Patient = billPatientRef(patientRefs[b.PatientID])
		if b.AppointmentID != nil {
			b.Appointment = appointmentRefs[*b.AppointmentID]
		}
	}
	return bills, nil
}

func (r *billRepository) populate(ctx context.Context, bill *model.Bill) error {
	patientRefs, err := r.resolvePatientRefs(ctx, []uuid.UUID{bill.PatientID})
	if err != nil {
		return err
	}
	bill.Patient = billPatientRef(patientRefs[bill.PatientID])

	if bill.AppointmentID != nil {
		appointmentRefs, err := r.resolveAppointmentRefs(ctx, []uuid.UUID{*bill.AppointmentID})
		if err != nil {
			return err
		}
		bill.Appointment = appointmentRefs[*bill.AppointmentID]
	}
	return nil
}

// billPatientRef narrows the shared patient projection to the
// {name, phone} shape bills expose.
func billPatientRef(ref *model.PatientRef) *model.PatientRef {
	if ref == nil {
		return nil
	}
	return &model.PatientRef{Name: ref.Name, Phone: ref.Phone}
}
