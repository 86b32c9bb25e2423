package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/medisuite/hospital-api/internal/model"
	"github.com/medisuite/hospital-api/internal/repository"
)

type appointmentRepository struct {
	BaseRepository
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (id, patient_id, doctor_id, date, "time", status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	appointment.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.Date,
		appointment.Time,
		appointment.Status,
		appointment.Notes,
		appointment.CreatedAt,
	)
	if err != nil {
		return r.wrap("appointment", err)
	}
	return r.populate(ctx, appointment)
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `SELECT * FROM appointments WHERE id = $1`
	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, query, id); err != nil {
		return nil, r.wrap("appointment", err)
	}
	if err := r.populate(ctx, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	query := `
		UPDATE appointments
		SET patient_id = $1, doctor_id = $2, date = $3, "time" = $4, status = $5, notes = $6
		WHERE id = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.Date,
		appointment.Time,
		appointment.Status,
		appointment.Notes,
		appointment.ID,
	)
	if err := r.affected("appointment", res, err); err != nil {
		return err
	}
	return r.populate(ctx, appointment)
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM appointments WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	return r.affected("appointment", res, err)
}

func (r *appointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	query := `SELECT * FROM appointments ORDER BY date DESC`
	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query); err != nil {
		return nil, r.wrap("appointment", err)
	}

	patientIDs := make([]uuid.UUID, 0, len(appointments))
	doctorIDs := make([]uuid.UUID, 0, len(appointments))
	for _, a := range appointments {
		patientIDs = append(patientIDs, a.PatientID)
		doctorIDs = append(doctorIDs, a.DoctorID)
	}

	patientRefs, err := r.resolvePatientRefs(ctx, patientIDs)
	if err != nil {
		return nil, err
	}
	doctorRefs, err := r.resolveDoctorRefs(ctx, doctorIDs)
	if err != nil {
		return nil, err
	}

	for _, a := range appointments {
		a.Patient = patientRefs[a.PatientID]
		a.Doctor = doctorRefs[a.DoctorID]
	}
	return appointments, nil
}

func (r *appointmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM appointments`); err != nil {
		return 0, r.wrap("appointment", err)
	}
	return count, nil
}

func (r *appointmentRepository) populate(ctx context.Context, appointment *model.Appointment) error {
	patientRefs, err := r.resolvePatientRefs(ctx, []uuid.UUID{appointment.PatientID})
	if err != nil {
		return err
	}
	doctorRefs, err := r.resolveDoctorRefs(ctx, []uuid.UUID{appointment.DoctorID})
	if err != nil {
		return err
	}
	appointment.Patient = patientRefs[appointment.PatientID]
	appointment.Doctor = doctorRefs[appointment.DoctorID]
	return nil
}
