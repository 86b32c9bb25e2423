package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/medisuite/hospital-api/internal/model"
	"github.com/medisuite/hospital-api/internal/repository"
)

type patientRepository struct {
	BaseRepository
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (id, name, age, gender, phone, email, address, department, doctor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	patient.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		patient.ID,
		patient.Name,
		patient.Age,
		patient.Gender,
		patient.Phone,
		patient.Email,
		patient.Address,
		patient.Department,
		patient.DoctorID,
		patient.CreatedAt,
	)
	return r.wrap("patient", err)
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	query := `SELECT * FROM patients WHERE id = $1`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, id); err != nil {
		return nil, r.wrap("patient", err)
	}
	if err := r.populateDoctor(ctx, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE patients
		SET name = $1, age = $2, gender = $3, phone = $4, email = $5,
		    address = $6, department = $7, doctor_id = $8
		WHERE id = $9
	`
	res, err := r.db.ExecContext(ctx, query,
		patient.Name,
		patient.Age,
		patient.Gender,
		patient.Phone,
		patient.Email,
		patient.Address,
		patient.Department,
		patient.DoctorID,
		patient.ID,
	)
	return r.affected("patient", res, err)
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM patients WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	return r.affected("patient", res, err)
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `SELECT * FROM patients ORDER BY created_at DESC`
	var patients []*model.Patient
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, r.wrap("patient", err)
	}

	ids := make([]uuid.UUID, 0, len(patients))
	for _, p := range patients {
		if p.DoctorID != nil {
			ids = append(ids, *p.DoctorID)
		}
	}
	refs, err := r.resolveDoctorRefs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range patients {
		if p.DoctorID != nil {
			p.Doctor = refs[*p.DoctorID]
		}
	}
	return patients, nil
}

func (r *patientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM patients`); err != nil {
		return 0, r.wrap("patient", err)
	}
	return count, nil
}

func (r *patientRepository) populateDoctor(ctx context.Context, patient *model.Patient) error {
	if patient.DoctorID == nil {
		return nil
	}
	refs, err := r.resolveDoctorRefs(ctx, []uuid.UUID{*patient.DoctorID})
	if err != nil {
		return err
	}
	patient.Doctor = refs[*patient.DoctorID]
	return nil
}
