package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/medisuite/hospital-api/internal/model"
)

// Read-time reference resolution. Each lookup fetches only the fixed
// projection columns for a batch of ids; ids that resolve to nothing
// are simply absent from the returned map, so dangling references come
// back empty instead of failing the read.

type doctorRefRow struct {
	ID             uuid.UUID `db:"id"`
	Name           string    `db:"name"`
	Specialization string    `db:"specialization"`
}

func (r *BaseRepository) resolveDoctorRefs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*model.DoctorRef, error) {
	refs := make(map[uuid.UUID]*model.DoctorRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}

	var rows []doctorRefRow
	query := `SELECT id, name, specialization FROM doctors WHERE id = ANY($1)`
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(idStrings(ids))); err != nil {
		return nil, r.wrap("doctor reference", err)
	}

	for _, row := range rows {
		refs[row.ID] = &model.DoctorRef{Name: row.Name, Specialization: row.Specialization}
	}
	return refs, nil
}

type patientRefRow struct {
	ID    uuid.UUID `db:"id"`
	Name  string    `db:"name"`
	Age   int       `db:"age"`
	Phone string    `db:"phone"`
}

// resolvePatientRefs returns the appointment-shaped projection
// {name, age, phone}. Callers that expose the narrower bill projection
// drop the age afterwards.
func (r *BaseRepository) resolvePatientRefs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*model.PatientRef, error) {
	refs := make(map[uuid.UUID]*model.PatientRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}

	var rows []patientRefRow
	query := `SELECT id, name, age, phone FROM patients WHERE id = ANY($1)`
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(idStrings(ids))); err != nil {
		return nil, r.wrap("patient reference", err)
	}

	for _, row := range rows {
		refs[row.ID] = &model.PatientRef{Name: row.Name, Age: row.Age, Phone: row.Phone}
	}
	return refs, nil
}

type appointmentRefRow struct {
	ID   uuid.UUID  `db:"id"`
	Date model.Date `db:"date"`
	Time string     `db:"time"`
}

func (r *BaseRepository) resolveAppointmentRefs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*model.AppointmentRef, error) {
	refs := make(map[uuid.UUID]*model.AppointmentRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}

	var rows []appointmentRefRow
	query := `SELECT id, date, "time" FROM appointments WHERE id = ANY($1)`
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(idStrings(ids))); err != nil {
		return nil, r.wrap("appointment reference", err)
	}

	for _, row := range rows {
		refs[row.ID] = &model.AppointmentRef{Date: row.Date, Time: row.Time}
	}
	return refs, nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id.String())
	}
	return out
}
