package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medilive/medilive/internal/platform/apperr"
	"github.com/medilive/medilive/internal/platform/db"
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type patientRepoPG struct {
	pool *pgxpool.Pool
}

func NewPatientRepo(pool *pgxpool.Pool) PatientRepository {
	return &patientRepoPG{pool: pool}
}

func (r *patientRepoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const patientCols = `id, name, age, gender, diagnosis, admission_date, status, doctor_id, caretaker_id`

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()

	// admission_date and status fall back to column defaults when unset.
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO patients (id, name, age, gender, diagnosis, status, doctor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING admission_date, status`,
		p.ID, p.Name, p.Age, p.Gender, p.Diagnosis, p.Status, p.DoctorID,
	).Scan(&p.AdmissionDate, &p.Status)
	if err != nil {
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

func (r *patientRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	row := r.conn(ctx).QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id)

	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.Age, &p.Gender, &p.Diagnosis,
		&p.AdmissionDate, &p.Status, &p.DoctorID, &p.CaretakerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("scan patient: %w", err)
	}
	return &p, nil
}

func (r *patientRepoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]Patient, error) {
	return r.list(ctx, `SELECT `+patientCols+` FROM patients
		WHERE doctor_id = $1 ORDER BY admission_date DESC LIMIT $2 OFFSET $3`,
		doctorID, limit, offset)
}

func (r *patientRepoPG) ListByCaretaker(ctx context.Context, caretakerID uuid.UUID, limit, offset int) ([]Patient, error) {
	return r.list(ctx, `SELECT `+patientCols+` FROM patients
		WHERE caretaker_id = $1 ORDER BY admission_date DESC LIMIT $2 OFFSET $3`,
		caretakerID, limit, offset)
}

func (r *patientRepoPG) ListAll(ctx context.Context, limit, offset int) ([]Patient, error) {
	return r.list(ctx, `SELECT `+patientCols+` FROM patients
		ORDER BY admission_date DESC LIMIT $1 OFFSET $2`,
		limit, offset)
}

func (r *patientRepoPG) list(ctx context.Context, query string, args ...interface{}) ([]Patient, error) {
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	patients := make([]Patient, 0)
	for rows.Next() {
		var p Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &p.Gender, &p.Diagnosis,
			&p.AdmissionDate, &p.Status, &p.DoctorID, &p.CaretakerID); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

func (r *patientRepoPG) SetCaretaker(ctx context.Context, patientID, caretakerID uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE patients SET caretaker_id = $1 WHERE id = $2`, caretakerID, patientID)
	if err != nil {
		return fmt.Errorf("assign caretaker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

type vitalsRepoPG struct {
	pool *pgxpool.Pool
}

func NewVitalsRepo(pool *pgxpool.Pool) VitalsRepository {
	return &vitalsRepoPG{pool: pool}
}

func (r *vitalsRepoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const vitalsCols = `id, patient_id, heart_rate, blood_pressure, temperature, oxygen_level, recorded_at`

func (r *vitalsRepoPG) Add(ctx context.Context, v *VitalsReading) error {
	v.ID = uuid.New()

	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO patient_vitals (id, patient_id, heart_rate, blood_pressure, temperature, oxygen_level)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING recorded_at`,
		v.ID, v.PatientID, v.HeartRate, v.BloodPressure, v.Temperature, v.OxygenLevel,
	).Scan(&v.RecordedAt)
	if err != nil {
		return fmt.Errorf("insert vitals: %w", err)
	}
	return nil
}

func (r *vitalsRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]VitalsReading, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+vitalsCols+` FROM patient_vitals
		WHERE patient_id = $1 ORDER BY recorded_at DESC`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list vitals: %w", err)
	}
	defer rows.Close()

	readings := make([]VitalsReading, 0)
	for rows.Next() {
		var v VitalsReading
		if err := rows.Scan(&v.ID, &v.PatientID, &v.HeartRate, &v.BloodPressure,
			&v.Temperature, &v.OxygenLevel, &v.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan vitals: %w", err)
		}
		readings = append(readings, v)
	}
	return readings, rows.Err()
}
