package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table. DoctorID is the creating doctor and
// never changes; CaretakerID is set by assignment and may be nil.
type Patient struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	Age           int        `db:"age" json:"age"`
	Gender        string     `db:"gender" json:"gender"`
	Diagnosis     *string    `db:"diagnosis" json:"diagnosis"`
	AdmissionDate time.Time  `db:"admission_date" json:"admissionDate"`
	Status        string     `db:"status" json:"status"`
	DoctorID      uuid.UUID  `db:"doctor_id" json:"-"`
	CaretakerID   *uuid.UUID `db:"caretaker_id" json:"-"`
}

// VitalsReading is one append-only measurement row. All measurement fields
// are optional; a reading may carry any subset.
type VitalsReading struct {
	ID            uuid.UUID `db:"id" json:"id"`
	PatientID     uuid.UUID `db:"patient_id" json:"-"`
	HeartRate     *int      `db:"heart_rate" json:"heartRate"`
	BloodPressure *string   `db:"blood_pressure" json:"bloodPressure"`
	Temperature   *float64  `db:"temperature" json:"temperature"`
	OxygenLevel   *int      `db:"oxygen_level" json:"oxygenLevel"`
	RecordedAt    time.Time `db:"recorded_at" json:"recordedAt"`
}

// Detail is a patient together with its vitals history, most recent first.
type Detail struct {
	Patient
	Vitals []VitalsReading `json:"vitals"`
}
