package patient

import (
	"context"

	"github.com/google/uuid"
)

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]Patient, error)
	ListByCaretaker(ctx context.Context, caretakerID uuid.UUID, limit, offset int) ([]Patient, error)
	ListAll(ctx context.Context, limit, offset int) ([]Patient, error)
	// SetCaretaker updates the caretaker assignment, replacing any prior one.
	SetCaretaker(ctx context.Context, patientID, caretakerID uuid.UUID) error
}

type VitalsRepository interface {
	Add(ctx context.Context, v *VitalsReading) error
	// ListByPatient returns readings most recent first.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]VitalsReading, error)
}
