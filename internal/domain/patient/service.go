package patient

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/medilive/medilive/internal/domain/identity"
	"github.com/medilive/medilive/internal/platform/access"
	"github.com/medilive/medilive/internal/platform/apperr"
)

const defaultStatus = "Active"

type Service struct {
	patients PatientRepository
	vitals   VitalsRepository
	users    identity.UserRepository
	engine   *access.Engine
	inTx     identity.TxFunc
}

func NewService(patients PatientRepository, vitals VitalsRepository, users identity.UserRepository, engine *access.Engine, inTx identity.TxFunc) *Service {
	if inTx == nil {
		inTx = identity.Passthrough
	}
	return &Service{patients: patients, vitals: vitals, users: users, engine: engine, inTx: inTx}
}

// CreateInput carries the patient creation fields. The owning doctor comes
// from the actor, never from the payload.
type CreateInput struct {
	Name      string
	Age       int
	Gender    string
	Diagnosis *string
	Status    string
}

func (s *Service) Create(ctx context.Context, actor access.Actor, in CreateInput) (*Patient, error) {
	if err := s.engine.CanCreatePatient(actor); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Gender) == "" || in.Age <= 0 {
		return nil, apperr.ErrValidation
	}
	if in.Status == "" {
		in.Status = defaultStatus
	}

	doctorID, err := uuid.Parse(actor.ID)
	if err != nil {
		return nil, apperr.ErrForbidden
	}

	p := &Patient{
		Name:      in.Name,
		Age:       in.Age,
		Gender:    in.Gender,
		Diagnosis: in.Diagnosis,
		Status:    in.Status,
		DoctorID:  doctorID,
	}

	err = s.inTx(ctx, func(ctx context.Context) error {
		return s.patients.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns the patients visible to the actor: doctors see their own,
// caretakers see their assignments, every other role sees all.
func (s *Service) List(ctx context.Context, actor access.Actor, limit, offset int) ([]Patient, error) {
	switch s.engine.PatientListScope(actor) {
	case access.ScopeOwnDoctor:
		id, err := uuid.Parse(actor.ID)
		if err != nil {
			return []Patient{}, nil
		}
		return s.patients.ListByDoctor(ctx, id, limit, offset)
	case access.ScopeOwnCaretaker:
		id, err := uuid.Parse(actor.ID)
		if err != nil {
			return []Patient{}, nil
		}
		return s.patients.ListByCaretaker(ctx, id, limit, offset)
	default:
		return s.patients.ListAll(ctx, limit, offset)
	}
}

// Get returns a patient with its vitals history, most recent first.
func (s *Service) Get(ctx context.Context, actor access.Actor, patientID uuid.UUID) (*Detail, error) {
	if err := s.engine.CanViewPatient(actor); err != nil {
		return nil, err
	}

	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	readings, err := s.vitals.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return &Detail{Patient: *p, Vitals: readings}, nil
}

// VitalsInput carries one reading. Every field is optional.
type VitalsInput struct {
	HeartRate     *int
	BloodPressure *string
	Temperature   *float64
	OxygenLevel   *int
}

// AddVitals appends a reading to a patient's history. Doctors only; the
// patient must exist.
func (s *Service) AddVitals(ctx context.Context, actor access.Actor, patientID uuid.UUID, in VitalsInput) (*VitalsReading, error) {
	if err := s.engine.CanAddVitals(actor); err != nil {
		return nil, err
	}

	v := &VitalsReading{
		PatientID:     patientID,
		HeartRate:     in.HeartRate,
		BloodPressure: in.BloodPressure,
		Temperature:   in.Temperature,
		OxygenLevel:   in.OxygenLevel,
	}

	err := s.inTx(ctx, func(ctx context.Context) error {
		if _, err := s.patients.GetByID(ctx, patientID); err != nil {
			return err
		}
		return s.vitals.Add(ctx, v)
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// AssignCaretaker links a caretaker, resolved by email, to a patient.
// The email must belong to a user whose role is caretaker; anything else is
// reported as caretaker not found. A failed assignment leaves any existing
// assignment untouched.
func (s *Service) AssignCaretaker(ctx context.Context, actor access.Actor, patientID uuid.UUID, caretakerEmail string) error {
	if err := s.engine.CanAssignCaretaker(actor); err != nil {
		return err
	}
	if strings.TrimSpace(caretakerEmail) == "" {
		return apperr.ErrCaretakerNotFound
	}

	return s.inTx(ctx, func(ctx context.Context) error {
		if _, err := s.patients.GetByID(ctx, patientID); err != nil {
			return err
		}

		caretaker, err := s.users.GetByEmailAndRole(ctx, caretakerEmail, access.RoleCaretaker.String())
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.ErrCaretakerNotFound
			}
			return err
		}

		return s.patients.SetCaretaker(ctx, patientID, caretaker.ID)
	})
}
