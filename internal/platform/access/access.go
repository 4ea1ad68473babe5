// Package access is the single place where patient-data permissions are
// decided. Handlers and services ask the Engine; none of them compare role
// strings themselves.
package access

import (
	"fmt"

	"github.com/medilive/medilive/internal/platform/apperr"
)

// Role is the closed set of user roles. It is fixed at signup; there is no
// promotion or demotion flow.
type Role int

const (
	// RoleOther covers every user type that is neither doctor nor caretaker.
	RoleOther Role = iota
	RoleDoctor
	RoleCaretaker
)

// ParseRole maps the stored/claimed user type to a Role. Unknown strings map
// to RoleOther rather than failing: the original system accepted arbitrary
// user types at signup.
func ParseRole(s string) Role {
	switch s {
	case "doctor":
		return RoleDoctor
	case "caretaker":
		return RoleCaretaker
	default:
		return RoleOther
	}
}

func (r Role) String() string {
	switch r {
	case RoleDoctor:
		return "doctor"
	case RoleCaretaker:
		return "caretaker"
	default:
		return "other"
	}
}

// Actor is the authenticated identity a request acts as, taken from verified
// token claims. Claims are the sole source of truth per request; the
// credential store is never re-queried.
type Actor struct {
	ID    string
	Email string
	Role  Role
}

// ListScope describes which patients an actor may see when listing.
type ListScope int

const (
	// ScopeOwnDoctor restricts the listing to patients owned by the actor.
	ScopeOwnDoctor ListScope = iota
	// ScopeOwnCaretaker restricts the listing to patients assigned to the actor.
	ScopeOwnCaretaker
	// ScopeAll imposes no filter. Non-doctor, non-caretaker roles get this;
	// preserved as-is from the original system.
	ScopeAll
)

// Engine evaluates every patient-data operation against the requesting
// actor. Decisions are deterministic; the first matching rule wins.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// PatientListScope returns the visibility scope for a patient listing.
func (e *Engine) PatientListScope(actor Actor) ListScope {
	switch actor.Role {
	case RoleDoctor:
		return ScopeOwnDoctor
	case RoleCaretaker:
		return ScopeOwnCaretaker
	default:
		return ScopeAll
	}
}

// CanCreatePatient permits patient creation for doctors only. Ownership of
// the new record is forced to the creator by the patient service regardless
// of anything in the request payload.
func (e *Engine) CanCreatePatient(actor Actor) error {
	if actor.Role != RoleDoctor {
		return fmt.Errorf("only doctors can create patient records: %w", apperr.ErrForbidden)
	}
	return nil
}

// CanViewPatient permits reading a patient's detail and vitals for any
// authenticated actor. There is no ownership check at this granularity.
func (e *Engine) CanViewPatient(actor Actor) error {
	return nil
}

// CanAddVitals permits appending a vitals reading for doctors only. Any
// doctor may add vitals to any patient, not just the owning doctor.
func (e *Engine) CanAddVitals(actor Actor) error {
	if actor.Role != RoleDoctor {
		return fmt.Errorf("only doctors can add vitals: %w", apperr.ErrForbidden)
	}
	return nil
}

// CanAssignCaretaker permits caretaker assignment for doctors only.
// Assignment overwrites any prior caretaker unconditionally.
func (e *Engine) CanAssignCaretaker(actor Actor) error {
	if actor.Role != RoleDoctor {
		return fmt.Errorf("only doctors can assign caretakers: %w", apperr.ErrForbidden)
	}
	return nil
}
