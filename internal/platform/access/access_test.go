package access

import (
	"errors"
	"testing"

	"github.com/medilive/medilive/internal/platform/apperr"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"doctor", RoleDoctor},
		{"caretaker", RoleCaretaker},
		{"admin", RoleOther},
		{"nurse", RoleOther},
		{"", RoleOther},
		{"Doctor", RoleOther}, // role strings are case-sensitive
	}
	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoleString_RoundTrip(t *testing.T) {
	for _, r := range []Role{RoleDoctor, RoleCaretaker, RoleOther} {
		if got := ParseRole(r.String()); got != r {
			t.Errorf("ParseRole(%q) = %v, want %v", r.String(), got, r)
		}
	}
}

func TestPatientListScope(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		role Role
		want ListScope
	}{
		{RoleDoctor, ScopeOwnDoctor},
		{RoleCaretaker, ScopeOwnCaretaker},
		{RoleOther, ScopeAll},
	}
	for _, tt := range tests {
		got := e.PatientListScope(Actor{ID: "u1", Role: tt.role})
		if got != tt.want {
			t.Errorf("PatientListScope(%v) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestCanCreatePatient(t *testing.T) {
	e := NewEngine()

	if err := e.CanCreatePatient(Actor{Role: RoleDoctor}); err != nil {
		t.Errorf("doctor should create patients: %v", err)
	}
	for _, role := range []Role{RoleCaretaker, RoleOther} {
		err := e.CanCreatePatient(Actor{Role: role})
		if !errors.Is(err, apperr.ErrForbidden) {
			t.Errorf("CanCreatePatient(%v) = %v, want ErrForbidden", role, err)
		}
	}
}

func TestCanViewPatient_AnyAuthenticatedRole(t *testing.T) {
	e := NewEngine()
	for _, role := range []Role{RoleDoctor, RoleCaretaker, RoleOther} {
		if err := e.CanViewPatient(Actor{Role: role}); err != nil {
			t.Errorf("CanViewPatient(%v) = %v, want nil", role, err)
		}
	}
}

func TestCanAddVitals(t *testing.T) {
	e := NewEngine()

	if err := e.CanAddVitals(Actor{Role: RoleDoctor}); err != nil {
		t.Errorf("doctor should add vitals: %v", err)
	}
	for _, role := range []Role{RoleCaretaker, RoleOther} {
		err := e.CanAddVitals(Actor{Role: role})
		if !errors.Is(err, apperr.ErrForbidden) {
			t.Errorf("CanAddVitals(%v) = %v, want ErrForbidden", role, err)
		}
	}
}

func TestCanAssignCaretaker(t *testing.T) {
	e := NewEngine()

	if err := e.CanAssignCaretaker(Actor{Role: RoleDoctor}); err != nil {
		t.Errorf("doctor should assign caretakers: %v", err)
	}
	for _, role := range []Role{RoleCaretaker, RoleOther} {
		err := e.CanAssignCaretaker(Actor{Role: role})
		if !errors.Is(err, apperr.ErrForbidden) {
			t.Errorf("CanAssignCaretaker(%v) = %v, want ErrForbidden", role, err)
		}
	}
}
