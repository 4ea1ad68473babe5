package identity

import (
	"context"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByEmailAndRole looks up a user by email constrained to a role.
	// Used to resolve caretaker assignments.
	GetByEmailAndRole(ctx context.Context, email, role string) (*User, error)
}
