package identity

import (
	"time"

	"github.com/google/uuid"
)

// User maps to the users table. Users are immutable after creation; the role
// is fixed at signup and there is no secret rotation.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FirstName    string    `db:"first_name" json:"firstName"`
	LastName     string    `db:"last_name" json:"lastName"`
	UserType     string    `db:"role" json:"userType"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
}
