package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/medilive/medilive/internal/platform/apperr"
)

// TxFunc runs fn with transactional guarantees. Production wiring uses
// db.InTx; tests pass a passthrough.
type TxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

// Passthrough is a TxFunc that runs fn directly, with no transaction.
func Passthrough(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type Service struct {
	repo UserRepository
	inTx TxFunc
}

func NewService(repo UserRepository, inTx TxFunc) *Service {
	if inTx == nil {
		inTx = Passthrough
	}
	return &Service{repo: repo, inTx: inTx}
}

// RegisterInput carries the signup fields. All of them are required.
// Unknown UserType values are kept verbatim and treated as "other" by the
// access rules.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	UserType  string
}

// Register creates a new user with a bcrypt-hashed password. A duplicate
// email maps to apperr.ErrDuplicateIdentity via the unique constraint rather
// than a pre-check, so concurrent signups cannot race past each other.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || in.Password == "" || in.FirstName == "" || in.LastName == "" || in.UserType == "" {
		return nil, apperr.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		UserType:     in.UserType,
	}

	err = s.inTx(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, u)
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate checks email/password and returns the matching user. Unknown
// email and wrong password both yield apperr.ErrInvalidCredentials so the
// response does not reveal which accounts exist.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperr.ErrValidation
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, apperr.ErrInvalidCredentials
	}
	return u, nil
}

// Get returns the user with the given id.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	return s.repo.GetByID(ctx, uid)
}
