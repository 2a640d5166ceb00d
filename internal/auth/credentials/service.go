package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid registration input")
	ErrUserNotFound       = errors.New("user not found")
)

type Service struct {
	store Store
	cost  int
}

func NewService(store Store, bcryptCost int) *Service {
	return &Service{
		store: store,
		cost:  bcryptCost,
	}
}

// Register creates a new account. Email matching is exact-case; a
// colliding email fails before anything is written.
func (s *Service) Register(
	ctx context.Context,
	name string,
	email string,
	password string,
) (User, error) {

	if strings.TrimSpace(name) == "" ||
		strings.TrimSpace(email) == "" ||
		password == "" {
		return User{}, ErrInvalidInput
	}

	existing, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return User{}, fmt.Errorf("credentials: lookup email: %w", err)
	}
	if existing != nil {
		return User{}, ErrDuplicateEmail
	}

	hash, err := HashPassword(password, s.cost)
	if err != nil {
		return User{}, fmt.Errorf("credentials: hash password: %w", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.CreateUser(ctx, u); err != nil {
		return User{}, fmt.Errorf("credentials: create user: %w", err)
	}

	return u, nil
}

// Authenticate verifies email+password. It reports ErrInvalidCredentials
// uniformly whether the email is unknown or the password mismatches, so
// a caller cannot probe which factor failed.
func (s *Service) Authenticate(
	ctx context.Context,
	email string,
	password string,
) (User, error) {

	u, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return User{}, fmt.Errorf("credentials: lookup email: %w", err)
	}
	if u == nil {
		return User{}, ErrInvalidCredentials
	}

	if err := VerifyPassword(u.PasswordHash, password); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return *u, nil
}

// GetUser resolves an already-authenticated identity back to its record.
func (s *Service) GetUser(ctx context.Context, userID string) (User, error) {
	u, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return User{}, fmt.Errorf("credentials: lookup id: %w", err)
	}
	if u == nil {
		return User{}, ErrUserNotFound
	}

	return *u, nil
}
