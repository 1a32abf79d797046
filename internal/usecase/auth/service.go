package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jobboard/internal/domain/user"
)

const minPasswordLength = 6

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
	ErrInternal           = errors.New("internal error")
)

type SignUpInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

type SignInInput struct {
	Email    string
	Password string
}

// Service implements account registration and credential checks. All input
// validation happens before any repository call, so a rejected sign-up never
// touches the store.
type Service struct {
	users  user.Repository
	logger *log.Logger
}

func NewService(users user.Repository, logger *log.Logger) *Service {
	return &Service{users: users, logger: logger}
}

func (s *Service) SignUp(ctx context.Context, in SignUpInput) (user.User, error) {
	if err := validateSignUp(in); err != nil {
		return user.User{}, err
	}

	email := normalizeEmail(in.Email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if exists {
		return user.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	token := uuid.New()
	u := user.User{
		ID:                uuid.New(),
		Email:             email,
		Name:              strings.TrimSpace(in.Name),
		PasswordHash:      string(hash),
		ConfirmationToken: &token,
	}

	if err := s.users.Create(ctx, u); err != nil {
		exists, exErr := s.users.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return user.User{}, ErrEmailTaken
		}
		return user.User{}, ErrInternal
	}

	// No mail transport is configured; the confirmation token is delivered
	// through the log instead of an out-of-band message.
	if s.logger != nil {
		s.logger.Printf("[Auth] confirmation token issued | email=%s token=%s", email, token)
	}

	return sanitize(u), nil
}

// SignIn verifies credentials. Accounts must confirm their email before the
// first successful sign-in.
func (s *Service) SignIn(ctx context.Context, in SignInInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	if !u.Confirmed() {
		return user.User{}, ErrEmailNotConfirmed
	}

	return sanitize(u), nil
}

func (s *Service) Confirm(ctx context.Context, token uuid.UUID) (user.User, error) {
	u, err := s.users.Confirm(ctx, token)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidInput
		}
		return user.User{}, ErrInternal
	}
	return sanitize(u), nil
}

func validateSignUp(in SignUpInput) error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		in.Password == "" ||
		in.ConfirmPassword == "" {
		return fmt.Errorf("%w: all fields are required", ErrInvalidInput)
	}
	if in.Password != in.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitize(u user.User) user.User {
	u.PasswordHash = ""
	u.ConfirmationToken = nil
	return u
}
