package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jobboard/internal/domain/user"
)

type mockUserRepo struct {
	byEmail map[string]user.User
	calls   int

	createErr error
	existsErr error
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	m.calls++
	if m.createErr != nil {
		return m.createErr
	}
	if m.byEmail == nil {
		m.byEmail = map[string]user.User{}
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	m.calls++
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	m.calls++
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.calls++
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *mockUserRepo) Confirm(_ context.Context, token uuid.UUID) (user.User, error) {
	m.calls++
	for email, u := range m.byEmail {
		if u.ConfirmationToken != nil && *u.ConfirmationToken == token {
			u.ConfirmationToken = nil
			m.byEmail[email] = u
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func TestSignUp_ValidationNeverTouchesStore(t *testing.T) {
	cases := []struct {
		name string
		in   SignUpInput
	}{
		{"blank name", SignUpInput{Email: "a@b.c", Password: "secret1", ConfirmPassword: "secret1"}},
		{"blank email", SignUpInput{Name: "A", Password: "secret1", ConfirmPassword: "secret1"}},
		{"blank password", SignUpInput{Name: "A", Email: "a@b.c", ConfirmPassword: "secret1"}},
		{"mismatch", SignUpInput{Name: "A", Email: "a@b.c", Password: "secret1", ConfirmPassword: "secret2"}},
		{"too short", SignUpInput{Name: "A", Email: "a@b.c", Password: "12345", ConfirmPassword: "12345"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockUserRepo{}
			svc := NewService(repo, nil)

			_, err := svc.SignUp(context.Background(), tc.in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if repo.calls != 0 {
				t.Fatalf("expected no repository calls, got %d", repo.calls)
			}
		})
	}
}

func TestSignUp_SixCharacterPasswordAccepted(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewService(repo, nil)

	u, err := svc.SignUp(context.Background(), SignUpInput{
		Name: "Alice", Email: "Alice@Example.com", Password: "123456", ConfirmPassword: "123456",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.PasswordHash != "" || u.ConfirmationToken != nil {
		t.Fatalf("expected sanitized user")
	}
	if _, ok := repo.byEmail["alice@example.com"]; !ok {
		t.Fatalf("expected account persisted under normalized email")
	}
}

func TestSignUp_EmailTaken(t *testing.T) {
	repo := &mockUserRepo{byEmail: map[string]user.User{
		"a@b.c": {ID: uuid.New(), Email: "a@b.c"},
	}}
	svc := NewService(repo, nil)

	_, err := svc.SignUp(context.Background(), SignUpInput{
		Name: "A", Email: "a@b.c", Password: "secret1", ConfirmPassword: "secret1",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func newConfirmedUser(t *testing.T, email, password string) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	now := time.Now()
	return user.User{ID: uuid.New(), Email: email, Name: "A", PasswordHash: string(hash), ConfirmedAt: &now}
}

func TestSignIn_WrongPassword(t *testing.T) {
	u := newConfirmedUser(t, "a@b.c", "correct-horse")
	repo := &mockUserRepo{byEmail: map[string]user.User{u.Email: u}}
	svc := NewService(repo, nil)

	_, err := svc.SignIn(context.Background(), SignInInput{Email: "a@b.c", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSignIn_UnknownEmail(t *testing.T) {
	svc := NewService(&mockUserRepo{}, nil)
	_, err := svc.SignIn(context.Background(), SignInInput{Email: "nobody@b.c", Password: "whatever"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSignIn_UnconfirmedAccount(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	token := uuid.New()
	u := user.User{ID: uuid.New(), Email: "a@b.c", PasswordHash: string(hash), ConfirmationToken: &token}
	repo := &mockUserRepo{byEmail: map[string]user.User{u.Email: u}}
	svc := NewService(repo, nil)

	_, err := svc.SignIn(context.Background(), SignInInput{Email: "a@b.c", Password: "secret1"})
	if !errors.Is(err, ErrEmailNotConfirmed) {
		t.Fatalf("expected ErrEmailNotConfirmed, got %v", err)
	}
}

func TestSignIn_Success(t *testing.T) {
	u := newConfirmedUser(t, "a@b.c", "secret1")
	repo := &mockUserRepo{byEmail: map[string]user.User{u.Email: u}}
	svc := NewService(repo, nil)

	got, err := svc.SignIn(context.Background(), SignInInput{Email: "  A@B.C ", Password: "secret1"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("unexpected user id")
	}
	if got.PasswordHash != "" {
		t.Fatalf("expected sanitized user")
	}
}

func TestConfirm_UnknownToken(t *testing.T) {
	svc := NewService(&mockUserRepo{}, nil)
	_, err := svc.Confirm(context.Background(), uuid.New())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
