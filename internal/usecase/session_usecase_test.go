package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/jwt"
	ucauth "jobboard/internal/usecase/auth"
)

type fakeUserRepo struct {
	users map[uuid.UUID]user.User
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (r *fakeUserRepo) Confirm(_ context.Context, token uuid.UUID) (user.User, error) {
	for id, u := range r.users {
		if u.ConfirmationToken != nil && *u.ConfirmationToken == token {
			now := time.Now()
			u.ConfirmationToken = nil
			u.ConfirmedAt = &now
			r.users[id] = u
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

type fakeSessionStore struct {
	mu   sync.Mutex
	keys map[string]string
}

func (s *fakeSessionStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.keys == nil {
		s.keys = map[string]string{}
	}
	s.keys[key] = value
	return nil
}

func (s *fakeSessionStore) Exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.keys[key]
	return ok, nil
}

func newTestSession(t *testing.T) (*Session, user.User) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	now := time.Now()
	u := user.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: string(hash),
		ConfirmedAt:  &now,
	}

	repo := &fakeUserRepo{users: map[uuid.UUID]user.User{u.ID: u}}
	jwtSvc := jwt.NewHMACService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	s := NewSession(ucauth.NewService(repo, nil), repo, jwtSvc, &fakeSessionStore{})
	return s, u
}

func signIn(t *testing.T, s *Session) (user.User, string, string) {
	t.Helper()
	u, access, refresh, err := s.SignIn(context.Background(), ucauth.SignInInput{
		Email: "alice@example.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	return u, access, refresh
}

func TestSessionCurrentUser_AfterSignIn(t *testing.T) {
	s, want := newTestSession(t)
	_, access, _ := signIn(t, s)

	got, ok := s.CurrentUser(context.Background(), access)
	if !ok {
		t.Fatalf("expected a session")
	}
	if got.ID != want.ID {
		t.Fatalf("unexpected user id")
	}
	if got.PasswordHash != "" {
		t.Fatalf("expected sanitized user")
	}
}

func TestSessionCurrentUser_NoToken(t *testing.T) {
	s, _ := newTestSession(t)
	if _, ok := s.CurrentUser(context.Background(), ""); ok {
		t.Fatalf("expected no session for empty token")
	}
	if _, ok := s.CurrentUser(context.Background(), "not-a-jwt"); ok {
		t.Fatalf("expected no session for garbage token")
	}
}

func TestSessionCurrentUser_RejectsRefreshToken(t *testing.T) {
	s, _ := newTestSession(t)
	_, _, refresh := signIn(t, s)

	if _, ok := s.CurrentUser(context.Background(), refresh); ok {
		t.Fatalf("a refresh token must not establish a session")
	}
}

func TestSessionSignOut_RevokesToken(t *testing.T) {
	s, _ := newTestSession(t)
	_, access, _ := signIn(t, s)

	if err := s.SignOut(context.Background(), access); err != nil {
		t.Fatalf("sign-out failed: %v", err)
	}
	if _, ok := s.CurrentUser(context.Background(), access); ok {
		t.Fatalf("expected the token revoked after sign-out")
	}
}

func TestSessionSignOut_GarbageTokenIsNoop(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.SignOut(context.Background(), "expired-or-garbage"); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
}

func TestSessionRefresh_RotatesTokens(t *testing.T) {
	s, _ := newTestSession(t)
	_, _, refresh := signIn(t, s)

	access2, refresh2, err := s.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if access2 == "" || refresh2 == "" {
		t.Fatalf("expected a fresh token pair")
	}
	if _, ok := s.CurrentUser(context.Background(), access2); !ok {
		t.Fatalf("expected refreshed access token to resolve")
	}
}

func TestSessionRefresh_RejectsAccessToken(t *testing.T) {
	s, _ := newTestSession(t)
	_, access, _ := signIn(t, s)

	if _, _, err := s.Refresh(context.Background(), access); err == nil {
		t.Fatalf("expected refresh with an access token to fail")
	}
}

func TestSessionSubscribe_DeliversAndUnsubscribes(t *testing.T) {
	s, _ := newTestSession(t)

	events := make(chan SessionEvent, 4)
	unsubscribe := s.Subscribe(func(evt SessionEvent) { events <- evt })

	_, access, _ := signIn(t, s)

	select {
	case evt := <-events:
		if evt.Type != SessionSignedIn {
			t.Fatalf("expected signed_in, got %q", evt.Type)
		}
		if evt.User == nil || evt.User.Email != "alice@example.com" {
			t.Fatalf("expected the signed-in user on the event")
		}
	case <-time.After(time.Second):
		t.Fatalf("no event delivered")
	}

	unsubscribe()

	if err := s.SignOut(context.Background(), access); err != nil {
		t.Fatalf("sign-out failed: %v", err)
	}
	select {
	case evt := <-events:
		t.Fatalf("unexpected event after unsubscribe: %+v", evt)
	case <-time.After(100 * time.Millisecond):
	}
}
