package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/jwt"
	ucauth "jobboard/internal/usecase/auth"
)

const (
	SessionSignedIn  = "signed_in"
	SessionSignedOut = "signed_out"

	denylistKeyPrefix = "session:denylist:"
)

// SessionEvent describes a sign-in or sign-out. Delivery is asynchronous and
// may arrive at any time; subscribers must overwrite their cached user state
// idempotently from the event alone.
type SessionEvent struct {
	Type string
	User *user.User
}

// SessionStore is the slice of the cache the session provider needs for the
// sign-out denylist.
type SessionStore interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
}

type SessionProvider interface {
	CurrentUser(ctx context.Context, token string) (user.User, bool)
	SignUp(ctx context.Context, in ucauth.SignUpInput) (user.User, error)
	SignIn(ctx context.Context, in ucauth.SignInInput) (user.User, string, string, error)
	SignOut(ctx context.Context, token string) error
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	Confirm(ctx context.Context, token uuid.UUID) (user.User, error)
	Subscribe(fn func(SessionEvent)) func()
}

// Session wraps the identity machinery: credential checks, token issuance,
// sign-out revocation and the session-change stream. It is the only
// component that holds subscriber state; there is no package-level session
// singleton.
type Session struct {
	authSvc  *ucauth.Service
	users    user.Repository
	jwt      jwt.Service
	denylist SessionStore

	mu      sync.Mutex
	subs    map[int]func(SessionEvent)
	nextSub int
}

func NewSession(authSvc *ucauth.Service, users user.Repository, jwtSvc jwt.Service, denylist SessionStore) *Session {
	return &Session{
		authSvc:  authSvc,
		users:    users,
		jwt:      jwtSvc,
		denylist: denylist,
		subs:     map[int]func(SessionEvent){},
	}
}

// CurrentUser resolves the access token to a user. Any failure (absent,
// malformed, expired, revoked) resolves to "no session".
func (s *Session) CurrentUser(ctx context.Context, token string) (user.User, bool) {
	if token == "" {
		return user.User{}, false
	}

	claims, err := s.jwt.ValidateToken(token)
	if err != nil || claims.TokenType != jwt.TokenTypeAccess {
		return user.User{}, false
	}

	if s.revoked(ctx, claims.ID) {
		return user.User{}, false
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return user.User{}, false
	}
	u.PasswordHash = ""
	u.ConfirmationToken = nil
	return u, true
}

func (s *Session) SignUp(ctx context.Context, in ucauth.SignUpInput) (user.User, error) {
	return s.authSvc.SignUp(ctx, in)
}

func (s *Session) SignIn(ctx context.Context, in ucauth.SignInInput) (user.User, string, string, error) {
	u, err := s.authSvc.SignIn(ctx, in)
	if err != nil {
		return user.User{}, "", "", err
	}

	access, err := s.jwt.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		return user.User{}, "", "", ucauth.ErrInternal
	}
	refresh, err := s.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return user.User{}, "", "", ucauth.ErrInternal
	}

	s.publish(SessionEvent{Type: SessionSignedIn, User: &u})
	return u, access, refresh, nil
}

// SignOut revokes the presented access token for its remaining validity.
// An already-invalid token is a no-op, not an error.
func (s *Session) SignOut(ctx context.Context, token string) error {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil
	}

	if s.denylist != nil {
		ttl := claims.ExpiresIn(time.Now())
		if ttl > 0 {
			if err := s.denylist.Set(ctx, denylistKeyPrefix+claims.ID, "1", ttl); err != nil {
				return ErrInternal
			}
		}
	}

	s.publish(SessionEvent{Type: SessionSignedOut})
	return nil
}

func (s *Session) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrAuthRequired
	}

	claims, err := s.jwt.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != jwt.TokenTypeRefresh {
		return "", "", ErrAuthRequired
	}
	if s.revoked(ctx, claims.ID) {
		return "", "", ErrAuthRequired
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", "", ErrAuthRequired
		}
		return "", "", ErrInternal
	}

	access, err := s.jwt.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := s.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func (s *Session) Confirm(ctx context.Context, token uuid.UUID) (user.User, error) {
	return s.authSvc.Confirm(ctx, token)
}

// Subscribe registers fn for session-change events and returns its
// unsubscribe handle. Callers tie the handle to their own lifecycle.
func (s *Session) Subscribe(fn func(SessionEvent)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Session) publish(evt SessionEvent) {
	s.mu.Lock()
	fns := make([]func(SessionEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		go fn(evt)
	}
}

func (s *Session) revoked(ctx context.Context, jti string) bool {
	if s.denylist == nil || jti == "" {
		return false
	}
	// A denylist read error leaves the token usable until natural expiry.
	hit, err := s.denylist.Exists(ctx, denylistKeyPrefix+jti)
	return err == nil && hit
}
