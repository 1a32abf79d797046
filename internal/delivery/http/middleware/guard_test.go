package middleware

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"jobboard/internal/domain/user"
	"jobboard/internal/usecase"
	ucauth "jobboard/internal/usecase/auth"
)

type stubSessions struct {
	user  user.User
	token string
}

func (s stubSessions) CurrentUser(_ context.Context, token string) (user.User, bool) {
	if s.token != "" && token == s.token {
		return s.user, true
	}
	return user.User{}, false
}

func (s stubSessions) SignUp(context.Context, ucauth.SignUpInput) (user.User, error) {
	return user.User{}, nil
}

func (s stubSessions) SignIn(context.Context, ucauth.SignInInput) (user.User, string, string, error) {
	return user.User{}, "", "", nil
}

func (s stubSessions) SignOut(context.Context, string) error { return nil }

func (s stubSessions) Refresh(context.Context, string) (string, string, error) {
	return "", "", nil
}

func (s stubSessions) Confirm(context.Context, uuid.UUID) (user.User, error) {
	return user.User{}, nil
}

func (s stubSessions) Subscribe(func(usecase.SessionEvent)) func() { return func() {} }

func TestSessionGuard_RedirectsAnonymousToLogin(t *testing.T) {
	app := fiber.New()
	guard := NewSessionGuard(stubSessions{})
	app.Get("/post-job", guard.Middleware(), func(c fiber.Ctx) error { return c.SendString("form") })

	resp, err := app.Test(httptest.NewRequest("GET", "/post-job", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 300 || resp.StatusCode > 399 {
		t.Fatalf("expected a redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestSessionGuard_PassesAuthenticatedVisitor(t *testing.T) {
	u := user.User{ID: uuid.New(), Email: "alice@example.com"}
	guard := NewSessionGuard(stubSessions{user: u, token: "good-token"})

	var seenEmail string
	app := fiber.New()
	app.Get("/post-job", guard.Middleware(), func(c fiber.Ctx) error {
		seenEmail, _ = c.Locals(CtxEmailKey).(string)
		return c.SendString("form")
	})

	req := httptest.NewRequest("GET", "/post-job", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if seenEmail != u.Email {
		t.Fatalf("expected email in locals, got %q", seenEmail)
	}
}

func TestAuthMiddleware_RejectsAnonymous(t *testing.T) {
	mw := NewAuthMiddleware(stubSessions{})
	app := fiber.New(fiber.Config{ErrorHandler: func(c fiber.Ctx, err error) error {
		if appErr, ok := err.(*AppError); ok {
			return c.SendStatus(appErr.StatusCode)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}})
	app.Post("/jobs", mw.Middleware(), func(c fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("POST", "/jobs", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestBearerTokenFromHeader(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Bearer  abc ", "abc", true},
		{"Basic abc", "", false},
		{"Bearer ", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := bearerTokenFromHeader(tc.header)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("header %q: expected (%q,%v), got (%q,%v)", tc.header, tc.want, tc.ok, got, ok)
		}
	}
}
