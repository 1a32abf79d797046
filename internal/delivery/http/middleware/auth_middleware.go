package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"jobboard/internal/usecase"
)

const (
	CtxUserIDKey = "user_id"
	CtxEmailKey  = "email"

	// SessionCookie carries the access token for page navigation, where no
	// Authorization header is available.
	SessionCookie = "session_token"
)

// AuthMiddleware resolves the session for API routes. Requests without a
// live session are rejected with 401; it never reveals why the token failed.
type AuthMiddleware struct {
	sessions usecase.SessionProvider
}

func NewAuthMiddleware(sessions usecase.SessionProvider) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := TokenFromRequest(c)
		if token == "" {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		u, ok := m.sessions.CurrentUser(c.Context(), token)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		c.Locals(CtxUserIDKey, u.ID)
		c.Locals(CtxEmailKey, u.Email)

		return c.Next()
	}
}

// TokenFromRequest prefers the Authorization bearer header and falls back to
// the session cookie.
func TokenFromRequest(c fiber.Ctx) string {
	if tok, ok := bearerTokenFromHeader(c.Get("Authorization")); ok {
		return tok
	}
	return strings.TrimSpace(c.Cookies(SessionCookie))
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
