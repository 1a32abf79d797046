package middleware

import (
	"github.com/gofiber/fiber/v3"

	"jobboard/internal/usecase"
)

// SessionGuard protects page routes. Unlike the API middleware it redirects
// unauthenticated visitors to the login page instead of returning 401.
type SessionGuard struct {
	sessions usecase.SessionProvider
}

func NewSessionGuard(sessions usecase.SessionProvider) *SessionGuard {
	return &SessionGuard{sessions: sessions}
}

func (g *SessionGuard) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		u, ok := g.sessions.CurrentUser(c.Context(), TokenFromRequest(c))
		if !ok {
			return c.Redirect().To("/login")
		}

		c.Locals(CtxUserIDKey, u.ID)
		c.Locals(CtxEmailKey, u.Email)

		return c.Next()
	}
}
