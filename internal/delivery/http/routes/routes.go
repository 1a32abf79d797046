package routes

import (
	"github.com/gofiber/fiber/v3"

	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/ws"
)

// Registry wires handlers to routes. Construction happens in app wiring;
// this package only knows paths and which middleware covers them.
type Registry struct {
	Health *handler.HealthHandler
	Auth   *handler.AuthHandler
	Jobs   *handler.JobHandler
	Pages  *handler.PageHandler
	WS     *ws.Handler

	AuthMW *middleware.AuthMiddleware
	Guard  *middleware.SessionGuard
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	authGroup := v1.Group("/auth")
	r.Auth.RegisterRoutes(authGroup)

	// Public reads go in before the protected group so its middleware never
	// shadows them in the route stack.
	r.Jobs.RegisterPublicRoutes(v1)

	protected := v1.Group("", r.AuthMW.Middleware())
	r.Jobs.RegisterProtectedRoutes(protected)

	if r.WS != nil {
		app.Get("/ws", r.WS.HandleEvents)
	}

	if r.Pages != nil {
		r.Pages.RegisterRoutes(app, r.Guard.Middleware())
	}
}
