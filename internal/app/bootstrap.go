package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/routes"
	"jobboard/internal/infrastructure/persistence/postgres"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/usecase"
	ucauth "jobboard/internal/usecase/auth"
	"jobboard/internal/ws"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub
}

// Bootstrap assembles the object graph: repositories over the container's
// DB, usecases over the repositories, handlers over the usecases. The
// returned cleanup also detaches the hub's session-event subscription.
func Bootstrap(c *Container) (*App, func() error, error) {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	errMw := middleware.NewErrorMiddleware(c.Logger)
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	hub := ws.NewHub(c.Logger)
	go hub.Run()

	jwtSvc := jwt.NewHMACService(
		c.Config.JWT.AccessSecret,
		c.Config.JWT.RefreshSecret,
		c.Config.JWT.AccessExpiresIn,
		c.Config.JWT.RefreshExpiresIn,
	)

	userRepo := postgres.NewUserRepository(c.DB)
	jobRepo := postgres.NewJobRepository(c.DB)

	authSvc := ucauth.NewService(userRepo, c.Logger)
	session := usecase.NewSession(authSvc, userRepo, jwtSvc, c.Cache)
	jobs := usecase.NewJobs(jobRepo, c.Cache, func() { ws.NotifyJobsUpdated(hub) }, c.Logger)

	// Session changes reach browser tabs through the hub.
	unsubscribe := session.Subscribe(func(evt usecase.SessionEvent) {
		ws.NotifySessionChanged(hub, evt.Type)
	})

	pages, err := handler.NewPageHandler(jobs, session, c.Logger)
	if err != nil {
		return nil, nil, err
	}

	registry := &routes.Registry{
		Health: handler.NewHealthHandler(),
		Auth:   handler.NewAuthHandler(session),
		Jobs:   handler.NewJobHandler(jobs),
		Pages:  pages,
		WS:     ws.NewHandler(hub, c.Logger),
		AuthMW: middleware.NewAuthMiddleware(session),
		Guard:  middleware.NewSessionGuard(session),
	}
	registry.Register(f)

	cleanup := func() error {
		unsubscribe()
		return nil
	}
	return &App{Fiber: f, Hub: hub}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
