package handler

import (
	"bytes"
	"embed"
	"html/template"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/job"
	"jobboard/internal/usecase"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageHandler serves the HTML routes.
type PageHandler struct {
	jobs     usecase.JobsUsecase
	sessions usecase.SessionProvider
	tmpl     *template.Template
	logger   *log.Logger
}

func NewPageHandler(jobs usecase.JobsUsecase, sessions usecase.SessionProvider, logger *log.Logger) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &PageHandler{jobs: jobs, sessions: sessions, tmpl: tmpl, logger: logger}, nil
}

// RegisterRoutes mounts the pages. guard protects /post-job and /private by
// redirecting unauthenticated visitors to /login.
func (h *PageHandler) RegisterRoutes(app *fiber.App, guard fiber.Handler) {
	if app == nil {
		return
	}

	app.Get("/", h.Home)
	app.Get("/jobs/:id", h.JobDetail)
	app.Get("/post-job", h.PostJob, guard)
	app.Get("/login", h.Login)
	app.Get("/signup", h.Signup)
	app.Get("/private", h.Private, guard)
	app.Get("/about", h.About)
	app.Get("/error", h.ErrorPage)
}

type navData struct {
	SignedIn bool
	Email    string
}

func (h *PageHandler) nav(c fiber.Ctx) navData {
	u, ok := h.sessions.CurrentUser(c.Context(), middleware.TokenFromRequest(c))
	if !ok {
		return navData{}
	}
	return navData{SignedIn: true, Email: u.Email}
}

func (h *PageHandler) Home(c fiber.Ctx) error {
	f, err := filterFromQuery(c)
	if err != nil {
		// A malformed filter falls back to the unfiltered listing.
		f = job.Filter{}
	}

	jobs, err := h.jobs.List(c.Context(), f)
	if err != nil {
		return h.render(c, fiber.StatusOK, "home.html", fiber.Map{
			"Nav": h.nav(c), "Jobs": []job.Job{}, "Filter": f, "Types": job.Types(),
			"Error": "Failed to load jobs",
		})
	}

	return h.render(c, fiber.StatusOK, "home.html", fiber.Map{
		"Nav": h.nav(c), "Jobs": jobs, "Filter": f, "Types": job.Types(),
	})
}

func (h *PageHandler) JobDetail(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return h.renderNotFound(c)
	}

	j, err := h.jobs.Get(c.Context(), id)
	if err != nil {
		// Missing and inaccessible ids both land here.
		return h.renderNotFound(c)
	}

	nav := h.nav(c)
	isOwner := false
	if nav.SignedIn {
		if u, ok := h.sessions.CurrentUser(c.Context(), middleware.TokenFromRequest(c)); ok {
			isOwner = u.ID == j.OwnerID
		}
	}

	return h.render(c, fiber.StatusOK, "detail.html", fiber.Map{
		"Nav": nav, "Job": j, "IsOwner": isOwner,
	})
}

func (h *PageHandler) PostJob(c fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "post_job.html", fiber.Map{
		"Nav": h.nav(c), "Types": job.Types(),
	})
}

func (h *PageHandler) Login(c fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "login.html", fiber.Map{
		"Nav": h.nav(c), "Message": c.Query("message"),
	})
}

func (h *PageHandler) Signup(c fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "signup.html", fiber.Map{
		"Nav": h.nav(c), "Message": c.Query("message"),
	})
}

func (h *PageHandler) Private(c fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "private.html", fiber.Map{
		"Nav":   h.nav(c),
		"Email": c.Locals(middleware.CtxEmailKey),
	})
}

func (h *PageHandler) About(c fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "about.html", fiber.Map{"Nav": h.nav(c)})
}

func (h *PageHandler) ErrorPage(c fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "error.html", fiber.Map{"Nav": h.nav(c)})
}

func (h *PageHandler) renderNotFound(c fiber.Ctx) error {
	return h.render(c, fiber.StatusNotFound, "not_found.html", fiber.Map{"Nav": h.nav(c)})
}

func (h *PageHandler) render(c fiber.Ctx, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		if h.logger != nil {
			h.logger.Printf("template render failed | name=%s err=%v", name, err)
		}
		return fiber.ErrInternalServerError
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
