package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"
)

type JobHandler struct {
	jobs     usecase.JobsUsecase
	validate *validator.Validate
}

func NewJobHandler(jobs usecase.JobsUsecase) *JobHandler {
	return &JobHandler{jobs: jobs, validate: validator.New()}
}

// RegisterPublicRoutes mounts the reads. It must run before the protected
// group's middleware enters the route stack so listing stays public.
func (h *JobHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.List)
	r.Get("/jobs/:id", h.Get)
}

// RegisterProtectedRoutes mounts the mutations behind the auth middleware.
func (h *JobHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/jobs", h.Create)
	r.Put("/jobs/:id", h.Update)
	r.Delete("/jobs/:id", h.Delete)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	f, err := filterFromQuery(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	jobs, err := h.jobs.List(c.Context(), f)
	if err != nil {
		return mapJobsError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobs(jobs))
}

// Get renders absence for a bad id, a missing row and an inaccessible row
// alike.
func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, nil)
	}

	j, err := h.jobs.Get(c.Context(), id)
	if err != nil {
		return mapJobsError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJob(j))
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	in, err := h.bindPostInput(c)
	if err != nil {
		return err
	}

	ownerID := ownerFromLocals(c)
	created, err := h.jobs.Create(c.Context(), in, ownerID)
	if err != nil {
		return mapJobsError(err)
	}

	return response.Success(c, fiber.StatusCreated, "created", dto.FromJob(created))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, nil)
	}

	in, err := h.bindPostInput(c)
	if err != nil {
		return err
	}

	ownerID := ownerFromLocals(c)
	updated, err := h.jobs.Update(c.Context(), id, in, ownerID)
	if err != nil {
		return mapJobsError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJob(updated))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, nil)
	}

	ownerID := ownerFromLocals(c)
	if err := h.jobs.Delete(c.Context(), id, ownerID); err != nil {
		return mapJobsError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *JobHandler) bindPostInput(c fiber.Ctx) (job.PostInput, error) {
	var req dto.JobRequest
	if err := c.Bind().Body(&req); err != nil {
		return job.PostInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return job.PostInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	typ, err := job.ParseType(req.Type)
	if err != nil {
		return job.PostInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	reqs := req.Requirements
	if len(reqs) == 0 && req.RequirementsText != "" {
		reqs = usecase.SplitRequirements(req.RequirementsText)
	}

	return job.PostInput{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Type:           typ,
		Description:    req.Description,
		Requirements:   reqs,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		ApplicationURL: req.ApplicationURL,
		ContactEmail:   req.ContactEmail,
	}, nil
}

func filterFromQuery(c fiber.Ctx) (job.Filter, error) {
	f := job.Filter{
		Search:   c.Query("search"),
		Location: c.Query("location"),
	}

	if raw := strings.TrimSpace(c.Query("type")); raw != "" {
		t, err := job.ParseType(raw)
		if err != nil {
			return job.Filter{}, err
		}
		f.Type = &t
	}

	if raw := strings.TrimSpace(c.Query("salary_min")); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return job.Filter{}, err
		}
		f.SalaryMin = &v
	}

	return f, nil
}

func ownerFromLocals(c fiber.Ctx) *uuid.UUID {
	v := c.Locals(middleware.CtxUserIDKey)
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return nil
	}
	return &id
}

func mapJobsError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrAuthRequired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "You must be logged in", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, response.MessageForbidden, nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	case errors.Is(err, usecase.ErrStore):
		return middleware.NewAppError(fiber.StatusBadGateway, response.MessageBadGateway, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
