package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"
	ucauth "jobboard/internal/usecase/auth"
)

type AuthHandler struct {
	sessions usecase.SessionProvider
}

func NewAuthHandler(sessions usecase.SessionProvider) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/signup", h.SignUp)
	r.Post("/login", h.SignIn)
	r.Post("/logout", h.SignOut)
	r.Post("/refresh", h.Refresh)
	r.Post("/confirm", h.Confirm)
	r.Get("/me", h.Me)
}

func (h *AuthHandler) SignUp(c fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	u, err := h.sessions.SignUp(c.Context(), ucauth.SignUpInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return mapAuthError(err)
	}

	data := map[string]any{
		"user":    dto.FromUser(u),
		"message": "Check your email to confirm your account",
	}
	return response.Success(c, fiber.StatusCreated, "created", data)
}

func (h *AuthHandler) SignIn(c fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	u, access, refresh, err := h.sessions.SignIn(c.Context(), ucauth.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return mapAuthError(err)
	}

	setSessionCookie(c, access)

	data := map[string]any{
		"user":          dto.FromUser(u),
		"access_token":  access,
		"refresh_token": refresh,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *AuthHandler) SignOut(c fiber.Ctx) error {
	token := middleware.TokenFromRequest(c)
	if token != "" {
		if err := h.sessions.SignOut(c.Context(), token); err != nil {
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	clearSessionCookie(c)
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	tok := middleware.TokenFromRequest(c)
	if tok == "" {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	access, refresh, err := h.sessions.Refresh(c.Context(), tok)
	if err != nil {
		if errors.Is(err, usecase.ErrAuthRequired) {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	setSessionCookie(c, access)

	data := map[string]any{
		"access_token":  access,
		"refresh_token": refresh,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *AuthHandler) Confirm(c fiber.Ctx) error {
	var req dto.ConfirmRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	token, err := uuid.Parse(req.Token)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid confirmation token", nil, err)
	}

	u, err := h.sessions.Confirm(c.Context(), token)
	if err != nil {
		return mapAuthError(err)
	}

	return response.Success(c, fiber.StatusOK, "account confirmed", dto.FromUser(u))
}

func (h *AuthHandler) Me(c fiber.Ctx) error {
	u, ok := h.sessions.CurrentUser(c.Context(), middleware.TokenFromRequest(c))
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUser(u))
}

func setSessionCookie(c fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSessionCookie(c fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, ucauth.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusConflict, "Error creating account. Please try again.", nil, err)
	case errors.Is(err, ucauth.ErrEmailNotConfirmed):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Check your email to confirm your account", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email or password", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
