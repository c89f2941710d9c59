package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/app2/products-catalog/internal/api/metrics"
	"github.com/app2/products-catalog/internal/core/domain"
	"github.com/app2/products-catalog/internal/core/ports"
)

// AuthHandler handles HTTP requests for registration and the login flows.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Login    string `json:"login"    validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6,max=100"`
	Role     string `json:"role"     validate:"required,oneof=USER ADMIN"`
}

type loginRequest struct {
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Register creates a new user account. Registration does not auto-login:
// no token is returned.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   "registered"
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.authService.Register(c.Request().Context(), req.Login, req.Password, req.Role); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "login already taken"})
		case errors.Is(err, domain.ErrInvalidInput):
			metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "registration not allowed"})
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
	return c.NoContent(http.StatusOK)
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, err := h.authService.Login(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("user", "invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		metrics.LoginsTotal.WithLabelValues("user", "error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("user", "ok").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

// AdminLogin authenticates the reserved administrator account. Any other
// login is rejected before credentials are looked up.
//
// @Summary      Administrator login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Administrator credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/admin [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, err := h.authService.AdminLogin(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			metrics.LoginsTotal.WithLabelValues("admin", "rejected").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid administrator login"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("admin", "invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		metrics.LoginsTotal.WithLabelValues("admin", "error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("admin", "ok").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}
