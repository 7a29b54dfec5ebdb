// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/response"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account-related handlers.
type AuthHandler struct {
	accounts usecase.AccountUsecase
	identity usecase.IdentityUsecase
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(accounts usecase.AccountUsecase, identity usecase.IdentityUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		identity: identity,
		logger:   logger,
	}
}

// tokenResponse is the login payload: a bearer token plus the public account
// projection, matching the OAuth2 password-flow convention of the original API.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        any    `json:"user"`
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accounts.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	// The output carries the public projection only; the password hash never
	// reaches the response encoder.
	return c.JSON(http.StatusCreated, output.User)
}

// Login handles the login request. Credentials arrive form-encoded
// (username/password), the response carries the issued bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accounts.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   "bearer",
		User:        output.User,
	})
}

// Me returns the public projection of the account the bearer token resolves to.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := h.identity.Resolve(c.Request().Context(), middleware.BearerToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, identity.Public())
}

// Root is the welcome endpoint.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the Products API!"})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
