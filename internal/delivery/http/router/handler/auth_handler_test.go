package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/validator"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	mockUsecase "catalog/internal/mocks/usecase"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthHandler_Register_Success(t *testing.T) {
	accounts := mockUsecase.NewMockAccountUsecase(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	h := NewAuthHandler(accounts, identity, newTestLogger())

	body := `{"username":"alice","email":"alice@example.com","full_name":"Alice Example","password":"Password123!"}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	accounts.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Run(func(ctx context.Context, input *usecase.RegisterInput) {
			assert.Equal(t, "alice", input.Username)
			assert.Equal(t, "alice@example.com", input.Email)
		}).
		Return(&usecase.RegisterOutput{
			User: &entity.PublicUser{ID: 7, Username: "alice", Email: "alice@example.com"},
		}, nil)

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	accounts := mockUsecase.NewMockAccountUsecase(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	h := NewAuthHandler(accounts, identity, newTestLogger())

	// Missing email: struct-tag validation rejects before the usecase runs.
	body := `{"username":"alice","password":"Password123!"}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestAuthHandler_Login_Success(t *testing.T) {
	accounts := mockUsecase.NewMockAccountUsecase(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	h := NewAuthHandler(accounts, identity, newTestLogger())

	form := url.Values{}
	form.Set("username", "alice")
	form.Set("password", "Password123!")

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	accounts.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.LoginOutput{
			AccessToken: "signed.jwt.token",
			User:        &entity.PublicUser{ID: 7, Username: "alice"},
		}, nil)

	err := h.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"signed.jwt.token"`)
	assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	accounts := mockUsecase.NewMockAccountUsecase(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	h := NewAuthHandler(accounts, identity, newTestLogger())

	form := url.Values{}
	form.Set("username", "alice")
	form.Set("password", "wrong-password")

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	accounts.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch"))

	err := h.Login(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthHandler_Me_Success(t *testing.T) {
	accounts := mockUsecase.NewMockAccountUsecase(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	h := NewAuthHandler(accounts, identity, newTestLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.KeyBearerToken, "signed.jwt.token")

	identity.EXPECT().
		Resolve(mock.Anything, "signed.jwt.token").
		Return(&entity.User{ID: 7, Username: "alice", Email: "alice@example.com", PasswordHash: "secret-hash"}, nil)

	err := h.Me(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestAuthHandler_Me_AccountGone(t *testing.T) {
	accounts := mockUsecase.NewMockAccountUsecase(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	h := NewAuthHandler(accounts, identity, newTestLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.KeyBearerToken, "signed.jwt.token")

	identity.EXPECT().
		Resolve(mock.Anything, "signed.jwt.token").
		Return(nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account referenced by token does not exist"))

	err := h.Me(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestRoot(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Root(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome to the Products API!")
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}
