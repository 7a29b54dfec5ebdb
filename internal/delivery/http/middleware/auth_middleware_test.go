package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "catalog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runExtractBearer(t *testing.T, authHeader string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewAuthMiddleware()
	next := func(c echo.Context) error { return nil }

	return c, m.ExtractBearer(next)(c)
}

func TestExtractBearer_StoresToken(t *testing.T) {
	c, err := runExtractBearer(t, "Bearer signed.jwt.token")

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", BearerToken(c))
}

func TestExtractBearer_SchemeIsCaseInsensitive(t *testing.T) {
	for _, header := range []string{
		"bearer signed.jwt.token",
		"BEARER signed.jwt.token",
		"BeArEr signed.jwt.token",
	} {
		c, err := runExtractBearer(t, header)

		require.NoError(t, err, header)
		assert.Equal(t, "signed.jwt.token", BearerToken(c), header)
	}
}

func TestExtractBearer_MissingHeader(t *testing.T) {
	c, err := runExtractBearer(t, "")

	require.Error(t, err)
	assert.True(t, isUnauthenticated(err))
	assert.Empty(t, BearerToken(c))
}

func TestExtractBearer_NotBearerScheme(t *testing.T) {
	c, err := runExtractBearer(t, "Basic dXNlcjpwYXNz")

	require.Error(t, err)
	assert.True(t, isUnauthenticated(err))
	assert.Empty(t, BearerToken(c))
}

func TestExtractBearer_EmptyToken(t *testing.T) {
	_, err := runExtractBearer(t, "Bearer ")

	require.Error(t, err)
	assert.True(t, isUnauthenticated(err))
}

func isUnauthenticated(err error) bool {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.HTTPCode() == http.StatusUnauthorized
}

func TestBearerToken_UnprotectedRoute(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.Empty(t, BearerToken(c))
}
