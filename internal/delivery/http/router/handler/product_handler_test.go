package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog/internal/delivery/http/middleware"
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

func TestProductHandler_List_EmptyCatalog(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	h := NewProductHandler(catalog, identity, newTestLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	catalog.EXPECT().
		List(mock.Anything, usecase.DefaultListSkip, usecase.DefaultListLimit).
		Return(nil, nil)

	err := h.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	// Empty catalog serializes as [] rather than null.
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestProductHandler_List_Pagination(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	h := NewProductHandler(catalog, identity, newTestLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/products?skip=5&limit=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	catalog.EXPECT().
		List(mock.Anything, 5, 2).
		Return([]*entity.Product{{ID: 6, Name: "Keyboard"}}, nil)

	err := h.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Keyboard"`)
}

func TestProductHandler_List_GarbagePaginationFallsBack(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	h := NewProductHandler(catalog, identity, newTestLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/products?skip=abc&limit=xyz", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	catalog.EXPECT().
		List(mock.Anything, usecase.DefaultListSkip, usecase.DefaultListLimit).
		Return([]*entity.Product{}, nil)

	err := h.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_Get_Success(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	h := NewProductHandler(catalog, identity, newTestLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/products/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	catalog.EXPECT().
		Get(mock.Anything, uint(1)).
		Return(&entity.Product{ID: 1, Name: "Laptop", Price: 999.99, InStock: true, Category: "general"}, nil)

	err := h.Get(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Laptop"`)
}

func TestProductHandler_Get_InvalidID(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	h := NewProductHandler(catalog, identity, newTestLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/products/not-a-number", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-number")

	err := h.Get(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	h := NewProductHandler(catalog, identity, newTestLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/products/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	catalog.EXPECT().
		Get(mock.Anything, uint(99)).
		Return(nil, errors.Wrap(domainerrors.ErrNotFound, "product does not exist"))

	err := h.Get(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestProductHandler_Create_Success(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	h := NewProductHandler(catalog, identity, newTestLogger())

	user := &entity.User{ID: 7, Username: "alice"}
	body := `{"name":"Laptop","price":999.99}`

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.KeyBearerToken, "signed.jwt.token")

	identity.EXPECT().Resolve(mock.Anything, "signed.jwt.token").Return(user, nil)
	catalog.EXPECT().
		Create(mock.Anything, user, mock.AnythingOfType("*usecase.ProductInput")).
		Return(&entity.Product{ID: 1, Name: "Laptop", Price: 999.99, InStock: true, Category: "general"}, nil)

	err := h.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":1`)
}

func TestProductHandler_Create_Unauthenticated(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	h := NewProductHandler(catalog, identity, newTestLogger())

	body := `{"name":"Laptop","price":999.99}`

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// No token on the context: resolution fails before binding happens.
	identity.EXPECT().
		Resolve(mock.Anything, "").
		Return(nil, errors.Wrap(domainerrors.ErrUnauthenticated, "token verification failed"))

	err := h.Create(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestProductHandler_Create_ValidationFailure(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	h := NewProductHandler(catalog, identity, newTestLogger())

	user := &entity.User{ID: 7, Username: "alice"}
	// Missing price: struct-tag validation rejects before the usecase runs.
	body := `{"name":"Laptop"}`

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.KeyBearerToken, "signed.jwt.token")

	identity.EXPECT().Resolve(mock.Anything, "signed.jwt.token").Return(user, nil)

	err := h.Create(c)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestProductHandler_Update_Success(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	h := NewProductHandler(catalog, identity, newTestLogger())

	user := &entity.User{ID: 7, Username: "alice"}
	body := `{"name":"Laptop Pro","price":1299.99}`

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPut, "/products/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	c.Set(middleware.KeyBearerToken, "signed.jwt.token")

	identity.EXPECT().Resolve(mock.Anything, "signed.jwt.token").Return(user, nil)
	catalog.EXPECT().
		Update(mock.Anything, user, uint(1), mock.AnythingOfType("*usecase.ProductInput")).
		Return(&entity.Product{ID: 1, Name: "Laptop Pro", Price: 1299.99, InStock: true, Category: "general"}, nil)

	err := h.Update(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Laptop Pro"`)
}

func TestProductHandler_Delete_Success(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	h := NewProductHandler(catalog, identity, newTestLogger())

	user := &entity.User{ID: 7, Username: "alice"}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/products/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	c.Set(middleware.KeyBearerToken, "signed.jwt.token")

	identity.EXPECT().Resolve(mock.Anything, "signed.jwt.token").Return(user, nil)
	catalog.EXPECT().Delete(mock.Anything, user, uint(1)).Return(nil)

	err := h.Delete(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product deleted successfully")
}

func TestProductHandler_Delete_NotFound(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	h := NewProductHandler(catalog, identity, newTestLogger())

	user := &entity.User{ID: 7, Username: "alice"}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/products/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")
	c.Set(middleware.KeyBearerToken, "signed.jwt.token")

	identity.EXPECT().Resolve(mock.Anything, "signed.jwt.token").Return(user, nil)
	catalog.EXPECT().
		Delete(mock.Anything, user, uint(99)).
		Return(errors.Wrap(domainerrors.ErrNotFound, "product does not exist"))

	err := h.Delete(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
