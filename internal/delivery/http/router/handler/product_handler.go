package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/response"
	"catalog/internal/domain/entity"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	catalog  usecase.CatalogUsecase
	identity usecase.IdentityUsecase
	logger   *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(catalog usecase.CatalogUsecase, identity usecase.IdentityUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog:  catalog,
		identity: identity,
		logger:   logger,
	}
}

// List handles GET /products with skip/limit pagination. Open to all callers.
func (h *ProductHandler) List(c echo.Context) error {
	skip := intQueryParam(c, "skip", usecase.DefaultListSkip)
	limit := intQueryParam(c, "limit", usecase.DefaultListLimit)

	products, err := h.catalog.List(c.Request().Context(), skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	// An empty catalog serializes as [] rather than null.
	if products == nil {
		products = []*entity.Product{}
	}

	return c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id. Open to all callers.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return response.NotFound(c, "NOT_FOUND", "Product not found")
	}

	product, err := h.catalog.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, product)
}

// Create handles POST /products. The bearer token is resolved to an identity
// before the mutation runs.
func (h *ProductHandler) Create(c echo.Context) error {
	identity, err := h.identity.Resolve(c.Request().Context(), middleware.BearerToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.catalog.Create(c.Request().Context(), identity, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /products/:id as a full-record replace.
func (h *ProductHandler) Update(c echo.Context) error {
	identity, err := h.identity.Resolve(c.Request().Context(), middleware.BearerToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := productID(c)
	if err != nil {
		return response.NotFound(c, "NOT_FOUND", "Product not found")
	}

	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.catalog.Update(c.Request().Context(), identity, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	identity, err := h.identity.Resolve(c.Request().Context(), middleware.BearerToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := productID(c)
	if err != nil {
		return response.NotFound(c, "NOT_FOUND", "Product not found")
	}

	if err := h.catalog.Delete(c.Request().Context(), identity, id); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// productID parses the :id path parameter.
func productID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "invalid product id")
	}

	return uint(id), nil
}

// intQueryParam parses an optional integer query parameter, falling back to
// the default on absence or garbage.
func intQueryParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
