package usecase

import (
	"context"

	"catalog/internal/domain/entity"
)

// Pagination defaults for the product list endpoint.
const (
	DefaultListSkip  = 0
	DefaultListLimit = 100
)

// ProductInput defines the data for creating or fully replacing a product.
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	InStock     *bool    `json:"in_stock"`
	ImageURL    string   `json:"image_url"`
	Category    string   `json:"category"`
}

// CatalogUsecase defines the product CRUD contract. Reads are open; writes
// require a resolved identity and fail with ErrUnauthenticated without one.
type CatalogUsecase interface {
	// List returns products with offset/limit pagination. Negative values
	// fall back to the defaults (0, 100).
	List(ctx context.Context, skip, limit int) ([]*entity.Product, error)

	// Get returns a single product or ErrNotFound.
	Get(ctx context.Context, id uint) (*entity.Product, error)

	// Create persists a new product for the authenticated identity.
	Create(ctx context.Context, identity *entity.User, input *ProductInput) (*entity.Product, error)

	// Update fully replaces all mutable fields of an existing product.
	Update(ctx context.Context, identity *entity.User, id uint, input *ProductInput) (*entity.Product, error)

	// Delete removes a product or fails with ErrNotFound.
	Delete(ctx context.Context, identity *entity.User, id uint) error
}
