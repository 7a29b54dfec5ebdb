package repository

import (
	"context"
	"errors"

	"catalog/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// List retrieves products in natural storage order with offset/limit
	// pagination.
	List(ctx context.Context, offset, limit int) ([]*entity.Product, error)

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	// Create persists a new product and fills in the generated ID. The
	// implementation must resynchronize its id generator against the current
	// maximum stored id before allocating, so that rows inserted out of band
	// (bulk loads, migrations) never collide with the next create.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces all mutable fields of an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by ID. Returns ErrProductNotFound when the id
	// does not exist.
	Delete(ctx context.Context, id uint) error
}
