package impl

import (
	"context"
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns products with offset/limit pagination, open to all callers.
func (srv *catalogService) List(ctx context.Context, skip, limit int) ([]*entity.Product, error) {
	if skip < 0 {
		skip = usecase.DefaultListSkip
	}
	if limit <= 0 {
		limit = usecase.DefaultListLimit
	}

	products, err := srv.productRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// Get returns a single product, open to all callers.
func (srv *catalogService) Get(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "product does not exist")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// Create persists a new product. The repository resynchronizes the id
// sequence against the current maximum before allocating, so bulk-loaded rows
// never collide with the next create.
func (srv *catalogService) Create(ctx context.Context, identity *entity.User, input *usecase.ProductInput) (*entity.Product, error) {
	if err := srv.requireIdentity(identity); err != nil {
		return nil, err
	}

	product := productFromInput(input)
	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Product created",
		slog.Uint64("productID", uint64(product.ID)),
		slog.Uint64("userID", uint64(identity.ID)),
	)

	return product, nil
}

// Update fully replaces all mutable fields of an existing product.
func (srv *catalogService) Update(ctx context.Context, identity *entity.User, id uint, input *usecase.ProductInput) (*entity.Product, error) {
	if err := srv.requireIdentity(identity); err != nil {
		return nil, err
	}

	product := productFromInput(input)
	product.ID = id

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "product does not exist")
		}

		srv.log(ctx).Error("Failed to update product", slog.Uint64("productID", uint64(id)), slog.Any("error", err))

		return nil, err
	}

	// Re-read so the caller sees the stored record, timestamps included.
	updated, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload updated product")
	}

	srv.log(ctx).Info("Product updated",
		slog.Uint64("productID", uint64(id)),
		slog.Uint64("userID", uint64(identity.ID)),
	)

	return updated, nil
}

// Delete removes a product.
func (srv *catalogService) Delete(ctx context.Context, identity *entity.User, id uint) error {
	if err := srv.requireIdentity(identity); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "product does not exist")
		}

		srv.log(ctx).Error("Failed to delete product", slog.Uint64("productID", uint64(id)), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Product deleted",
		slog.Uint64("productID", uint64(id)),
		slog.Uint64("userID", uint64(identity.ID)),
	)

	return nil
}

// requireIdentity is the explicit authorization gate on mutating operations.
// Handlers resolve the bearer token first; a nil identity here means the gate
// was bypassed, and the operation must still refuse.
func (srv *catalogService) requireIdentity(identity *entity.User) error {
	if identity == nil {
		return errors.Wrap(domainerrors.ErrUnauthenticated, "mutating operation requires an authenticated account")
	}

	return nil
}

// productFromInput builds a complete product record from validated input,
// applying the catalog defaults (in stock, "general" category).
func productFromInput(input *usecase.ProductInput) *entity.Product {
	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		InStock:     true,
	}

	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
	if product.Category == "" {
		product.Category = entity.DefaultCategory
	}

	return product
}
