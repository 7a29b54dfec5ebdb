// Command seed loads the sample clothing catalog into the products table.
// It is idempotent: products already present (matched by name) are skipped,
// so re-running it never duplicates rows.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"catalog/config"
	"catalog/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

var sampleProducts = []model.ProductModel{
	{
		Name:        "Classic White T-Shirt",
		Description: "A comfortable and versatile white t-shirt perfect for everyday wear. Made from high-quality cotton with a classic fit.",
		Price:       29.99,
		Category:    "men",
		ImageURL:    "/images/products/men/mens-shirt-1.jpg",
		InStock:     true,
	},
	{
		Name:        "Blue Denim Jacket",
		Description: "A timeless blue denim jacket that adds style to any outfit. Durable construction with classic button-up design.",
		Price:       89.99,
		Category:    "men",
		ImageURL:    "/images/products/men/mens-shirt-2.jpg",
		InStock:     true,
	},
	{
		Name:        "Casual Polo Shirt",
		Description: "A stylish polo shirt with a comfortable fit and breathable fabric. Perfect for casual outings or semi-formal occasions.",
		Price:       45.99,
		Category:    "men",
		ImageURL:    "/images/products/men/mens-shirt-3.jpg",
		InStock:     true,
	},
	{
		Name:        "Striped Button-Up",
		Description: "A classic striped button-up shirt that brings sophistication to your wardrobe. Made from premium cotton blend.",
		Price:       59.99,
		Category:    "men",
		ImageURL:    "/images/products/men/mens-shirt-4.jpg",
		InStock:     false,
	},
	{
		Name:        "Summer Dress",
		Description: "A beautiful floral summer dress with a flowing silhouette. Perfect for warm weather and special occasions.",
		Price:       79.99,
		Category:    "women",
		ImageURL:    "/images/products/women/womens-dress-1.jpg",
		InStock:     true,
	},
	{
		Name:        "Evening Gown",
		Description: "An elegant evening gown with sophisticated detailing. Ideal for formal events and special celebrations.",
		Price:       149.99,
		Category:    "women",
		ImageURL:    "/images/products/women/womens-dress-2.jpg",
		InStock:     true,
	},
	{
		Name:        "Canvas Tote Bag",
		Description: "A sturdy canvas tote bag for daily errands. Roomy main compartment with an inner zip pocket.",
		Price:       19.99,
		Category:    "general",
		ImageURL:    "/images/products/general/tote-bag-1.jpg",
		InStock:     true,
	},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.New()
	if err != nil {
		logger.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()
	if err := db.WithContext(ctx).AutoMigrate(&model.UserModel{}, &model.ProductModel{}); err != nil {
		logger.Error("Failed to migrate schema", slog.Any("error", err))
		os.Exit(1)
	}

	created := 0
	for _, product := range sampleProducts {
		var existing model.ProductModel
		err := db.WithContext(ctx).Where("name = ?", product.Name).First(&existing).Error
		if err == nil {
			logger.Info("Product already exists, skipping", slog.String("name", product.Name))

			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to check for existing product", slog.String("name", product.Name), slog.Any("error", err))
			os.Exit(1)
		}

		if err := db.WithContext(ctx).Create(&product).Error; err != nil {
			logger.Error("Failed to insert product", slog.String("name", product.Name), slog.Any("error", err))
			os.Exit(1)
		}

		logger.Info("Product inserted", slog.String("name", product.Name), slog.Float64("price", product.Price))
		created++
	}

	logger.Info("Seeding complete", slog.Int("created", created), slog.Int("total", len(sampleProducts)))
}
