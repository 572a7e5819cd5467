package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/antu41/ECommerceInventory/internal/core/domain"
)

// ProductFilter narrows down product listings. Nil/empty fields are ignored.
type ProductFilter struct {
	CategoryID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Limit      int
	Offset     int
}

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a product (with its category name) by ID.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProducts retrieves products matching the filter, newest first.
	FindProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error)

	// SearchProducts retrieves products whose name or description contains the query.
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates an existing product's details.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
