package services

import (
	"context"

	"github.com/antu41/ECommerceInventory/internal/core/domain"
	"github.com/antu41/ECommerceInventory/internal/dto"
)

// ProductReaderSvc defines read operations for products
type ProductReaderSvc interface {
	// GetProductByID retrieves a product by ID.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves a filtered, paginated list of products.
	ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error)

	// SearchProducts retrieves products matching a free-text query.
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
}

// ProductWriterSvc defines write operations for products
type ProductWriterSvc interface {
	// CreateProduct creates a new product. imagePath may be empty.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, imagePath string) (*domain.Product, error)

	// UpdateProduct applies a partial update. A non-empty imagePath replaces
	// the stored image path.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, imagePath string) (*domain.Product, error)

	// DeleteProduct removes a product and reports its former image path so the
	// caller can delete the file.
	DeleteProduct(ctx context.Context, productID string) (imagePath string, err error)
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
