package dto

import (
	"github.com/shopspring/decimal"

	"github.com/antu41/ECommerceInventory/internal/core/domain"
)

// CreateProductRequest defines the form fields for creating a product.
// The optional image file is handled separately by the handler.
type CreateProductRequest struct {
	Name        string          `form:"name" binding:"required,max=200"`
	Description string          `form:"description" binding:"max=2000"`
	Price       decimal.Decimal `form:"price" binding:"required"`
	Stock       int             `form:"stock" binding:"min=0"`
	CategoryID  string          `form:"categoryID" binding:"required,uuid"`
}

// UpdateProductRequest defines the data allowed for updating a product.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateProductRequest struct {
	Name        *string          `form:"name" binding:"omitempty,max=200"`
	Description *string          `form:"description" binding:"omitempty,max=2000"`
	Price       *decimal.Decimal `form:"price"`
	Stock       *int             `form:"stock" binding:"omitempty,min=0"`
	CategoryID  *string          `form:"categoryID" binding:"omitempty,uuid"`
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	CategoryID string           `form:"categoryID" binding:"omitempty,uuid"`
	MinPrice   *decimal.Decimal `form:"minPrice"`
	MaxPrice   *decimal.Decimal `form:"maxPrice"`
	Page       int              `form:"page,default=1" binding:"min=1"`
	Limit      int              `form:"limit,default=10" binding:"min=1,max=100"`
}

// ProductResponse is the API representation of a product.
type ProductResponse struct {
	ProductID    string          `json:"productID"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	ImagePath    string          `json:"imagePath,omitempty"`
}

// ListProductsResponse wraps the list of products.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

// ToProductResponse converts a domain.Product to its API representation.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:    p.ProductID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Stock:        p.Stock,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		ImagePath:    p.ImagePath,
	}
}

// ToListProductsResponse converts a slice of domain.Product to the list DTO.
func ToListProductsResponse(products []domain.Product, page, limit int) ListProductsResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return ListProductsResponse{Products: responses, Page: page, Limit: limit}
}
