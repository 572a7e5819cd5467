package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/antu41/ECommerceInventory/internal/apperrors"
	"github.com/antu41/ECommerceInventory/internal/core/domain"
	portsrepo "github.com/antu41/ECommerceInventory/internal/core/ports/repositories"
	portssvc "github.com/antu41/ECommerceInventory/internal/core/ports/services"
	"github.com/antu41/ECommerceInventory/internal/dto"
)

// productService implements ProductSvcFacade.
type productService struct {
	productRepo  portsrepo.ProductRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewProductService creates a new instance of productService.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, imagePath string) (*domain.Product, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("category %s: %w", req.CategoryID, apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to verify category: %w", err)
	}

	now := time.Now()
	product := domain.Product{
		ProductID:    uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Stock:        req.Stock,
		CategoryID:   req.CategoryID,
		CategoryName: category.Name,
		ImagePath:    imagePath,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	return &product, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	filter := portsrepo.ProductFilter{
		CategoryID: params.CategoryID,
		MinPrice:   params.MinPrice,
		MaxPrice:   params.MaxPrice,
		Limit:      params.Limit,
		Offset:     (params.Page - 1) * params.Limit,
	}

	products, err := s.productRepo.FindProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *productService) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	if query == "" {
		return []domain.Product{}, nil
	}
	products, err := s.productRepo.SearchProducts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, imagePath string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.CategoryID != nil && *req.CategoryID != product.CategoryID {
		category, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("category %s: %w", *req.CategoryID, apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to verify category: %w", err)
		}
		product.CategoryID = category.CategoryID
		product.CategoryName = category.Name
	}
	if imagePath != "" {
		product.ImagePath = imagePath
	}
	product.LastUpdatedAt = time.Now()

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) (string, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return "", err
	}

	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		return "", fmt.Errorf("failed to delete product: %w", err)
	}

	return product.ImagePath, nil
}
