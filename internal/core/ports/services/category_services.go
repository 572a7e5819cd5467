package services

import (
	"context"

	"github.com/antu41/ECommerceInventory/internal/core/domain"
	"github.com/antu41/ECommerceInventory/internal/dto"
)

// CategorySvcFacade defines the category operations exposed to the HTTP layer.
type CategorySvcFacade interface {
	// CreateCategory creates a new category.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// GetCategoryByID retrieves a category by ID.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// UpdateCategory applies a partial update.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category. Fails with apperrors.ErrConflict while
	// products still reference it.
	DeleteCategory(ctx context.Context, categoryID string) error
}
