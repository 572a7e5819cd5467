package services

import (
	"fmt"

	portsrepo "github.com/antu41/ECommerceInventory/internal/core/ports/repositories"
	portssvc "github.com/antu41/ECommerceInventory/internal/core/ports/services"
	"github.com/antu41/ECommerceInventory/internal/platform/config"
)

// NewServiceContainer wires every service with its repositories and returns the
// container the handlers consume.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg *config.Config) (*portssvc.ServiceContainer, error) {
	tokenSvc := NewTokenService(cfg)

	authSvc, err := NewAuthService(repos.UserRepo, tokenSvc)
	if err != nil {
		return nil, fmt.Errorf("failed to build auth service: %w", err)
	}

	return &portssvc.ServiceContainer{
		Auth:     authSvc,
		Token:    tokenSvc,
		Product:  NewProductService(repos.ProductRepo, repos.CategoryRepo),
		Category: NewCategoryService(repos.CategoryRepo),
	}, nil
}
