package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/antu41/ECommerceInventory/internal/core/ports/repositories"
)

// NewRepositoryProvider builds all pgx-backed repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		ProductRepo:  newPgxProductRepository(dbPool),
		CategoryRepo: newPgxCategoryRepository(dbPool),
	}
}
