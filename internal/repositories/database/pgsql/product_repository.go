package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/antu41/ECommerceInventory/internal/apperrors"
	"github.com/antu41/ECommerceInventory/internal/core/domain"
	portsrepo "github.com/antu41/ECommerceInventory/internal/core/ports/repositories"
	"github.com/antu41/ECommerceInventory/internal/models"
)

type PgxProductRepository struct {
	db *pgxpool.Pool
}

func newPgxProductRepository(db *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{db: db}
}

// Ensure PgxProductRepository implements portsrepo.ProductRepositoryFacade
var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

// Products are always read joined with their category so listings carry the
// category name without a second query.
const productSelect = `
    SELECT p.product_id, p.name, p.description, p.price, p.stock, p.category_id, c.name, p.image_path, p.created_at, p.last_updated_at
    FROM products p
    JOIN categories c ON c.category_id = p.category_id
`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var m models.Product
	var categoryName string
	err := row.Scan(
		&m.ProductID,
		&m.Name,
		&m.Description,
		&m.Price,
		&m.Stock,
		&m.CategoryID,
		&categoryName,
		&m.ImagePath,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainProduct(m, categoryName)
	return &d, nil
}

func toDomainProduct(m models.Product, categoryName string) domain.Product {
	d := domain.Product{
		ProductID:    m.ProductID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		Stock:        m.Stock,
		CategoryID:   m.CategoryID,
		CategoryName: categoryName,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
	if m.ImagePath.Valid {
		d.ImagePath = m.ImagePath.String
	}
	return d
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	var imagePath sql.NullString
	if product.ImagePath != "" {
		imagePath = sql.NullString{String: product.ImagePath, Valid: true}
	}
	query := `
        INSERT INTO products (product_id, name, description, price, stock, category_id, image_path, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		product.ProductID,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.CategoryID,
		imagePath,
		product.CreatedAt,
		product.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := productSelect + ` WHERE p.product_id = $1;`
	product, err := scanProduct(r.db.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return product, nil
}

func (r *PgxProductRepository) FindProducts(ctx context.Context, filter portsrepo.ProductFilter) ([]domain.Product, error) {
	query := productSelect + ` WHERE 1=1`
	args := []any{}

	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		query += fmt.Sprintf(" AND p.category_id = $%d", len(args))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		query += fmt.Sprintf(" AND p.price >= $%d", len(args))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		query += fmt.Sprintf(" AND p.price <= $%d", len(args))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d;", len(args))

	return r.queryProducts(ctx, query, args...)
}

func (r *PgxProductRepository) SearchProducts(ctx context.Context, searchQuery string) ([]domain.Product, error) {
	query := productSelect + ` WHERE p.name ILIKE '%' || $1 || '%' OR p.description ILIKE '%' || $1 || '%' ORDER BY p.created_at DESC;`
	return r.queryProducts(ctx, query, searchQuery)
}

func (r *PgxProductRepository) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *product)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", rows.Err())
	}
	return products, nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	var imagePath sql.NullString
	if product.ImagePath != "" {
		imagePath = sql.NullString{String: product.ImagePath, Valid: true}
	}
	query := `
        UPDATE products
        SET name = $1, description = $2, price = $3, stock = $4, category_id = $5, image_path = $6, last_updated_at = $7
        WHERE product_id = $8;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.CategoryID,
		imagePath,
		product.LastUpdatedAt,
		product.ProductID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
