package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Product is the database representation of a product row.
type Product struct {
	ProductID   string          `db:"product_id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Stock       int             `db:"stock"`
	CategoryID  string          `db:"category_id"`
	ImagePath   sql.NullString  `db:"image_path"`

	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
