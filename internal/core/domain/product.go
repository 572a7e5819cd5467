package domain

import "github.com/shopspring/decimal"

// Product represents an inventory item.
type Product struct {
	ProductID   string          `json:"productID"` // Primary Key (UUID)
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  string          `json:"categoryID"`
	// CategoryName is denormalized from the category at read time for listings.
	CategoryName string `json:"categoryName"`
	// ImagePath is the public path of the product image ("/images/<uuid>.<ext>"),
	// empty when no image was uploaded.
	ImagePath string `json:"imagePath"`
	AuditFields
}
