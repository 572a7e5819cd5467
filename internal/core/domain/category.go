package domain

// Category groups products.
type Category struct {
	CategoryID  string `json:"categoryID"` // Primary Key (UUID)
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}
