package catalog

import "github.com/shopspring/decimal"

// Category is the fixed set of shelves the pharmacy sells from.
type Category string

const (
	Tablets    Category = "Tablets"
	Syrups     Category = "Syrups"
	Capsules   Category = "Capsules"
	Injections Category = "Injections"
	Topical    Category = "Topical"

	// CategoryAll is only valid as a filter wildcard, never on a product.
	CategoryAll Category = "All"
)

var categories = map[Category]bool{
	Tablets:    true,
	Syrups:     true,
	Capsules:   true,
	Injections: true,
	Topical:    true,
}

// ParseCategory validates a product category. CategoryAll is rejected here;
// it only makes sense in a filter.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, categories[c]
}

type Product struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         Category        `json:"category"`
	Price            decimal.Decimal `json:"price"`
	Image            string          `json:"image"`
	ShortDescription string          `json:"short_description,omitempty"`
	Description      string          `json:"description,omitempty"`
	Dosage           string          `json:"dosage,omitempty"`
	InStock          bool            `json:"in_stock"`
}

// HTTPError represents a standard error in JSON.
type HTTPError struct {
	Error string `json:"error"`
}

// ListResponse is the filtered catalog payload.
type ListResponse struct {
	Q        string    `json:"q,omitempty"`
	Category Category  `json:"category"`
	Items    []Product `json:"items"`
}
