package catalog

import (
	"strings"

	"github.com/onestop/basket-api/internal/common"
	"github.com/onestop/basket-api/internal/money"
)

// Category classifies a product. The catalog carries exactly two categories.
type Category string

const (
	CategoryFuel Category = "Fuel"
	CategoryShop Category = "Shop"
)

// ParseCategory converts a string into a known category, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fuel":
		return CategoryFuel, nil
	case "shop":
		return CategoryShop, nil
	default:
		return "", common.InvalidArgumentError("unknown product category: " + s)
	}
}

// NormalizeID lower-cases and trims a product identifier. Product ids are
// case-insensitive everywhere; every map key and set member goes through here.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Product is a catalog entry available for purchase. Immutable after
// construction.
type Product struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Category  Category     `json:"category"`
	UnitPrice money.Amount `json:"unitPrice"`
}

// NewProduct validates and constructs a product.
func NewProduct(id, name string, category Category, unitPrice money.Amount) (Product, error) {
	if strings.TrimSpace(id) == "" {
		return Product{}, common.InvalidArgumentError("product id cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return Product{}, common.InvalidArgumentError("product name cannot be empty")
	}
	if unitPrice.IsNegative() {
		return Product{}, common.InvalidArgumentError("unit price cannot be negative")
	}
	return Product{ID: id, Name: name, Category: category, UnitPrice: unitPrice}, nil
}

// LineTotal returns unit price multiplied by quantity.
func (p Product) LineTotal(quantity int) (money.Amount, error) {
	if quantity < 0 {
		return money.Zero, common.InvalidArgumentError("quantity cannot be negative")
	}
	return p.UnitPrice.Mul(money.FromInt(int64(quantity))), nil
}

// BelongsTo reports whether the product is in the given category.
func (p Product) BelongsTo(category Category) bool {
	return p.Category == category
}
