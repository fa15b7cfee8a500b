package basket

import (
	"strings"

	"github.com/onestop/basket-api/internal/catalog"
	"github.com/onestop/basket-api/internal/common"
)

// LineItem is a (product id, quantity) pair, the unit of basket composition.
// Value-equality by both fields.
type LineItem struct {
	ProductID string
	Quantity  int
}

// NewLineItem validates and constructs a line item.
func NewLineItem(productID string, quantity int) (LineItem, error) {
	if strings.TrimSpace(productID) == "" {
		return LineItem{}, common.InvalidArgumentError("product id cannot be empty")
	}
	if quantity <= 0 {
		return LineItem{}, common.InvalidArgumentError("quantity must be greater than zero")
	}
	return LineItem{ProductID: productID, Quantity: quantity}, nil
}

// Line pairs a basket line item with its resolved product.
type Line struct {
	Item    LineItem
	Product catalog.Product
}
