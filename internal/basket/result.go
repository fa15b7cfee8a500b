package basket

import (
	"github.com/onestop/basket-api/internal/common"
	"github.com/onestop/basket-api/internal/money"
)

// Result is the validated outcome of a basket calculation. Monetary fields
// are rounded to 2 decimal places at construction; GrandTotal is always
// TotalAmount minus DiscountApplied.
type Result struct {
	TotalAmount     money.Amount
	DiscountApplied money.Amount
	GrandTotal      money.Amount
	PointsEarned    int
}

// NewResult validates the calculation invariants and rounds the totals.
func NewResult(totalAmount, discountApplied money.Amount, pointsEarned int) (Result, error) {
	if totalAmount.IsNegative() {
		return Result{}, common.InvalidArgumentError("total amount cannot be negative")
	}
	if discountApplied.IsNegative() {
		return Result{}, common.InvalidArgumentError("discount applied cannot be negative")
	}
	if discountApplied.GreaterThan(totalAmount) {
		return Result{}, common.InvalidArgumentError("discount cannot exceed total amount")
	}
	if pointsEarned < 0 {
		return Result{}, common.InvalidArgumentError("points earned cannot be negative")
	}
	return Result{
		TotalAmount:     money.Round(totalAmount),
		DiscountApplied: money.Round(discountApplied),
		GrandTotal:      money.Round(totalAmount.Sub(discountApplied)),
		PointsEarned:    pointsEarned,
	}, nil
}
