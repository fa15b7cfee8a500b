package basket

import (
	"fmt"
	"strings"

	"github.com/onestop/basket-api/internal/common"
	"github.com/onestop/basket-api/internal/money"
	"github.com/onestop/basket-api/internal/promo"
)

// Calculate combines basket lines, active promotions, and the loyalty flag
// into a Result. It is a pure function: no I/O, no shared state, safe for
// arbitrary concurrent use.
//
// Each line's discount is rounded before summation; the running totals are
// rounded once at Result construction.
func Calculate(lines []Line, activeDiscounts []promo.DiscountPromotion, activePoints *promo.PointsPromotion, hasLoyaltyCard bool) (Result, error) {
	if len(lines) == 0 {
		return Result{}, common.InvalidArgumentError("basket cannot be empty")
	}
	if err := validateNoOverlappingDiscounts(lines, activeDiscounts); err != nil {
		return Result{}, err
	}

	totalAmount := money.Zero
	totalDiscount := money.Zero
	pointsQualifying := money.Zero

	for _, line := range lines {
		lineTotal, err := line.Product.LineTotal(line.Item.Quantity)
		if err != nil {
			return Result{}, err
		}
		totalAmount = totalAmount.Add(lineTotal)

		lineDiscount := money.Zero
		if discount := findApplicableDiscount(line.Product.ID, activeDiscounts); discount != nil {
			lineDiscount, err = discount.Discount(lineTotal)
			if err != nil {
				return Result{}, err
			}
		}
		totalDiscount = totalDiscount.Add(lineDiscount)

		if activePoints != nil && activePoints.AppliesTo(line.Product.Category) {
			pointsQualifying = pointsQualifying.Add(lineTotal.Sub(lineDiscount))
		}
	}

	pointsEarned := 0
	if hasLoyaltyCard && activePoints != nil {
		var err error
		pointsEarned, err = activePoints.Points(pointsQualifying)
		if err != nil {
			return Result{}, err
		}
	}

	return NewResult(totalAmount, totalDiscount, pointsEarned)
}

// validateNoOverlappingDiscounts rejects baskets where any product is covered
// by more than one active discount promotion. The source promises at most one
// active discount per product, so an overlap signals corrupted upstream data
// and is fatal rather than resolved by picking the larger discount.
func validateNoOverlappingDiscounts(lines []Line, activeDiscounts []promo.DiscountPromotion) error {
	for _, line := range lines {
		var matching []string
		for _, p := range activeDiscounts {
			if p.AppliesTo(line.Item.ProductID) {
				matching = append(matching, p.ID)
			}
		}
		if len(matching) > 1 {
			return common.DomainConflictError(fmt.Sprintf(
				"product '%s' is covered by multiple active discount promotions: %s; only one discount promotion may be active for a product at any given time",
				line.Item.ProductID, strings.Join(matching, ", ")))
		}
	}
	return nil
}

func findApplicableDiscount(productID string, activeDiscounts []promo.DiscountPromotion) *promo.DiscountPromotion {
	for i := range activeDiscounts {
		if activeDiscounts[i].AppliesTo(productID) {
			return &activeDiscounts[i]
		}
	}
	return nil
}
