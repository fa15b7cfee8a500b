package promo

import (
	"strings"
	"time"

	"github.com/onestop/basket-api/internal/catalog"
	"github.com/onestop/basket-api/internal/common"
	"github.com/onestop/basket-api/internal/money"
)

// DateOnly discards the time component, keeping year/month/day in UTC.
// Promotion windows are date-granular and inclusive on both ends.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DiscountPromotion grants a percentage discount to an explicit set of
// eligible products during a date window. Immutable after construction.
type DiscountPromotion struct {
	ID         string
	Name       string
	StartDate  time.Time
	EndDate    time.Time
	Percentage money.Amount

	eligible map[string]struct{}
}

// NewDiscountPromotion validates and constructs a discount promotion. The
// eligible id set is normalized for case-insensitive membership tests.
func NewDiscountPromotion(id, name string, startDate, endDate time.Time, percentage money.Amount, eligibleProductIDs []string) (DiscountPromotion, error) {
	if strings.TrimSpace(id) == "" {
		return DiscountPromotion{}, common.InvalidArgumentError("promotion id cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return DiscountPromotion{}, common.InvalidArgumentError("promotion name cannot be empty")
	}
	start := DateOnly(startDate)
	end := DateOnly(endDate)
	if end.Before(start) {
		return DiscountPromotion{}, common.InvalidArgumentError("end date cannot be before start date")
	}
	if percentage.IsNegative() || percentage.GreaterThan(money.FromInt(100)) {
		return DiscountPromotion{}, common.InvalidArgumentError("discount percentage must be between 0 and 100")
	}
	eligible := make(map[string]struct{}, len(eligibleProductIDs))
	for _, pid := range eligibleProductIDs {
		key := catalog.NormalizeID(pid)
		if key == "" {
			continue
		}
		eligible[key] = struct{}{}
	}
	return DiscountPromotion{
		ID:         id,
		Name:       name,
		StartDate:  start,
		EndDate:    end,
		Percentage: percentage,
		eligible:   eligible,
	}, nil
}

// ActiveOn reports whether the date-normalized instant falls inside the
// promotion window, inclusive.
func (p DiscountPromotion) ActiveOn(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(p.StartDate) && !d.After(p.EndDate)
}

// AppliesTo reports case-insensitive membership in the eligible id set.
func (p DiscountPromotion) AppliesTo(productID string) bool {
	_, ok := p.eligible[catalog.NormalizeID(productID)]
	return ok
}

// Discount returns the rounded discount amount for a line total.
func (p DiscountPromotion) Discount(lineTotal money.Amount) (money.Amount, error) {
	if lineTotal.IsNegative() {
		return money.Zero, common.InvalidArgumentError("line total cannot be negative")
	}
	return money.Round(lineTotal.Mul(p.Percentage).Div(money.FromInt(100))), nil
}

// EligibleProductIDs returns the normalized eligible id set.
func (p DiscountPromotion) EligibleProductIDs() []string {
	ids := make([]string, 0, len(p.eligible))
	for id := range p.eligible {
		ids = append(ids, id)
	}
	return ids
}
