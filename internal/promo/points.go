package promo

import (
	"strings"
	"time"

	"github.com/onestop/basket-api/internal/catalog"
	"github.com/onestop/basket-api/internal/common"
	"github.com/onestop/basket-api/internal/money"
)

// PointsPromotion grants loyalty points per currency unit spent during a date
// window, optionally restricted to one product category.
type PointsPromotion struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	// CategoryFilter restricts accrual to one category; nil means any.
	CategoryFilter  *catalog.Category
	PointsPerDollar int
}

// NewPointsPromotion validates and constructs a points promotion.
func NewPointsPromotion(id, name string, startDate, endDate time.Time, categoryFilter *catalog.Category, pointsPerDollar int) (PointsPromotion, error) {
	if strings.TrimSpace(id) == "" {
		return PointsPromotion{}, common.InvalidArgumentError("promotion id cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return PointsPromotion{}, common.InvalidArgumentError("promotion name cannot be empty")
	}
	start := DateOnly(startDate)
	end := DateOnly(endDate)
	if end.Before(start) {
		return PointsPromotion{}, common.InvalidArgumentError("end date cannot be before start date")
	}
	if pointsPerDollar < 0 {
		return PointsPromotion{}, common.InvalidArgumentError("points per dollar cannot be negative")
	}
	return PointsPromotion{
		ID:              id,
		Name:            name,
		StartDate:       start,
		EndDate:         end,
		CategoryFilter:  categoryFilter,
		PointsPerDollar: pointsPerDollar,
	}, nil
}

// ActiveOn reports whether the date-normalized instant falls inside the
// promotion window, inclusive.
func (p PointsPromotion) ActiveOn(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(p.StartDate) && !d.After(p.EndDate)
}

// AppliesTo reports whether purchases in the category qualify for points.
func (p PointsPromotion) AppliesTo(category catalog.Category) bool {
	return p.CategoryFilter == nil || *p.CategoryFilter == category
}

// Points returns the floored points for a qualifying amount.
func (p PointsPromotion) Points(amount money.Amount) (int, error) {
	if amount.IsNegative() {
		return 0, common.InvalidArgumentError("amount cannot be negative")
	}
	return int(amount.Mul(money.FromInt(int64(p.PointsPerDollar))).Floor().IntPart()), nil
}
