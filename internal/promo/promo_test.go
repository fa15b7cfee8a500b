package promo

import (
	"context"
	"testing"
	"time"

	"github.com/onestop/basket-api/internal/catalog"
	"github.com/onestop/basket-api/internal/money"
)

func TestDiscountActiveWindowInclusive(t *testing.T) {
	p, err := NewDiscountPromotion("DP001", "Fuel Discount Promo",
		date(2020, time.January, 1), date(2020, time.February, 15),
		money.FromInt(20), []string{"PRD02"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.ActiveOn(date(2020, time.January, 1)) {
		t.Fatal("start date must be active")
	}
	if !p.ActiveOn(date(2020, time.February, 15)) {
		t.Fatal("end date must be active")
	}
	if !p.ActiveOn(time.Date(2020, time.February, 15, 23, 59, 0, 0, time.UTC)) {
		t.Fatal("time component must be discarded")
	}
	if p.ActiveOn(date(2020, time.February, 16)) {
		t.Fatal("day after end date must not be active")
	}
}

func TestDiscountAppliesCaseInsensitive(t *testing.T) {
	p, err := NewDiscountPromotion("DP001", "Fuel Discount Promo",
		date(2020, time.January, 1), date(2020, time.February, 15),
		money.FromInt(20), []string{"PRD02"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.AppliesTo("prd02") || !p.AppliesTo("PRD02") {
		t.Fatal("membership must be case-insensitive")
	}
	if p.AppliesTo("PRD01") {
		t.Fatal("PRD01 is not eligible")
	}
}

func TestDiscountAmountRounded(t *testing.T) {
	p, err := NewDiscountPromotion("DP003", "Odd Promo",
		date(2020, time.January, 1), date(2020, time.January, 31),
		money.MustFromString("33.33"), []string{"PRD01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	discount, err := p.Discount(money.MustFromString("3.333"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if discount.String() != "1.11" {
		t.Fatalf("expected 1.11, got %s", discount.String())
	}
	if _, err := p.Discount(money.MustFromString("-1")); err == nil {
		t.Fatal("expected error for negative line total")
	}
}

func TestDiscountConstructionValidation(t *testing.T) {
	start := date(2020, time.January, 10)
	end := date(2020, time.January, 1)
	if _, err := NewDiscountPromotion("DP001", "X", start, end, money.FromInt(10), nil); err == nil {
		t.Fatal("expected error when end date precedes start date")
	}
	if _, err := NewDiscountPromotion("", "X", end, start, money.FromInt(10), nil); err == nil {
		t.Fatal("expected error for blank id")
	}
	if _, err := NewDiscountPromotion("DP001", "X", end, start, money.FromInt(101), nil); err == nil {
		t.Fatal("expected error for percentage above 100")
	}
}

func TestPointsAppliesToCategory(t *testing.T) {
	shop := catalog.CategoryShop
	p, err := NewPointsPromotion("PP003", "Shop Promo",
		date(2020, time.March, 1), date(2020, time.March, 20), &shop, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.AppliesTo(catalog.CategoryShop) {
		t.Fatal("Shop must qualify")
	}
	if p.AppliesTo(catalog.CategoryFuel) {
		t.Fatal("Fuel must not qualify")
	}

	anyP, err := NewPointsPromotion("PP001", "New Year Promo",
		date(2020, time.January, 1), date(2020, time.January, 30), nil, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !anyP.AppliesTo(catalog.CategoryFuel) || !anyP.AppliesTo(catalog.CategoryShop) {
		t.Fatal("nil filter must apply to every category")
	}
}

func TestPointsFloored(t *testing.T) {
	p, err := NewPointsPromotion("PP001", "New Year Promo",
		date(2020, time.January, 1), date(2020, time.January, 30), nil, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	points, err := p.Points(money.MustFromString("13.99"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if points != 27 {
		t.Fatalf("expected 27 points, got %d", points)
	}
	if _, err := p.Points(money.MustFromString("-0.01")); err == nil {
		t.Fatal("expected error for negative amount")
	}
}

func TestMemorySourcesFilterByDate(t *testing.T) {
	ctx := context.Background()
	discounts := NewMemoryDiscountSource(FixtureDiscountPromotions()...)
	points := NewMemoryPointsSource(FixturePointsPromotions()...)

	active, err := discounts.ActiveOn(ctx, date(2020, time.January, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 1 || active[0].ID != "DP001" {
		t.Fatalf("expected only DP001 active, got %+v", active)
	}

	pp, err := points.ActiveOn(ctx, date(2020, time.January, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pp == nil || pp.ID != "PP001" {
		t.Fatalf("expected PP001 active, got %+v", pp)
	}

	none, err := points.ActiveOn(ctx, date(2021, time.June, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if none != nil {
		t.Fatalf("expected no active promotion, got %+v", none)
	}
}
