package promo

import (
	"time"

	"github.com/onestop/basket-api/internal/catalog"
	"github.com/onestop/basket-api/internal/money"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FixtureDiscountPromotions returns the reference discount promotions.
func FixtureDiscountPromotions() []DiscountPromotion {
	fuel, err := NewDiscountPromotion(
		"DP001", "Fuel Discount Promo",
		date(2020, time.January, 1), date(2020, time.February, 15),
		money.FromInt(20), []string{"PRD02"},
	)
	if err != nil {
		panic(err)
	}
	// DP002 lists no eligible products, so it never discounts anything.
	happy, err := NewDiscountPromotion(
		"DP002", "Happy Promo",
		date(2020, time.March, 2), date(2020, time.March, 20),
		money.FromInt(15), nil,
	)
	if err != nil {
		panic(err)
	}
	return []DiscountPromotion{fuel, happy}
}

// FixturePointsPromotions returns the reference points promotions. Their
// windows never overlap, preserving the at-most-one-active contract.
func FixturePointsPromotions() []PointsPromotion {
	fuel := catalog.CategoryFuel
	shop := catalog.CategoryShop

	newYear, err := NewPointsPromotion(
		"PP001", "New Year Promo",
		date(2020, time.January, 1), date(2020, time.January, 30),
		nil, 2,
	)
	if err != nil {
		panic(err)
	}
	fuelPromo, err := NewPointsPromotion(
		"PP002", "Fuel Promo",
		date(2020, time.February, 5), date(2020, time.February, 15),
		&fuel, 3,
	)
	if err != nil {
		panic(err)
	}
	shopPromo, err := NewPointsPromotion(
		"PP003", "Shop Promo",
		date(2020, time.March, 1), date(2020, time.March, 20),
		&shop, 4,
	)
	if err != nil {
		panic(err)
	}
	return []PointsPromotion{newYear, fuelPromo, shopPromo}
}
