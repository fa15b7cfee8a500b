package catalog

import "github.com/onestop/basket-api/internal/money"

// FixtureProducts returns the reference catalog. Used by the in-memory source,
// the database seeder, and tests.
func FixtureProducts() []Product {
	return []Product{
		{ID: "PRD01", Name: "Vortex 95", Category: CategoryFuel, UnitPrice: money.MustFromString("1.2")},
		{ID: "PRD02", Name: "Vortex 98", Category: CategoryFuel, UnitPrice: money.MustFromString("1.3")},
		{ID: "PRD03", Name: "Diesel", Category: CategoryFuel, UnitPrice: money.MustFromString("1.1")},
		{ID: "PRD04", Name: "Twix 55g", Category: CategoryShop, UnitPrice: money.MustFromString("2.3")},
		{ID: "PRD05", Name: "Mars 72g", Category: CategoryShop, UnitPrice: money.MustFromString("5.1")},
		{ID: "PRD06", Name: "SNICKERS 72G", Category: CategoryShop, UnitPrice: money.MustFromString("3.4")},
		{ID: "PRD07", Name: "Bounty 3 63g", Category: CategoryShop, UnitPrice: money.MustFromString("6.9")},
		{ID: "PRD08", Name: "Snickers 50g", Category: CategoryShop, UnitPrice: money.MustFromString("4.0")},
	}
}
