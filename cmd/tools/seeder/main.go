package main

import (
	"context"
	"log"
	"os"
	"strings"

	migrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/onestop/basket-api/internal/app"
	"github.com/onestop/basket-api/internal/catalog"
	"github.com/onestop/basket-api/internal/promo"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	m, err := migrate.New("file://migrations", migrateURL(dbURL))
	if err != nil {
		log.Fatalf("Failed to prepare migrations: %v", err)
	}
	if err := app.RunMigrations(m); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping DB: %v", err)
	}

	seedProducts(ctx, pool)
	seedDiscountPromotions(ctx, pool)
	seedPointsPromotions(ctx, pool)

	log.Println("Seeding completed successfully!")
}

// migrateURL rewrites the connection scheme for the migrate pgx/v5 driver.
func migrateURL(dbURL string) string {
	if strings.HasPrefix(dbURL, "postgresql://") {
		return "pgx5://" + strings.TrimPrefix(dbURL, "postgresql://")
	}
	if strings.HasPrefix(dbURL, "postgres://") {
		return "pgx5://" + strings.TrimPrefix(dbURL, "postgres://")
	}
	return dbURL
}

func seedProducts(ctx context.Context, pool *pgxpool.Pool) {
	for _, p := range catalog.FixtureProducts() {
		_, err := pool.Exec(ctx, `
			INSERT INTO products (id, name, category, unit_price)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name, category = EXCLUDED.category, unit_price = EXCLUDED.unit_price`,
			p.ID, p.Name, string(p.Category), p.UnitPrice.String())
		if err != nil {
			log.Fatalf("Failed to seed product %s: %v", p.ID, err)
		}
	}
	log.Printf("Seeded %d products", len(catalog.FixtureProducts()))
}

func seedDiscountPromotions(ctx context.Context, pool *pgxpool.Pool) {
	promotions := promo.FixtureDiscountPromotions()
	for _, p := range promotions {
		_, err := pool.Exec(ctx, `
			INSERT INTO discount_promotions (id, name, start_date, end_date, discount_percentage)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name, start_date = EXCLUDED.start_date,
			    end_date = EXCLUDED.end_date, discount_percentage = EXCLUDED.discount_percentage`,
			p.ID, p.Name, p.StartDate, p.EndDate, p.Percentage.String())
		if err != nil {
			log.Fatalf("Failed to seed discount promotion %s: %v", p.ID, err)
		}
		for _, productID := range p.EligibleProductIDs() {
			_, err := pool.Exec(ctx, `
				INSERT INTO discount_promotion_products (promotion_id, product_id)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING`,
				p.ID, productID)
			if err != nil {
				log.Fatalf("Failed to seed eligible product %s for %s: %v", productID, p.ID, err)
			}
		}
	}
	log.Printf("Seeded %d discount promotions", len(promotions))
}

func seedPointsPromotions(ctx context.Context, pool *pgxpool.Pool) {
	promotions := promo.FixturePointsPromotions()
	for _, p := range promotions {
		var filter *string
		if p.CategoryFilter != nil {
			value := string(*p.CategoryFilter)
			filter = &value
		}
		_, err := pool.Exec(ctx, `
			INSERT INTO points_promotions (id, name, start_date, end_date, category_filter, points_per_dollar)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name, start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date,
			    category_filter = EXCLUDED.category_filter, points_per_dollar = EXCLUDED.points_per_dollar`,
			p.ID, p.Name, p.StartDate, p.EndDate, filter, p.PointsPerDollar)
		if err != nil {
			log.Fatalf("Failed to seed points promotion %s: %v", p.ID, err)
		}
	}
	log.Printf("Seeded %d points promotions", len(promotions))
}
