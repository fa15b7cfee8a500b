package promo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/onestop/basket-api/internal/catalog"
	"github.com/onestop/basket-api/internal/money"
)

// PGDiscountSource resolves active discount promotions from Postgres.
type PGDiscountSource struct {
	pool *pgxpool.Pool
}

// NewPGDiscountSource constructs a Postgres-backed discount source.
func NewPGDiscountSource(pool *pgxpool.Pool) *PGDiscountSource {
	return &PGDiscountSource{pool: pool}
}

// ActiveOn implements DiscountSource.
func (s *PGDiscountSource) ActiveOn(ctx context.Context, date time.Time) ([]DiscountPromotion, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT p.id, p.name, p.start_date, p.end_date, p.discount_percentage::text,
		       COALESCE(array_agg(e.product_id) FILTER (WHERE e.product_id IS NOT NULL), '{}')
		FROM discount_promotions p
		LEFT JOIN discount_promotion_products e ON e.promotion_id = p.id
		WHERE $1::date BETWEEN p.start_date AND p.end_date
		GROUP BY p.id, p.name, p.start_date, p.end_date, p.discount_percentage
		ORDER BY p.id`, DateOnly(date))
	if err != nil {
		return nil, fmt.Errorf("query discount promotions: %w", err)
	}
	defer rows.Close()

	var promotions []DiscountPromotion
	for rows.Next() {
		var (
			id, name, rawPercentage string
			startDate, endDate      time.Time
			eligible                []string
		)
		if err := rows.Scan(&id, &name, &startDate, &endDate, &rawPercentage, &eligible); err != nil {
			return nil, fmt.Errorf("scan discount promotion: %w", err)
		}
		percentage, err := money.FromString(rawPercentage)
		if err != nil {
			return nil, fmt.Errorf("promotion %s percentage: %w", id, err)
		}
		promotion, err := NewDiscountPromotion(id, name, startDate, endDate, percentage, eligible)
		if err != nil {
			return nil, fmt.Errorf("promotion %s: %w", id, err)
		}
		promotions = append(promotions, promotion)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read discount promotions: %w", err)
	}
	return promotions, nil
}

// PGPointsSource resolves the active points promotion from Postgres.
type PGPointsSource struct {
	pool *pgxpool.Pool
}

// NewPGPointsSource constructs a Postgres-backed points source.
func NewPGPointsSource(pool *pgxpool.Pool) *PGPointsSource {
	return &PGPointsSource{pool: pool}
}

// ActiveOn implements PointsSource. At most one promotion is returned even if
// the data holds overlapping windows.
func (s *PGPointsSource) ActiveOn(ctx context.Context, date time.Time) (*PointsPromotion, error) {
	var (
		id, name        string
		startDate       time.Time
		endDate         time.Time
		rawFilter       *string
		pointsPerDollar int
	)
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, start_date, end_date, category_filter, points_per_dollar
		FROM points_promotions
		WHERE $1::date BETWEEN start_date AND end_date
		ORDER BY start_date
		LIMIT 1`, DateOnly(date)).Scan(&id, &name, &startDate, &endDate, &rawFilter, &pointsPerDollar)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query points promotion: %w", err)
	}

	var filter *catalog.Category
	if rawFilter != nil {
		category, err := catalog.ParseCategory(*rawFilter)
		if err != nil {
			return nil, fmt.Errorf("promotion %s: %w", id, err)
		}
		filter = &category
	}
	promotion, err := NewPointsPromotion(id, name, startDate, endDate, filter, pointsPerDollar)
	if err != nil {
		return nil, fmt.Errorf("promotion %s: %w", id, err)
	}
	return &promotion, nil
}
