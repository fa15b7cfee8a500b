package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/onestop/basket-api/internal/money"
)

// PGSource resolves products from Postgres.
type PGSource struct {
	pool *pgxpool.Pool
}

// NewPGSource constructs a Postgres-backed product source.
func NewPGSource(pool *pgxpool.Pool) *PGSource {
	return &PGSource{pool: pool}
}

// ByIDs implements Source. Ids are matched case-insensitively.
func (s *PGSource) ByIDs(ctx context.Context, ids []string) (map[string]Product, error) {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, NormalizeID(id))
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, category, unit_price::text
		FROM products
		WHERE lower(id) = ANY($1)`, keys)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	result := make(map[string]Product, len(keys))
	for rows.Next() {
		var (
			id, name, rawCategory, rawPrice string
		)
		if err := rows.Scan(&id, &name, &rawCategory, &rawPrice); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		category, err := ParseCategory(rawCategory)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", id, err)
		}
		price, err := money.FromString(rawPrice)
		if err != nil {
			return nil, fmt.Errorf("product %s unit price: %w", id, err)
		}
		product, err := NewProduct(id, name, category, price)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", id, err)
		}
		result[NormalizeID(id)] = product
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	return result, nil
}
