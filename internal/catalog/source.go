package catalog

import "context"

// Source resolves products in bulk. The returned map is keyed by normalized
// product id and contains only the ids the source could resolve; missing ids
// are simply absent, never an error.
type Source interface {
	ByIDs(ctx context.Context, ids []string) (map[string]Product, error)
}

// MemorySource serves products from a fixed in-memory set. It is constructed
// per use from explicit fixture data, so tests share no global state.
type MemorySource struct {
	products map[string]Product
}

// NewMemorySource builds a source over the given products.
func NewMemorySource(products ...Product) *MemorySource {
	m := make(map[string]Product, len(products))
	for _, p := range products {
		m[NormalizeID(p.ID)] = p
	}
	return &MemorySource{products: m}
}

// ByIDs implements Source.
func (s *MemorySource) ByIDs(_ context.Context, ids []string) (map[string]Product, error) {
	result := make(map[string]Product, len(ids))
	for _, id := range ids {
		key := NormalizeID(id)
		if p, ok := s.products[key]; ok {
			result[key] = p
		}
	}
	return result, nil
}
