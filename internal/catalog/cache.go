package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedSource is a read-through cache in front of another product source.
// Each product is cached individually under its normalized id; cache failures
// degrade to the inner source and are never surfaced to the caller.
type CachedSource struct {
	inner  Source
	client *redis.Client
	ttl    time.Duration
}

// NewCachedSource wraps a source with a Redis cache. A nil client or
// non-positive TTL disables caching.
func NewCachedSource(inner Source, client *redis.Client, ttl time.Duration) *CachedSource {
	return &CachedSource{inner: inner, client: client, ttl: ttl}
}

// ByIDs implements Source.
func (s *CachedSource) ByIDs(ctx context.Context, ids []string) (map[string]Product, error) {
	if s.client == nil || s.ttl <= 0 {
		return s.inner.ByIDs(ctx, ids)
	}

	result := make(map[string]Product, len(ids))
	var misses []string
	for _, id := range ids {
		key := NormalizeID(id)
		if _, ok := result[key]; ok {
			continue
		}
		var p Product
		ok, err := s.getJSON(ctx, cacheKey(key), &p)
		if err != nil || !ok {
			misses = append(misses, key)
			continue
		}
		result[key] = p
	}
	if len(misses) == 0 {
		return result, nil
	}

	fetched, err := s.inner.ByIDs(ctx, misses)
	if err != nil {
		return nil, err
	}
	for key, p := range fetched {
		result[key] = p
		_ = s.setJSON(ctx, cacheKey(key), p)
	}
	return result, nil
}

func cacheKey(id string) string {
	return "catalog:product:" + id
}

func (s *CachedSource) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (s *CachedSource) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}
