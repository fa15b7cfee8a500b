package promo

import (
	"context"
	"time"
)

// DiscountSource yields the discount promotions active on a date.
type DiscountSource interface {
	ActiveOn(ctx context.Context, date time.Time) ([]DiscountPromotion, error)
}

// PointsSource yields the points promotion active on a date, if any. The
// source contract guarantees at most one active points promotion per date.
type PointsSource interface {
	ActiveOn(ctx context.Context, date time.Time) (*PointsPromotion, error)
}

// MemoryDiscountSource filters a fixed promotion list by active window.
type MemoryDiscountSource struct {
	promotions []DiscountPromotion
}

// NewMemoryDiscountSource builds a source over the given promotions.
func NewMemoryDiscountSource(promotions ...DiscountPromotion) *MemoryDiscountSource {
	return &MemoryDiscountSource{promotions: promotions}
}

// ActiveOn implements DiscountSource.
func (s *MemoryDiscountSource) ActiveOn(_ context.Context, date time.Time) ([]DiscountPromotion, error) {
	var active []DiscountPromotion
	for _, p := range s.promotions {
		if p.ActiveOn(date) {
			active = append(active, p)
		}
	}
	return active, nil
}

// MemoryPointsSource returns the first promotion active on the date.
type MemoryPointsSource struct {
	promotions []PointsPromotion
}

// NewMemoryPointsSource builds a source over the given promotions.
func NewMemoryPointsSource(promotions ...PointsPromotion) *MemoryPointsSource {
	return &MemoryPointsSource{promotions: promotions}
}

// ActiveOn implements PointsSource.
func (s *MemoryPointsSource) ActiveOn(_ context.Context, date time.Time) (*PointsPromotion, error) {
	for _, p := range s.promotions {
		if p.ActiveOn(date) {
			active := p
			return &active, nil
		}
	}
	return nil, nil
}
