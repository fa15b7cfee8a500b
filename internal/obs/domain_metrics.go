package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// BasketCalculationsTotal counts basket calculation outcomes.
	BasketCalculationsTotal *prometheus.CounterVec
	// BasketPointsEarnedTotal accumulates loyalty points granted.
	BasketPointsEarnedTotal prometheus.Counter
	// BasketDiscountAmount records the discount applied per calculation.
	BasketDiscountAmount prometheus.Histogram
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		BasketCalculationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "basket_calculations_total",
			Help:      "Count of basket calculation outcomes.",
		}, []string{"result"})
		BasketPointsEarnedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "basket_points_earned_total",
			Help:      "Total loyalty points granted by successful calculations.",
		})
		BasketDiscountAmount = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "basket_discount_amount",
			Help:      "Discount applied per successful calculation.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100},
		})

		mustRegisterCollector(reg, BasketCalculationsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				BasketCalculationsTotal = v
			}
		})
		mustRegisterCollector(reg, BasketPointsEarnedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				BasketPointsEarnedTotal = v
			}
		})
		mustRegisterCollector(reg, BasketDiscountAmount, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Histogram); ok {
				BasketDiscountAmount = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
