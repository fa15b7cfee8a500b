package basket

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/onestop/basket-api/internal/catalog"
	"github.com/onestop/basket-api/internal/common"
	"github.com/onestop/basket-api/internal/promo"
)

// Request carries a basket calculation request into the service.
type Request struct {
	CustomerID      uuid.UUID
	LoyaltyCard     string
	TransactionDate time.Time
	Items           []LineItem
}

// Response echoes request identity alongside the computed result.
type Response struct {
	CustomerID      uuid.UUID
	LoyaltyCard     string
	TransactionDate time.Time
	Result          Result
}

// Service resolves products and active promotions for a transaction date and
// delegates the calculation to the pure engine.
type Service struct {
	Products  catalog.Source
	Discounts promo.DiscountSource
	Points    promo.PointsSource
	Log       zerolog.Logger
}

// Calculate implements the orchestration: bulk product resolution with batch
// missing-id reporting, concurrent promotion fetches, then the engine. Any
// source failure aborts the whole request; there is no partial result.
func (s *Service) Calculate(ctx context.Context, req Request) (Response, error) {
	if len(req.Items) == 0 {
		return Response{}, common.ValidationError("basket cannot be empty", nil)
	}

	distinct := distinctProductIDs(req.Items)

	var (
		products        map[string]catalog.Product
		activeDiscounts []promo.DiscountPromotion
		activePoints    *promo.PointsPromotion
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.Products.ByIDs(gctx, distinct)
		return err
	})
	g.Go(func() error {
		var err error
		activeDiscounts, err = s.Discounts.ActiveOn(gctx, req.TransactionDate)
		return err
	})
	g.Go(func() error {
		var err error
		activePoints, err = s.Points.ActiveOn(gctx, req.TransactionDate)
		return err
	})
	if err := g.Wait(); err != nil {
		return Response{}, err
	}

	// Report every missing product at once, not just the first.
	var missing []string
	for _, id := range distinct {
		if _, ok := products[catalog.NormalizeID(id)]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return Response{}, common.NotFoundError(fmt.Sprintf("product not found: %s", strings.Join(missing, ", ")))
	}

	lines := make([]Line, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, Line{Item: item, Product: products[catalog.NormalizeID(item.ProductID)]})
	}

	hasLoyaltyCard := strings.TrimSpace(req.LoyaltyCard) != ""
	result, err := Calculate(lines, activeDiscounts, activePoints, hasLoyaltyCard)
	if err != nil {
		return Response{}, err
	}

	s.Log.Debug().
		Str("customer_id", req.CustomerID.String()).
		Int("lines", len(lines)).
		Bool("loyalty", hasLoyaltyCard).
		Str("total", result.TotalAmount.String()).
		Str("discount", result.DiscountApplied.String()).
		Int("points", result.PointsEarned).
		Msg("basket calculated")

	return Response{
		CustomerID:      req.CustomerID,
		LoyaltyCard:     req.LoyaltyCard,
		TransactionDate: req.TransactionDate,
		Result:          result,
	}, nil
}

func distinctProductIDs(items []LineItem) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		key := catalog.NormalizeID(item.ProductID)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}
