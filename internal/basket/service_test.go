package basket

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/onestop/basket-api/internal/catalog"
	"github.com/onestop/basket-api/internal/common"
	"github.com/onestop/basket-api/internal/promo"
)

type failingDiscounts struct{ err error }

func (f failingDiscounts) ActiveOn(context.Context, time.Time) ([]promo.DiscountPromotion, error) {
	return nil, f.err
}

func newService() *Service {
	return &Service{
		Products:  catalog.NewMemorySource(catalog.FixtureProducts()...),
		Discounts: promo.NewMemoryDiscountSource(promo.FixtureDiscountPromotions()...),
		Points:    promo.NewMemoryPointsSource(promo.FixturePointsPromotions()...),
		Log:       zerolog.Nop(),
	}
}

func mustItem(t *testing.T, id string, qty int) LineItem {
	t.Helper()
	item, err := NewLineItem(id, qty)
	require.NoError(t, err)
	return item
}

func TestServiceCalculateReferenceScenario(t *testing.T) {
	svc := newService()
	resp, err := svc.Calculate(context.Background(), Request{
		CustomerID:      uuid.New(),
		LoyaltyCard:     "CTX0000001",
		TransactionDate: time.Date(2020, time.January, 10, 0, 0, 0, 0, time.UTC),
		Items: []LineItem{
			mustItem(t, "PRD01", 3),
			mustItem(t, "PRD02", 10),
		},
	})
	require.NoError(t, err)
	require.Equal(t, "16.6", resp.Result.TotalAmount.String())
	require.Equal(t, "2.6", resp.Result.DiscountApplied.String())
	require.Equal(t, "14", resp.Result.GrandTotal.String())
	require.Equal(t, 28, resp.Result.PointsEarned)
}

func TestServiceReportsAllMissingProducts(t *testing.T) {
	svc := newService()
	_, err := svc.Calculate(context.Background(), Request{
		CustomerID:      uuid.New(),
		TransactionDate: time.Date(2020, time.January, 10, 0, 0, 0, 0, time.UTC),
		Items: []LineItem{
			mustItem(t, "PRD01", 1),
			mustItem(t, "PRD97", 1),
			mustItem(t, "PRD98", 2),
		},
	})
	require.Error(t, err)
	appErr := common.AsAppError(err)
	require.Equal(t, common.CodeNotFound, appErr.Code)
	require.Contains(t, appErr.Message, "PRD97")
	require.Contains(t, appErr.Message, "PRD98")
	require.NotContains(t, appErr.Message, "PRD01")
}

func TestServiceBlankLoyaltyCardEarnsNoPoints(t *testing.T) {
	svc := newService()
	resp, err := svc.Calculate(context.Background(), Request{
		CustomerID:      uuid.New(),
		LoyaltyCard:     "   ",
		TransactionDate: time.Date(2020, time.January, 10, 0, 0, 0, 0, time.UTC),
		Items:           []LineItem{mustItem(t, "PRD01", 3)},
	})
	require.NoError(t, err)
	require.Zero(t, resp.Result.PointsEarned)
}

func TestServiceEmptyBasket(t *testing.T) {
	svc := newService()
	_, err := svc.Calculate(context.Background(), Request{
		CustomerID:      uuid.New(),
		TransactionDate: time.Now(),
	})
	require.Error(t, err)
	require.Equal(t, common.CodeValidation, common.AsAppError(err).Code)
}

func TestServiceSourceFailureAborts(t *testing.T) {
	svc := newService()
	svc.Discounts = failingDiscounts{err: errors.New("discount source down")}
	_, err := svc.Calculate(context.Background(), Request{
		CustomerID:      uuid.New(),
		TransactionDate: time.Date(2020, time.January, 10, 0, 0, 0, 0, time.UTC),
		Items:           []LineItem{mustItem(t, "PRD01", 1)},
	})
	require.ErrorContains(t, err, "discount source down")
}

func TestServiceCaseInsensitiveBasketIDs(t *testing.T) {
	svc := newService()
	resp, err := svc.Calculate(context.Background(), Request{
		CustomerID:      uuid.New(),
		LoyaltyCard:     "CTX0000001",
		TransactionDate: time.Date(2020, time.January, 10, 0, 0, 0, 0, time.UTC),
		Items:           []LineItem{mustItem(t, "prd02", 10)},
	})
	require.NoError(t, err)
	require.Equal(t, "13", resp.Result.TotalAmount.String())
	require.Equal(t, "2.6", resp.Result.DiscountApplied.String())
}
