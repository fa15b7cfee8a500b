package basket

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/onestop/basket-api/internal/catalog"
	"github.com/onestop/basket-api/internal/money"
	"github.com/onestop/basket-api/internal/obs"
	"github.com/onestop/basket-api/internal/promo"
)

func newHandler(t *testing.T, svc *Service) *Handler {
	t.Helper()
	obs.MustRegisterDomainMetrics("basket_test", prometheus.NewRegistry())
	return &Handler{Svc: svc, Validate: validator.New()}
}

func postCalculate(t *testing.T, h *Handler, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/basket/calculate", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Calculate(rr, req)
	return rr
}

func TestCalculateEndpoint(t *testing.T) {
	h := newHandler(t, newService())
	rr := postCalculate(t, h, `{
		"CustomerId": "8e4e8991-aaee-495b-9f24-52d5d0e509c5",
		"LoyaltyCard": "CTX0000001",
		"TransactionDate": "10-Jan-2020",
		"Basket": [
			{"ProductId": "PRD01", "Quantity": 3},
			{"ProductId": "PRD02", "Quantity": 10}
		]
	}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp calculateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "8e4e8991-aaee-495b-9f24-52d5d0e509c5", resp.CustomerID)
	require.NotNil(t, resp.LoyaltyCard)
	require.Equal(t, "CTX0000001", *resp.LoyaltyCard)
	require.Equal(t, "10-Jan-2020", resp.TransactionDate)
	require.InDelta(t, 16.60, resp.TotalAmount, 1e-9)
	require.InDelta(t, 2.60, resp.DiscountApplied, 1e-9)
	require.InDelta(t, 14.00, resp.GrandTotal, 1e-9)
	require.Equal(t, 28, resp.PointsEarned)
}

func TestCalculateEndpointBadDate(t *testing.T) {
	h := newHandler(t, newService())
	rr := postCalculate(t, h, `{
		"CustomerId": "8e4e8991-aaee-495b-9f24-52d5d0e509c5",
		"TransactionDate": "2020-01-10",
		"Basket": [{"ProductId": "PRD01", "Quantity": 1}]
	}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "dd-MMM-yyyy")
	require.Contains(t, rr.Body.String(), "10-Jan-2020")
}

func TestCalculateEndpointEmptyBasket(t *testing.T) {
	h := newHandler(t, newService())
	rr := postCalculate(t, h, `{
		"CustomerId": "8e4e8991-aaee-495b-9f24-52d5d0e509c5",
		"TransactionDate": "10-Jan-2020",
		"Basket": []
	}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "VALIDATION")
}

func TestCalculateEndpointMissingProduct(t *testing.T) {
	h := newHandler(t, newService())
	rr := postCalculate(t, h, `{
		"CustomerId": "8e4e8991-aaee-495b-9f24-52d5d0e509c5",
		"TransactionDate": "10-Jan-2020",
		"Basket": [{"ProductId": "PRD42", "Quantity": 1}]
	}`)
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Contains(t, rr.Body.String(), "PRD42")
}

func TestCalculateEndpointOverlapConflict(t *testing.T) {
	first, err := promo.NewDiscountPromotion("DP010", "First",
		time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, time.January, 31, 0, 0, 0, 0, time.UTC),
		money.FromInt(20), []string{"PRD01"})
	require.NoError(t, err)
	second, err := promo.NewDiscountPromotion("DP011", "Second",
		time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, time.January, 31, 0, 0, 0, 0, time.UTC),
		money.FromInt(10), []string{"PRD01"})
	require.NoError(t, err)

	svc := &Service{
		Products:  catalog.NewMemorySource(catalog.FixtureProducts()...),
		Discounts: promo.NewMemoryDiscountSource(first, second),
		Points:    promo.NewMemoryPointsSource(),
		Log:       zerolog.Nop(),
	}
	h := newHandler(t, svc)
	rr := postCalculate(t, h, `{
		"CustomerId": "8e4e8991-aaee-495b-9f24-52d5d0e509c5",
		"TransactionDate": "10-Jan-2020",
		"Basket": [{"ProductId": "PRD01", "Quantity": 1}]
	}`)
	require.Equal(t, http.StatusConflict, rr.Code)
	require.Contains(t, rr.Body.String(), "DP010")
	require.Contains(t, rr.Body.String(), "DP011")
}
