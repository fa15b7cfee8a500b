package basket

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/onestop/basket-api/internal/common"
	"github.com/onestop/basket-api/internal/obs"
)

// DateLayout is the wire format for transaction dates (dd-MMM-yyyy).
const DateLayout = "02-Jan-2006"

// Handler exposes the basket calculation endpoint.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
}

type calculateRequest struct {
	CustomerID      string              `json:"CustomerId" validate:"required,uuid"`
	LoyaltyCard     *string             `json:"LoyaltyCard"`
	TransactionDate string              `json:"TransactionDate" validate:"required"`
	Basket          []calculateItemBody `json:"Basket" validate:"required,min=1,dive"`
}

type calculateItemBody struct {
	ProductID string `json:"ProductId" validate:"required"`
	Quantity  int    `json:"Quantity" validate:"required,gt=0"`
}

type calculateResponse struct {
	CustomerID      string  `json:"CustomerId"`
	LoyaltyCard     *string `json:"LoyaltyCard"`
	TransactionDate string  `json:"TransactionDate"`
	TotalAmount     float64 `json:"TotalAmount"`
	DiscountApplied float64 `json:"DiscountApplied"`
	GrandTotal      float64 `json:"GrandTotal"`
	PointsEarned    int     `json:"PointsEarned"`
}

// Calculate handles POST /api/v1/basket/calculate.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var body calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		obs.BasketCalculationsTotal.WithLabelValues("validation").Inc()
		common.JSONError(w, http.StatusBadRequest, common.CodeValidation, "invalid JSON payload", nil)
		return
	}
	if err := h.Validate.Struct(body); err != nil {
		obs.BasketCalculationsTotal.WithLabelValues("validation").Inc()
		common.JSONError(w, http.StatusBadRequest, common.CodeValidation, "invalid request", fieldErrors(err))
		return
	}

	customerID, err := uuid.Parse(body.CustomerID)
	if err != nil {
		obs.BasketCalculationsTotal.WithLabelValues("validation").Inc()
		common.JSONError(w, http.StatusBadRequest, common.CodeValidation, "customer id must be a valid UUID", nil)
		return
	}

	transactionDate, err := time.Parse(DateLayout, strings.TrimSpace(body.TransactionDate))
	if err != nil {
		obs.BasketCalculationsTotal.WithLabelValues("validation").Inc()
		common.JSONError(w, http.StatusBadRequest, common.CodeValidation,
			"transaction date must use the dd-MMM-yyyy format, e.g. 10-Jan-2020", nil)
		return
	}

	items := make([]LineItem, 0, len(body.Basket))
	for _, entry := range body.Basket {
		item, err := NewLineItem(entry.ProductID, entry.Quantity)
		if err != nil {
			obs.BasketCalculationsTotal.WithLabelValues("validation").Inc()
			common.JSONAppError(w, err)
			return
		}
		items = append(items, item)
	}

	loyaltyCard := ""
	if body.LoyaltyCard != nil {
		loyaltyCard = *body.LoyaltyCard
	}

	resp, err := h.Svc.Calculate(r.Context(), Request{
		CustomerID:      customerID,
		LoyaltyCard:     loyaltyCard,
		TransactionDate: transactionDate,
		Items:           items,
	})
	if err != nil {
		obs.BasketCalculationsTotal.WithLabelValues(resultLabel(err)).Inc()
		common.JSONAppError(w, err)
		return
	}

	obs.BasketCalculationsTotal.WithLabelValues("ok").Inc()
	obs.BasketPointsEarnedTotal.Add(float64(resp.Result.PointsEarned))
	obs.BasketDiscountAmount.Observe(resp.Result.DiscountApplied.InexactFloat64())

	common.JSON(w, http.StatusOK, calculateResponse{
		CustomerID:      resp.CustomerID.String(),
		LoyaltyCard:     body.LoyaltyCard,
		TransactionDate: resp.TransactionDate.Format(DateLayout),
		TotalAmount:     resp.Result.TotalAmount.InexactFloat64(),
		DiscountApplied: resp.Result.DiscountApplied.InexactFloat64(),
		GrandTotal:      resp.Result.GrandTotal.InexactFloat64(),
		PointsEarned:    resp.Result.PointsEarned,
	})
}

func resultLabel(err error) string {
	appErr := common.AsAppError(err)
	switch appErr.Code {
	case common.CodeValidation, common.CodeInvalidArgument:
		return "validation"
	case common.CodeNotFound:
		return "not_found"
	case common.CodeDomainConflict:
		return "conflict"
	default:
		return "error"
	}
}

func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			details[fe.Field()] = "is required"
		case "min":
			details[fe.Field()] = "must not be empty"
		case "gt":
			details[fe.Field()] = "must be greater than " + fe.Param()
		case "uuid":
			details[fe.Field()] = "must be a valid UUID"
		default:
			details[fe.Field()] = "is invalid"
		}
	}
	return details
}
