package checkout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/backend-kasir/internal/cart"
	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/common"
	"github.com/noah-isme/backend-kasir/internal/customer"
	"github.com/noah-isme/backend-kasir/internal/money"
	"github.com/noah-isme/backend-kasir/internal/obs"
)

// Handler exposes the checkout operation over HTTP.
type Handler struct {
	Customers *customer.Service
	Svc       *Service
}

type receiptResponse struct {
	Lines            []Line      `json:"lines"`
	Subtotal         money.Money `json:"subtotal"`
	Shipping         money.Money `json:"shipping"`
	Total            money.Money `json:"total"`
	RemainingBalance money.Money `json:"remainingBalance"`
	ItemCount        int         `json:"itemCount"`
}

// Checkout runs the checkout sequence for the addressed customer and
// returns the receipt.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var result Result
	err := h.Customers.Do(chi.URLParam(r, "id"), func(c *customer.Customer) error {
		var processErr error
		result, processErr = h.Svc.Process(r.Context(), c)
		return processErr
	})
	h.record(err, result)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data": receiptResponse{
			Lines:            result.Lines(),
			Subtotal:         result.Subtotal(),
			Shipping:         result.ShippingCost(),
			Total:            result.Total(),
			RemainingBalance: result.RemainingBalance(),
			ItemCount:        result.TotalItemCount(),
		},
	})
}

func (h *Handler) record(err error, result Result) {
	if obs.CheckoutTotal == nil {
		return
	}
	switch {
	case err == nil:
		obs.CheckoutTotal.WithLabelValues("ok").Inc()
		if obs.OrderValueTotal != nil {
			if value, parseErr := strconv.ParseFloat(result.Total().String(), 64); parseErr == nil {
				obs.OrderValueTotal.Add(value)
			}
		}
	case errors.Is(err, cart.ErrEmpty):
		obs.CheckoutTotal.WithLabelValues("cart_empty").Inc()
	case errors.Is(err, catalog.ErrProductExpired):
		obs.CheckoutTotal.WithLabelValues("expired").Inc()
	case errors.Is(err, catalog.ErrInsufficientStock):
		obs.CheckoutTotal.WithLabelValues("insufficient_stock").Inc()
	case errors.Is(err, customer.ErrInsufficientBalance):
		obs.CheckoutTotal.WithLabelValues("insufficient_balance").Inc()
	default:
		obs.CheckoutTotal.WithLabelValues("error").Inc()
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var (
		stockErr   *catalog.StockError
		balanceErr *customer.BalanceError
		expiredErr *catalog.ExpiredError
	)
	switch {
	case errors.Is(err, customer.ErrNotFound):
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "customer not found", nil)
	case errors.Is(err, cart.ErrEmpty):
		common.JSONError(w, http.StatusBadRequest, "CART_EMPTY", "cannot checkout with an empty cart", nil)
	case errors.As(err, &expiredErr):
		common.JSONError(w, http.StatusUnprocessableEntity, "PRODUCT_EXPIRED", expiredErr.Error(), nil)
	case errors.As(err, &stockErr):
		common.JSONError(w, http.StatusConflict, "INSUFFICIENT_STOCK", stockErr.Error(), map[string]any{
			"available": stockErr.Available,
			"requested": stockErr.Requested,
		})
	case errors.As(err, &balanceErr):
		common.JSONError(w, http.StatusPaymentRequired, "INSUFFICIENT_BALANCE", balanceErr.Error(), map[string]any{
			"required":  balanceErr.Required,
			"available": balanceErr.Available,
		})
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to process checkout", nil)
	}
}
