package customer

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/backend-kasir/internal/cart"
	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/common"
	"github.com/noah-isme/backend-kasir/internal/events"
	"github.com/noah-isme/backend-kasir/internal/money"
	"github.com/noah-isme/backend-kasir/internal/obs"
	"github.com/noah-isme/backend-kasir/internal/shipping"
)

// Handler wires the customer registry and cart operations to HTTP.
type Handler struct {
	Svc      *Service
	Catalog  *catalog.Store
	Shipping *shipping.Service
	Events   *events.Bus
}

type createCustomerRequest struct {
	Name    string      `json:"name" validate:"required"`
	Balance money.Money `json:"balance"`
}

type walletRequest struct {
	Amount money.Money `json:"amount"`
}

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

type cartItemResponse struct {
	ProductID string      `json:"productId"`
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	UnitPrice money.Money `json:"unitPrice"`
	Subtotal  money.Money `json:"subtotal"`
}

// Create registers a customer with an opening balance.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var payload createCustomerRequest
	if err := common.DecodeJSON(r, &payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	c, err := h.Svc.Create(payload.Name, payload.Balance)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{
		"data": map[string]any{
			"id":      c.ID(),
			"name":    c.Name(),
			"balance": c.Balance(),
		},
	})
}

// Get returns the customer with the current balance.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.Svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{
			"id":      c.ID(),
			"name":    c.Name(),
			"balance": c.Balance(),
			"items":   c.Cart().TotalItemCount(),
		},
	})
}

// Topup credits the customer's wallet.
func (h *Handler) Topup(w http.ResponseWriter, r *http.Request) {
	var payload walletRequest
	if err := common.DecodeJSON(r, &payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	var balance money.Money
	err := h.Svc.Do(chi.URLParam(r, "id"), func(c *Customer) error {
		c.AddToWallet(payload.Amount)
		balance = c.Balance()
		return nil
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": map[string]any{"balance": balance}})
}

// AddCartItem merges a product into the customer's cart.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var payload addItemRequest
	if err := common.DecodeJSON(r, &payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	productID, err := catalog.ParseProductID(payload.ProductID)
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid product id", nil)
		return
	}
	product, err := h.Catalog.Get(productID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	err = h.Svc.Do(chi.URLParam(r, "id"), func(c *Customer) error {
		return c.AddToCart(product, payload.Quantity)
	})
	h.recordCartMutation("add", err)
	if err != nil {
		h.writeError(w, err)
		return
	}
	_ = h.Events.Emit(r.Context(), events.TopicCartItemAdded, map[string]any{
		"product":  product.Name(),
		"quantity": payload.Quantity,
	})
	w.WriteHeader(http.StatusNoContent)
}

// UpdateCartItem replaces a line's quantity.
func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var payload updateItemRequest
	if err := common.DecodeJSON(r, &payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	productID, err := catalog.ParseProductID(chi.URLParam(r, "productId"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid product id", nil)
		return
	}
	err = h.Svc.Do(chi.URLParam(r, "id"), func(c *Customer) error {
		return c.UpdateCartItemQuantity(productID, payload.Quantity)
	})
	h.recordCartMutation("update", err)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveCartItem drops a product's line from the cart.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := catalog.ParseProductID(chi.URLParam(r, "productId"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid product id", nil)
		return
	}
	err = h.Svc.Do(chi.URLParam(r, "id"), func(c *Customer) error {
		return c.RemoveFromCart(productID)
	})
	h.recordCartMutation("remove", err)
	if err != nil {
		h.writeError(w, err)
		return
	}
	_ = h.Events.Emit(r.Context(), events.TopicCartItemRemoved, map[string]any{
		"productId": productID.String(),
	})
	w.WriteHeader(http.StatusNoContent)
}

// GetCart returns the cart contents with a pricing preview.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	var (
		items    []cartItemResponse
		subtotal money.Money
		shipCost money.Money
	)
	err := h.Svc.Do(chi.URLParam(r, "id"), func(c *Customer) error {
		crt := c.Cart()
		for _, item := range crt.Items() {
			lineSubtotal, err := item.Subtotal()
			if err != nil {
				return err
			}
			items = append(items, cartItemResponse{
				ProductID: item.Product().ID().String(),
				Name:      item.Product().Name(),
				Quantity:  item.Quantity(),
				UnitPrice: item.Product().Price(),
				Subtotal:  lineSubtotal,
			})
		}
		var err error
		subtotal, err = crt.Subtotal()
		if err != nil {
			return err
		}
		shipCost, err = h.Shipping.CostWithDiscount(crt.ShippableItems(), subtotal)
		return err
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	if items == nil {
		items = []cartItemResponse{}
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{
			"items":    items,
			"subtotal": subtotal,
			"shipping": shipCost,
			"total":    subtotal.Add(shipCost),
		},
	})
}

func (h *Handler) recordCartMutation(op string, err error) {
	if obs.CartMutationsTotal == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	obs.CartMutationsTotal.WithLabelValues(op, result).Inc()
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var stockErr *catalog.StockError
	switch {
	case errors.Is(err, ErrNotFound):
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "customer not found", nil)
	case errors.Is(err, catalog.ErrNotFound):
		common.JSONError(w, http.StatusNotFound, "PRODUCT_NOT_FOUND", "product not found", nil)
	case errors.Is(err, cart.ErrNotInCart):
		common.JSONError(w, http.StatusNotFound, "NOT_IN_CART", "product not in cart", nil)
	case errors.As(err, &stockErr):
		common.JSONError(w, http.StatusConflict, "INSUFFICIENT_STOCK", stockErr.Error(), map[string]any{
			"available": stockErr.Available,
			"requested": stockErr.Requested,
		})
	case errors.Is(err, ErrInvalidInput), errors.Is(err, cart.ErrInvalidInput), errors.Is(err, catalog.ErrInvalidInput):
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to process request", nil)
	}
}
