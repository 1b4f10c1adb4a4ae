package catalog

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/backend-kasir/internal/common"
	"github.com/noah-isme/backend-kasir/internal/money"
)

// Handler wires the catalog store to HTTP.
type Handler struct {
	Store *Store
}

type createProductRequest struct {
	Name      string      `json:"name" validate:"required"`
	Price     money.Money `json:"price"`
	Quantity  int         `json:"quantity" validate:"gte=0"`
	WeightKg  *float64    `json:"weightKg" validate:"omitempty,gt=0"`
	ExpiresAt *string     `json:"expiresAt" validate:"omitempty,datetime=2006-01-02"`
}

type productResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Price     money.Money `json:"price"`
	Quantity  int         `json:"quantity"`
	Shippable bool        `json:"shippable"`
	WeightKg  *string     `json:"weightKg,omitempty"`
	ExpiresAt *string     `json:"expiresAt,omitempty"`
}

// Create registers a new product; the variant follows from which
// optional fields the payload carries.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var payload createProductRequest
	if err := common.DecodeJSON(r, &payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}

	spec := Spec{Name: payload.Name, Price: payload.Price, Quantity: payload.Quantity}
	if payload.WeightKg != nil {
		weight, err := money.Kilograms(*payload.WeightKg)
		if err != nil {
			common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid weight", nil)
			return
		}
		spec.Weight = &weight
	}
	if payload.ExpiresAt != nil {
		expires, err := time.Parse("2006-01-02", *payload.ExpiresAt)
		if err != nil {
			common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid expiration date", nil)
			return
		}
		spec.ExpiresAt = &expires
	}

	product, err := New(spec)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.Store.Add(product); err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{"data": toResponse(product)})
}

// List returns every catalog entry in registration order.
func (h *Handler) List(w http.ResponseWriter, _ *http.Request) {
	products := h.Store.List()
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toResponse(p))
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": out})
}

// Get returns one product by id.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := ParseProductID(chi.URLParam(r, "id"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid product id", nil)
		return
	}
	product, err := h.Store.Get(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": toResponse(product)})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "product not found", nil)
	case errors.Is(err, ErrInvalidInput):
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to process product", nil)
	}
}

func toResponse(p *Product) productResponse {
	resp := productResponse{
		ID:        p.ID().String(),
		Name:      p.Name(),
		Price:     p.Price(),
		Quantity:  p.Quantity(),
		Shippable: p.Shippable(),
	}
	if weight, ok := p.Weight(); ok {
		s := weight.Amount().String()
		resp.WeightKg = &s
	}
	if expires, ok := p.ExpiresAt(); ok {
		s := expires.Format("2006-01-02")
		resp.ExpiresAt = &s
	}
	return resp
}
