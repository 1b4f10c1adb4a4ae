package checkout_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/checkout"
	"github.com/noah-isme/backend-kasir/internal/customer"
	"github.com/noah-isme/backend-kasir/internal/money"
	"github.com/noah-isme/backend-kasir/internal/shipping"
)

type receiptEnvelope struct {
	Data struct {
		Lines []struct {
			Name     string `json:"name"`
			Quantity int    `json:"quantity"`
			Subtotal string `json:"subtotal"`
		} `json:"lines"`
		Subtotal         string `json:"subtotal"`
		Shipping         string `json:"shipping"`
		Total            string `json:"total"`
		RemainingBalance string `json:"remainingBalance"`
		ItemCount        int    `json:"itemCount"`
	} `json:"data"`
}

type errorEnvelope struct {
	Error struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

type checkoutFixture struct {
	router    http.Handler
	customers *customer.Service
	store     *catalog.Store
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	store := catalog.NewStore()
	customers := customer.NewService()
	svc := &checkout.Service{
		Shipping: &shipping.Service{
			RatePerKg:     money.MustParse("10"),
			FreeThreshold: money.MustParse("16000"),
		},
		Inventory: store,
	}
	handler := &checkout.Handler{Customers: customers, Svc: svc}
	r := chi.NewRouter()
	r.Post("/customers/{id}/checkout", handler.Checkout)
	return &checkoutFixture{router: r, customers: customers, store: store}
}

func (f *checkoutFixture) checkout(t *testing.T, customerID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/customers/"+customerID+"/checkout", strings.NewReader(""))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestCheckoutEndpoint(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	laptop, err := catalog.NewShippable("Laptop", money.MustParse("30000"), 5, money.MustKilograms(5))
	require.NoError(t, err)
	require.NoError(t, f.store.Add(laptop))

	c, err := f.customers.Create("Ahmed", money.MustParse("125000"))
	require.NoError(t, err)
	require.NoError(t, c.AddToCart(laptop, 1))

	rec := f.checkout(t, c.ID())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp receiptEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Lines, 1)
	require.Equal(t, "Laptop", resp.Data.Lines[0].Name)
	require.Equal(t, "30000.00", resp.Data.Subtotal)
	require.Equal(t, "0.00", resp.Data.Shipping)
	require.Equal(t, "30000.00", resp.Data.Total)
	require.Equal(t, "95000.00", resp.Data.RemainingBalance)
	require.Equal(t, 1, resp.Data.ItemCount)
	require.Equal(t, 4, laptop.Quantity())
}

func TestCheckoutEndpointFailures(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)

	t.Run("unknown customer", func(t *testing.T) {
		rec := f.checkout(t, "missing")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty cart", func(t *testing.T) {
		c, err := f.customers.Create("Ahmed", money.MustParse("100"))
		require.NoError(t, err)
		rec := f.checkout(t, c.ID())
		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp errorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "CART_EMPTY", resp.Error.Code)
	})

	t.Run("expired product", func(t *testing.T) {
		milk, err := catalog.NewExpirable("Milk", money.MustParse("10"), 10, time.Now().AddDate(0, 0, -1))
		require.NoError(t, err)
		c, err := f.customers.Create("Ahmed", money.MustParse("100"))
		require.NoError(t, err)
		require.NoError(t, c.AddToCart(milk, 1))

		rec := f.checkout(t, c.ID())
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var resp errorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "PRODUCT_EXPIRED", resp.Error.Code)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		tv, err := catalog.NewStandard("TV", money.MustParse("300"), 5)
		require.NoError(t, err)
		c, err := f.customers.Create("Ahmed", money.MustParse("10000"))
		require.NoError(t, err)
		require.NoError(t, c.AddToCart(tv, 5))
		require.NoError(t, tv.ReduceQuantity(3))

		rec := f.checkout(t, c.ID())
		require.Equal(t, http.StatusConflict, rec.Code)
		var resp errorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "INSUFFICIENT_STOCK", resp.Error.Code)
		require.Contains(t, string(resp.Error.Details), `"available":2`)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		tv, err := catalog.NewStandard("TV", money.MustParse("300"), 5)
		require.NoError(t, err)
		c, err := f.customers.Create("PoorCustomer", money.MustParse("10"))
		require.NoError(t, err)
		require.NoError(t, c.AddToCart(tv, 1))

		rec := f.checkout(t, c.ID())
		require.Equal(t, http.StatusPaymentRequired, rec.Code)
		var resp errorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "INSUFFICIENT_BALANCE", resp.Error.Code)
		require.Contains(t, string(resp.Error.Details), `"required":"300.00"`)
		require.Contains(t, string(resp.Error.Details), `"available":"10.00"`)
		require.Equal(t, "10.00", c.Balance().String())
		require.Equal(t, 5, tv.Quantity())
	})
}
