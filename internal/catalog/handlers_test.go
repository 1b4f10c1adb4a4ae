package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-kasir/internal/catalog"
)

type productPayload struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     string  `json:"price"`
	Quantity  int     `json:"quantity"`
	Shippable bool    `json:"shippable"`
	WeightKg  *string `json:"weightKg"`
	ExpiresAt *string `json:"expiresAt"`
}

type productDataResponse struct {
	Data productPayload `json:"data"`
}

type productListResponse struct {
	Data []productPayload `json:"data"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newRouter(store *catalog.Store) http.Handler {
	handler := &catalog.Handler{Store: store}
	r := chi.NewRouter()
	r.Post("/products", handler.Create)
	r.Get("/products", handler.List)
	r.Get("/products/{id}", handler.Get)
	return r
}

func TestCreateProduct(t *testing.T) {
	t.Parallel()

	router := newRouter(catalog.NewStore())

	body := `{"name":"Cheese","price":"20","quantity":10,"weightKg":0.325,"expiresAt":"2026-12-31"}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp productDataResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.ID)
	require.Equal(t, "Cheese", resp.Data.Name)
	require.Equal(t, "20.00", resp.Data.Price)
	require.Equal(t, 10, resp.Data.Quantity)
	require.True(t, resp.Data.Shippable)
	require.NotNil(t, resp.Data.WeightKg)
	require.Equal(t, "0.325", *resp.Data.WeightKg)
	require.NotNil(t, resp.Data.ExpiresAt)
	require.Equal(t, "2026-12-31", *resp.Data.ExpiresAt)
}

func TestCreateProductValidation(t *testing.T) {
	t.Parallel()

	router := newRouter(catalog.NewStore())

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"price":"10","quantity":1}`},
		{"negative quantity", `{"name":"TV","price":"10","quantity":-1}`},
		{"negative weight", `{"name":"TV","price":"10","quantity":1,"weightKg":-1}`},
		{"bad date", `{"name":"TV","price":"10","quantity":1,"expiresAt":"31-12-2026"}`},
		{"negative price", `{"name":"TV","price":"-10","quantity":1}`},
		{"not json", `nope`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, "BAD_REQUEST", resp.Error.Code)
		})
	}
}

func TestListAndGetProducts(t *testing.T) {
	t.Parallel()

	store := catalog.NewStore()
	router := newRouter(store)

	for _, body := range []string{
		`{"name":"TV","price":"300","quantity":7}`,
		`{"name":"Mobile","price":"150","quantity":4}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var list productListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Data, 2)
	require.Equal(t, "TV", list.Data[0].Name)
	require.False(t, list.Data[0].Shippable)
	require.Nil(t, list.Data[0].WeightKg)

	req = httptest.NewRequest(http.MethodGet, "/products/"+list.Data[1].ID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var got productDataResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Mobile", got.Data.Name)

	req = httptest.NewRequest(http.MethodGet, "/products/does-not-exist", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var notFound errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notFound))
	require.Equal(t, "NOT_FOUND", notFound.Error.Code)
}
