package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/product_transactions/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `[
  {"id":1,"title":"Fjallraven  - Foldsack No. 1 Backpack, Fits 15 Laptops","price":329.85,"description":"Your perfect pack for everyday use","category":"men's clothing","image":"https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg","sold":false,"dateOfSale":"2021-11-27T20:29:54+05:30"},
  {"id":2,"title":"Mens Casual Premium Slim Fit T-Shirts","price":44.6,"description":"Slim-fitting style","category":"men's clothing","image":"https://fakestoreapi.com/img/71-3HjGNDUL._AC_SY879._SX._UX._SY._UY_.jpg","sold":true,"dateOfSale":"2021-03-01T00:10:00+05:30"}
]`

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchTransactions_Success(t *testing.T) {
	srv := serve(t, http.StatusOK, samplePayload)
	source := NewHTTPSource(srv.URL, time.Second)

	records, err := source.FetchTransactions(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].ID)
	assert.True(t, decimal.RequireFromString("329.85").Equal(records[0].Price))
	assert.Equal(t, "men's clothing", records[0].Category)
	assert.True(t, records[1].Sold)
	// 00:10 IST on the 1st is still February in UTC.
	assert.Equal(t, time.February, records[1].DateOfSale.UTC().Month())
}

func TestFetchTransactions_NonSuccessStatus(t *testing.T) {
	srv := serve(t, http.StatusServiceUnavailable, "")
	source := NewHTTPSource(srv.URL, time.Second)

	_, err := source.FetchTransactions(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrUpstreamFetch)
}

func TestFetchTransactions_MalformedJSON(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"not":"an array"}`)
	source := NewHTTPSource(srv.URL, time.Second)

	_, err := source.FetchTransactions(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrUpstreamFetch)
}

func TestFetchTransactions_InvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing id", `[{"title":"x","price":1,"dateOfSale":"2021-03-01T00:00:00Z"}]`},
		{"missing title", `[{"id":1,"price":1,"dateOfSale":"2021-03-01T00:00:00Z"}]`},
		{"negative price", `[{"id":1,"title":"x","price":-1,"dateOfSale":"2021-03-01T00:00:00Z"}]`},
		{"missing date", `[{"id":1,"title":"x","price":1}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, http.StatusOK, tt.body)
			source := NewHTTPSource(srv.URL, time.Second)

			_, err := source.FetchTransactions(context.Background())

			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestFetchTransactions_Unreachable(t *testing.T) {
	srv := serve(t, http.StatusOK, samplePayload)
	url := srv.URL
	srv.Close()

	_, err := NewHTTPSource(url, time.Second).FetchTransactions(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrUpstreamFetch)
}

func TestFetchTransactions_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	_, err := NewHTTPSource(srv.URL, 20*time.Millisecond).FetchTransactions(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrUpstreamFetch)
}
