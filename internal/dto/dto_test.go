package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/product_transactions/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTransactionResponse_PriceIsNumber(t *testing.T) {
	resp := ToTransactionResponse(domain.Transaction{
		ID:         1,
		Title:      "Backpack",
		Price:      decimal.RequireFromString("44.60"),
		DateOfSale: time.Date(2021, time.March, 1, 0, 0, 0, 0, time.FixedZone("IST", 19800)),
	})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"price":44.6`)
	assert.Contains(t, string(raw), `"dateOfSale":"2021-02-28T18:30:00Z"`)
}

func TestToListTransactionsResponse_EmptyPage(t *testing.T) {
	resp := ToListTransactionsResponse(&domain.TransactionPage{Page: 4, Limit: 10, Month: 3})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"totalCount":0,"page":4,"limit":10,"month":3,"search":"","transactions":[]}`, string(raw))
}

func TestToStatisticsResponse_TwoDecimals(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"1229.86", "1229.86"},
		{"44.6", "44.60"},
		{"10.005", "10.01"},
	}
	for _, tt := range tests {
		resp := ToStatisticsResponse(domain.Statistics{TotalSale: decimal.RequireFromString(tt.in)})
		assert.Equal(t, tt.want, resp.TotalSale, tt.in)
	}
}

func TestToCombinedResponse_Keys(t *testing.T) {
	report := &domain.CombinedReport{
		Statistics:  domain.Statistics{TotalCount: 2, TotalSale: decimal.NewFromInt(5), SoldCount: 1, UnsoldCount: 1},
		PriceRanges: domain.NewPriceRangeDistribution(),
		Categories:  domain.CategoryDistribution{},
	}

	raw, err := json.Marshal(ToCombinedResponse(report))
	require.NoError(t, err)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Len(t, body, 3)
	assert.JSONEq(t, `{"totalCount":2,"totalSale":"5.00","soldCount":1,"unsoldCount":1}`, string(body["statsData"]))
	assert.JSONEq(t, `{}`, string(body["pieChartData"]))
	assert.Contains(t, string(body["barChartData"]), `"901-above":0`)
}

func TestToSeedResponse(t *testing.T) {
	resp := ToSeedResponse(&domain.SeedResult{Count: 60})
	assert.Equal(t, SeedResponse{Message: "Database initialized with seed data.", Count: 60}, resp)
}
