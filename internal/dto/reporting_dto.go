package dto

import (
	"github.com/SscSPs/product_transactions/internal/core/domain"
	"github.com/SscSPs/product_transactions/internal/utils"
)

// StatisticsResponse summarises sales for a month. TotalSale has exactly two decimals.
type StatisticsResponse struct {
	TotalCount  int    `json:"totalCount"`
	TotalSale   string `json:"totalSale" example:"1229.86"`
	SoldCount   int    `json:"soldCount"`
	UnsoldCount int    `json:"unsoldCount"`
}

// PriceRangeResponse maps each price label to its count, in ascending label order.
type PriceRangeResponse = domain.PriceRangeDistribution

// CategoryResponse maps each observed category to its count.
type CategoryResponse map[string]int

// CombinedResponse bundles the three monthly reports.
type CombinedResponse struct {
	StatsData    StatisticsResponse `json:"statsData"`
	BarChartData PriceRangeResponse `json:"barChartData" swaggertype:"object,integer"`
	PieChartData CategoryResponse   `json:"pieChartData"`
}

// ToStatisticsResponse converts domain statistics to their API shape.
func ToStatisticsResponse(s domain.Statistics) StatisticsResponse {
	return StatisticsResponse{
		TotalCount:  s.TotalCount,
		TotalSale:   utils.FormatMoney(s.TotalSale),
		SoldCount:   s.SoldCount,
		UnsoldCount: s.UnsoldCount,
	}
}

// ToCategoryResponse converts a category distribution; an empty month yields {}.
func ToCategoryResponse(d domain.CategoryDistribution) CategoryResponse {
	out := make(CategoryResponse, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// ToCombinedResponse converts a combined report to its API shape.
func ToCombinedResponse(r *domain.CombinedReport) CombinedResponse {
	return CombinedResponse{
		StatsData:    ToStatisticsResponse(r.Statistics),
		BarChartData: r.PriceRanges,
		PieChartData: ToCategoryResponse(r.Categories),
	}
}
