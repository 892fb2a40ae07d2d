package services

import (
	"context"

	"github.com/SscSPs/product_transactions/internal/core/domain"
)

// ReportingService defines the month-scoped aggregations shown on the dashboard
type ReportingService interface {
	// Statistics returns sold/unsold counts and total sale amount for a month
	Statistics(ctx context.Context, month domain.Month) (*domain.Statistics, error)

	// PriceRanges returns the per-bucket record counts for a month
	PriceRanges(ctx context.Context, month domain.Month) (domain.PriceRangeDistribution, error)

	// Categories returns the per-category record counts for a month
	Categories(ctx context.Context, month domain.Month) (domain.CategoryDistribution, error)

	// Combined computes statistics, price ranges and categories for a month in one call
	Combined(ctx context.Context, month domain.Month) (*domain.CombinedReport, error)
}
