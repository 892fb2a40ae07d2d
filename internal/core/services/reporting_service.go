package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/product_transactions/internal/core/domain"
	portsrepo "github.com/SscSPs/product_transactions/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/product_transactions/internal/core/ports/services"
	"github.com/SscSPs/product_transactions/internal/utils/aggregation"
	"golang.org/x/sync/errgroup"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.TransactionReader) portssvc.ReportingService {
	return &reportingService{transactionRepo: repo}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) monthRecords(ctx context.Context, month domain.Month) ([]domain.Transaction, error) {
	records, err := s.transactionRepo.FindTransactions(ctx, domain.TransactionFilter{Month: month})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for month", slog.Int("month", int(month)))
		return nil, fmt.Errorf("failed to retrieve transactions for month %d: %w", month, err)
	}
	return records, nil
}

// Statistics returns sold/unsold counts and total sale amount for a month
func (s *reportingService) Statistics(ctx context.Context, month domain.Month) (*domain.Statistics, error) {
	records, err := s.monthRecords(ctx, month)
	if err != nil {
		return nil, err
	}
	stats := aggregation.ComputeStatistics(records)

	s.LogDebug(ctx, "Statistics computed",
		slog.Int("month", int(month)),
		slog.Int("total_count", stats.TotalCount),
		slog.String("total_sale", stats.TotalSale.String()))
	return &stats, nil
}

// PriceRanges returns the per-bucket record counts for a month
func (s *reportingService) PriceRanges(ctx context.Context, month domain.Month) (domain.PriceRangeDistribution, error) {
	records, err := s.monthRecords(ctx, month)
	if err != nil {
		return nil, err
	}
	return aggregation.ComputePriceRanges(records), nil
}

// Categories returns the per-category record counts for a month
func (s *reportingService) Categories(ctx context.Context, month domain.Month) (domain.CategoryDistribution, error) {
	records, err := s.monthRecords(ctx, month)
	if err != nil {
		return nil, err
	}
	return aggregation.ComputeCategories(records), nil
}

// Combined runs the three month aggregations concurrently and merges them.
// Any failure fails the whole report.
func (s *reportingService) Combined(ctx context.Context, month domain.Month) (*domain.CombinedReport, error) {
	var (
		stats      *domain.Statistics
		ranges     domain.PriceRangeDistribution
		categories domain.CategoryDistribution
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.Statistics(gctx, month)
		return err
	})
	g.Go(func() error {
		var err error
		ranges, err = s.PriceRanges(gctx, month)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.Categories(gctx, month)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build combined report: %w", err)
	}

	s.LogInfo(ctx, "Combined report generated successfully",
		slog.Int("month", int(month)),
		slog.Int("total_count", stats.TotalCount),
		slog.Int("category_count", len(categories)))

	return &domain.CombinedReport{
		Statistics:  *stats,
		PriceRanges: ranges,
		Categories:  categories,
	}, nil
}
