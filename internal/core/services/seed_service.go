package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/product_transactions/internal/apperrors"
	"github.com/SscSPs/product_transactions/internal/core/domain"
	"github.com/SscSPs/product_transactions/internal/core/ports"
	portsrepo "github.com/SscSPs/product_transactions/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/product_transactions/internal/core/ports/services"
)

// seedService implements the SeedService interface
type seedService struct {
	BaseService
	source    ports.DatasetSource
	repo      portsrepo.TransactionRepositoryFacade
	publisher ports.SeedEventPublisher
	now       func() time.Time
}

// SeedServiceOption is a functional option for configuring the seed service
type SeedServiceOption func(*seedService)

// WithSeedEventPublisher sets where seed completion events are sent.
func WithSeedEventPublisher(publisher ports.SeedEventPublisher) SeedServiceOption {
	return func(s *seedService) {
		if publisher != nil {
			s.publisher = publisher
		}
	}
}

// WithSeedClock overrides the clock used to stamp seed results.
func WithSeedClock(now func() time.Time) SeedServiceOption {
	return func(s *seedService) {
		s.now = now
	}
}

// NewSeedService creates a new seed service with the provided options
func NewSeedService(source ports.DatasetSource, repo portsrepo.TransactionRepositoryFacade, options ...SeedServiceOption) portssvc.SeedService {
	svc := &seedService{
		source:    source,
		repo:      repo,
		publisher: ports.NoopSeedEventPublisher{},
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure seedService implements the SeedService interface
var _ portssvc.SeedService = (*seedService)(nil)

// Seed fetches the upstream dataset, validates it and replaces the stored records.
// The store is untouched if fetching or validation fails.
func (s *seedService) Seed(ctx context.Context) (*domain.SeedResult, error) {
	records, err := s.source.FetchTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch seed dataset")
		return nil, fmt.Errorf("failed to fetch seed dataset: %w", err)
	}

	if err := domain.ValidateDataset(records); err != nil {
		s.LogError(ctx, err, "Seed dataset failed validation", slog.Int("record_count", len(records)))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.repo.ReplaceAllTransactions(ctx, records); err != nil {
		s.LogError(ctx, err, "Failed to replace stored transactions", slog.Int("record_count", len(records)))
		return nil, fmt.Errorf("failed to replace stored transactions: %w", err)
	}

	result := domain.SeedResult{Count: len(records), SeededAt: s.now().UTC()}

	if err := s.publisher.PublishSeeded(ctx, result); err != nil {
		s.LogWarn(ctx, "Failed to publish seed event", slog.String("error", err.Error()))
	}

	s.LogInfo(ctx, "Database initialized with seed data", slog.Int("record_count", result.Count))
	return &result, nil
}

// SeedIfEmpty seeds only when the store holds no records. It reports whether a seed ran.
func (s *seedService) SeedIfEmpty(ctx context.Context) (bool, error) {
	count, err := s.repo.CountTransactions(ctx, domain.TransactionFilter{Month: domain.AllMonths})
	if err != nil {
		return false, fmt.Errorf("failed to count stored transactions: %w", err)
	}
	if count > 0 {
		s.LogInfo(ctx, "Store already populated, skipping startup seed", slog.Int("record_count", count))
		return false, nil
	}
	if _, err := s.Seed(ctx); err != nil {
		return false, err
	}
	return true, nil
}
