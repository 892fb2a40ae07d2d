package ports

import (
	"context"

	"github.com/SscSPs/product_transactions/internal/core/domain"
)

// Note: Context is included so callers can bound network calls with the request lifetime.

// DatasetSource fetches the full transaction dataset from outside the service.
type DatasetSource interface {
	FetchTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// SeedEventPublisher announces that the stored dataset has been replaced.
type SeedEventPublisher interface {
	PublishSeeded(ctx context.Context, result domain.SeedResult) error
}

// NoopSeedEventPublisher discards seed events. Used when no broker is configured.
type NoopSeedEventPublisher struct{}

// PublishSeeded implements SeedEventPublisher.
func (NoopSeedEventPublisher) PublishSeeded(context.Context, domain.SeedResult) error {
	return nil
}
