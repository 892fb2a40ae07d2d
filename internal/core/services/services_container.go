package services

import (
	"github.com/SscSPs/product_transactions/internal/core/ports"
	portsrepo "github.com/SscSPs/product_transactions/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/product_transactions/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, source ports.DatasetSource, publisher ports.SeedEventPublisher) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo),
		Reporting:   NewReportingService(repos.TransactionRepo),
		Seed:        NewSeedService(source, repos.TransactionRepo, WithSeedEventPublisher(publisher)),
	}
}
