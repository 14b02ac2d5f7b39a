package services

import (
	"github.com/SscSPs/wallet_api/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_api/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, catalog *domain.Catalog, tokens TokenSettings) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo, catalog),
		Summary:     NewSummaryService(repos.TransactionRepo, catalog),
		User:        NewUserService(repos.UserRepo),
		Token:       NewTokenService(repos.RevokedTokenRepo, tokens),
	}
}
