package services

import (
	"context"

	"github.com/SscSPs/wallet_api/internal/core/domain"
	"github.com/SscSPs/wallet_api/internal/dto"
)

// TransactionReaderSvc defines read operations for wallet transactions
type TransactionReaderSvc interface {
	// ListTransactions returns every transaction owned by userID.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)

	// ListTransactionsByPeriod returns the transactions of userID dated in month/year.
	ListTransactionsByPeriod(ctx context.Context, userID string, month, year int) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines ownership-checked mutations of wallet transactions
type TransactionWriterSvc interface {
	// CreateTransaction validates req and stores it with userID as owner.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction applies a partial patch to a transaction owned by userID.
	UpdateTransaction(ctx context.Context, transactionID string, userID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction owned by userID.
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
