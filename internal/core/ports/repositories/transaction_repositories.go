package repositories

import (
	"context"

	"github.com/SscSPs/wallet_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for wallet transactions.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by ID regardless of owner.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByOwner retrieves every transaction of ownerID, newest date first.
	// A non-nil period restricts the result to that calendar month.
	ListTransactionsByOwner(ctx context.Context, ownerID string, period *domain.Period) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for wallet transactions.
// Mutations are scoped by owner, so a foreign record is reported as not found.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction overwrites the mutable fields of an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction owned by ownerID.
	DeleteTransaction(ctx context.Context, transactionID string, ownerID string) error
}

// TransactionAggregator defines the sums the summary engine needs.
// A nil period means all time.
type TransactionAggregator interface {
	// SumAmounts returns the total amount of income (isIncome=true) or expense transactions.
	// It returns zero when nothing matches.
	SumAmounts(ctx context.Context, ownerID string, isIncome bool, period *domain.Period) (decimal.Decimal, error)

	// SumAmountsByCategory returns the total amount per stored category name.
	SumAmountsByCategory(ctx context.Context, ownerID string, period *domain.Period) (map[string]decimal.Decimal, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionAggregator
}
