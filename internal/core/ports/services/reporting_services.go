package services

import (
	"context"

	"github.com/SscSPs/wallet_api/internal/core/domain"
)

// SummarySvc computes income/expense summaries over a user's transactions
type SummarySvc interface {
	// Summarize returns the all-time summary of userID.
	Summarize(ctx context.Context, userID string) (*domain.Summary, error)

	// SummarizeByPeriod returns the summary of userID restricted to month/year.
	SummarizeByPeriod(ctx context.Context, userID string, month, year int) (*domain.Summary, error)

	// Categories returns the expense catalog in report order.
	Categories() []domain.Category
}
