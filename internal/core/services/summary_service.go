package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/wallet_api/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_api/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// summaryService implements the SummarySvc interface
type summaryService struct {
	BaseService
	aggregator portsrepo.TransactionAggregator
	catalog    *domain.Catalog
}

// NewSummaryService creates a summary service grouping by catalog.
func NewSummaryService(aggregator portsrepo.TransactionAggregator, catalog *domain.Catalog) portssvc.SummarySvc {
	return &summaryService{
		aggregator: aggregator,
		catalog:    catalog,
	}
}

// Ensure summaryService implements the SummarySvc interface
var _ portssvc.SummarySvc = (*summaryService)(nil)

func (s *summaryService) Summarize(ctx context.Context, userID string) (*domain.Summary, error) {
	if err := validateOwnerID(userID); err != nil {
		return nil, err
	}
	return s.summarize(ctx, userID, nil)
}

func (s *summaryService) SummarizeByPeriod(ctx context.Context, userID string, month, year int) (*domain.Summary, error) {
	if err := validateOwnerID(userID); err != nil {
		return nil, err
	}
	period, err := domain.NewPeriod(month, year)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, userID, &period)
}

func (s *summaryService) Categories() []domain.Category {
	return s.catalog.Categories()
}

// summarize runs the three aggregate queries concurrently. Any failure fails
// the whole summary.
func (s *summaryService) summarize(ctx context.Context, userID string, period *domain.Period) (*domain.Summary, error) {
	var (
		income     decimal.Decimal
		expenses   decimal.Decimal
		byCategory map[string]decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sum, err := s.aggregator.SumAmounts(gctx, userID, true, period)
		if err != nil {
			return fmt.Errorf("failed to sum income: %w", err)
		}
		income = sum
		return nil
	})
	g.Go(func() error {
		sum, err := s.aggregator.SumAmounts(gctx, userID, false, period)
		if err != nil {
			return fmt.Errorf("failed to sum expenses: %w", err)
		}
		expenses = sum
		return nil
	})
	g.Go(func() error {
		sums, err := s.aggregator.SumAmountsByCategory(gctx, userID, period)
		if err != nil {
			return fmt.Errorf("failed to sum amounts by category: %w", err)
		}
		byCategory = sums
		return nil
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to compute transaction summary", periodAttr(period))
		return nil, err
	}

	summary := domain.BuildSummary(s.catalog, income, expenses, byCategory, period)

	s.LogInfo(ctx, "Transaction summary computed",
		periodAttr(period),
		slog.String("balance", summary.Balance.String()))
	return &summary, nil
}

func periodAttr(period *domain.Period) slog.Attr {
	if period == nil {
		return slog.String("period", "all")
	}
	return slog.String("period", period.String())
}
