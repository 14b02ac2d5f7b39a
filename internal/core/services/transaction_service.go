package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/wallet_api/internal/apperrors"
	"github.com/SscSPs/wallet_api/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_api/internal/core/ports/services"
	"github.com/SscSPs/wallet_api/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements portssvc.TransactionSvcFacade
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	catalog         *domain.Catalog
	now             func() time.Time
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionClock overrides the clock used for audit timestamps.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service validating categories against catalog.
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, catalog *domain.Catalog, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		transactionRepo: repo,
		catalog:         catalog,
		now:             time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := validateOwnerID(userID); err != nil {
		return nil, err
	}

	var missing []string
	if req.Amount == nil {
		missing = append(missing, "amount")
	}
	if strings.TrimSpace(req.Date) == "" {
		missing = append(missing, "date")
	}
	if req.IsIncome == nil {
		missing = append(missing, "isIncome")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: please provide all required fields (missing: %s)", apperrors.ErrValidation, strings.Join(missing, ", "))
	}

	if err := domain.ValidateAmount(*req.Amount); err != nil {
		return nil, err
	}
	date, err := domain.NormalizeDate(req.Date)
	if err != nil {
		return nil, err
	}
	category, err := s.catalog.ResolveCategory(*req.IsIncome, req.Category)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		OwnerID:       userID,
		Amount:        *req.Amount,
		Category:      category,
		Date:          date,
		IsIncome:      *req.IsIncome,
		Comment:       strings.TrimSpace(req.Comment),
		AuditFields:   domain.NewAuditFields(userID, s.now().UTC()),
	}
	if err := txn.Validate(s.catalog); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("category", txn.Category),
		slog.Bool("is_income", txn.IsIncome))
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, userID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.loadOwned(ctx, transactionID, userID)
	if err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", apperrors.ErrValidation)
	}

	updated := *existing
	if req.Amount != nil {
		if err := domain.ValidateAmount(*req.Amount); err != nil {
			return nil, err
		}
		updated.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := domain.NormalizeDate(*req.Date)
		if err != nil {
			return nil, err
		}
		updated.Date = date
	}
	if req.Comment != nil {
		updated.Comment = strings.TrimSpace(*req.Comment)
	}

	if req.IsIncome != nil || req.Category != nil {
		isIncome := existing.IsIncome
		if req.IsIncome != nil {
			isIncome = *req.IsIncome
		}
		category := existing.Category
		if req.Category != nil {
			category = *req.Category
		} else if existing.IsIncome && !isIncome {
			// Turning income into an expense needs an explicit category.
			category = ""
		}
		resolved, err := s.catalog.ResolveCategory(isIncome, category)
		if err != nil {
			return nil, err
		}
		updated.IsIncome = isIncome
		updated.Category = resolved
	}

	// Only patched fields are checked; a stored category that has since left
	// the catalog stays valid until the patch touches it.
	updated.Touch(userID, s.now().UTC())

	if err := s.transactionRepo.UpdateTransaction(ctx, updated); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return &updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	if _, err := s.loadOwned(ctx, transactionID, userID); err != nil {
		return err
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	if err := validateOwnerID(userID); err != nil {
		return nil, err
	}
	return s.list(ctx, userID, nil)
}

func (s *transactionService) ListTransactionsByPeriod(ctx context.Context, userID string, month, year int) ([]domain.Transaction, error) {
	if err := validateOwnerID(userID); err != nil {
		return nil, err
	}
	period, err := domain.NewPeriod(month, year)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, userID, &period)
}

func (s *transactionService) list(ctx context.Context, userID string, period *domain.Period) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactionsByOwner(ctx, userID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	s.LogDebug(ctx, "Transactions listed", slog.Int("count", len(txns)))
	return txns, nil
}

// loadOwned validates both ids, loads the record and asserts userID owns it.
func (s *transactionService) loadOwned(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	if err := validateOwnerID(userID); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(transactionID); err != nil {
		return nil, fmt.Errorf("%w: invalid transaction id %q", apperrors.ErrValidation, transactionID)
	}

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load transaction", slog.String("transaction_id", transactionID))
		}
		return nil, fmt.Errorf("failed to load transaction %s: %w", transactionID, err)
	}

	if err := assertOwnership(txn, userID); err != nil {
		s.GetLogger(ctx).Warn("Transaction access denied",
			slog.String("transaction_id", transactionID),
			slog.String("requester_id", userID))
		return nil, err
	}
	return txn, nil
}
