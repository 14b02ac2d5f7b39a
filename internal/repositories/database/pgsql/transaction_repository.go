package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/wallet_api/internal/apperrors"
	"github.com/SscSPs/wallet_api/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_api/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_api/internal/models"
	"github.com/SscSPs/wallet_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const transactionColumns = `transaction_id, owner_id, amount, category, txn_date, is_income, comment,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for wallet transactions.
func newPgxTransactionRepository(base BaseRepository) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: base}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.OwnerID,
		&m.Amount,
		&m.Category,
		&m.TxnDate,
		&m.IsIncome,
		&m.Comment,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func listByOwnerQuery(ownerID string, period *domain.Period) (string, []any) {
	where, args := ownerFilter(ownerID, period)
	return `SELECT ` + transactionColumns + ` FROM transactions WHERE ` + where + `
		ORDER BY txn_date DESC, created_at DESC;`, args
}

// sumAmountsQuery totals one direction of the owner's records; isIncome is the
// only income predicate, the category string is never consulted.
func sumAmountsQuery(ownerID string, isIncome bool, period *domain.Period) (string, []any) {
	where, args := ownerFilter(ownerID, period)
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE ` + where + ` AND is_income = ` + placeholder(args) + `;`
	return query, append(args, isIncome)
}

func sumByCategoryQuery(ownerID string, period *domain.Period) (string, []any) {
	where, args := ownerFilter(ownerID, period)
	return `SELECT category, SUM(amount) FROM transactions WHERE ` + where + ` GROUP BY category;`, args
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.OwnerID,
		m.Amount,
		m.Category,
		m.TxnDate,
		m.IsIncome,
		m.Comment,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return storeError(err, "failed to save transaction")
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		return nil, storeError(err, fmt.Sprintf("failed to find transaction %s", transactionID))
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func (r *PgxTransactionRepository) ListTransactionsByOwner(ctx context.Context, ownerID string, period *domain.Period) ([]domain.Transaction, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args := listByOwnerQuery(ownerID, period)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError(err, "failed to query transactions")
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, storeError(err, "failed to scan transaction row")
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err, "error iterating transaction rows")
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET amount = $1, category = $2, txn_date = $3, is_income = $4, comment = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE transaction_id = $8 AND owner_id = $9;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Amount,
		m.Category,
		m.TxnDate,
		m.IsIncome,
		m.Comment,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.TransactionID,
		m.OwnerID,
	)
	if err != nil {
		return storeError(err, "failed to update transaction")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", m.TransactionID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, ownerID string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cmdTag, err := r.Pool.Exec(ctx,
		`DELETE FROM transactions WHERE transaction_id = $1 AND owner_id = $2;`,
		transactionID, ownerID)
	if err != nil {
		return storeError(err, "failed to delete transaction")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) SumAmounts(ctx context.Context, ownerID string, isIncome bool, period *domain.Period) (decimal.Decimal, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args := sumAmountsQuery(ownerID, isIncome, period)
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum transaction amounts", err)
	}
	return total, nil
}

func (r *PgxTransactionRepository) SumAmountsByCategory(ctx context.Context, ownerID string, period *domain.Period) (map[string]decimal.Decimal, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args := sumByCategoryQuery(ownerID, period)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError(err, "failed to sum amounts by category")
	}
	defer rows.Close()

	sums := make(map[string]decimal.Decimal)
	for rows.Next() {
		var (
			category string
			total    decimal.Decimal
		)
		if err := rows.Scan(&category, &total); err != nil {
			return nil, storeError(err, "failed to scan category total")
		}
		sums[category] = total
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err, "error iterating category totals")
	}
	return sums, nil
}
