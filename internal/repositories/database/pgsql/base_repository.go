package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/wallet_api/internal/apperrors"
	"github.com/SscSPs/wallet_api/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool         *pgxpool.Pool
	QueryTimeout time.Duration
}

// withTimeout bounds a single statement by QueryTimeout. A zero timeout leaves ctx untouched.
func (r *BaseRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.QueryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.QueryTimeout)
}

// storeError wraps a driver failure so callers map it to 500, keeping no-rows as not found.
func storeError(err error, message string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return apperrors.NewAppError(500, message, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// periodBounds returns the half-open [start, end) date range of a calendar month.
func periodBounds(period domain.Period) (time.Time, time.Time) {
	start := time.Date(period.Year, time.Month(period.Month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// ownerFilter builds the WHERE clause shared by every per-owner query.
// Extra arguments are appended after the owner id.
func ownerFilter(ownerID string, period *domain.Period) (string, []any) {
	if period == nil {
		return "owner_id = $1", []any{ownerID}
	}
	start, end := periodBounds(*period)
	return "owner_id = $1 AND txn_date >= $2 AND txn_date < $3", []any{ownerID, start, end}
}

func placeholder(args []any) string {
	return fmt.Sprintf("$%d", len(args)+1)
}
