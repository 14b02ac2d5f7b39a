package pgsql

import (
	"time"

	portsrepo "github.com/SscSPs/wallet_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository. queryTimeout bounds each statement.
func NewRepositoryProvider(dbPool *pgxpool.Pool, queryTimeout time.Duration) portsrepo.RepositoryProvider {
	base := BaseRepository{Pool: dbPool, QueryTimeout: queryTimeout}

	return portsrepo.RepositoryProvider{
		TransactionRepo:  newPgxTransactionRepository(base),
		UserRepo:         newPgxUserRepository(base),
		RevokedTokenRepo: newPgxRevokedTokenRepository(base),
	}
}
