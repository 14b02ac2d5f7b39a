package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/wallet_api/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_api/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_api/internal/utils/mapping"
)

type PgxRevokedTokenRepository struct {
	BaseRepository
}

func newPgxRevokedTokenRepository(base BaseRepository) portsrepo.RevokedTokenRepository {
	return &PgxRevokedTokenRepository{BaseRepository: base}
}

var _ portsrepo.RevokedTokenRepository = (*PgxRevokedTokenRepository)(nil)

func (r *PgxRevokedTokenRepository) SaveRevokedToken(ctx context.Context, token domain.RevokedToken) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	m := mapping.ToModelRevokedToken(token)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO revoked_tokens (token_id, user_id, expires_at, revoked_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (token_id) DO NOTHING;
	`, m.TokenID, m.UserID, m.ExpiresAt, m.RevokedAt)
	if err != nil {
		return storeError(err, "failed to save revoked token")
	}
	return nil
}

func (r *PgxRevokedTokenRepository) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var revoked bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE token_id = $1);`, tokenID).Scan(&revoked)
	if err != nil {
		return false, storeError(err, "failed to check revoked token")
	}
	return revoked, nil
}

func (r *PgxRevokedTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at < $1;`, before)
	if err != nil {
		return 0, storeError(err, "failed to delete expired revoked tokens")
	}
	return cmdTag.RowsAffected(), nil
}
