package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/wallet_api/internal/core/domain"
)

// RevokedTokenRepository stores the ids of logged out access tokens.
type RevokedTokenRepository interface {
	// SaveRevokedToken records a revocation. Revoking the same token twice is not an error.
	SaveRevokedToken(ctx context.Context, token domain.RevokedToken) error

	// IsTokenRevoked reports whether tokenID was revoked.
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)

	// DeleteExpired removes revocations whose token expired before the given time.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
