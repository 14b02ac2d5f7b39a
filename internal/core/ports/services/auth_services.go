package services

import (
	"context"
	"time"

	"github.com/SscSPs/wallet_api/internal/core/domain"
)

// TokenSvcFacade defines access token issuance and revocation.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a new access token for user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (*domain.IssuedToken, error)

	// RevokeToken logs out tokenID until expiresAt.
	RevokeToken(ctx context.Context, userID string, tokenID string, expiresAt time.Time) error

	// IsTokenRevoked reports whether tokenID was logged out.
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)

	// PurgeExpiredRevocations drops revocations of tokens that expired on their own.
	PurgeExpiredRevocations(ctx context.Context) (int64, error)
}
