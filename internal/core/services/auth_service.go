package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/wallet_api/internal/apperrors"
	"github.com/SscSPs/wallet_api/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_api/internal/core/ports/services"
	"github.com/SscSPs/wallet_api/internal/utils"
	"github.com/google/uuid"
)

// TokenSettings configures access token issuance.
type TokenSettings struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

type tokenService struct {
	BaseService
	revokedRepo portsrepo.RevokedTokenRepository
	settings    TokenSettings
	now         func() time.Time
}

// TokenServiceOption is a functional option for configuring the token service
type TokenServiceOption func(*tokenService)

// WithTokenClock overrides the clock used for issuing and expiring tokens.
func WithTokenClock(now func() time.Time) TokenServiceOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// NewTokenService creates a token service backed by a revocation store.
func NewTokenService(revokedRepo portsrepo.RevokedTokenRepository, settings TokenSettings, options ...TokenServiceOption) portssvc.TokenSvcFacade {
	svc := &tokenService{
		revokedRepo: revokedRepo,
		settings:    settings,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (*domain.IssuedToken, error) {
	if user == nil || user.UserID == "" {
		return nil, fmt.Errorf("%w: user is required", apperrors.ErrValidation)
	}
	tokenID := uuid.NewString()
	signed, expiresAt, err := utils.GenerateJWT(user.UserID, tokenID, s.settings.Secret, s.settings.Issuer, s.now(), s.settings.TTL)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign JWT token", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &domain.IssuedToken{Token: signed, TokenID: tokenID, ExpiresAt: expiresAt}, nil
}

func (s *tokenService) RevokeToken(ctx context.Context, userID string, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return fmt.Errorf("%w: token id is required", apperrors.ErrValidation)
	}
	now := s.now().UTC()
	if expiresAt.IsZero() {
		expiresAt = now.Add(s.settings.TTL)
	}
	err := s.revokedRepo.SaveRevokedToken(ctx, domain.RevokedToken{
		TokenID:   tokenID,
		UserID:    userID,
		ExpiresAt: expiresAt.UTC(),
		RevokedAt: now,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to revoke token", slog.String("token_id", tokenID))
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	s.LogInfo(ctx, "Token revoked", slog.String("token_id", tokenID))
	return nil
}

func (s *tokenService) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	revoked, err := s.revokedRepo.IsTokenRevoked(ctx, tokenID)
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return revoked, nil
}

func (s *tokenService) PurgeExpiredRevocations(ctx context.Context) (int64, error) {
	deleted, err := s.revokedRepo.DeleteExpired(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired revocations: %w", err)
	}
	return deleted, nil
}
