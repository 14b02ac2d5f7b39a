package mapping

import (
	"github.com/SscSPs/wallet_api/internal/core/domain"
	"github.com/SscSPs/wallet_api/internal/models"
)

// ToModelRevokedToken converts a domain RevokedToken to a model RevokedToken
func ToModelRevokedToken(d domain.RevokedToken) models.RevokedToken {
	return models.RevokedToken{
		TokenID:   d.TokenID,
		UserID:    d.UserID,
		ExpiresAt: d.ExpiresAt,
		RevokedAt: d.RevokedAt,
	}
}
