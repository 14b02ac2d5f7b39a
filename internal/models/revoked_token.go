package models

import "time"

// RevokedToken is the row shape of the revoked_tokens table.
type RevokedToken struct {
	TokenID   string    `db:"token_id"` // jti claim
	UserID    string    `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	RevokedAt time.Time `db:"revoked_at"`
}
