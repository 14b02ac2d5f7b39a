package domain

import "time"

// RevokedToken marks an access token id as logged out until it would have expired anyway.
type RevokedToken struct {
	TokenID   string    `json:"tokenID"` // jti claim
	UserID    string    `json:"userID"`
	ExpiresAt time.Time `json:"expiresAt"`
	RevokedAt time.Time `json:"revokedAt"`
}

// IsExpired reports whether the underlying token is past its expiry at now.
func (t RevokedToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

// IssuedToken is a freshly signed access token and the claims worth remembering.
type IssuedToken struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
}
