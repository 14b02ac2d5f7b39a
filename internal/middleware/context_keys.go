package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey      = contextKey("userID")
	tokenIDKey     = contextKey("tokenID")
	tokenExpiryKey = contextKey("tokenExpiry")
)

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetTokenFromContext returns the id (jti) and expiry of the access token that
// authenticated the request.
func GetTokenFromContext(c *gin.Context) (string, time.Time, bool) {
	ctx := c.Request.Context()
	tokenID, ok := ctx.Value(tokenIDKey).(string)
	if !ok || tokenID == "" {
		return "", time.Time{}, false
	}
	expiry, _ := ctx.Value(tokenExpiryKey).(time.Time)
	return tokenID, expiry, true
}
