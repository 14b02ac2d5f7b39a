package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/wallet_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

const healthPingTimeout = 2 * time.Second

// healthCheck godoc
// @Summary Show the status of server.
// @Description Reports liveness. With ENABLE_DB_CHECK the database is pinged too.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheck(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check database ping failed", slog.String("error", err.Error()))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
