package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/wallet_api/internal/utils"
	"github.com/gin-gonic/gin"
)

// analyticsSkipPrefixes are never tracked.
var analyticsSkipPrefixes = []string{"/health", "/wallet/"}

func skipAnalytics(path string) bool {
	for _, prefix := range analyticsSkipPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// analyticsEventName turns a route template into an event name,
// e.g. "/api/transactions/:month/:year" -> "api_transactions_month_year".
func analyticsEventName(fullPath string) string {
	name := strings.TrimPrefix(fullPath, "/")
	name = strings.ReplaceAll(name, ":", "")
	return strings.ReplaceAll(name, "/", "_")
}

// PosthogMiddleware tracks successful authenticated API calls with PostHog.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || skipAnalytics(c.Request.URL.Path) {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		// Set by AuthMiddleware; anonymous calls are not tracked.
		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := analyticsEventName(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		// Path params carry ids and windows only; the raw path is not sent.
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}

// PosthogEvent sends a custom event for the authenticated user of c.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if !posthogClient.IsInitialized() {
		return
	}
	userID, exists := GetUserIDFromContext(c)
	if !exists {
		return
	}
	if properties == nil {
		properties = make(map[string]any)
	}
	properties["method"] = c.Request.Method
	posthogClient.Enqueue(userID, eventName, properties)
}
