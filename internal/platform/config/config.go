package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/wallet_api/internal/core/domain"
	"github.com/SscSPs/wallet_api/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	LogLevel          string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	DBQueryTimeout    time.Duration

	CORSAllowedOrigins   []string
	AuthRateLimit        string // ulule/limiter format, e.g. "5-M"
	TokenCleanupSchedule string // cron spec

	PosthogAPIKey   string
	PosthogEndpoint string

	// Categories is the expense catalog; DefaultCategories unless CATEGORIES is set.
	Categories *domain.Catalog
}

const (
	defaultJWTExpiry      = 12 * time.Hour
	defaultDBQueryTimeout = 5 * time.Second
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DURATION", defaultJWTExpiry.String())
	v.SetDefault("JWT_ISSUER", "wallet-api")
	v.SetDefault("DB_QUERY_TIMEOUT", defaultDBQueryTimeout.String())
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("AUTH_RATE_LIMIT", "5-M")
	v.SetDefault("TOKEN_CLEANUP_SCHEDULE", "@hourly")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", utils.DefaultPosthogEndpoint)
	v.SetDefault("CATEGORIES", "")

	// Environment variables override both the defaults and values loaded from .env.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:          v.GetString("PGSQL_URL"),
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:        v.GetBool("ENABLE_DB_CHECK"),
		LogLevel:             strings.ToLower(v.GetString("LOG_LEVEL")),
		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTIssuer:            v.GetString("JWT_ISSUER"),
		CORSAllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		AuthRateLimit:        v.GetString("AUTH_RATE_LIMIT"),
		TokenCleanupSchedule: v.GetString("TOKEN_CLEANUP_SCHEDULE"),
		PosthogAPIKey:        v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:      v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("PGSQL_URL environment variable not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	var err error
	cfg.JWTExpiryDuration, err = positiveDuration(v.GetString("JWT_EXPIRY_DURATION"), "JWT_EXPIRY_DURATION")
	if err != nil {
		return nil, err
	}
	cfg.DBQueryTimeout, err = positiveDuration(v.GetString("DB_QUERY_TIMEOUT"), "DB_QUERY_TIMEOUT")
	if err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, errors.New("JWT_SECRET must be set in production")
		}
		// Tokens will not survive a restart.
		cfg.JWTSecret, err = utils.GenerateSecureRandomString(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate development JWT secret: %w", err)
		}
		slog.Warn("JWT_SECRET not set, using a random secret for this process")
	}

	if raw := strings.TrimSpace(v.GetString("CATEGORIES")); raw != "" {
		cfg.Categories, err = domain.ParseCatalog(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CATEGORIES: %w", err)
		}
	} else {
		cfg.Categories = domain.DefaultCatalog()
	}

	return cfg, nil
}

func positiveDuration(raw, key string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, raw)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
