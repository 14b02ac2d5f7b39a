package jobs

import (
	"context"
	"log/slog"
	"time"
)

// RevocationPurger deletes revocations of tokens that have expired anyway.
type RevocationPurger interface {
	PurgeExpiredRevocations(ctx context.Context) (int64, error)
}

const tokenCleanupTimeout = time.Minute

// RegisterTokenCleanup schedules the revoked token janitor.
func RegisterTokenCleanup(s *Scheduler, spec string, purger RevocationPurger) error {
	return s.AddJob("revoked_token_cleanup", spec, tokenCleanupTimeout, func(ctx context.Context) error {
		deleted, err := purger.PurgeExpiredRevocations(ctx)
		if err != nil {
			return err
		}
		if deleted > 0 {
			s.logger.Info("Expired token revocations purged", slog.Int64("deleted", deleted))
		}
		return nil
	})
}
