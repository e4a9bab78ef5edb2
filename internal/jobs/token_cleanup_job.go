package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// TokenPurger removes expired bearer tokens and reports how many rows
// went away.
type TokenPurger interface {
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// TokenCleanupJob manages the scheduled removal of expired bearer
// tokens. Runs hourly so dead sessions do not accumulate.
type TokenCleanupJob struct {
	purger TokenPurger
	cron   *cron.Cron
	logger *slog.Logger
}

// NewTokenCleanupJob creates a new job for purging expired tokens.
func NewTokenCleanupJob(purger TokenPurger, logger *slog.Logger) *TokenCleanupJob {
	return &TokenCleanupJob{
		purger: purger,
		cron:   cron.New(),
		logger: logger.With("component", "token_cleanup_job"),
	}
}

// Start begins the token cleanup job to run at the top of every hour.
func (j *TokenCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		purged, err := j.purger.PurgeExpired(ctx, time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Token cleanup job failed", "error", err)
			return
		}
		if purged > 0 {
			j.logger.InfoContext(ctx, "Expired tokens purged", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Token cleanup job started (running hourly)")
	return nil
}

// Stop stops the token cleanup job.
func (j *TokenCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Token cleanup job stopped")
}
