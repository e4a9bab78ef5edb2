package jobs

import (
	"context"
	"log/slog"

	"haulix/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AccountCleanupJob manages the scheduled removal of stale registration
// state. Runs hourly to purge expired one-time codes and drop accounts
// that never completed verification.
type AccountCleanupJob struct {
	handler commands.CleanupAccountsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAccountCleanupJob creates a new job for cleaning up accounts.
func NewAccountCleanupJob(handler commands.CleanupAccountsCommandHandler, logger *slog.Logger) *AccountCleanupJob {
	return &AccountCleanupJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "account_cleanup_job"),
	}
}

// Start begins the account cleanup job to run at the top of every hour.
func (j *AccountCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCleanupAccountsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Account cleanup job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Account cleanup job started (running hourly)")
	return nil
}

// Stop stops the account cleanup job.
func (j *AccountCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Account cleanup job stopped")
}
