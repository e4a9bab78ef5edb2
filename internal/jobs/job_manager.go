package jobs

import (
	"fmt"
	"log/slog"

	"haulix/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	accountCleanupJob *AccountCleanupJob
	tokenCleanupJob   *TokenCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the cleanup handler and token purger as dependencies to wire up
// the job execution.
func NewJobManager(
	cleanupHandler commands.CleanupAccountsCommandHandler,
	tokenPurger TokenPurger,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		accountCleanupJob: NewAccountCleanupJob(cleanupHandler, logger),
		tokenCleanupJob:   NewTokenCleanupJob(tokenPurger, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.accountCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start account cleanup job: %w", err)
	}

	if err := jm.tokenCleanupJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.accountCleanupJob.Stop()
		return fmt.Errorf("failed to start token cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.accountCleanupJob.Stop()
	jm.tokenCleanupJob.Stop()
}
