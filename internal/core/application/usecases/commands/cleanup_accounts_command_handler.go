package commands

import (
	"context"
	"log/slog"
	"time"
)

// unverifiedAccountTTL is how long an unverified registration survives
// before cleanup removes it.
const unverifiedAccountTTL = 24 * time.Hour

// CleanupAccountsCommandHandler purges expired one-time codes and
// abandoned unverified registrations.
type CleanupAccountsCommandHandler struct {
	uowFactory AccountUoWFactory
	logger     *slog.Logger
}

// NewCleanupAccountsCommandHandler creates a handler for the periodic
// account cleanup.
func NewCleanupAccountsCommandHandler(uowFactory AccountUoWFactory, logger *slog.Logger) CleanupAccountsCommandHandler {
	return CleanupAccountsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the cleanup command.
func (h *CleanupAccountsCommandHandler) Handle(ctx context.Context, cmd CleanupAccountsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AccountRepository()

	purged, err := repo.PurgeExpiredCodes(ctx, now)
	if err != nil {
		return err
	}

	removed, err := repo.DeleteUnverifiedBefore(ctx, now.Add(-unverifiedAccountTTL))
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if purged > 0 || removed > 0 {
		h.logger.InfoContext(ctx, "account cleanup finished",
			"purgedCodes", purged, "removedAccounts", removed)
	}

	return nil
}
