package commands

import (
	"errors"

	"haulix/internal/pkg/guard"
)

var ErrCleanupAccountsCommandIsNotConstructed = errors.New(
	"CleanupAccountsCommand must be created via NewCleanupAccountsCommand constructor",
)

// CleanupAccountsCommand triggers removal of stale registration state:
// expired one-time codes and unverified accounts that were never
// confirmed. Run periodically from the job scheduler.
type CleanupAccountsCommand struct {
	guard guard.ConstructorGuard
}

// NewCleanupAccountsCommand creates a parameterless cleanup command.
func NewCleanupAccountsCommand() CleanupAccountsCommand {
	return CleanupAccountsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *CleanupAccountsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupAccountsCommandIsNotConstructed)
}
