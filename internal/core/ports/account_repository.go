package ports

import (
	"context"
	"time"

	"haulix/internal/core/domain/model/account"
	"haulix/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account
// aggregates. Emails are unique; lookups by email expect the lowercased
// form the aggregate stores.
type AccountRepository interface {
	// Add persists a new account.
	// Returns a conflict error when the email is already registered.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account by its lowercased email.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)

	// Delete removes an account. Used when the verification email cannot
	// be sent during registration.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteUnverifiedBefore removes unverified accounts created before
	// the cutoff. Returns the number of accounts removed.
	DeleteUnverifiedBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// PurgeExpiredCodes clears one-time codes whose expiry has passed.
	// Returns the number of accounts touched.
	PurgeExpiredCodes(ctx context.Context, now time.Time) (int64, error)
}
