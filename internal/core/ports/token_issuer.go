package ports

import (
	"context"

	"haulix/internal/core/domain/model/account"
	"haulix/internal/core/domain/model/kernel"
)

// TokenIssuer hands out opaque bearer tokens on login and resolves them
// back to a principal on each request. Tokens are server-side state, so
// resolving an unknown or expired token yields an unauthorized error.
type TokenIssuer interface {
	// Issue creates a token for the given account.
	Issue(ctx context.Context, accountID kernel.UUID, role account.Role) (string, error)

	// Resolve maps a presented token back to the account it was issued
	// for. Returns an unauthorized error for unknown or expired tokens.
	Resolve(ctx context.Context, token string) (kernel.UUID, account.Role, error)
}
