package ports

import (
	"context"

	"haulix/internal/core/domain/model/kernel"
	"haulix/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Updates are guarded by the aggregate version so concurrent writers
// cannot silently overwrite each other's history entries.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Returns a conflict error when the tracking number is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Fails with a version conflict when the stored version differs from
	// the version the aggregate was loaded at.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingNumber retrieves an order by its public HLX number.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*order.Order, error)

	// GetByOwner retrieves all orders created by the given account,
	// newest first.
	GetByOwner(ctx context.Context, ownerID kernel.UUID) ([]*order.Order, error)

	// GetAll retrieves every order newest first. Used by the back office
	// for listings and dashboard stats.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
