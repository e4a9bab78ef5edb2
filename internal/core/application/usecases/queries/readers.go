// Package queries contains read-only operations in the CQRS architecture.
// Query handlers never mutate aggregates; they project them into flat
// response structures for the transport layer.
package queries

import (
	"context"

	"haulix/internal/core/domain/model/kernel"
	"haulix/internal/core/domain/model/order"
)

// OrderReader is the read-side slice of the order repository used by
// query handlers. Queries run outside any unit of work.
type OrderReader interface {
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*order.Order, error)
	GetByOwner(ctx context.Context, ownerID kernel.UUID) ([]*order.Order, error)
	GetAll(ctx context.Context) ([]*order.Order, error)
}
