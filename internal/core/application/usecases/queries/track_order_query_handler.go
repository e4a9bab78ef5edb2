package queries

import (
	"context"
	"errors"
	"strings"

	"haulix/internal/pkg/errs"
)

// TrackOrderQueryHandler serves the public tracking lookup. Unknown
// numbers come back as a bare not-found carrying only the presented
// number, never hinting at near-misses.
type TrackOrderQueryHandler struct {
	orders OrderReader
}

// NewTrackOrderQueryHandler creates a handler for tracking lookups.
func NewTrackOrderQueryHandler(orders OrderReader) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{orders: orders}
}

// Handle executes the tracking lookup. The number is matched in its
// canonical uppercase form.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	trackingNumber := strings.ToUpper(strings.TrimSpace(query.TrackingNumber()))

	found, err := h.orders.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return OrderResponse{}, errs.NewObjectNotFoundError("package", trackingNumber)
		}
		return OrderResponse{}, err
	}

	return NewOrderResponse(found), nil
}
