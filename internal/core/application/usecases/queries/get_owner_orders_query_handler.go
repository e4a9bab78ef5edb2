package queries

import (
	"context"
)

// GetOwnerOrdersQueryHandler lists a customer's own orders.
type GetOwnerOrdersQueryHandler struct {
	orders OrderReader
}

// NewGetOwnerOrdersQueryHandler creates a handler for owner order
// listings.
func NewGetOwnerOrdersQueryHandler(orders OrderReader) GetOwnerOrdersQueryHandler {
	return GetOwnerOrdersQueryHandler{orders: orders}
}

// Handle executes the listing. An account without orders yields an
// empty slice, not an error.
func (h GetOwnerOrdersQueryHandler) Handle(ctx context.Context, query GetOwnerOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.orders.GetByOwner(ctx, query.OwnerID())
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(found))
	for _, o := range found {
		responses = append(responses, NewOrderResponse(o))
	}

	return responses, nil
}
