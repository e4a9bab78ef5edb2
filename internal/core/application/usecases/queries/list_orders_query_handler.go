package queries

import (
	"context"

	"haulix/internal/core/domain/services"
)

// ListOrdersQueryResponse is the back-office listing page plus the
// dashboard stats. Total counts the filtered set, while Stats always
// covers every order regardless of filter.
type ListOrdersQueryResponse struct {
	Orders []OrderResponse
	Total  int
	Page   int
	Size   int
	Stats  services.OrderStats
}

// ListOrdersQueryHandler serves the back-office order listing. Filtering
// and pagination run in memory over the full newest-first set, which is
// the same trade-off the dashboard stats already force.
type ListOrdersQueryHandler struct {
	orders OrderReader
}

// NewListOrdersQueryHandler creates a handler for admin order listings.
func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle executes the listing query.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	all, err := h.orders.GetAll(ctx)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	filtered := services.FilterOrders(all, query.Status(), query.Search())

	start := (query.Page() - 1) * query.Size()
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + query.Size()
	if end > len(filtered) {
		end = len(filtered)
	}

	responses := make([]OrderResponse, 0, end-start)
	for _, o := range filtered[start:end] {
		responses = append(responses, NewOrderResponse(o))
	}

	return ListOrdersQueryResponse{
		Orders: responses,
		Total:  len(filtered),
		Page:   query.Page(),
		Size:   query.Size(),
		Stats:  services.ComputeOrderStats(all),
	}, nil
}
