package services

import (
	"strings"

	"haulix/internal/core/domain/model/order"
)

// OrderStats is the dashboard summary shown to administrators. Pending
// counts both pending and confirmed orders, matching what the back office
// treats as "not yet moving".
type OrderStats struct {
	Total     int
	Pending   int
	InTransit int
	Delivered int
}

// ComputeOrderStats tallies the dashboard counters over a set of orders.
func ComputeOrderStats(orders []*order.Order) OrderStats {
	stats := OrderStats{Total: len(orders)}
	for _, o := range orders {
		switch o.Status() {
		case order.StatusPending, order.StatusConfirmed:
			stats.Pending++
		case order.StatusInTransit:
			stats.InTransit++
		case order.StatusDelivered:
			stats.Delivered++
		}
	}
	return stats
}

// FilterOrders narrows a set of orders by exact status and by a
// case-insensitive substring over the tracking number, sender name,
// sender email and recipient name. A nil status and empty search pass
// everything through.
func FilterOrders(orders []*order.Order, status *order.Status, search string) []*order.Order {
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if status != nil && o.Status() != *status {
			continue
		}
		if search != "" && !matchesSearch(o, search) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func matchesSearch(o *order.Order, search string) bool {
	for _, field := range []string{
		o.TrackingNumber(),
		o.Sender().Name(),
		o.Sender().Email(),
		o.Recipient().Name(),
	} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
