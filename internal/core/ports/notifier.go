package ports

import "context"

// NotificationKind names the template a notification is rendered from.
type NotificationKind string

const (
	// NotificationOrderConfirmation goes to the owner right after an
	// order is created.
	NotificationOrderConfirmation NotificationKind = "order_confirmation"

	// NotificationAdminNewOrder alerts the back office about a new order.
	NotificationAdminNewOrder NotificationKind = "admin_new_order"

	// NotificationStatusUpdate tells the owner the shipment status changed.
	NotificationStatusUpdate NotificationKind = "status_update"

	// NotificationVerificationCode carries the registration one-time code.
	// This is the only notification whose failure aborts the operation.
	NotificationVerificationCode NotificationKind = "verification_code"

	// NotificationPasswordResetCode carries the password reset code.
	NotificationPasswordResetCode NotificationKind = "password_reset_code"
)

// Notifier delivers transactional messages to a recipient address.
// Implementations must respect the context deadline; callers bound every
// send so a slow channel cannot stall a request.
type Notifier interface {
	Notify(ctx context.Context, kind NotificationKind, recipient string, data map[string]string) error
}
