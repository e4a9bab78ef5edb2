package commands

import (
	"errors"

	"haulix/internal/core/domain/model/order"
	"haulix/internal/pkg/errs"
	"haulix/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a back-office request to move an
// order to a new status. The order is addressed by ref, which is either
// the order id or its HLX tracking number. Location and note are
// optional; the aggregate substitutes defaults when they are empty.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	ref           string
	status        order.Status
	paymentStatus *order.PaymentStatus
	location      string
	note          string
	notifyOwner   bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status update command from raw
// input. paymentStatus may be empty to leave the payment state untouched.
// With notifyOwner unset the owner hears nothing even when the status
// changed.
func NewUpdateOrderStatusCommand(
	ref, status, paymentStatus, location, note string,
	notifyOwner bool,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard:       guard.NewConstructorGuard(),
		location:    location,
		note:        note,
		notifyOwner: notifyOwner,
	}

	if err := errors.Join(
		cmd.setRef(ref),
		cmd.setStatus(status),
		cmd.setPaymentStatus(paymentStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// Ref returns the order id or tracking number being updated.
func (c UpdateOrderStatusCommand) Ref() string {
	return c.ref
}

// Status returns the target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// PaymentStatus returns the target payment status, or nil to keep the
// current one.
func (c UpdateOrderStatusCommand) PaymentStatus() *order.PaymentStatus {
	if c.paymentStatus == nil {
		return nil
	}
	p := *c.paymentStatus
	return &p
}

// Location returns the optional location for the history entry.
func (c UpdateOrderStatusCommand) Location() string {
	return c.location
}

// Note returns the optional note for the history entry.
func (c UpdateOrderStatusCommand) Note() string {
	return c.note
}

// NotifyOwner reports whether the owner should be told about the change.
func (c UpdateOrderStatusCommand) NotifyOwner() bool {
	return c.notifyOwner
}

func (c *UpdateOrderStatusCommand) setRef(ref string) error {
	if ref == "" {
		return errs.NewValueIsRequiredError("ref")
	}

	c.ref = ref
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status string) error {
	parsed, err := order.StatusFromString(status)
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}

func (c *UpdateOrderStatusCommand) setPaymentStatus(paymentStatus string) error {
	if paymentStatus == "" {
		return nil
	}

	parsed, err := order.PaymentStatusFromString(paymentStatus)
	if err != nil {
		return err
	}

	c.paymentStatus = &parsed
	return nil
}
