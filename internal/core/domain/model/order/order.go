package order

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"haulix/internal/core/domain/model/kernel"

	"haulix/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	trackingNumberPattern = regexp.MustCompile(`^HLX\d{10}$`)
)

const (
	// OriginLocation is the location recorded in the seed history entry.
	OriginLocation = "origin facility"

	// OriginNote is the note recorded in the seed history entry.
	OriginNote = "Order received and pending confirmation"

	// DefaultUpdateLocation is used when a status update carries no location.
	DefaultUpdateLocation = "processing center"
)

// Order is the aggregate root of a shipment. It owns the mutable lifecycle
// state (status, payment status, append-only status history) and the
// immutable creation-time data (parties, package, shipping terms).
//
// Invariants maintained by the aggregate:
//   - the tracking number matches HLX followed by ten digits
//   - the status history has at least one entry, and its last entry always
//     carries the order's current status
//   - every status mutation appends exactly one history entry
//   - deliveredAt is set exactly once, the first time the status becomes
//     delivered, and never changes afterwards
//   - shipping cost and estimated delivery never change after creation
type Order struct {
	id             kernel.UUID
	ownerID        kernel.UUID
	trackingNumber string
	sender         ContactDetails
	recipient      ContactDetails
	pkg            PackageDetails
	shipping       ShippingDetails
	status         Status
	paymentStatus  PaymentStatus
	history        []HistoryEntry
	deliveredAt    *time.Time
	createdAt      time.Time
	updatedAt      time.Time
	version        int64

	isConstructed bool
}

// NewOrder creates a new Order in pending status with a seeded history
// entry. All nested value objects must have been built through their own
// constructors; the tracking number must already be generated.
//
// The caller supplies now so that creation time, the seed history entry
// timestamp and updatedAt agree exactly.
func NewOrder(
	id, ownerID kernel.UUID,
	trackingNumber string,
	sender, recipient ContactDetails,
	pkg PackageDetails,
	shipping ShippingDetails,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		paymentStatus: PaymentPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setTrackingNumber(trackingNumber),
		o.setSender(sender),
		o.setRecipient(recipient),
		o.setPackage(pkg),
		o.setShipping(shipping),
	); err != nil {
		return nil, err
	}

	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	seed, err := NewHistoryEntry(StatusPending, now, OriginLocation, OriginNote)
	if err != nil {
		return nil, err
	}
	o.history = []HistoryEntry{seed}
	o.createdAt = now
	o.updatedAt = now

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running
// creation-time side effects. The history must be non-empty and its last
// entry must match the current status.
func RestoreOrder(
	id, ownerID kernel.UUID,
	trackingNumber string,
	sender, recipient ContactDetails,
	pkg PackageDetails,
	shipping ShippingDetails,
	status Status,
	paymentStatus PaymentStatus,
	history []HistoryEntry,
	deliveredAt *time.Time,
	createdAt, updatedAt time.Time,
	version int64,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setTrackingNumber(trackingNumber),
		o.setSender(sender),
		o.setRecipient(recipient),
		o.setPackage(pkg),
		o.setShipping(shipping),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if len(history) == 0 {
		return nil, errs.NewValueIsRequiredError("statusHistory")
	}
	if history[len(history)-1].Status() != status {
		return nil, errs.NewValueIsInvalidError("statusHistory")
	}

	o.status = status
	o.paymentStatus = paymentStatus
	o.history = append([]HistoryEntry(nil), history...)
	o.deliveredAt = deliveredAt
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	o.version = version

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// OwnerID returns the identifier of the account that created the order.
func (o *Order) OwnerID() kernel.UUID { return o.ownerID }

// TrackingNumber returns the public tracking number of the order.
func (o *Order) TrackingNumber() string { return o.trackingNumber }

// Sender returns the sender's contact details.
func (o *Order) Sender() ContactDetails { return o.sender }

// Recipient returns the recipient's contact details.
func (o *Order) Recipient() ContactDetails { return o.recipient }

// Package returns the package details.
func (o *Order) Package() PackageDetails { return o.pkg }

// Shipping returns the shipping terms computed at creation.
func (o *Order) Shipping() ShippingDetails { return o.shipping }

// Status returns the current status of the order.
func (o *Order) Status() Status { return o.status }

// PaymentStatus returns the current payment status of the order.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// History returns a copy of the append-only status history.
func (o *Order) History() []HistoryEntry {
	return append([]HistoryEntry(nil), o.history...)
}

// DeliveredAt returns when the order was first delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	if o.deliveredAt == nil {
		return nil
	}
	t := *o.deliveredAt
	return &t
}

// CreatedAt returns the creation time of the order.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Version returns the optimistic-concurrency version loaded from storage.
func (o *Order) Version() int64 { return o.version }

// ApplyStatusUpdate moves the order to newStatus, optionally updates the
// payment status, and appends exactly one history entry. Empty location and
// note fall back to DefaultUpdateLocation and a generated note.
//
// When newStatus is delivered and deliveredAt is unset, deliveredAt is set
// to now; once set it never changes again, even if the status later leaves
// and re-enters delivered.
//
// Returns true when the status or the payment status actually changed,
// which callers use to decide whether to notify the owner. The history
// entry is appended regardless, so repeated updates to the same status
// still leave an audit trail.
//
// Any enum value outside the valid sets is rejected and the order is left
// unchanged. Status ordering is deliberately not enforced here; callers
// wanting the recommended graph use Status.ValidateTransition first.
func (o *Order) ApplyStatusUpdate(
	newStatus Status,
	newPaymentStatus *PaymentStatus,
	location, note string,
	now time.Time,
) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}
	if err := newStatus.Validate(); err != nil {
		return false, err
	}
	if newPaymentStatus != nil {
		if err := newPaymentStatus.Validate(); err != nil {
			return false, err
		}
	}
	if now.IsZero() {
		return false, errs.NewValueIsRequiredError("timestamp")
	}

	if location == "" {
		location = DefaultUpdateLocation
	}
	if note == "" {
		note = fmt.Sprintf("Order status updated to %s",
			strings.ReplaceAll(newStatus.String(), "_", " "))
	}

	entry, err := NewHistoryEntry(newStatus, now, location, note)
	if err != nil {
		return false, err
	}

	changed := o.status != newStatus
	o.status = newStatus
	if newPaymentStatus != nil && o.paymentStatus != *newPaymentStatus {
		o.paymentStatus = *newPaymentStatus
		changed = true
	}

	o.history = append(o.history, entry)
	if newStatus == StatusDelivered && o.deliveredAt == nil {
		t := now
		o.deliveredAt = &t
	}
	o.updatedAt = now

	return changed, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("ownerId", err)
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	if !trackingNumberPattern.MatchString(trackingNumber) {
		return errs.NewValueIsInvalidErrorWithCause("trackingNumber",
			fmt.Errorf("%q does not match HLX followed by 10 digits", trackingNumber))
	}
	o.trackingNumber = trackingNumber
	return nil
}

func (o *Order) setSender(sender ContactDetails) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	o.sender = sender
	return nil
}

func (o *Order) setRecipient(recipient ContactDetails) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	o.recipient = recipient
	return nil
}

func (o *Order) setPackage(pkg PackageDetails) error {
	if err := pkg.Validate(); err != nil {
		return err
	}
	o.pkg = pkg
	return nil
}

func (o *Order) setShipping(shipping ShippingDetails) error {
	if err := shipping.Validate(); err != nil {
		return err
	}
	o.shipping = shipping
	return nil
}
