package commands

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"haulix/internal/core/domain/model/account"
	"haulix/internal/core/domain/model/kernel"
	"haulix/internal/core/domain/model/order"
	"haulix/internal/core/domain/services"
	"haulix/internal/core/ports"
	"haulix/internal/pkg/errs"
)

// Tracking number collisions are rare but possible since the suffix is
// only four random digits. Creation retries with a fresh number before
// giving up.
const maxTrackingNumberAttempts = 3

// notifyTimeout bounds every post-commit notification send.
const notifyTimeout = 5 * time.Second

// TrackingNumberGenerator produces a candidate HLX tracking number for
// the given creation instant.
type TrackingNumberGenerator interface {
	Generate(now time.Time) (string, error)
}

// CreateOrderCommandHandler handles shipment order creation. Quotes the
// shipping cost and promised delivery date, generates a tracking number
// and persists the order, then notifies the owner and the back office.
type CreateOrderCommandHandler struct {
	uowFactory      UoWFactory
	trackingNumbers TrackingNumberGenerator
	notifier        ports.Notifier
	adminEmail      string
	logger          *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Notifications go to the order owner and to adminEmail; their failures
// are logged but never fail the command.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	trackingNumbers TrackingNumberGenerator,
	notifier ports.Notifier,
	adminEmail string,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:      uowFactory,
		trackingNumbers: trackingNumbers,
		notifier:        notifier,
		adminEmail:      adminEmail,
		logger:          logger,
	}
}

// Handle processes the order creation command and returns the persisted
// order. Retries with a fresh tracking number when the generated one
// collides with an existing order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	cost, err := services.EstimateCost(cmd.Tier(), cmd.Package().WeightGrams())
	if err != nil {
		return nil, err
	}
	eta, err := services.EstimateDeliveryDate(cmd.Tier(), now)
	if err != nil {
		return nil, err
	}
	shipping, err := order.NewShippingDetails(cmd.Tier(), cost, eta)
	if err != nil {
		return nil, err
	}

	var (
		created *order.Order
		owner   *account.Account
	)
	for attempt := 1; ; attempt++ {
		created, owner, err = h.tryCreate(ctx, cmd, shipping, now)
		if err == nil {
			break
		}
		if attempt >= maxTrackingNumberAttempts || !errors.Is(err, errs.ErrConflict) {
			return nil, err
		}
	}

	h.notifyCreated(ctx, created, owner)

	return created, nil
}

func (h *CreateOrderCommandHandler) tryCreate(
	ctx context.Context,
	cmd CreateOrderCommand,
	shipping order.ShippingDetails,
	now time.Time,
) (*order.Order, *account.Account, error) {
	trackingNumber, err := h.trackingNumbers.Generate(now)
	if err != nil {
		return nil, nil, err
	}

	created, err := order.NewOrder(
		kernel.NewUUID(), cmd.OwnerID(), trackingNumber,
		cmd.Sender(), cmd.Recipient(), cmd.Package(), shipping, now,
	)
	if err != nil {
		return nil, nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.AccountRepository().Get(ctx, cmd.OwnerID())
	if err != nil {
		return nil, nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return created, owner, nil
}

func (h *CreateOrderCommandHandler) notifyCreated(ctx context.Context, created *order.Order, owner *account.Account) {
	data := map[string]string{
		"trackingNumber":    created.TrackingNumber(),
		"recipientName":     created.Recipient().Name(),
		"serviceTier":       created.Shipping().Tier().String(),
		"costCents":         strconv.FormatInt(created.Shipping().Cost(), 10),
		"estimatedDelivery": created.Shipping().EstimatedDelivery().Format(time.RFC3339),
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if err := h.notifier.Notify(sendCtx, ports.NotificationOrderConfirmation, owner.Email(), data); err != nil {
		h.logger.WarnContext(ctx, "order confirmation notification failed",
			"trackingNumber", created.TrackingNumber(), "error", err)
	}

	data["ownerEmail"] = owner.Email()
	if err := h.notifier.Notify(sendCtx, ports.NotificationAdminNewOrder, h.adminEmail, data); err != nil {
		h.logger.WarnContext(ctx, "admin new order notification failed",
			"trackingNumber", created.TrackingNumber(), "error", err)
	}
}
