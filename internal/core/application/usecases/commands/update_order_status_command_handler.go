package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"haulix/internal/core/domain/model/kernel"
	"haulix/internal/core/domain/model/order"
	"haulix/internal/core/ports"
	"haulix/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies a status change to an order,
// appending one history entry per update. On a concurrent modification
// the read-modify-write cycle is retried once against fresh state; a
// second version conflict surfaces to the caller.
type UpdateOrderStatusCommandHandler struct {
	uowFactory    UoWFactory
	notifier      ports.Notifier
	enforcePolicy bool
	logger        *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status
// updates. With enforcePolicy set, updates must follow the recommended
// status graph; otherwise any valid status is accepted.
func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	enforcePolicy bool,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:    uowFactory,
		notifier:      notifier,
		enforcePolicy: enforcePolicy,
		logger:        logger,
	}
}

// Handle processes the status update command and returns the updated
// order. The owner is notified only when the visible status actually
// changed and the command asks for it; notification failures never fail
// the command.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updated, ownerEmail, changed, err := h.tryUpdate(ctx, cmd)
	if err != nil && errors.Is(err, errs.ErrVersionIsInvalid) {
		updated, ownerEmail, changed, err = h.tryUpdate(ctx, cmd)
	}
	if err != nil {
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			return nil, errs.NewConflictErrorWithCause("order", err)
		}
		return nil, err
	}

	if changed && cmd.NotifyOwner() {
		h.notifyStatusChanged(ctx, updated, ownerEmail)
	}

	return updated, nil
}

func (h *UpdateOrderStatusCommandHandler) tryUpdate(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, string, bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, "", false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := h.resolveOrder(ctx, uow.OrderRepository(), cmd.Ref())
	if err != nil {
		return nil, "", false, err
	}

	if h.enforcePolicy {
		if err = target.Status().ValidateTransition(cmd.Status()); err != nil {
			return nil, "", false, err
		}
	}

	changed, err := target.ApplyStatusUpdate(
		cmd.Status(), cmd.PaymentStatus(), cmd.Location(), cmd.Note(), time.Now().UTC(),
	)
	if err != nil {
		return nil, "", false, err
	}

	owner, err := uow.AccountRepository().Get(ctx, target.OwnerID())
	if err != nil {
		return nil, "", false, err
	}

	if err = uow.OrderRepository().Update(ctx, target); err != nil {
		return nil, "", false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, "", false, err
	}

	return target, owner.Email(), changed, nil
}

// resolveOrder treats the ref as an order id when it parses as a UUID
// and as a tracking number otherwise.
func (h *UpdateOrderStatusCommandHandler) resolveOrder(
	ctx context.Context,
	repo ports.OrderRepository,
	ref string,
) (*order.Order, error) {
	if id, err := kernel.UUIDFromString(ref); err == nil {
		return repo.Get(ctx, id)
	}
	return repo.GetByTrackingNumber(ctx, ref)
}

func (h *UpdateOrderStatusCommandHandler) notifyStatusChanged(ctx context.Context, updated *order.Order, ownerEmail string) {
	history := updated.History()
	last := history[len(history)-1]

	data := map[string]string{
		"trackingNumber": updated.TrackingNumber(),
		"status":         strings.ReplaceAll(updated.Status().String(), "_", " "),
		"location":       last.Location(),
		"note":           last.Note(),
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if err := h.notifier.Notify(sendCtx, ports.NotificationStatusUpdate, ownerEmail, data); err != nil {
		h.logger.WarnContext(ctx, "status update notification failed",
			"trackingNumber", updated.TrackingNumber(), "error", err)
	}
}
