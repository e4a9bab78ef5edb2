package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"haulix/internal/core/ports"
	"haulix/internal/pkg/errs"
)

// RequestPasswordResetCommandHandler arms a password reset code and
// emails it. The command always reports success to the caller so the
// endpoint cannot be used to probe which emails are registered.
type RequestPasswordResetCommandHandler struct {
	uowFactory AccountUoWFactory
	codes      OneTimeCodeGenerator
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewRequestPasswordResetCommandHandler creates a handler for reset
// requests.
func NewRequestPasswordResetCommandHandler(
	uowFactory AccountUoWFactory,
	codes OneTimeCodeGenerator,
	notifier ports.Notifier,
	logger *slog.Logger,
) RequestPasswordResetCommandHandler {
	return RequestPasswordResetCommandHandler{
		uowFactory: uowFactory,
		codes:      codes,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the reset request. Unknown and unverified emails are
// silently ignored; infrastructure failures still surface.
func (h *RequestPasswordResetCommandHandler) Handle(ctx context.Context, cmd RequestPasswordResetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	code, err := h.codes.Generate()
	if err != nil {
		return err
	}

	firstName, sent, err := h.armCode(ctx, cmd, code)
	if err != nil {
		return err
	}
	if !sent {
		return nil
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	sendErr := h.notifier.Notify(sendCtx, ports.NotificationPasswordResetCode, normalizeEmail(cmd.Email()), map[string]string{
		"firstName": firstName,
		"code":      code,
	})
	if sendErr != nil {
		h.logger.WarnContext(ctx, "password reset code notification failed", "error", sendErr)
	}

	return nil
}

func (h *RequestPasswordResetCommandHandler) armCode(
	ctx context.Context,
	cmd RequestPasswordResetCommand,
	code string,
) (firstName string, sent bool, err error) {
	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AccountRepository()

	target, err := repo.GetByEmail(ctx, normalizeEmail(cmd.Email()))
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	if err = target.IssueResetCode(code, time.Now().UTC()); err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			return "", false, nil
		}
		return "", false, err
	}

	if err = repo.Update(ctx, target); err != nil {
		return "", false, err
	}
	if err = uow.Commit(ctx); err != nil {
		return "", false, err
	}

	return target.FirstName(), true, nil
}
