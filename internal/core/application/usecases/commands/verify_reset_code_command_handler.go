package commands

import (
	"context"
	"errors"
	"time"

	"haulix/internal/pkg/errs"
)

// VerifyResetCodeCommandHandler checks a reset code ahead of the actual
// password submission. The code stays armed; only ResetPassword consumes it.
// An unknown email is reported as an invalid code so the endpoint leaks
// nothing about registered emails.
type VerifyResetCodeCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewVerifyResetCodeCommandHandler creates a handler for reset code checks.
func NewVerifyResetCodeCommandHandler(uowFactory AccountUoWFactory) VerifyResetCodeCommandHandler {
	return VerifyResetCodeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reset code check command.
func (h *VerifyResetCodeCommandHandler) Handle(ctx context.Context, cmd VerifyResetCodeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AccountRepository()

	target, err := repo.GetByEmail(ctx, normalizeEmail(cmd.Email()))
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewValueIsInvalidError("code")
		}
		return err
	}

	return target.CheckResetCode(cmd.Code(), time.Now().UTC())
}
