package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"haulix/internal/pkg/errs"
)

// ResetPasswordCommandHandler redeems a reset code and installs the new
// password hash. An unknown email is reported as an invalid code so the
// endpoint leaks nothing about registered emails.
type ResetPasswordCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewResetPasswordCommandHandler creates a handler for password resets.
func NewResetPasswordCommandHandler(uowFactory AccountUoWFactory) ResetPasswordCommandHandler {
	return ResetPasswordCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the password reset command.
func (h *ResetPasswordCommandHandler) Handle(ctx context.Context, cmd ResetPasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.NewPassword()), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = target.ResetPassword(cmd.Code(), string(hash), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
