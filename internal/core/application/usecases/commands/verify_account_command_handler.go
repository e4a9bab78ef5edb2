package commands

import (
	"context"
	"strings"
	"time"
)

// normalizeEmail folds an email to the lowercased form accounts are
// stored under.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// VerifyAccountCommandHandler redeems registration verification codes,
// flipping the account to verified.
type VerifyAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewVerifyAccountCommandHandler creates a handler for email verification.
func NewVerifyAccountCommandHandler(uowFactory AccountUoWFactory) VerifyAccountCommandHandler {
	return VerifyAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verification command.
func (h *VerifyAccountCommandHandler) Handle(ctx context.Context, cmd VerifyAccountCommand) error {
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
		return err
	}

	if err = target.Verify(cmd.Code(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
