package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"haulix/internal/core/domain/model/account"
	"haulix/internal/core/domain/model/kernel"
	"haulix/internal/core/ports"
	"haulix/internal/pkg/errs"
)

// bcryptCost is deliberately above the library default.
const bcryptCost = 12

// OneTimeCodeGenerator draws a random one-time code value.
type OneTimeCodeGenerator interface {
	Generate() (string, error)
}

// RegisterAccountCommandHandler handles customer registration. Creates an
// unverified account with a pending verification code and emails the
// code. Registration is the one flow where a failed notification aborts
// the operation: an account whose owner never received a code would be
// stuck, so it is removed again.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	codes      OneTimeCodeGenerator
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewRegisterAccountCommandHandler creates a handler for registrations.
func NewRegisterAccountCommandHandler(
	uowFactory AccountUoWFactory,
	codes OneTimeCodeGenerator,
	notifier ports.Notifier,
	logger *slog.Logger,
) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
		codes:      codes,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the registration command. Re-registering an email that
// belongs to an unverified account replaces that account; a verified
// account yields a conflict.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	code, err := h.codes.Generate()
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	created, err := account.NewAccount(
		kernel.NewUUID(),
		cmd.Email(), string(hash), cmd.FirstName(), cmd.LastName(), cmd.Phone(),
		account.RoleCustomer, now,
	)
	if err != nil {
		return err
	}
	if err = created.IssueVerificationCode(code, now); err != nil {
		return err
	}

	if err = h.persist(ctx, created); err != nil {
		return err
	}

	if err = h.sendCode(ctx, created, code); err != nil {
		h.rollBackRegistration(ctx, created.ID())
		return fmt.Errorf("send verification code: %w", err)
	}

	return nil
}

func (h *RegisterAccountCommandHandler) persist(ctx context.Context, created *account.Account) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AccountRepository()

	existing, err := repo.GetByEmail(ctx, created.Email())
	switch {
	case err == nil:
		if existing.IsVerified() {
			return errs.NewConflictError("email")
		}
		// An unverified account is an abandoned registration attempt.
		if err = repo.Delete(ctx, existing.ID()); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		// First registration for this email.
	default:
		return err
	}

	if err = repo.Add(ctx, created); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *RegisterAccountCommandHandler) sendCode(ctx context.Context, created *account.Account, code string) error {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	return h.notifier.Notify(sendCtx, ports.NotificationVerificationCode, created.Email(), map[string]string{
		"firstName": created.FirstName(),
		"code":      code,
	})
}

// rollBackRegistration removes an account whose verification code could
// not be delivered, so the email can be registered again later.
func (h *RegisterAccountCommandHandler) rollBackRegistration(ctx context.Context, id kernel.UUID) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		h.logger.ErrorContext(ctx, "failed to remove account after undelivered code", "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.AccountRepository().Delete(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to remove account after undelivered code", "error", err)
		return
	}
	if err := uow.Commit(ctx); err != nil {
		h.logger.ErrorContext(ctx, "failed to remove account after undelivered code", "error", err)
	}
}
