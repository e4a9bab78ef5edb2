package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"haulix/internal/core/domain/model/account"
	"haulix/internal/core/ports"
	"haulix/internal/pkg/errs"
)

// Session is the authentication result handed back to the transport
// layer after a successful login.
type Session struct {
	Token     string
	AccountID string
	Role      account.Role
	FirstName string
	LastName  string
	Email     string
}

// LoginCommandHandler checks credentials and issues a bearer token.
// Unknown emails, wrong passwords and unverified accounts all produce
// the same unauthorized error so the response leaks nothing about which
// part failed.
type LoginCommandHandler struct {
	uowFactory AccountUoWFactory
	tokens     ports.TokenIssuer
}

// NewLoginCommandHandler creates a handler for sign-in attempts.
func NewLoginCommandHandler(uowFactory AccountUoWFactory, tokens ports.TokenIssuer) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
	}
}

// Handle processes the login command and returns a session on success.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (Session, error) {
	if err := cmd.Validate(); err != nil {
		return Session{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return Session{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.AccountRepository().GetByEmail(ctx, normalizeEmail(cmd.Email()))
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return Session{}, errs.NewUnauthorizedError("invalid credentials")
		}
		return Session{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return Session{}, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(target.PasswordHash()), []byte(cmd.Password())); err != nil {
		return Session{}, errs.NewUnauthorizedError("invalid credentials")
	}
	if !target.IsVerified() {
		return Session{}, errs.NewUnauthorizedError("invalid credentials")
	}

	token, err := h.tokens.Issue(ctx, target.ID(), target.Role())
	if err != nil {
		return Session{}, err
	}

	return Session{
		Token:     token,
		AccountID: target.ID().String(),
		Role:      target.Role(),
		FirstName: target.FirstName(),
		LastName:  target.LastName(),
		Email:     target.Email(),
	}, nil
}
