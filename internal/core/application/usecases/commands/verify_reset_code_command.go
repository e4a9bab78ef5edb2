package commands

import (
	"errors"

	"haulix/internal/pkg/errs"
	"haulix/internal/pkg/guard"
)

var ErrVerifyResetCodeCommandIsNotConstructed = errors.New(
	"VerifyResetCodeCommand must be created via NewVerifyResetCodeCommand constructor",
)

// VerifyResetCodeCommand represents a pre-submit check that a reset code is
// still redeemable, without consuming it.
type VerifyResetCodeCommand struct { //nolint:recvcheck //using for validation
	email string
	code  string

	guard guard.ConstructorGuard
}

// NewVerifyResetCodeCommand creates a reset code check command.
func NewVerifyResetCodeCommand(email, code string) (VerifyResetCodeCommand, error) {
	cmd := VerifyResetCodeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setCode(code),
	); err != nil {
		return VerifyResetCodeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyResetCodeCommand) Validate() error {
	return c.guard.Validate(ErrVerifyResetCodeCommandIsNotConstructed)
}

// Email returns the account email.
func (c VerifyResetCodeCommand) Email() string { return c.email }

// Code returns the presented reset code.
func (c VerifyResetCodeCommand) Code() string { return c.code }

func (c *VerifyResetCodeCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *VerifyResetCodeCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}
