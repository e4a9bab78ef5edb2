package commands

import (
	"errors"

	"haulix/internal/pkg/errs"
	"haulix/internal/pkg/guard"
)

var ErrVerifyAccountCommandIsNotConstructed = errors.New(
	"VerifyAccountCommand must be created via NewVerifyAccountCommand constructor",
)

// VerifyAccountCommand represents a request to redeem a registration
// verification code.
type VerifyAccountCommand struct { //nolint:recvcheck //using for validation
	email string
	code  string

	guard guard.ConstructorGuard
}

// NewVerifyAccountCommand creates a verification command.
func NewVerifyAccountCommand(email, code string) (VerifyAccountCommand, error) {
	cmd := VerifyAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setCode(code),
	); err != nil {
		return VerifyAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyAccountCommand) Validate() error {
	return c.guard.Validate(ErrVerifyAccountCommandIsNotConstructed)
}

// Email returns the email being verified.
func (c VerifyAccountCommand) Email() string { return c.email }

// Code returns the presented verification code.
func (c VerifyAccountCommand) Code() string { return c.code }

func (c *VerifyAccountCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *VerifyAccountCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}
