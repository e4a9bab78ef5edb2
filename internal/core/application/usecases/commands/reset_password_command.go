package commands

import (
	"errors"

	"haulix/internal/pkg/errs"
	"haulix/internal/pkg/guard"
)

var ErrResetPasswordCommandIsNotConstructed = errors.New(
	"ResetPasswordCommand must be created via NewResetPasswordCommand constructor",
)

// ResetPasswordCommand represents a request to redeem a reset code and
// install a new password.
type ResetPasswordCommand struct { //nolint:recvcheck //using for validation
	email       string
	code        string
	newPassword string

	guard guard.ConstructorGuard
}

// NewResetPasswordCommand creates a password reset command.
func NewResetPasswordCommand(email, code, newPassword string) (ResetPasswordCommand, error) {
	cmd := ResetPasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setCode(code),
		cmd.setNewPassword(newPassword),
	); err != nil {
		return ResetPasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetPasswordCommand) Validate() error {
	return c.guard.Validate(ErrResetPasswordCommandIsNotConstructed)
}

// Email returns the account email.
func (c ResetPasswordCommand) Email() string { return c.email }

// Code returns the presented reset code.
func (c ResetPasswordCommand) Code() string { return c.code }

// NewPassword returns the replacement plaintext password.
func (c ResetPasswordCommand) NewPassword() string { return c.newPassword }

func (c *ResetPasswordCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *ResetPasswordCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}

func (c *ResetPasswordCommand) setNewPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("newPassword")
	}
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("newPassword", len(password), minPasswordLength, nil)
	}

	c.newPassword = password
	return nil
}
