package commands

import (
	"errors"

	"haulix/internal/pkg/errs"
	"haulix/internal/pkg/guard"
)

var ErrRegisterAccountCommandIsNotConstructed = errors.New(
	"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
)

// minPasswordLength is the minimum accepted plaintext password length.
const minPasswordLength = 6

// RegisterAccountCommand represents a request to register a new customer
// account. The plaintext password only lives inside the command; the
// handler hashes it before the aggregate ever sees it.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	email     string
	password  string
	firstName string
	lastName  string
	phone     string

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a registration command from raw
// input. Full email and phone validation happens in the account
// aggregate; the command only enforces presence and password length.
func NewRegisterAccountCommand(
	email, password, firstName, lastName, phone string,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setName(firstName, lastName),
		cmd.setPhone(phone),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// Email returns the submitted email address.
func (c RegisterAccountCommand) Email() string { return c.email }

// Password returns the plaintext password.
func (c RegisterAccountCommand) Password() string { return c.password }

// FirstName returns the submitted first name.
func (c RegisterAccountCommand) FirstName() string { return c.firstName }

// LastName returns the submitted last name.
func (c RegisterAccountCommand) LastName() string { return c.lastName }

// Phone returns the submitted phone number.
func (c RegisterAccountCommand) Phone() string { return c.phone }

func (c *RegisterAccountCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("password", len(password), minPasswordLength, nil)
	}

	c.password = password
	return nil
}

func (c *RegisterAccountCommand) setName(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}

	c.firstName = firstName
	c.lastName = lastName
	return nil
}

func (c *RegisterAccountCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}
