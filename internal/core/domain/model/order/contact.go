package order

import (
	"errors"
	"regexp"

	"haulix/internal/pkg/errs"
)

var (
	// ErrAddressIsNotConstructed is returned when an Address was not created
	// via NewAddress.
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

	// ErrContactDetailsIsNotConstructed is returned when ContactDetails were
	// not created via NewContactDetails.
	ErrContactDetailsIsNotConstructed = errors.New(
		"ContactDetails must be created via NewContactDetails constructor")

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s()-]{10,}$`)
)

// Address is a postal address value object. All fields are required.
type Address struct {
	street  string
	city    string
	state   string
	zipCode string
	country string

	isConstructed bool
}

// NewAddress creates a validated Address. Every field must be non-empty.
func NewAddress(street, city, state, zipCode, country string) (Address, error) {
	a := Address{isConstructed: true}

	if err := errors.Join(
		requireField("street", street, &a.street),
		requireField("city", city, &a.city),
		requireField("state", state, &a.state),
		requireField("zipCode", zipCode, &a.zipCode),
		requireField("country", country, &a.country),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// Street returns the street line of the address.
func (a Address) Street() string { return a.street }

// City returns the city of the address.
func (a Address) City() string { return a.city }

// State returns the state or region of the address.
func (a Address) State() string { return a.state }

// ZipCode returns the postal code of the address.
func (a Address) ZipCode() string { return a.zipCode }

// Country returns the country of the address.
func (a Address) Country() string { return a.country }

// ContactDetails describes one party of a shipment: a person with an email,
// a phone number and a postal address. Immutable after order creation.
type ContactDetails struct {
	name    string
	email   string
	phone   string
	address Address

	isConstructed bool
}

// NewContactDetails creates validated contact details. The email and phone
// must match the accepted formats and the address must be constructed.
func NewContactDetails(name, email, phone string, address Address) (ContactDetails, error) {
	c := ContactDetails{isConstructed: true}

	if err := errors.Join(
		requireField("name", name, &c.name),
		c.setEmail(email),
		c.setPhone(phone),
		c.setAddress(address),
	); err != nil {
		return ContactDetails{}, err
	}

	return c, nil
}

// Validate ensures the ContactDetails were created through NewContactDetails.
func (c ContactDetails) Validate() error {
	if !c.isConstructed {
		return ErrContactDetailsIsNotConstructed
	}
	return nil
}

// Name returns the contact's full name.
func (c ContactDetails) Name() string { return c.name }

// Email returns the contact's email address.
func (c ContactDetails) Email() string { return c.email }

// Phone returns the contact's phone number.
func (c ContactDetails) Phone() string { return c.phone }

// Address returns the contact's postal address.
func (c ContactDetails) Address() Address { return c.address }

func (c *ContactDetails) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidError("email")
	}
	c.email = email
	return nil
}

func (c *ContactDetails) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if !phonePattern.MatchString(phone) {
		return errs.NewValueIsInvalidError("phone")
	}
	c.phone = phone
	return nil
}

func (c *ContactDetails) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func requireField(name, value string, target *string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*target = value
	return nil
}
