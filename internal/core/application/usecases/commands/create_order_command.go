package commands

import (
	"errors"

	"haulix/internal/core/domain/model/kernel"
	"haulix/internal/core/domain/model/order"
	"haulix/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ContactInput carries the raw sender or recipient fields as submitted
// by the client, before domain validation.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// PackageInput carries the raw package fields as submitted by the client.
type PackageInput struct {
	WeightGrams   int
	LengthCm      int
	WidthCm       int
	HeightCm      int
	Description   string
	DeclaredValue int64
	Category      string
	Images        []string
}

// CreateOrderCommand represents a request to create a new shipment order
// on behalf of the authenticated owner. Construction runs full domain
// validation, so a constructed command always carries valid value objects.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	ownerID   kernel.UUID
	sender    order.ContactDetails
	recipient order.ContactDetails
	pkg       order.PackageDetails
	tier      order.ServiceTier

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates an order creation command from raw input.
// Returns the joined validation errors when any field is rejected.
func NewCreateOrderCommand(
	ownerID kernel.UUID,
	sender, recipient ContactInput,
	pkg PackageInput,
	tier string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setContact(&cmd.sender, sender),
		cmd.setContact(&cmd.recipient, recipient),
		cmd.setPackage(pkg),
		cmd.setTier(tier),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OwnerID returns the account the order belongs to.
func (c CreateOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Sender returns the validated sender contact details.
func (c CreateOrderCommand) Sender() order.ContactDetails {
	return c.sender
}

// Recipient returns the validated recipient contact details.
func (c CreateOrderCommand) Recipient() order.ContactDetails {
	return c.recipient
}

// Package returns the validated package details.
func (c CreateOrderCommand) Package() order.PackageDetails {
	return c.pkg
}

// Tier returns the requested service tier.
func (c CreateOrderCommand) Tier() order.ServiceTier {
	return c.tier
}

func (c *CreateOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setContact(target *order.ContactDetails, input ContactInput) error {
	address, err := order.NewAddress(input.Street, input.City, input.State, input.ZipCode, input.Country)
	if err != nil {
		return err
	}

	contact, err := order.NewContactDetails(input.Name, input.Email, input.Phone, address)
	if err != nil {
		return err
	}

	*target = contact
	return nil
}

func (c *CreateOrderCommand) setPackage(input PackageInput) error {
	category, err := order.PackageCategoryFromString(input.Category)
	if err != nil {
		return err
	}

	pkg, err := order.NewPackageDetails(
		input.WeightGrams, input.LengthCm, input.WidthCm, input.HeightCm,
		input.Description, input.DeclaredValue, category, input.Images,
	)
	if err != nil {
		return err
	}

	c.pkg = pkg
	return nil
}

func (c *CreateOrderCommand) setTier(tier string) error {
	parsed, err := order.ServiceTierFromString(tier)
	if err != nil {
		return err
	}

	c.tier = parsed
	return nil
}
