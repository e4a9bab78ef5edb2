package order

import (
	"errors"
	"fmt"
	"time"

	"haulix/internal/pkg/errs"
)

// ErrShippingDetailsIsNotConstructed is returned when ShippingDetails were
// not created via NewShippingDetails.
var ErrShippingDetailsIsNotConstructed = errors.New(
	"ShippingDetails must be created via NewShippingDetails constructor")

// ShippingDetails holds the service tier chosen at creation together with
// the cost and estimated delivery date computed at that moment. Cost and
// estimate are computed exactly once and never change for the lifetime of
// the order.
type ShippingDetails struct {
	tier              ServiceTier
	cost              int64
	estimatedDelivery time.Time

	isConstructed bool
}

// NewShippingDetails creates validated shipping details.
func NewShippingDetails(tier ServiceTier, cost int64, estimatedDelivery time.Time) (ShippingDetails, error) {
	s := ShippingDetails{isConstructed: true}

	if err := errors.Join(
		s.setTier(tier),
		s.setCost(cost),
		s.setEstimatedDelivery(estimatedDelivery),
	); err != nil {
		return ShippingDetails{}, err
	}

	return s, nil
}

// Validate ensures the ShippingDetails were created through NewShippingDetails.
func (s ShippingDetails) Validate() error {
	if !s.isConstructed {
		return ErrShippingDetailsIsNotConstructed
	}
	return nil
}

// Tier returns the chosen service tier.
func (s ShippingDetails) Tier() ServiceTier { return s.tier }

// Cost returns the shipping cost computed at creation.
func (s ShippingDetails) Cost() int64 { return s.cost }

// EstimatedDelivery returns the delivery date estimated at creation.
func (s ShippingDetails) EstimatedDelivery() time.Time { return s.estimatedDelivery }

func (s *ShippingDetails) setTier(tier ServiceTier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	s.tier = tier
	return nil
}

func (s *ShippingDetails) setCost(cost int64) error {
	if cost <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cost",
			fmt.Errorf("%d is not greater than 0", cost))
	}
	s.cost = cost
	return nil
}

func (s *ShippingDetails) setEstimatedDelivery(estimatedDelivery time.Time) error {
	if estimatedDelivery.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDelivery")
	}
	s.estimatedDelivery = estimatedDelivery
	return nil
}
