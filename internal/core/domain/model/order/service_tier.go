package order

import (
	"fmt"

	"haulix/internal/pkg/errs"
)

// ServiceTier selects the shipping service level. The tier determines the
// base shipping rate and the delivery-day target used at order creation.
type ServiceTier int

const (
	// TierUnknown represents an invalid or undefined tier.
	TierUnknown ServiceTier = iota

	// TierStandard is the default, slowest and cheapest service.
	TierStandard

	// TierExpress is the mid-range service.
	TierExpress

	// TierPriority is the fastest, most expensive service.
	TierPriority
)

func getServiceTierStrings() map[ServiceTier]string {
	return map[ServiceTier]string{
		TierUnknown:  "unknown",
		TierStandard: "standard",
		TierExpress:  "express",
		TierPriority: "priority",
	}
}

func getValidServiceTierStrings() map[ServiceTier]string {
	//nolint:exhaustive // TierUnknown is intentionally excluded as it's invalid
	return map[ServiceTier]string{
		TierStandard: "standard",
		TierExpress:  "express",
		TierPriority: "priority",
	}
}

// ServiceTierFromString parses the wire representation of a service tier.
func ServiceTierFromString(s string) (ServiceTier, error) {
	for tier, str := range getValidServiceTierStrings() {
		if str == s {
			return tier, nil
		}
	}
	return TierUnknown, errs.NewValueIsInvalidErrorWithCause(
		"shippingService", fmt.Errorf("%q is not a valid service tier", s))
}

// Validate checks that the value is a member of the enum.
func (t ServiceTier) Validate() error {
	if _, ok := getValidServiceTierStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"shippingService", fmt.Errorf("%d is not a valid service tier", t))
	}
	return nil
}

// String returns the wire representation of the service tier.
func (t ServiceTier) String() string {
	if str, ok := getServiceTierStrings()[t]; ok {
		return str
	}
	return "unknown"
}
