package services

import (
	"time"

	"haulix/internal/core/domain/model/order"
	"haulix/internal/pkg/errs"
)

// Per-unit base rates in cents. A unit is a started kilogram.
const (
	standardRateCents = 2500
	expressRateCents  = 4500
	priorityRateCents = 8500
)

// Transit promises per tier in calendar days.
const (
	standardTransitDays = 10
	expressTransitDays  = 5
	priorityTransitDays = 3
)

// EstimateCost quotes the shipping cost in cents for a package of the
// given weight. Weight is billed in started kilograms with a one-unit
// minimum, so a 1001 gram package pays for two units.
func EstimateCost(tier order.ServiceTier, weightGrams int) (int64, error) {
	if weightGrams <= 0 {
		return 0, errs.NewValueIsOutOfRangeError("weight", weightGrams, 1, nil)
	}

	var rate int64
	switch tier {
	case order.TierStandard:
		rate = standardRateCents
	case order.TierExpress:
		rate = expressRateCents
	case order.TierPriority:
		rate = priorityRateCents
	default:
		return 0, errs.NewValueIsInvalidError("serviceTier")
	}

	units := int64((weightGrams + 999) / 1000)
	if units < 1 {
		units = 1
	}
	return rate * units, nil
}

// EstimateDeliveryDate returns the promised delivery date for a shipment
// created at the given instant. The promise is deterministic per tier.
func EstimateDeliveryDate(tier order.ServiceTier, from time.Time) (time.Time, error) {
	var days int
	switch tier {
	case order.TierStandard:
		days = standardTransitDays
	case order.TierExpress:
		days = expressTransitDays
	case order.TierPriority:
		days = priorityTransitDays
	default:
		return time.Time{}, errs.NewValueIsInvalidError("serviceTier")
	}
	return from.AddDate(0, 0, days), nil
}
