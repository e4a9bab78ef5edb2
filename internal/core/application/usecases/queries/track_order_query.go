package queries

import (
	"errors"

	"haulix/internal/pkg/errs"
	"haulix/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery looks up a shipment by its public HLX tracking number.
// Tracking is unauthenticated, so the response is the only thing the
// endpoint reveals about an order.
type TrackOrderQuery struct { //nolint:recvcheck //using for validation
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking query.
func NewTrackOrderQuery(trackingNumber string) (TrackOrderQuery, error) {
	q := TrackOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setTrackingNumber(trackingNumber); err != nil {
		return TrackOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// TrackingNumber returns the number being tracked.
func (q TrackOrderQuery) TrackingNumber() string {
	return q.trackingNumber
}

func (q *TrackOrderQuery) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	q.trackingNumber = trackingNumber
	return nil
}
