package queries

import (
	"errors"

	"haulix/internal/core/domain/model/kernel"
	"haulix/internal/pkg/guard"
)

var ErrGetOwnerOrdersQueryIsNotConstructed = errors.New(
	"GetOwnerOrdersQuery must be created via NewGetOwnerOrdersQuery constructor",
)

// GetOwnerOrdersQuery retrieves all orders belonging to one account,
// newest first.
type GetOwnerOrdersQuery struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOwnerOrdersQuery creates an owner orders query.
func NewGetOwnerOrdersQuery(ownerID kernel.UUID) (GetOwnerOrdersQuery, error) {
	q := GetOwnerOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOwnerID(ownerID); err != nil {
		return GetOwnerOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOwnerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnerOrdersQueryIsNotConstructed)
}

// OwnerID returns the account whose orders are listed.
func (q GetOwnerOrdersQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

func (q *GetOwnerOrdersQuery) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	q.ownerID = ownerID
	return nil
}
