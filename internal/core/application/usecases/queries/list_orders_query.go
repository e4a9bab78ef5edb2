package queries

import (
	"errors"

	"haulix/internal/core/domain/model/order"
	"haulix/internal/pkg/errs"
	"haulix/internal/pkg/guard"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery is the back-office order listing with optional status
// filter, free-text search and pagination. Page numbers are one-based;
// a zero page or size falls back to defaults.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status *order.Status
	search string
	page   int
	size   int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query. status may be empty to skip
// status filtering.
func NewListOrdersQuery(status, search string, page, size int) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		guard:  guard.NewConstructorGuard(),
		search: search,
	}

	if err := errors.Join(
		q.setStatus(status),
		q.setPage(page, size),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil when unfiltered.
func (q ListOrdersQuery) Status() *order.Status {
	if q.status == nil {
		return nil
	}
	s := *q.status
	return &s
}

// Search returns the free-text search term.
func (q ListOrdersQuery) Search() string { return q.search }

// Page returns the one-based page number.
func (q ListOrdersQuery) Page() int { return q.page }

// Size returns the page size.
func (q ListOrdersQuery) Size() int { return q.size }

func (q *ListOrdersQuery) setStatus(status string) error {
	if status == "" {
		return nil
	}

	parsed, err := order.StatusFromString(status)
	if err != nil {
		return err
	}

	q.status = &parsed
	return nil
}

func (q *ListOrdersQuery) setPage(page, size int) error {
	if page < 0 || size < 0 {
		return errs.NewValueIsOutOfRangeError("page", page, 0, nil)
	}
	if page == 0 {
		page = 1
	}
	if size == 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	q.page = page
	q.size = size
	return nil
}
