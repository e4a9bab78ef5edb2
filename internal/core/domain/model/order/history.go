package order

import (
	"time"

	"haulix/internal/pkg/errs"
)

// HistoryEntry is one event in the append-only status history of an order.
// Entries are never edited or removed once appended.
type HistoryEntry struct {
	status    Status
	timestamp time.Time
	location  string
	note      string
}

// NewHistoryEntry creates a validated history entry.
func NewHistoryEntry(status Status, timestamp time.Time, location, note string) (HistoryEntry, error) {
	if err := status.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if timestamp.IsZero() {
		return HistoryEntry{}, errs.NewValueIsRequiredError("timestamp")
	}
	return HistoryEntry{
		status:    status,
		timestamp: timestamp,
		location:  location,
		note:      note,
	}, nil
}

// Status returns the status recorded by this entry.
func (e HistoryEntry) Status() Status { return e.status }

// Timestamp returns when the entry was recorded.
func (e HistoryEntry) Timestamp() time.Time { return e.timestamp }

// Location returns the free-text location of the event.
func (e HistoryEntry) Location() string { return e.location }

// Note returns the free-text note of the event.
func (e HistoryEntry) Note() string { return e.note }
