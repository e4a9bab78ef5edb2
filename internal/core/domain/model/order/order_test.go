package order_test

import (
	"testing"
	"time"

	"haulix/internal/core/domain/model/kernel"
	"haulix/internal/core/domain/model/order"
	"haulix/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureAddress(t *testing.T) order.Address {
	t.Helper()
	a, err := order.NewAddress("221B Baker St", "London", "LDN", "NW16XE", "UK")
	require.NoError(t, err)
	return a
}

func fixtureContact(t *testing.T, name, email string) order.ContactDetails {
	t.Helper()
	c, err := order.NewContactDetails(name, email, "+1 (555) 010-2030", fixtureAddress(t))
	require.NoError(t, err)
	return c
}

func fixturePackage(t *testing.T) order.PackageDetails {
	t.Helper()
	p, err := order.NewPackageDetails(2500, 30, 20, 10, "ceramic vase", 12000,
		order.CategoryGifts, []string{"https://img.example/vase.jpg"})
	require.NoError(t, err)
	return p
}

func fixtureShipping(t *testing.T, now time.Time) order.ShippingDetails {
	t.Helper()
	s, err := order.NewShippingDetails(order.TierExpress, 13500, now.AddDate(0, 0, 5))
	require.NoError(t, err)
	return s
}

func fixtureOrder(t *testing.T, now time.Time) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"HLX1234567890",
		fixtureContact(t, "Alice Sender", "alice@example.com"),
		fixtureContact(t, "Bob Recipient", "bob@example.com"),
		fixturePackage(t),
		fixtureShipping(t, now),
		now,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("seeds a single pending history entry", func(t *testing.T) {
		o := fixtureOrder(t, now)

		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Nil(t, o.DeliveredAt())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())
		assert.Equal(t, int64(0), o.Version())

		history := o.History()
		require.Len(t, history, 1)
		assert.Equal(t, order.StatusPending, history[0].Status())
		assert.Equal(t, now, history[0].Timestamp())
		assert.Equal(t, order.OriginLocation, history[0].Location())
		assert.Equal(t, order.OriginNote, history[0].Note())
	})

	t.Run("rejects malformed tracking numbers", func(t *testing.T) {
		for _, tn := range []string{"", "HLX123", "hlx1234567890", "ABC1234567890", "HLX12345678901"} {
			_, err := order.NewOrder(
				kernel.NewUUID(), kernel.NewUUID(), tn,
				fixtureContact(t, "Alice Sender", "alice@example.com"),
				fixtureContact(t, "Bob Recipient", "bob@example.com"),
				fixturePackage(t), fixtureShipping(t, now), now,
			)
			require.Error(t, err, "tracking number %q should be rejected", tn)
		}
	})

	t.Run("rejects unconstructed value objects", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "HLX1234567890",
			order.ContactDetails{},
			fixtureContact(t, "Bob Recipient", "bob@example.com"),
			fixturePackage(t), fixtureShipping(t, now), now,
		)
		require.Error(t, err)
	})

	t.Run("rejects zero creation time", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "HLX1234567890",
			fixtureContact(t, "Alice Sender", "alice@example.com"),
			fixtureContact(t, "Bob Recipient", "bob@example.com"),
			fixturePackage(t), fixtureShipping(t, now), time.Time{},
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_ApplyStatusUpdate(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("appends exactly one history entry per update", func(t *testing.T) {
		o := fixtureOrder(t, now)

		later := now.Add(2 * time.Hour)
		changed, err := o.ApplyStatusUpdate(order.StatusConfirmed, nil, "sorting hub", "scanned in", later)
		require.NoError(t, err)
		assert.True(t, changed)

		history := o.History()
		require.Len(t, history, 2)
		last := history[len(history)-1]
		assert.Equal(t, order.StatusConfirmed, last.Status())
		assert.Equal(t, "sorting hub", last.Location())
		assert.Equal(t, "scanned in", last.Note())
		assert.Equal(t, later, last.Timestamp())
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("defaults location and note when omitted", func(t *testing.T) {
		o := fixtureOrder(t, now)

		_, err := o.ApplyStatusUpdate(order.StatusInTransit, nil, "", "", now.Add(time.Hour))
		require.NoError(t, err)

		history := o.History()
		last := history[len(history)-1]
		assert.Equal(t, order.DefaultUpdateLocation, last.Location())
		assert.Equal(t, "Order status updated to in transit", last.Note())
	})

	t.Run("same status appends history but reports no change", func(t *testing.T) {
		o := fixtureOrder(t, now)

		changed, err := o.ApplyStatusUpdate(order.StatusPending, nil, "", "re-checked", now.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Len(t, o.History(), 2)
	})

	t.Run("payment status change alone reports changed", func(t *testing.T) {
		o := fixtureOrder(t, now)

		paid := order.PaymentPaid
		changed, err := o.ApplyStatusUpdate(order.StatusPending, &paid, "", "", now.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	})

	t.Run("sets deliveredAt once and keeps the first timestamp", func(t *testing.T) {
		o := fixtureOrder(t, now)

		first := now.Add(3 * time.Hour)
		_, err := o.ApplyStatusUpdate(order.StatusDelivered, nil, "", "", first)
		require.NoError(t, err)
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, first, *o.DeliveredAt())

		second := now.Add(5 * time.Hour)
		_, err = o.ApplyStatusUpdate(order.StatusDelivered, nil, "", "left at door", second)
		require.NoError(t, err)
		assert.Equal(t, first, *o.DeliveredAt(), "deliveredAt must not move on repeated delivered updates")
		assert.Len(t, o.History(), 3)
	})

	t.Run("rejects invalid status and leaves the order unchanged", func(t *testing.T) {
		o := fixtureOrder(t, now)

		_, err := o.ApplyStatusUpdate(order.Status(99), nil, "", "", now.Add(time.Hour))
		require.Error(t, err)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Len(t, o.History(), 1)
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("rejects invalid payment status", func(t *testing.T) {
		o := fixtureOrder(t, now)

		bad := order.PaymentStatus(99)
		_, err := o.ApplyStatusUpdate(order.StatusConfirmed, &bad, "", "", now.Add(time.Hour))
		require.Error(t, err)
		assert.Len(t, o.History(), 1)
	})
}

func TestOrder_HistoryIsACopy(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	o := fixtureOrder(t, now)

	history := o.History()
	history[0] = order.HistoryEntry{}

	require.Len(t, o.History(), 1)
	assert.Equal(t, order.StatusPending, o.History()[0].Status())
}

func TestRestoreOrder(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	id := kernel.NewUUID()
	owner := kernel.NewUUID()

	seed, err := order.NewHistoryEntry(order.StatusPending, now, order.OriginLocation, order.OriginNote)
	require.NoError(t, err)
	confirmed, err := order.NewHistoryEntry(order.StatusConfirmed, now.Add(time.Hour), "hub", "scanned")
	require.NoError(t, err)

	t.Run("restores full state", func(t *testing.T) {
		o, err := order.RestoreOrder(
			id, owner, "HLX1234567890",
			fixtureContact(t, "Alice Sender", "alice@example.com"),
			fixtureContact(t, "Bob Recipient", "bob@example.com"),
			fixturePackage(t), fixtureShipping(t, now),
			order.StatusConfirmed, order.PaymentPaid,
			[]order.HistoryEntry{seed, confirmed},
			nil, now, now.Add(time.Hour), 3,
		)
		require.NoError(t, err)

		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.OwnerID().IsEqual(owner))
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.Len(t, o.History(), 2)
		assert.Equal(t, int64(3), o.Version())
	})

	t.Run("rejects history out of step with the status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			id, owner, "HLX1234567890",
			fixtureContact(t, "Alice Sender", "alice@example.com"),
			fixtureContact(t, "Bob Recipient", "bob@example.com"),
			fixturePackage(t), fixtureShipping(t, now),
			order.StatusInTransit, order.PaymentPaid,
			[]order.HistoryEntry{seed, confirmed},
			nil, now, now.Add(time.Hour), 3,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty history", func(t *testing.T) {
		_, err := order.RestoreOrder(
			id, owner, "HLX1234567890",
			fixtureContact(t, "Alice Sender", "alice@example.com"),
			fixtureContact(t, "Bob Recipient", "bob@example.com"),
			fixturePackage(t), fixtureShipping(t, now),
			order.StatusPending, order.PaymentPending,
			nil, nil, now, now, 0,
		)
		require.Error(t, err)
	})
}

func TestContactDetails_Validation(t *testing.T) {
	addr := fixtureAddress(t)

	t.Run("rejects malformed email", func(t *testing.T) {
		for _, email := range []string{"", "plain", "a@b", "two words@example.com"} {
			_, err := order.NewContactDetails("Alice", email, "+15550102030", addr)
			require.Error(t, err, "email %q should be rejected", email)
		}
	})

	t.Run("rejects short phone numbers", func(t *testing.T) {
		_, err := order.NewContactDetails("Alice", "alice@example.com", "12345", addr)
		require.Error(t, err)
	})

	t.Run("requires every address field", func(t *testing.T) {
		_, err := order.NewAddress("221B Baker St", "", "LDN", "NW16XE", "UK")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPackageDetails_Validation(t *testing.T) {
	t.Run("rejects non-positive weight and dimensions", func(t *testing.T) {
		_, err := order.NewPackageDetails(0, 30, 20, 10, "vase", 12000, order.CategoryGifts, nil)
		require.Error(t, err)

		_, err = order.NewPackageDetails(2500, 30, -1, 10, "vase", 12000, order.CategoryGifts, nil)
		require.Error(t, err)
	})

	t.Run("images accessor returns a copy", func(t *testing.T) {
		p, err := order.NewPackageDetails(2500, 30, 20, 10, "vase", 12000,
			order.CategoryGifts, []string{"https://img.example/a.jpg"})
		require.NoError(t, err)

		images := p.Images()
		images[0] = "mutated"
		assert.Equal(t, "https://img.example/a.jpg", p.Images()[0])
	})
}

func TestShippingDetails_Validation(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	_, err := order.NewShippingDetails(order.TierUnknown, 2500, now)
	require.Error(t, err)

	_, err = order.NewShippingDetails(order.TierStandard, 0, now)
	require.Error(t, err)

	_, err = order.NewShippingDetails(order.TierStandard, 2500, time.Time{})
	require.Error(t, err)
}
