package queries_test

import (
	"context"
	"testing"
	"time"

	"haulix/internal/core/domain/model/kernel"
	"haulix/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*order.Order, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) GetByOwner(ctx context.Context, ownerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderReader) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func buildOrder(t *testing.T, trackingNumber, senderName string, ownerID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	address, err := order.NewAddress("1 Main St", "Springfield", "IL", "62701", "US")
	require.NoError(t, err)
	sender, err := order.NewContactDetails(senderName, "sender@example.com", "+15550102030", address)
	require.NoError(t, err)
	recipient, err := order.NewContactDetails("Bob Jones", "bob@example.com", "+15550102031", address)
	require.NoError(t, err)
	pkg, err := order.NewPackageDetails(1000, 10, 10, 10, "books", 5000, order.CategoryBooks, nil)
	require.NoError(t, err)
	shipping, err := order.NewShippingDetails(order.TierStandard, 2500, now.AddDate(0, 0, 10))
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), ownerID, trackingNumber, sender, recipient, pkg, shipping, now)
	require.NoError(t, err)

	if status != order.StatusPending {
		_, err = o.ApplyStatusUpdate(status, nil, "", "", now.Add(time.Hour))
		require.NoError(t, err)
	}
	return o
}
