package services_test

import (
	"fmt"
	"testing"
	"time"

	"haulix/internal/core/domain/model/order"
	"haulix/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateCost(t *testing.T) {
	cases := []struct {
		tier        order.ServiceTier
		weightGrams int
		wantCents   int64
	}{
		{order.TierStandard, 500, 2500},
		{order.TierStandard, 999, 2500},
		{order.TierStandard, 1000, 2500},
		{order.TierStandard, 1001, 5000},
		{order.TierExpress, 2500, 13500},
		{order.TierExpress, 3000, 13500},
		{order.TierPriority, 1, 8500},
		{order.TierPriority, 4200, 42500},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s %dg", c.tier, c.weightGrams), func(t *testing.T) {
			cost, err := services.EstimateCost(c.tier, c.weightGrams)
			require.NoError(t, err)
			assert.Equal(t, c.wantCents, cost)
		})
	}

	t.Run("rejects non-positive weight", func(t *testing.T) {
		_, err := services.EstimateCost(order.TierStandard, 0)
		require.Error(t, err)

		_, err = services.EstimateCost(order.TierStandard, -100)
		require.Error(t, err)
	})

	t.Run("rejects unknown tier", func(t *testing.T) {
		_, err := services.EstimateCost(order.TierUnknown, 1000)
		require.Error(t, err)
	})
}

func TestEstimateDeliveryDate(t *testing.T) {
	from := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		tier order.ServiceTier
		days int
	}{
		{order.TierStandard, 10},
		{order.TierExpress, 5},
		{order.TierPriority, 3},
	}

	for _, c := range cases {
		t.Run(c.tier.String(), func(t *testing.T) {
			eta, err := services.EstimateDeliveryDate(c.tier, from)
			require.NoError(t, err)
			assert.Equal(t, from.AddDate(0, 0, c.days), eta)
		})
	}

	t.Run("rejects unknown tier", func(t *testing.T) {
		_, err := services.EstimateDeliveryDate(order.TierUnknown, from)
		require.Error(t, err)
	})
}
