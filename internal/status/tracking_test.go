package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazaarph/marketplace-api/internal/domain"
)

func TestTrackingStepsOrderIsFixed(t *testing.T) {
	require.Len(t, TrackingSteps, 4)
	keys := make([]string, len(TrackingSteps))
	for i, s := range TrackingSteps {
		keys[i] = s.Key
	}
	assert.Equal(t, []string{"confirmed", "processing", "shipped", "delivered"}, keys)
}

// Each step's ReachedBy set must contain the next step's set, so reaching a
// later milestone implies every earlier milestone reads reached.
func TestTrackingStepsAreMonotonic(t *testing.T) {
	for _, shipment := range domain.AllShipmentStatuses {
		steps := ResolveTrackingSteps(shipment)
		for i := 1; i < len(steps); i++ {
			if steps[i].Reached {
				assert.True(t, steps[i-1].Reached,
					"status %q reaches %q but not earlier %q", shipment, steps[i].Key, steps[i-1].Key)
			}
		}
	}
}

func TestResolveTrackingSteps(t *testing.T) {
	tests := []struct {
		shipment domain.ShipmentStatus
		want     []bool
	}{
		{domain.ShipmentWaitingForSeller, []bool{false, false, false, false}},
		{domain.ShipmentProcessing, []bool{true, false, false, false}},
		{domain.ShipmentReadyToShip, []bool{true, true, false, false}},
		{domain.ShipmentShipped, []bool{true, true, true, false}},
		{domain.ShipmentOutForDelivery, []bool{true, true, true, false}},
		{domain.ShipmentFailedToDeliver, []bool{true, true, true, false}},
		{domain.ShipmentDelivered, []bool{true, true, true, true}},
		{domain.ShipmentReceived, []bool{true, true, true, true}},
		{domain.ShipmentReturned, []bool{false, false, false, false}},
	}

	for _, tt := range tests {
		t.Run(string(tt.shipment), func(t *testing.T) {
			steps := ResolveTrackingSteps(tt.shipment)
			require.Len(t, steps, 4)
			for i, want := range tt.want {
				assert.Equal(t, want, steps[i].Reached, "step %q", steps[i].Key)
			}
		})
	}
}

// A brand-new order row can carry an empty shipment status. The timeline
// must come back all-unreached, not error.
func TestResolveTrackingStepsUnknownStatus(t *testing.T) {
	for _, shipment := range []domain.ShipmentStatus{"", "warehouse_hold"} {
		steps := ResolveTrackingSteps(shipment)
		require.Len(t, steps, 4)
		for _, step := range steps {
			assert.False(t, step.Reached)
		}
	}
}
