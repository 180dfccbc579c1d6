package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazaarph/marketplace-api/internal/domain"
	apperrors "github.com/bazaarph/marketplace-api/pkg/errors"
)

func TestLegacyToNormalizedIsTotal(t *testing.T) {
	for _, legacy := range domain.AllLegacyStatuses {
		n, err := LegacyToNormalized(legacy)
		require.NoError(t, err, "legacy status %q must be mapped", legacy)
		assert.True(t, n.PaymentStatus.IsValid(), "payment status for %q", legacy)
		assert.True(t, n.ShipmentStatus.IsValid(), "shipment status for %q", legacy)
	}
}

func TestLegacyToNormalizedUnknownValue(t *testing.T) {
	_, err := LegacyToNormalized(domain.LegacyStatus("on_hold"))
	require.Error(t, err)
	var unmapped *apperrors.ErrUnmappedStatus
	require.ErrorAs(t, err, &unmapped)
	assert.Equal(t, domain.LegacyStatus("on_hold"), unmapped.Status)
}

func TestLegacyToNormalizedPolicy(t *testing.T) {
	tests := []struct {
		legacy   domain.LegacyStatus
		payment  domain.PaymentStatus
		shipment domain.ShipmentStatus
	}{
		{domain.LegacyCancelled, domain.PaymentRefunded, domain.ShipmentReturned},
		{domain.LegacyRefunded, domain.PaymentRefunded, domain.ShipmentReturned},
		{domain.LegacyCompleted, domain.PaymentPaid, domain.ShipmentReceived},
		{domain.LegacyPendingPayment, domain.PaymentPendingPayment, domain.ShipmentWaitingForSeller},
		{domain.LegacyProcessing, domain.PaymentPaid, domain.ShipmentProcessing},
		{domain.LegacyShipped, domain.PaymentPaid, domain.ShipmentShipped},
		{domain.LegacyFailedDelivery, domain.PaymentPaid, domain.ShipmentFailedToDeliver},
	}

	for _, tt := range tests {
		t.Run(string(tt.legacy), func(t *testing.T) {
			n, err := LegacyToNormalized(tt.legacy)
			require.NoError(t, err)
			assert.Equal(t, tt.payment, n.PaymentStatus)
			assert.Equal(t, tt.shipment, n.ShipmentStatus)
		})
	}
}

func TestMapNormalizedToBuyerUIStatus(t *testing.T) {
	tests := []struct {
		name            string
		payment         domain.PaymentStatus
		shipment        domain.ShipmentStatus
		hasCancellation bool
		hasReview       bool
		want            domain.OrderUIStatus
	}{
		{"reviewed wins over delivered", domain.PaymentPaid, domain.ShipmentDelivered, false, true, domain.UIStatusReviewed},
		{"returned with cancellation record", domain.PaymentRefunded, domain.ShipmentReturned, true, false, domain.UIStatusCancelled},
		{"returned without cancellation record", domain.PaymentRefunded, domain.ShipmentReturned, false, false, domain.UIStatusReturned},
		{"waiting for seller", domain.PaymentPaid, domain.ShipmentWaitingForSeller, false, false, domain.UIStatusPending},
		{"processing", domain.PaymentPaid, domain.ShipmentProcessing, false, false, domain.UIStatusConfirmed},
		{"ready to ship", domain.PaymentPaid, domain.ShipmentReadyToShip, false, false, domain.UIStatusConfirmed},
		{"shipped", domain.PaymentPaid, domain.ShipmentShipped, false, false, domain.UIStatusShipped},
		{"out for delivery", domain.PaymentPaid, domain.ShipmentOutForDelivery, false, false, domain.UIStatusShipped},
		{"delivered without review", domain.PaymentPaid, domain.ShipmentDelivered, false, false, domain.UIStatusDelivered},
		{"received", domain.PaymentPaid, domain.ShipmentReceived, false, false, domain.UIStatusDelivered},
		{"review flag ignored unless delivered", domain.PaymentPaid, domain.ShipmentShipped, false, true, domain.UIStatusShipped},
		{"review flag ignored unless paid", domain.PaymentRefunded, domain.ShipmentDelivered, false, true, domain.UIStatusDelivered},
		{"unknown shipment falls to pending", domain.PaymentPaid, domain.ShipmentStatus("teleported"), false, false, domain.UIStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapNormalizedToBuyerUIStatus(tt.payment, tt.shipment, tt.hasCancellation, tt.hasReview)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapNormalizedToSellerUIStatus(t *testing.T) {
	tests := []struct {
		name     string
		payment  domain.PaymentStatus
		shipment domain.ShipmentStatus
		want     domain.OrderUIStatus
	}{
		{"processing shows confirmed", domain.PaymentPaid, domain.ShipmentProcessing, domain.UIStatusConfirmed},
		{"shipped", domain.PaymentPaid, domain.ShipmentShipped, domain.UIStatusShipped},
		{"delivered", domain.PaymentPaid, domain.ShipmentDelivered, domain.UIStatusDelivered},
		// Sellers see cancelled for every returned shipment, even a
		// post-delivery return with no cancellation record.
		{"returned shows cancelled", domain.PaymentRefunded, domain.ShipmentReturned, domain.UIStatusCancelled},
		{"waiting for seller", domain.PaymentPaid, domain.ShipmentWaitingForSeller, domain.UIStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapNormalizedToSellerUIStatus(tt.payment, tt.shipment))
		})
	}
}

func TestMapNormalizedToSellerPaymentStatus(t *testing.T) {
	assert.Equal(t, domain.SellerPaymentPending, MapNormalizedToSellerPaymentStatus(domain.PaymentPendingPayment))
	assert.Equal(t, domain.SellerPaymentPaid, MapNormalizedToSellerPaymentStatus(domain.PaymentPaid))
	assert.Equal(t, domain.SellerPaymentRefunded, MapNormalizedToSellerPaymentStatus(domain.PaymentRefunded))
}

func TestMapNormalizedToLegacyStatus(t *testing.T) {
	tests := []struct {
		name     string
		payment  domain.PaymentStatus
		shipment domain.ShipmentStatus
		want     domain.LegacyStatus
	}{
		{"refunded returned collapses to cancelled", domain.PaymentRefunded, domain.ShipmentReturned, domain.LegacyCancelled},
		{"paid processing", domain.PaymentPaid, domain.ShipmentProcessing, domain.LegacyProcessing},
		{"paid shipped", domain.PaymentPaid, domain.ShipmentShipped, domain.LegacyShipped},
		{"paid waiting", domain.PaymentPaid, domain.ShipmentWaitingForSeller, domain.LegacyPaid},
		{"unpaid order", domain.PaymentPendingPayment, domain.ShipmentWaitingForSeller, domain.LegacyPendingPayment},
		{"received renders completed", domain.PaymentPaid, domain.ShipmentReceived, domain.LegacyCompleted},
		{"failed delivery token", domain.PaymentPaid, domain.ShipmentFailedToDeliver, domain.LegacyFailedDelivery},
		{"out for delivery passes through", domain.PaymentPaid, domain.ShipmentOutForDelivery, domain.LegacyOutForDelivery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapNormalizedToLegacyStatus(tt.payment, tt.shipment))
		})
	}
}

// Round trips hold for the in-flight fulfillment states. They do not hold
// for cancelled/refunded: both normalize to (refunded, returned) and come
// back as cancelled.
func TestLegacyRoundTrip(t *testing.T) {
	roundTrips := []domain.LegacyStatus{
		domain.LegacyPendingPayment,
		domain.LegacyPaid,
		domain.LegacyProcessing,
		domain.LegacyReadyToShip,
		domain.LegacyShipped,
		domain.LegacyOutForDelivery,
		domain.LegacyDelivered,
		domain.LegacyFailedDelivery,
		domain.LegacyCancelled,
		domain.LegacyCompleted,
	}
	for _, legacy := range roundTrips {
		n, err := LegacyToNormalized(legacy)
		require.NoError(t, err)
		assert.Equal(t, legacy, MapNormalizedToLegacyStatus(n.PaymentStatus, n.ShipmentStatus), "round trip for %q", legacy)
	}

	// The two lossy cases.
	for _, legacy := range []domain.LegacyStatus{domain.LegacyRefunded, domain.LegacyPaymentFailed} {
		n, err := LegacyToNormalized(legacy)
		require.NoError(t, err)
		assert.NotEqual(t, legacy, MapNormalizedToLegacyStatus(n.PaymentStatus, n.ShipmentStatus))
	}
}
