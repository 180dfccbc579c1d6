// Package status converts between the three order-status representations:
// the historical single-field legacy status, the normalized
// (payment, shipment) pair, and the role-facing display statuses shown to
// buyers and sellers. Every mapping is a pure lookup with no I/O.
package status

import (
	"fmt"

	"github.com/bazaarph/marketplace-api/internal/domain"
	"github.com/bazaarph/marketplace-api/pkg/errors"
)

// Normalized is the two-axis order status.
type Normalized struct {
	PaymentStatus  domain.PaymentStatus
	ShipmentStatus domain.ShipmentStatus
}

// legacyStatusMap converts a legacy status to its normalized pair. It must
// cover every domain.LegacyStatus value; init panics otherwise.
//
// Both "cancelled" and "refunded" collapse to (refunded, returned). The
// shipment axis cannot tell a buyer cancellation from a seller refund;
// that distinction rides on the cancellation record instead.
// "completed" maps to "received", the terminal success state a step past
// "delivered" (buyer confirmed receipt).
var legacyStatusMap = map[domain.LegacyStatus]Normalized{
	domain.LegacyPendingPayment: {domain.PaymentPendingPayment, domain.ShipmentWaitingForSeller},
	domain.LegacyPaymentFailed:  {domain.PaymentPendingPayment, domain.ShipmentWaitingForSeller},
	domain.LegacyPaid:           {domain.PaymentPaid, domain.ShipmentWaitingForSeller},
	domain.LegacyProcessing:     {domain.PaymentPaid, domain.ShipmentProcessing},
	domain.LegacyReadyToShip:    {domain.PaymentPaid, domain.ShipmentReadyToShip},
	domain.LegacyShipped:        {domain.PaymentPaid, domain.ShipmentShipped},
	domain.LegacyOutForDelivery: {domain.PaymentPaid, domain.ShipmentOutForDelivery},
	domain.LegacyDelivered:      {domain.PaymentPaid, domain.ShipmentDelivered},
	domain.LegacyFailedDelivery: {domain.PaymentPaid, domain.ShipmentFailedToDeliver},
	domain.LegacyCancelled:      {domain.PaymentRefunded, domain.ShipmentReturned},
	domain.LegacyRefunded:       {domain.PaymentRefunded, domain.ShipmentReturned},
	domain.LegacyCompleted:      {domain.PaymentPaid, domain.ShipmentReceived},
}

func init() {
	// The legacy map must stay total over the enum. A gap here means the
	// enum and the table drifted apart, so fail at startup, not mid-request.
	for _, s := range domain.AllLegacyStatuses {
		if _, ok := legacyStatusMap[s]; !ok {
			panic(fmt.Sprintf("status: legacyStatusMap is missing %q", s))
		}
	}
}

// LegacyToNormalized converts a legacy status to its normalized pair.
// The table is total over valid legacy statuses; an error here means the
// input was not a legacy status at all.
func LegacyToNormalized(s domain.LegacyStatus) (Normalized, error) {
	n, ok := legacyStatusMap[s]
	if !ok {
		return Normalized{}, &errors.ErrUnmappedStatus{Status: s}
	}
	return n, nil
}

// MapNormalizedToBuyerUIStatus derives the buyer-facing display status.
// Precedence, highest first: a reviewed delivered order shows "reviewed";
// a returned shipment shows "cancelled" only when a cancellation record
// exists, otherwise "returned"; everything else follows the shipment
// progression. Callers that could not determine hasCancellation should pass
// false, which yields the conservative "returned" label.
func MapNormalizedToBuyerUIStatus(
	payment domain.PaymentStatus,
	shipment domain.ShipmentStatus,
	hasCancellation bool,
	hasReview bool,
) domain.OrderUIStatus {
	if payment == domain.PaymentPaid && shipment == domain.ShipmentDelivered && hasReview {
		return domain.UIStatusReviewed
	}
	if shipment == domain.ShipmentReturned {
		if hasCancellation {
			return domain.UIStatusCancelled
		}
		return domain.UIStatusReturned
	}
	return shipmentProgressUIStatus(shipment)
}

// MapNormalizedToSellerUIStatus derives the seller-facing display status.
// Sellers see "cancelled" for any returned shipment without consulting a
// cancellation record, so a post-delivery return and a buyer cancellation
// look the same on the dashboard. That asymmetry matches the current
// product behavior; do not change it here without product sign-off.
func MapNormalizedToSellerUIStatus(
	payment domain.PaymentStatus,
	shipment domain.ShipmentStatus,
) domain.OrderUIStatus {
	if shipment == domain.ShipmentReturned {
		return domain.UIStatusCancelled
	}
	return shipmentProgressUIStatus(shipment)
}

// MapNormalizedToSellerPaymentStatus collapses the payment axis for the
// seller dashboard: pending_payment shows as plain "pending".
func MapNormalizedToSellerPaymentStatus(payment domain.PaymentStatus) domain.SellerPaymentStatus {
	switch payment {
	case domain.PaymentPaid:
		return domain.SellerPaymentPaid
	case domain.PaymentRefunded:
		return domain.SellerPaymentRefunded
	default:
		return domain.SellerPaymentPending
	}
}

// shipmentProgressUIStatus buckets the shipment progression into the four
// pre-return display states. Unknown values land in "pending" so a schema
// addition degrades the label instead of breaking a render.
func shipmentProgressUIStatus(shipment domain.ShipmentStatus) domain.OrderUIStatus {
	switch shipment {
	case domain.ShipmentProcessing, domain.ShipmentReadyToShip:
		return domain.UIStatusConfirmed
	case domain.ShipmentShipped, domain.ShipmentOutForDelivery:
		return domain.UIStatusShipped
	case domain.ShipmentDelivered, domain.ShipmentReceived:
		return domain.UIStatusDelivered
	case domain.ShipmentFailedToDeliver:
		return domain.UIStatusShipped
	default:
		return domain.UIStatusPending
	}
}

// MapNormalizedToLegacyStatus renders a normalized pair as a legacy-shaped
// token for exports and backward-compatible consumers. It is intentionally
// lossy and does not round-trip with LegacyToNormalized: both original
// "cancelled" and "refunded" come back as "cancelled".
func MapNormalizedToLegacyStatus(
	payment domain.PaymentStatus,
	shipment domain.ShipmentStatus,
) domain.LegacyStatus {
	if payment == domain.PaymentRefunded && shipment == domain.ShipmentReturned {
		return domain.LegacyCancelled
	}
	switch {
	case payment == domain.PaymentPendingPayment:
		return domain.LegacyPendingPayment
	case payment == domain.PaymentPaid && shipment == domain.ShipmentWaitingForSeller:
		return domain.LegacyPaid
	case shipment == domain.ShipmentReceived:
		return domain.LegacyCompleted
	case shipment == domain.ShipmentFailedToDeliver:
		return domain.LegacyFailedDelivery
	default:
		// The remaining shipment tokens (processing, ready_to_ship, shipped,
		// out_for_delivery, delivered) already are legacy tokens.
		return domain.LegacyStatus(shipment)
	}
}
