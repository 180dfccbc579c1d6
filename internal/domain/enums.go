package domain

// PaymentStatus is the payment axis of an order's normalized status.
type PaymentStatus string

const (
	PaymentPendingPayment PaymentStatus = "pending_payment"
	PaymentPaid           PaymentStatus = "paid"
	PaymentRefunded       PaymentStatus = "refunded"
)

// AllPaymentStatuses lists every payment status, used by table assertions.
var AllPaymentStatuses = []PaymentStatus{
	PaymentPendingPayment,
	PaymentPaid,
	PaymentRefunded,
}

// IsValid checks if the payment status is valid
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPendingPayment, PaymentPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}

// ShipmentStatus is the fulfillment axis of an order's normalized status,
// ordered by delivery progress.
type ShipmentStatus string

const (
	ShipmentWaitingForSeller ShipmentStatus = "waiting_for_seller"
	ShipmentProcessing       ShipmentStatus = "processing"
	ShipmentReadyToShip      ShipmentStatus = "ready_to_ship"
	ShipmentShipped          ShipmentStatus = "shipped"
	ShipmentOutForDelivery   ShipmentStatus = "out_for_delivery"
	ShipmentDelivered        ShipmentStatus = "delivered"
	ShipmentFailedToDeliver  ShipmentStatus = "failed_to_deliver"
	ShipmentReceived         ShipmentStatus = "received"
	ShipmentReturned         ShipmentStatus = "returned"
)

// AllShipmentStatuses lists every shipment status, used by table assertions.
var AllShipmentStatuses = []ShipmentStatus{
	ShipmentWaitingForSeller,
	ShipmentProcessing,
	ShipmentReadyToShip,
	ShipmentShipped,
	ShipmentOutForDelivery,
	ShipmentDelivered,
	ShipmentFailedToDeliver,
	ShipmentReceived,
	ShipmentReturned,
}

// IsValid checks if the shipment status is valid
func (s ShipmentStatus) IsValid() bool {
	for _, v := range AllShipmentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CanTransitionTo checks if a seller-driven shipment status transition is
// valid. Buyers never drive shipment transitions; cancellations and returns
// go through their own records.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	switch s {
	case ShipmentWaitingForSeller:
		return next == ShipmentProcessing || next == ShipmentReturned
	case ShipmentProcessing:
		return next == ShipmentReadyToShip || next == ShipmentReturned
	case ShipmentReadyToShip:
		return next == ShipmentShipped || next == ShipmentReturned
	case ShipmentShipped:
		return next == ShipmentOutForDelivery || next == ShipmentFailedToDeliver
	case ShipmentOutForDelivery:
		return next == ShipmentDelivered || next == ShipmentFailedToDeliver
	case ShipmentDelivered:
		return next == ShipmentReceived || next == ShipmentReturned
	case ShipmentFailedToDeliver:
		return next == ShipmentOutForDelivery || next == ShipmentReturned
	case ShipmentReceived, ShipmentReturned:
		return false // Terminal states
	default:
		return false
	}
}

// LegacyStatus is the historical single-field order status. New writes use
// the normalized (payment, shipment) pair; legacy values survive in old rows
// and in exports consumed by downstream tools.
type LegacyStatus string

const (
	LegacyPendingPayment LegacyStatus = "pending_payment"
	LegacyPaymentFailed  LegacyStatus = "payment_failed"
	LegacyPaid           LegacyStatus = "paid"
	LegacyProcessing     LegacyStatus = "processing"
	LegacyReadyToShip    LegacyStatus = "ready_to_ship"
	LegacyShipped        LegacyStatus = "shipped"
	LegacyOutForDelivery LegacyStatus = "out_for_delivery"
	LegacyDelivered      LegacyStatus = "delivered"
	LegacyFailedDelivery LegacyStatus = "failed_delivery"
	LegacyCancelled      LegacyStatus = "cancelled"
	LegacyRefunded       LegacyStatus = "refunded"
	LegacyCompleted      LegacyStatus = "completed"
)

// AllLegacyStatuses lists every legacy status. The status package asserts
// its legacy map covers this slice at init.
var AllLegacyStatuses = []LegacyStatus{
	LegacyPendingPayment,
	LegacyPaymentFailed,
	LegacyPaid,
	LegacyProcessing,
	LegacyReadyToShip,
	LegacyShipped,
	LegacyOutForDelivery,
	LegacyDelivered,
	LegacyFailedDelivery,
	LegacyCancelled,
	LegacyRefunded,
	LegacyCompleted,
}

// IsValid checks if the legacy status is valid
func (s LegacyStatus) IsValid() bool {
	for _, v := range AllLegacyStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// OrderUIStatus is the role-facing display status. Buyers can see every
// value; sellers never see "reviewed" or "returned".
type OrderUIStatus string

const (
	UIStatusPending   OrderUIStatus = "pending"
	UIStatusConfirmed OrderUIStatus = "confirmed"
	UIStatusShipped   OrderUIStatus = "shipped"
	UIStatusDelivered OrderUIStatus = "delivered"
	UIStatusCancelled OrderUIStatus = "cancelled"
	UIStatusReturned  OrderUIStatus = "returned"
	UIStatusReviewed  OrderUIStatus = "reviewed"
)

// SellerPaymentStatus is the collapsed payment status shown on the seller
// dashboard.
type SellerPaymentStatus string

const (
	SellerPaymentPending  SellerPaymentStatus = "pending"
	SellerPaymentPaid     SellerPaymentStatus = "paid"
	SellerPaymentRefunded SellerPaymentStatus = "refunded"
)
