package domain

import (
	"time"

	"github.com/google/uuid"
)

// Seller represents a marketplace seller account
type Seller struct {
	ID         uuid.UUID
	ShopName   string
	APIKeyHash string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Order represents a buyer order. Status lives on two axes; LegacyStatus is
// kept for rows written before the normalization migration and for exports.
type Order struct {
	ID              uuid.UUID
	BuyerID         uuid.UUID
	SellerID        uuid.UUID
	PaymentStatus   PaymentStatus
	ShipmentStatus  ShipmentStatus
	LegacyStatus    *LegacyStatus
	Subtotal        float64
	ShippingFee     float64
	VoucherDiscount float64
	Total           float64
	PaymentMethod   string
	ShippingAddress map[string]interface{} // JSONB
	TrackingCarrier *string
	TrackingNumber  *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem represents a line item in an order
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Name      string
	ImageURL  *string
	Price     float64
	Quantity  int
	CreatedAt time.Time
}

// Cancellation records a buyer-initiated cancellation request. Its presence
// is what distinguishes a cancelled order from a post-delivery return.
type Cancellation struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	BuyerID   uuid.UUID
	Reason    string
	CreatedAt time.Time
}

// Review records a buyer review for a delivered order.
type Review struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	BuyerID   uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// Notification is a row in the notifications feed. Delivery to devices is
// handled by a separate pipeline consuming the order-status event stream.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	OrderID   *uuid.UUID
	Type      string
	Title     string
	Body      string
	IsRead    bool
	CreatedAt time.Time
}

// OrderStatusEvent is the payload published on every status change.
type OrderStatusEvent struct {
	OrderID        uuid.UUID      `json:"order_id"`
	BuyerID        uuid.UUID      `json:"buyer_id"`
	SellerID       uuid.UUID      `json:"seller_id"`
	PaymentStatus  PaymentStatus  `json:"payment_status"`
	ShipmentStatus ShipmentStatus `json:"shipment_status"`
	OccurredAt     time.Time      `json:"occurred_at"`
}
