package service

import (
	"github.com/bazaarph/marketplace-api/internal/domain"
	"github.com/bazaarph/marketplace-api/internal/status"
)

// BuyerOrderView is the buyer-facing rendering of an order.
type BuyerOrderView struct {
	Order         *domain.Order
	Items         []*domain.OrderItem
	UIStatus      domain.OrderUIStatus
	TrackingSteps []status.ResolvedStep
}

// SellerOrderView is the seller-dashboard rendering of an order.
type SellerOrderView struct {
	Order         *domain.Order
	UIStatus      domain.OrderUIStatus
	PaymentStatus domain.SellerPaymentStatus
}

// UpdateStatusRequest is a seller shipment-status update.
type UpdateStatusRequest struct {
	ShipmentStatus string `json:"shipment_status" binding:"required"`
}

// ShipOrderRequest assigns tracking details when an order ships.
type ShipOrderRequest struct {
	Carrier        string `json:"carrier" binding:"required"`
	TrackingNumber string `json:"tracking_number" binding:"required"`
}
