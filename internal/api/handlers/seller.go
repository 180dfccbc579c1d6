package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bazaarph/marketplace-api/internal/api/middleware"
	"github.com/bazaarph/marketplace-api/internal/domain"
	"github.com/bazaarph/marketplace-api/internal/events"
	"github.com/bazaarph/marketplace-api/internal/repository"
	"github.com/bazaarph/marketplace-api/internal/service"
	"github.com/bazaarph/marketplace-api/pkg/errors"
)

// SellerOrderResponse represents one row on the seller dashboard
type SellerOrderResponse struct {
	ID             string  `json:"id"`
	BuyerID        string  `json:"buyer_id"`
	UIStatus       string  `json:"ui_status"`
	PaymentStatus  string  `json:"payment_status"`
	ShipmentStatus string  `json:"shipment_status"`
	Total          float64 `json:"total"`
	TrackingNumber *string `json:"tracking_number,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

// HandleListSellerOrders handles GET /v1/seller/orders
func HandleListSellerOrders(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	views := service.NewViewService(repos, logger)

	return func(c *gin.Context) {
		seller, ok := middleware.GetSellerFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		orderViews, err := views.SellerOrders(c.Request.Context(), seller.ID)
		if err != nil {
			logger.Error("Failed to list seller orders", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		responses := make([]SellerOrderResponse, len(orderViews))
		for i, view := range orderViews {
			responses[i] = SellerOrderResponse{
				ID:             view.Order.ID.String(),
				BuyerID:        view.Order.BuyerID.String(),
				UIStatus:       string(view.UIStatus),
				PaymentStatus:  string(view.PaymentStatus),
				ShipmentStatus: string(view.Order.ShipmentStatus),
				Total:          view.Order.Total,
				TrackingNumber: view.Order.TrackingNumber,
				CreatedAt:      view.Order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			}
		}

		c.JSON(http.StatusOK, gin.H{"orders": responses})
	}
}

// HandleUpdateOrderStatus handles POST /v1/seller/orders/:id/status
func HandleUpdateOrderStatus(repos *repository.Repositories, publisher events.Publisher, logger *zap.Logger) gin.HandlerFunc {
	orders := service.NewOrderService(repos, publisher, logger)

	return func(c *gin.Context) {
		seller, ok := middleware.GetSellerFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
			return
		}

		var req service.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		next := domain.ShipmentStatus(req.ShipmentStatus)
		if !next.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown shipment status"})
			return
		}

		if !sellerOwnsOrder(c, repos, seller.ID, orderID, logger) {
			return
		}

		order, err := orders.UpdateShipmentStatus(c.Request.Context(), orderID, next)
		if err != nil {
			if _, ok := err.(*errors.ErrInvalidStatusTransition); ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to update order status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":              order.ID.String(),
			"shipment_status": order.ShipmentStatus,
			"payment_status":  order.PaymentStatus,
		})
	}
}

// HandleShipOrder handles POST /v1/seller/orders/:id/ship
func HandleShipOrder(repos *repository.Repositories, publisher events.Publisher, logger *zap.Logger) gin.HandlerFunc {
	orders := service.NewOrderService(repos, publisher, logger)

	return func(c *gin.Context) {
		seller, ok := middleware.GetSellerFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
			return
		}

		var req service.ShipOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !sellerOwnsOrder(c, repos, seller.ID, orderID, logger) {
			return
		}

		order, err := orders.AssignTracking(c.Request.Context(), orderID, req.Carrier, req.TrackingNumber)
		if err != nil {
			logger.Error("Failed to assign tracking", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assign tracking"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":              order.ID.String(),
			"shipment_status": order.ShipmentStatus,
			"tracking_number": order.TrackingNumber,
		})
	}
}

// sellerOwnsOrder verifies ownership and writes the error response itself
// when the check fails.
func sellerOwnsOrder(c *gin.Context, repos *repository.Repositories, sellerID, orderID uuid.UUID, logger *zap.Logger) bool {
	order, err := repos.Order.GetByID(c.Request.Context(), orderID)
	if err != nil {
		if _, ok := err.(*errors.ErrNotFound); ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return false
		}
		logger.Error("Failed to get order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return false
	}

	if order.SellerID != sellerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return false
	}

	return true
}
