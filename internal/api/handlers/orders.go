package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bazaarph/marketplace-api/internal/repository"
	"github.com/bazaarph/marketplace-api/internal/service"
	"github.com/bazaarph/marketplace-api/internal/status"
	"github.com/bazaarph/marketplace-api/internal/tracking"
	"github.com/bazaarph/marketplace-api/pkg/errors"
)

// BuyerOrderResponse represents the buyer order view response
type BuyerOrderResponse struct {
	ID              string                 `json:"id"`
	UIStatus        string                 `json:"ui_status"`
	PaymentStatus   string                 `json:"payment_status"`
	ShipmentStatus  string                 `json:"shipment_status"`
	Subtotal        float64                `json:"subtotal"`
	ShippingFee     float64                `json:"shipping_fee"`
	VoucherDiscount float64                `json:"voucher_discount"`
	Total           float64                `json:"total"`
	PaymentMethod   string                 `json:"payment_method,omitempty"`
	ShippingAddress map[string]interface{} `json:"shipping_address,omitempty"`
	TrackingCarrier *string                `json:"tracking_carrier,omitempty"`
	TrackingNumber  *string                `json:"tracking_number,omitempty"`
	Items           []OrderItemResponse    `json:"items"`
	TrackingSteps   []status.ResolvedStep  `json:"tracking_steps"`
	CreatedAt       string                 `json:"created_at"`
	UpdatedAt       string                 `json:"updated_at"`
}

type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	ImageURL  *string `json:"image_url,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// TrackingResponse represents the delivery timeline response
type TrackingResponse struct {
	OrderID       string                `json:"order_id"`
	UIStatus      string                `json:"ui_status"`
	TrackingSteps []status.ResolvedStep `json:"tracking_steps"`
	Carrier       *tracking.Response    `json:"carrier,omitempty"`
}

// HandleGetBuyerOrder handles GET /v1/orders/:id
func HandleGetBuyerOrder(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	views := service.NewViewService(repos, logger)

	return func(c *gin.Context) {
		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
			return
		}

		view, err := views.BuyerOrderView(c.Request.Context(), orderID)
		if err != nil {
			if _, ok := err.(*errors.ErrNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			logger.Error("Failed to build buyer order view", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		items := make([]OrderItemResponse, len(view.Items))
		for i, item := range view.Items {
			items[i] = OrderItemResponse{
				ProductID: item.ProductID.String(),
				Name:      item.Name,
				ImageURL:  item.ImageURL,
				Price:     item.Price,
				Quantity:  item.Quantity,
			}
		}

		order := view.Order
		c.JSON(http.StatusOK, BuyerOrderResponse{
			ID:              order.ID.String(),
			UIStatus:        string(view.UIStatus),
			PaymentStatus:   string(order.PaymentStatus),
			ShipmentStatus:  string(order.ShipmentStatus),
			Subtotal:        order.Subtotal,
			ShippingFee:     order.ShippingFee,
			VoucherDiscount: order.VoucherDiscount,
			Total:           order.Total,
			PaymentMethod:   order.PaymentMethod,
			ShippingAddress: order.ShippingAddress,
			TrackingCarrier: order.TrackingCarrier,
			TrackingNumber:  order.TrackingNumber,
			Items:           items,
			TrackingSteps:   view.TrackingSteps,
			CreatedAt:       order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			UpdatedAt:       order.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
}

// HandleGetOrderTracking handles GET /v1/orders/:id/tracking
func HandleGetOrderTracking(repos *repository.Repositories, carrier *tracking.Client, logger *zap.Logger) gin.HandlerFunc {
	views := service.NewViewService(repos, logger)

	return func(c *gin.Context) {
		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
			return
		}

		view, err := views.BuyerOrderView(c.Request.Context(), orderID)
		if err != nil {
			if _, ok := err.(*errors.ErrNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			logger.Error("Failed to build tracking view", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		response := TrackingResponse{
			OrderID:       view.Order.ID.String(),
			UIStatus:      string(view.UIStatus),
			TrackingSteps: view.TrackingSteps,
		}

		// Carrier checkpoints are best-effort; the timeline above never
		// depends on them.
		if carrier != nil && view.Order.TrackingNumber != nil && view.Order.TrackingCarrier != nil {
			carrierData, err := carrier.Track(c.Request.Context(), *view.Order.TrackingCarrier, *view.Order.TrackingNumber)
			if err != nil {
				logger.Warn("Carrier tracking fetch failed",
					zap.String("order_id", view.Order.ID.String()),
					zap.Error(err),
				)
			} else {
				response.Carrier = carrierData
			}
		}

		c.JSON(http.StatusOK, response)
	}
}
