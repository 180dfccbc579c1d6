package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bazaarph/marketplace-api/internal/domain"
	"github.com/bazaarph/marketplace-api/internal/events"
	"github.com/bazaarph/marketplace-api/internal/repository"
	"github.com/bazaarph/marketplace-api/internal/status"
	"github.com/bazaarph/marketplace-api/pkg/errors"
)

type orderService struct {
	repos     *repository.Repositories
	publisher events.Publisher
	logger    *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(repos *repository.Repositories, publisher events.Publisher, logger *zap.Logger) *orderService {
	return &orderService{
		repos:     repos,
		publisher: publisher,
		logger:    logger,
	}
}

// UpdateShipmentStatus moves an order along the fulfillment progression.
// The legacy status column is kept in sync via the reverse mapper so
// downstream exports keep working.
func (s *orderService) UpdateShipmentStatus(ctx context.Context, orderID uuid.UUID, next domain.ShipmentStatus) (*domain.Order, error) {
	order, err := s.repos.Order.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.ShipmentStatus.CanTransitionTo(next) {
		return nil, &errors.ErrInvalidStatusTransition{
			From: order.ShipmentStatus,
			To:   next,
		}
	}

	legacy := status.MapNormalizedToLegacyStatus(order.PaymentStatus, next)
	if err := s.repos.Order.UpdateStatus(ctx, orderID, order.PaymentStatus, next, legacy); err != nil {
		return nil, err
	}

	order.ShipmentStatus = next
	order.LegacyStatus = &legacy

	s.notifyStatusChange(ctx, order)

	return order, nil
}

// AssignTracking records the carrier and tracking number and marks the
// order shipped when it is still in a pre-ship state.
func (s *orderService) AssignTracking(ctx context.Context, orderID uuid.UUID, carrier, trackingNumber string) (*domain.Order, error) {
	order, err := s.repos.Order.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.repos.Order.UpdateTracking(ctx, orderID, carrier, trackingNumber); err != nil {
		return nil, err
	}
	order.TrackingCarrier = &carrier
	order.TrackingNumber = &trackingNumber

	if order.ShipmentStatus.CanTransitionTo(domain.ShipmentShipped) {
		return s.UpdateShipmentStatus(ctx, orderID, domain.ShipmentShipped)
	}

	return order, nil
}

// notifyStatusChange writes the buyer's notification row and publishes the
// status event. Neither failure blocks the status update itself.
func (s *orderService) notifyStatusChange(ctx context.Context, order *domain.Order) {
	uiStatus := status.MapNormalizedToBuyerUIStatus(order.PaymentStatus, order.ShipmentStatus, false, false)

	orderID := order.ID
	notification := &domain.Notification{
		UserID:  order.BuyerID,
		OrderID: &orderID,
		Type:    "order_status",
		Title:   "Order update",
		Body:    "Your order is now " + string(uiStatus),
	}
	if err := s.repos.Notification.Create(ctx, notification); err != nil {
		s.logger.Warn("Failed to write status notification",
			zap.String("order_id", order.ID.String()),
			zap.Error(err),
		)
	}

	event := domain.OrderStatusEvent{
		OrderID:        order.ID,
		BuyerID:        order.BuyerID,
		SellerID:       order.SellerID,
		PaymentStatus:  order.PaymentStatus,
		ShipmentStatus: order.ShipmentStatus,
		OccurredAt:     time.Now(),
	}
	if err := s.publisher.PublishStatusChange(ctx, event); err != nil {
		s.logger.Warn("Failed to publish status event",
			zap.String("order_id", order.ID.String()),
			zap.Error(err),
		)
	}
}
