package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bazaarph/marketplace-api/internal/domain"
	"github.com/bazaarph/marketplace-api/internal/repository"
	"github.com/bazaarph/marketplace-api/internal/status"
)

type viewService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewViewService creates a new view service
func NewViewService(repos *repository.Repositories, logger *zap.Logger) *viewService {
	return &viewService{
		repos:  repos,
		logger: logger,
	}
}

// BuyerOrderView assembles the buyer-facing status and tracking timeline
// for one order. If the cancellation or review lookup fails, the flag
// degrades to false: the buyer then sees "returned" instead of "cancelled"
// (or "delivered" instead of "reviewed"), never a wrong stronger claim.
func (s *viewService) BuyerOrderView(ctx context.Context, orderID uuid.UUID) (*BuyerOrderView, error) {
	order, err := s.repos.Order.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	items, err := s.repos.OrderItem.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	normalized := s.normalized(order)

	hasCancellation, err := s.repos.Cancellation.ExistsForOrder(ctx, orderID)
	if err != nil {
		s.logger.Warn("Cancellation lookup failed, assuming none",
			zap.String("order_id", orderID.String()),
			zap.Error(err),
		)
		hasCancellation = false
	}

	hasReview, err := s.repos.Review.ExistsForOrder(ctx, orderID)
	if err != nil {
		s.logger.Warn("Review lookup failed, assuming none",
			zap.String("order_id", orderID.String()),
			zap.Error(err),
		)
		hasReview = false
	}

	return &BuyerOrderView{
		Order: order,
		Items: items,
		UIStatus: status.MapNormalizedToBuyerUIStatus(
			normalized.PaymentStatus,
			normalized.ShipmentStatus,
			hasCancellation,
			hasReview,
		),
		TrackingSteps: status.ResolveTrackingSteps(normalized.ShipmentStatus),
	}, nil
}

// SellerOrders assembles the seller-dashboard list.
func (s *viewService) SellerOrders(ctx context.Context, sellerID uuid.UUID) ([]*SellerOrderView, error) {
	orders, err := s.repos.Order.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	views := make([]*SellerOrderView, len(orders))
	for i, order := range orders {
		normalized := s.normalized(order)
		views[i] = &SellerOrderView{
			Order:         order,
			UIStatus:      status.MapNormalizedToSellerUIStatus(normalized.PaymentStatus, normalized.ShipmentStatus),
			PaymentStatus: status.MapNormalizedToSellerPaymentStatus(normalized.PaymentStatus),
		}
	}

	return views, nil
}

// normalized returns the order's normalized pair, deriving it from the
// legacy status for rows the backfill has not touched yet.
func (s *viewService) normalized(order *domain.Order) status.Normalized {
	if order.PaymentStatus != "" || order.LegacyStatus == nil {
		return status.Normalized{
			PaymentStatus:  order.PaymentStatus,
			ShipmentStatus: order.ShipmentStatus,
		}
	}

	n, err := status.LegacyToNormalized(*order.LegacyStatus)
	if err != nil {
		// A legacy value outside the enum. Log it and render the empty
		// pair, which shows as "pending" with no steps reached.
		s.logger.Error("Order carries unmapped legacy status",
			zap.String("order_id", order.ID.String()),
			zap.String("legacy_status", string(*order.LegacyStatus)),
		)
		return status.Normalized{}
	}
	return n
}
