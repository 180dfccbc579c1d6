package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bazaarph/marketplace-api/internal/domain"
	"github.com/bazaarph/marketplace-api/internal/repository"
)

// Hand-written stubs; the repository surface is small enough that
// generated mocks would be more code than the stubs themselves.

type stubOrderRepo struct {
	orders map[uuid.UUID]*domain.Order

	updatedPayment  domain.PaymentStatus
	updatedShipment domain.ShipmentStatus
	updatedLegacy   domain.LegacyStatus
	updateCalls     int
}

func (s *stubOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("order not found")
	}
	copied := *order
	return &copied, nil
}

func (s *stubOrderRepo) ListByBuyer(_ context.Context, buyerID uuid.UUID) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range s.orders {
		if o.BuyerID == buyerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubOrderRepo) ListBySeller(_ context.Context, sellerID uuid.UUID) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range s.orders {
		if o.SellerID == sellerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubOrderRepo) ListLegacyOnly(_ context.Context, _ int) ([]*domain.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, payment domain.PaymentStatus, shipment domain.ShipmentStatus, legacy domain.LegacyStatus) error {
	s.updateCalls++
	s.updatedPayment = payment
	s.updatedShipment = shipment
	s.updatedLegacy = legacy
	if o, ok := s.orders[id]; ok {
		o.PaymentStatus = payment
		o.ShipmentStatus = shipment
		o.LegacyStatus = &legacy
	}
	return nil
}

func (s *stubOrderRepo) UpdateTracking(_ context.Context, id uuid.UUID, carrier, trackingNumber string) error {
	if o, ok := s.orders[id]; ok {
		o.TrackingCarrier = &carrier
		o.TrackingNumber = &trackingNumber
	}
	return nil
}

func (s *stubOrderRepo) CountByLegacyStatus(_ context.Context) (map[domain.LegacyStatus]int, error) {
	return nil, nil
}

type stubOrderItemRepo struct {
	items []*domain.OrderItem
}

func (s *stubOrderItemRepo) GetByOrderID(context.Context, uuid.UUID) ([]*domain.OrderItem, error) {
	return s.items, nil
}

type stubExistsRepo struct {
	exists bool
	err    error
}

func (s *stubExistsRepo) ExistsForOrder(context.Context, uuid.UUID) (bool, error) {
	return s.exists, s.err
}

func (s *stubExistsRepo) Create(context.Context, *domain.Cancellation) error { return nil }

type stubReviewRepo struct {
	exists bool
	err    error
}

func (s *stubReviewRepo) ExistsForOrder(context.Context, uuid.UUID) (bool, error) {
	return s.exists, s.err
}

func (s *stubReviewRepo) Create(context.Context, *domain.Review) error { return nil }

type stubNotificationRepo struct {
	created []*domain.Notification
}

func (s *stubNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	s.created = append(s.created, n)
	return nil
}

func newTestRepos(order *domain.Order) (*repository.Repositories, *stubOrderRepo, *stubExistsRepo, *stubReviewRepo, *stubNotificationRepo) {
	orderRepo := &stubOrderRepo{orders: map[uuid.UUID]*domain.Order{order.ID: order}}
	cancelRepo := &stubExistsRepo{}
	reviewRepo := &stubReviewRepo{}
	notifRepo := &stubNotificationRepo{}
	repos := &repository.Repositories{
		Order:        orderRepo,
		OrderItem:    &stubOrderItemRepo{},
		Cancellation: cancelRepo,
		Review:       reviewRepo,
		Notification: notifRepo,
	}
	return repos, orderRepo, cancelRepo, reviewRepo, notifRepo
}

func testOrder(payment domain.PaymentStatus, shipment domain.ShipmentStatus) *domain.Order {
	return &domain.Order{
		ID:             uuid.New(),
		BuyerID:        uuid.New(),
		SellerID:       uuid.New(),
		PaymentStatus:  payment,
		ShipmentStatus: shipment,
	}
}

func TestBuyerOrderViewDeliveredWithReview(t *testing.T) {
	order := testOrder(domain.PaymentPaid, domain.ShipmentDelivered)
	repos, _, _, reviewRepo, _ := newTestRepos(order)
	reviewRepo.exists = true

	svc := NewViewService(repos, zap.NewNop())
	view, err := svc.BuyerOrderView(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.UIStatusReviewed, view.UIStatus)
	require.Len(t, view.TrackingSteps, 4)
	for _, step := range view.TrackingSteps {
		assert.True(t, step.Reached)
	}
}

func TestBuyerOrderViewReturnedDisambiguation(t *testing.T) {
	t.Run("with cancellation record", func(t *testing.T) {
		order := testOrder(domain.PaymentRefunded, domain.ShipmentReturned)
		repos, _, cancelRepo, _, _ := newTestRepos(order)
		cancelRepo.exists = true

		svc := NewViewService(repos, zap.NewNop())
		view, err := svc.BuyerOrderView(context.Background(), order.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.UIStatusCancelled, view.UIStatus)
	})

	t.Run("without cancellation record", func(t *testing.T) {
		order := testOrder(domain.PaymentRefunded, domain.ShipmentReturned)
		repos, _, _, _, _ := newTestRepos(order)

		svc := NewViewService(repos, zap.NewNop())
		view, err := svc.BuyerOrderView(context.Background(), order.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.UIStatusReturned, view.UIStatus)
	})

	// A failed lookup must not assert "cancelled" without evidence.
	t.Run("cancellation lookup fails", func(t *testing.T) {
		order := testOrder(domain.PaymentRefunded, domain.ShipmentReturned)
		repos, _, cancelRepo, _, _ := newTestRepos(order)
		cancelRepo.err = fmt.Errorf("connection reset")

		svc := NewViewService(repos, zap.NewNop())
		view, err := svc.BuyerOrderView(context.Background(), order.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.UIStatusReturned, view.UIStatus)
	})
}

func TestBuyerOrderViewLegacyOnlyRow(t *testing.T) {
	legacy := domain.LegacyShipped
	order := testOrder("", "")
	order.LegacyStatus = &legacy
	repos, _, _, _, _ := newTestRepos(order)

	svc := NewViewService(repos, zap.NewNop())
	view, err := svc.BuyerOrderView(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.UIStatusShipped, view.UIStatus)
	reached := []bool{true, true, true, false}
	for i, step := range view.TrackingSteps {
		assert.Equal(t, reached[i], step.Reached, "step %q", step.Key)
	}
}

func TestBuyerOrderViewUnmappedLegacyRow(t *testing.T) {
	legacy := domain.LegacyStatus("archived")
	order := testOrder("", "")
	order.LegacyStatus = &legacy
	repos, _, _, _, _ := newTestRepos(order)

	svc := NewViewService(repos, zap.NewNop())
	view, err := svc.BuyerOrderView(context.Background(), order.ID)
	require.NoError(t, err)

	// Renders as not-yet-confirmed rather than erroring.
	assert.Equal(t, domain.UIStatusPending, view.UIStatus)
	for _, step := range view.TrackingSteps {
		assert.False(t, step.Reached)
	}
}

func TestSellerOrders(t *testing.T) {
	order := testOrder(domain.PaymentRefunded, domain.ShipmentReturned)
	repos, _, _, _, _ := newTestRepos(order)

	svc := NewViewService(repos, zap.NewNop())
	views, err := svc.SellerOrders(context.Background(), order.SellerID)
	require.NoError(t, err)
	require.Len(t, views, 1)

	// Sellers see cancelled for returned shipments regardless of any
	// cancellation record.
	assert.Equal(t, domain.UIStatusCancelled, views[0].UIStatus)
	assert.Equal(t, domain.SellerPaymentRefunded, views[0].PaymentStatus)
}
