package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/bazaarph/marketplace-api/internal/domain"
)

// OrderRepository provides access to order rows.
type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*domain.Order, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*domain.Order, error)
	// ListLegacyOnly returns orders still carrying only a legacy status,
	// i.e. rows written before the two-axis migration.
	ListLegacyOnly(ctx context.Context, limit int) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, payment domain.PaymentStatus, shipment domain.ShipmentStatus, legacy domain.LegacyStatus) error
	UpdateTracking(ctx context.Context, id uuid.UUID, carrier, trackingNumber string) error
	CountByLegacyStatus(ctx context.Context) (map[domain.LegacyStatus]int, error)
}

// OrderItemRepository provides access to order line items.
type OrderItemRepository interface {
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]*domain.OrderItem, error)
}

// SellerRepository provides access to seller accounts.
type SellerRepository interface {
	GetByAPIKey(ctx context.Context, apiKey string) (*domain.Seller, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Seller, error)
	Create(ctx context.Context, seller *domain.Seller) error
}

// CancellationRepository exposes cancellation-record presence. The buyer
// status mapper only ever needs the boolean.
type CancellationRepository interface {
	ExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error)
	Create(ctx context.Context, c *domain.Cancellation) error
}

// ReviewRepository exposes review-record presence.
type ReviewRepository interface {
	ExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error)
	Create(ctx context.Context, r *domain.Review) error
}

// NotificationRepository writes rows to the notifications feed.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
}

// Repositories aggregates all repository implementations
type Repositories struct {
	Order        OrderRepository
	OrderItem    OrderItemRepository
	Seller       SellerRepository
	Cancellation CancellationRepository
	Review       ReviewRepository
	Notification NotificationRepository
}
