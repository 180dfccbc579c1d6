package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bazaarph/marketplace-api/internal/domain"
	"github.com/bazaarph/marketplace-api/pkg/errors"
)

type orderRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB, logger *zap.Logger) *orderRepository {
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

const orderColumns = `
	id, buyer_id, seller_id, payment_status, shipment_status, legacy_status,
	subtotal, shipping_fee, voucher_discount, total, payment_method,
	shipping_address, tracking_carrier, tracking_number, created_at, updated_at
`

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	order, err := r.scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "order", ID: id.String()}
	}
	if err != nil {
		r.logger.Error("Failed to get order by ID", zap.Error(err))
		return nil, err
	}

	return order, nil
}

func (r *orderRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE buyer_id = $1
		ORDER BY created_at DESC
	`
	return r.queryOrders(ctx, query, buyerID)
}

func (r *orderRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE seller_id = $1
		ORDER BY created_at DESC
	`
	return r.queryOrders(ctx, query, sellerID)
}

func (r *orderRepository) ListLegacyOnly(ctx context.Context, limit int) ([]*domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE legacy_status IS NOT NULL
		  AND (payment_status IS NULL OR payment_status = '')
		ORDER BY created_at
		LIMIT $1
	`
	return r.queryOrders(ctx, query, limit)
}

func (r *orderRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	payment domain.PaymentStatus,
	shipment domain.ShipmentStatus,
	legacy domain.LegacyStatus,
) error {
	query := `
		UPDATE orders
		SET payment_status = $2, shipment_status = $3, legacy_status = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, payment, shipment, legacy, time.Now())
	if err != nil {
		r.logger.Error("Failed to update order status", zap.Error(err))
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return &errors.ErrNotFound{Resource: "order", ID: id.String()}
	}

	return nil
}

func (r *orderRepository) UpdateTracking(ctx context.Context, id uuid.UUID, carrier, trackingNumber string) error {
	query := `
		UPDATE orders
		SET tracking_carrier = $2, tracking_number = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, carrier, trackingNumber, time.Now())
	if err != nil {
		r.logger.Error("Failed to update order tracking", zap.Error(err))
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return &errors.ErrNotFound{Resource: "order", ID: id.String()}
	}

	return nil
}

func (r *orderRepository) CountByLegacyStatus(ctx context.Context) (map[domain.LegacyStatus]int, error) {
	query := `
		SELECT legacy_status, COUNT(*)
		FROM orders
		WHERE legacy_status IS NOT NULL
		GROUP BY legacy_status
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to count orders by legacy status", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.LegacyStatus]int)
	for rows.Next() {
		var status domain.LegacyStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *orderRepository) scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var paymentStatus, shipmentStatus sql.NullString
	var legacyStatus, trackingCarrier, trackingNumber sql.NullString
	var shippingAddress []byte

	err := row.Scan(
		&order.ID,
		&order.BuyerID,
		&order.SellerID,
		&paymentStatus,
		&shipmentStatus,
		&legacyStatus,
		&order.Subtotal,
		&order.ShippingFee,
		&order.VoucherDiscount,
		&order.Total,
		&order.PaymentMethod,
		&shippingAddress,
		&trackingCarrier,
		&trackingNumber,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if paymentStatus.Valid {
		order.PaymentStatus = domain.PaymentStatus(paymentStatus.String)
	}
	if shipmentStatus.Valid {
		order.ShipmentStatus = domain.ShipmentStatus(shipmentStatus.String)
	}
	if legacyStatus.Valid {
		legacy := domain.LegacyStatus(legacyStatus.String)
		order.LegacyStatus = &legacy
	}
	if trackingCarrier.Valid {
		order.TrackingCarrier = &trackingCarrier.String
	}
	if trackingNumber.Valid {
		order.TrackingNumber = &trackingNumber.String
	}
	if len(shippingAddress) > 0 {
		if err := json.Unmarshal(shippingAddress, &order.ShippingAddress); err != nil {
			r.logger.Warn("Failed to decode shipping address", zap.String("order_id", order.ID.String()), zap.Error(err))
		}
	}

	return &order, nil
}
