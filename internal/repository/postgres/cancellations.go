package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bazaarph/marketplace-api/internal/domain"
)

type cancellationRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCancellationRepository creates a new cancellation repository
func NewCancellationRepository(db *sql.DB, logger *zap.Logger) *cancellationRepository {
	return &cancellationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *cancellationRepository) ExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM cancellations WHERE order_id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, orderID).Scan(&exists); err != nil {
		r.logger.Error("Failed to check cancellation existence", zap.Error(err))
		return false, err
	}

	return exists, nil
}

func (r *cancellationRepository) Create(ctx context.Context, c *domain.Cancellation) error {
	query := `
		INSERT INTO cancellations (id, order_id, buyer_id, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query, c.ID, c.OrderID, c.BuyerID, c.Reason, c.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create cancellation", zap.Error(err))
		return err
	}

	return nil
}
