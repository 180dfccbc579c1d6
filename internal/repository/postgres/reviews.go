package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bazaarph/marketplace-api/internal/domain"
)

type reviewRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *sql.DB, logger *zap.Logger) *reviewRepository {
	return &reviewRepository{
		db:     db,
		logger: logger,
	}
}

func (r *reviewRepository) ExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM reviews WHERE order_id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, orderID).Scan(&exists); err != nil {
		r.logger.Error("Failed to check review existence", zap.Error(err))
		return false, err
	}

	return exists, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (id, order_id, buyer_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		review.ID,
		review.OrderID,
		review.BuyerID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create review", zap.Error(err))
		return err
	}

	return nil
}
