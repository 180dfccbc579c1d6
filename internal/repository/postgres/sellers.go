package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/bazaarph/marketplace-api/internal/domain"
	"github.com/bazaarph/marketplace-api/pkg/errors"
)

type sellerRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSellerRepository creates a new seller repository
func NewSellerRepository(db *sql.DB, logger *zap.Logger) *sellerRepository {
	return &sellerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sellerRepository) GetByAPIKey(ctx context.Context, apiKey string) (*domain.Seller, error) {
	// Bcrypt hashes are salted, so there is no direct lookup; scan active
	// sellers and verify the key against each hash. For production scale,
	// add a SHA256 lookup_hash column.
	query := `
		SELECT id, shop_name, api_key_hash, is_active, created_at, updated_at
		FROM sellers
		WHERE is_active = true
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query sellers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var seller domain.Seller

		err := rows.Scan(
			&seller.ID,
			&seller.ShopName,
			&seller.APIKeyHash,
			&seller.IsActive,
			&seller.CreatedAt,
			&seller.UpdatedAt,
		)
		if err != nil {
			continue
		}

		if err := bcrypt.CompareHashAndPassword([]byte(seller.APIKeyHash), []byte(apiKey)); err == nil {
			return &seller, nil
		}
	}

	return nil, &errors.ErrUnauthorized{Message: "invalid API key"}
}

func (r *sellerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Seller, error) {
	query := `
		SELECT id, shop_name, api_key_hash, is_active, created_at, updated_at
		FROM sellers
		WHERE id = $1
	`

	var seller domain.Seller
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&seller.ID,
		&seller.ShopName,
		&seller.APIKeyHash,
		&seller.IsActive,
		&seller.CreatedAt,
		&seller.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "seller", ID: id.String()}
	}
	if err != nil {
		r.logger.Error("Failed to get seller by ID", zap.Error(err))
		return nil, err
	}

	return &seller, nil
}

func (r *sellerRepository) Create(ctx context.Context, seller *domain.Seller) error {
	query := `
		INSERT INTO sellers (id, shop_name, api_key_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	now := time.Now()
	if seller.ID == uuid.Nil {
		seller.ID = uuid.New()
	}
	if seller.CreatedAt.IsZero() {
		seller.CreatedAt = now
	}
	if seller.UpdatedAt.IsZero() {
		seller.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx, query,
		seller.ID,
		seller.ShopName,
		seller.APIKeyHash,
		seller.IsActive,
		seller.CreatedAt,
		seller.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to create seller", zap.Error(err))
		return err
	}

	return nil
}
