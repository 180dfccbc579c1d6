package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bazaarph/marketplace-api/internal/domain"
	"github.com/bazaarph/marketplace-api/internal/repository"
	"github.com/bazaarph/marketplace-api/pkg/errors"
)

const sellerContextKey = "seller"

// AuthMiddleware authenticates seller requests via the Authorization
// bearer API key.
func AuthMiddleware(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing API key"})
			return
		}

		apiKey := strings.TrimPrefix(header, "Bearer ")
		seller, err := repos.Seller.GetByAPIKey(c.Request.Context(), apiKey)
		if err != nil {
			if _, ok := err.(*errors.ErrUnauthorized); ok {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
				return
			}
			logger.Error("Failed to authenticate seller", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.Set(sellerContextKey, seller)
		c.Next()
	}
}

// GetSellerFromContext returns the authenticated seller set by
// AuthMiddleware.
func GetSellerFromContext(c *gin.Context) (*domain.Seller, bool) {
	value, ok := c.Get(sellerContextKey)
	if !ok {
		return nil, false
	}
	seller, ok := value.(*domain.Seller)
	return seller, ok
}
