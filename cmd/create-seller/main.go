package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/bazaarph/marketplace-api/internal/config"
	"github.com/bazaarph/marketplace-api/internal/domain"
	"github.com/bazaarph/marketplace-api/internal/repository/postgres"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run cmd/create-seller/main.go <shop-name> <api-key>")
		fmt.Println("Example: go run cmd/create-seller/main.go \"Tindahan ni Aling Nena\" \"nena-api-key-12345\"")
		os.Exit(1)
	}

	shopName := os.Args[1]
	apiKey := os.Args[2]

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Connect to database
	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// Hash the API key
	apiKeyHash, err := bcrypt.GenerateFromPassword([]byte(apiKey), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash API key: %v\n", err)
		os.Exit(1)
	}

	// Create repositories
	repos := postgres.NewRepositories(db, logger)

	// Create seller
	seller := &domain.Seller{
		ShopName:   shopName,
		APIKeyHash: string(apiKeyHash),
		IsActive:   true,
	}

	if err := repos.Seller.Create(context.Background(), seller); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create seller: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seller created successfully!\n\n")
	fmt.Printf("Seller ID: %s\n", seller.ID.String())
	fmt.Printf("Shop Name: %s\n", seller.ShopName)
	fmt.Printf("API Key: %s\n", apiKey)
	fmt.Printf("\nIMPORTANT: Save this API key securely! You won't be able to see it again.\n")
	fmt.Printf("\nUse this API key in the Authorization header:\n")
	fmt.Printf("Authorization: Bearer %s\n", apiKey)
}
