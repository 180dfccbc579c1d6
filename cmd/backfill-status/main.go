// Command backfill-status migrates orders that only carry a legacy status
// to the normalized (payment, shipment) pair, then prints a per-status
// report. Run with -dry-run first to see what would change.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/bazaarph/marketplace-api/internal/config"
	"github.com/bazaarph/marketplace-api/internal/domain"
	"github.com/bazaarph/marketplace-api/internal/repository/postgres"
	"github.com/bazaarph/marketplace-api/internal/status"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report what would change without writing")
	batchSize := flag.Int("batch", 500, "rows fetched per batch")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	repos := postgres.NewRepositories(db, logger)
	ctx := context.Background()

	fmt.Println("=== Legacy status inventory ===")
	counts, err := repos.Order.CountByLegacyStatus(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to count legacy statuses: %v\n", err)
		os.Exit(1)
	}
	printCounts(counts)

	migrated := 0
	skipped := 0
	for {
		orders, err := repos.Order.ListLegacyOnly(ctx, *batchSize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list legacy orders: %v\n", err)
			os.Exit(1)
		}
		if len(orders) == 0 {
			break
		}

		migratedThisBatch := 0
		for _, order := range orders {
			n, err := status.LegacyToNormalized(*order.LegacyStatus)
			if err != nil {
				// Unmapped value means the table and the data drifted;
				// surface it loudly instead of guessing a default.
				fmt.Fprintf(os.Stderr, "SKIP order %s: %v\n", order.ID, err)
				skipped++
				continue
			}

			if *dryRun {
				fmt.Printf("would migrate %s: %s -> (%s, %s)\n",
					order.ID, *order.LegacyStatus, n.PaymentStatus, n.ShipmentStatus)
				migrated++
				continue
			}

			if err := repos.Order.UpdateStatus(ctx, order.ID, n.PaymentStatus, n.ShipmentStatus, *order.LegacyStatus); err != nil {
				fmt.Fprintf(os.Stderr, "FAIL order %s: %v\n", order.ID, err)
				skipped++
				continue
			}
			migrated++
			migratedThisBatch++
		}

		if *dryRun {
			// Dry runs never shrink the candidate set, so one batch is
			// enough for the report.
			break
		}
		if migratedThisBatch == 0 {
			// Every remaining row is unmappable; refetching would loop
			// on the same rows.
			break
		}
	}

	fmt.Println("=== Backfill report ===")
	if *dryRun {
		fmt.Printf("Mode: dry run\n")
	}
	fmt.Printf("Migrated: %d\n", migrated)
	fmt.Printf("Skipped:  %d\n", skipped)
	if skipped > 0 {
		os.Exit(1)
	}
}

func printCounts(counts map[domain.LegacyStatus]int) {
	statuses := make([]string, 0, len(counts))
	for s := range counts {
		statuses = append(statuses, string(s))
	}
	sort.Strings(statuses)
	for _, s := range statuses {
		fmt.Printf("  %-18s %d\n", s, counts[domain.LegacyStatus(s)])
	}
}
