package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/Rana718/distria-seed/internal/config"
	"github.com/Rana718/distria-seed/internal/database"
	"github.com/Rana718/distria-seed/internal/seeder"
	"github.com/Rana718/distria-seed/internal/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Truncate the DistrIA tables and load fixture data",
	Long: `
Load a complete synthetic dataset into an already migrated DistrIA schema.
The run:

1. Truncates every DistrIA table (cascading)
2. Creates the administrator and the delivery drivers
3. Creates customers, products and one inventory record per product
4. Creates orders with 1-5 items each and writes back their totals
5. Assigns non-cancelled orders to delivery routes

Each phase is committed before the next starts. A failure stops the run
and leaves the committed phases in place; run the command again to start
from a clean state.

⚠️  WARNING: This deletes all existing rows in the DistrIA tables!

Use --yes to skip the confirmation prompt.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	dbURL, err := cfg.DatabaseURL()
	if err != nil {
		return err
	}

	yes, _ := cmd.Flags().GetBool("yes")
	prompt := fmt.Sprintf("⚠️  All DistrIA tables in the %s database will be truncated. Continue?", cfg.Database.Provider)
	if !utils.AskConfirmation(cmd.InOrStdin(), cmd.OutOrStdout(), prompt, yes) {
		color.Yellow("Seeding cancelled")
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	color.Cyan("📡 Connecting to %s...", cfg.Database.Provider)
	sink, err := database.NewSink(ctx, cfg.Database.Provider, cfg.Database.Driver, dbURL)
	if err != nil {
		return err
	}
	defer sink.Close()
	color.Green("✅ Connected\n")

	_, err = seeder.New(sink, cfg).Run(ctx)
	return err
}

// seedFlags maps seed command flags onto config keys.
var seedFlags = map[string]string{
	"drivers":      "counts.drivers",
	"customers":    "counts.customers",
	"products":     "counts.products",
	"orders":       "counts.orders",
	"routes":       "counts.routes",
	"seed":         "seed",
	"commit-every": "commit_every",
	"provider":     "database.provider",
	"driver":       "database.driver",
	"addresses":    "addresses",
}

func init() {
	rootCmd.AddCommand(seedCmd)

	flags := seedCmd.Flags()
	flags.Int("drivers", 0, "Number of drivers to create")
	flags.Int("customers", 0, "Number of customers to create")
	flags.Int("products", 0, "Number of products to create")
	flags.Int("orders", 0, "Number of orders to create")
	flags.Int("routes", 0, "Maximum number of delivery routes to create")
	flags.Int64("seed", 0, "Random seed")
	flags.Int("commit-every", 0, "Commit every N rows inside a phase")
	flags.String("provider", "", "Database provider (postgresql, mysql, sqlite)")
	flags.String("driver", "", "PostgreSQL driver (pgx, pq)")
	flags.String("addresses", "", "Address style (zone, faker)")
	flags.BoolP("yes", "y", false, "Skip the confirmation prompt")

	for name, key := range seedFlags {
		viper.BindPFlag(key, flags.Lookup(name))
	}
}
