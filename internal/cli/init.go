package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopmetrics/reviewpipe/internal/db"
	"github.com/shopmetrics/reviewpipe/internal/logging"
	"github.com/shopmetrics/reviewpipe/internal/warehouse"
)

var initDropExisting bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the staging and analytics schemas",
	Long: `Create the staging and analytics schemas and all pipeline tables.
Safe to re-run; existing tables are left alone unless --drop-existing is
given.

Example:
  reviewpipe init --connection "postgres://..."
  reviewpipe init --drop-existing --connection "postgres://..."`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initDropExisting, "drop-existing", false,
		"drop existing schemas before initialization")
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	wh := warehouse.New(cfg.Target.StagingSchema, cfg.Target.AnalyticsSchema)

	if initDropExisting {
		logging.Warn().Msg("Dropping existing schemas")
		if err := wh.DropSchema(ctx, pool); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
		if err := db.DropMetadata(ctx, pool); err != nil {
			logging.Debug().Err(err).Msg("No metadata table to drop")
		}
	}

	logging.Info().
		Str("staging", cfg.Target.StagingSchema).
		Str("analytics", cfg.Target.AnalyticsSchema).
		Msg("Creating schemas")

	if err := wh.CreateSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	logging.Info().Msg("Initialization complete")
	return nil
}
