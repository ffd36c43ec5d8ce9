package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopmetrics/reviewpipe/internal/db"
	"github.com/shopmetrics/reviewpipe/internal/logging"
	"github.com/shopmetrics/reviewpipe/internal/warehouse"
)

var (
	reportLimit         int
	reportReviewerOrder string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the reporting queries against the model tables",
	Long: `Run the two read-only reporting queries: the most-reviewed products
and the reviewer ranking.

The reviewer ranking historically sorted ascending while calling itself
"top reviewers"; the default preserves that behavior and logs a warning.
Pass --order desc for the ranking most people expect.

Example:
  reviewpipe report --limit 5 --connection "postgres://..."`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().IntVar(&reportLimit, "limit", 0,
		"number of rows per report")
	reportCmd.Flags().StringVar(&reportReviewerOrder, "order", "",
		"reviewer ranking direction: asc or desc")
}

func runReport(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if reportLimit > 0 {
		cfg.Report.Limit = reportLimit
	}
	if reportReviewerOrder != "" {
		cfg.Report.ReviewerOrder = reportReviewerOrder
	}

	if err := cfg.ValidateReport(); err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	wh := warehouse.New(cfg.Target.StagingSchema, cfg.Target.AnalyticsSchema)

	products, err := wh.TopProducts(ctx, pool, cfg.Report.Limit)
	if err != nil {
		return err
	}

	cmd.Printf("Top %d most-reviewed products:\n", cfg.Report.Limit)
	for i, p := range products {
		cmd.Printf("  %2d. %-14s %6d reviews  %s\n", i+1, p.ProductID, p.Reviews, p.ProductName)
	}
	cmd.Println()

	if cfg.Report.ReviewerOrder == "asc" {
		logging.Warn().
			Msg("Reviewer ranking sorts ascending (historical behavior); pass --order desc for an actual top-N")
	}

	reviewers, err := wh.TopReviewers(ctx, pool, cfg.Report.Limit, cfg.Report.ReviewerOrder)
	if err != nil {
		return err
	}

	cmd.Printf("Top %d reviewers (%s):\n", cfg.Report.Limit, cfg.Report.ReviewerOrder)
	for i, r := range reviewers {
		cmd.Printf("  %2d. %-16s %6d reviews  %s\n", i+1, r.UserID, r.Reviews, r.UserName)
	}

	return nil
}
