//-------------------------------------------------------------------------
//
// ShopMetrics ReviewPipe
//
// Portions copyright (c) 2025 - 2026, ShopMetrics, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for reviewpipe.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/shopmetrics/reviewpipe/internal/config"
	"github.com/shopmetrics/reviewpipe/internal/logging"
	"github.com/shopmetrics/reviewpipe/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	connection string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "reviewpipe",
		Short: "Batch ETL from a raw product/review export into a Postgres star schema",
		Long: `reviewpipe ingests a flat e-commerce product/review CSV export,
cleans and reshapes it, and rebuilds a two-table dimensional model
(analytics.dim_product and analytics.fact_review) in PostgreSQL.

The pipeline is a one-shot full recompute: every run re-stages the raw
file and rebuilds both model tables wholesale. There is no incremental
loading and no resumable checkpoint; re-running from the start is the
recovery path.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./reviewpipe.yaml)")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"PostgreSQL connection string")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(sampleCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if connection != "" {
		cfg.Connection = connection
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}
