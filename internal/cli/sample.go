package cli

import (
	"github.com/spf13/cobra"

	"github.com/shopmetrics/reviewpipe/internal/datagen"
)

var (
	sampleOut   string
	sampleRows  int
	sampleSeed  uint64
	sampleDirty float64
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate a synthetic raw export for demos and testing",
	Long: `Generate a synthetic CSV with the shape of the real raw export,
including the dirt the pipeline has to handle: rupee prices with
thousands separators, the malformed "|" rating token, NULL rating
counts, mismatched review lists, and duplicate product ids.

Example:
  reviewpipe sample --out sample.csv --rows 1000 --dirty-fraction 0.05`,
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().StringVar(&sampleOut, "out", "sample.csv",
		"output file path")
	sampleCmd.Flags().IntVar(&sampleRows, "rows", 0,
		"number of raw rows to generate")
	sampleCmd.Flags().Uint64Var(&sampleSeed, "seed", 0,
		"random seed (0 = time-based)")
	sampleCmd.Flags().Float64Var(&sampleDirty, "dirty-fraction", -1,
		"approximate fraction of rows with data-quality defects")
}

func runSample(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if sampleRows > 0 {
		cfg.Sample.Rows = sampleRows
	}
	if sampleSeed != 0 {
		cfg.Sample.Seed = sampleSeed
	}
	if sampleDirty >= 0 {
		cfg.Sample.DirtyFraction = sampleDirty
	}

	if err := cfg.ValidateSample(); err != nil {
		return err
	}

	w := datagen.NewSampleWriter(datagen.SampleConfig{
		Rows:          cfg.Sample.Rows,
		Seed:          cfg.Sample.Seed,
		DirtyFraction: cfg.Sample.DirtyFraction,
	})
	return w.WriteFile(sampleOut)
}
