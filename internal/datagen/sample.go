package datagen

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopmetrics/reviewpipe/internal/logging"
	"github.com/shopmetrics/reviewpipe/internal/source"
)

// Category hierarchies shaped like the real export, pipe-delimited.
var categoryPaths = []string{
	"Electronics|Mobiles&Accessories|MobileAccessories|Cables|USBCables",
	"Electronics|Headphones,Earbuds&Accessories|Headphones|In-Ear",
	"Computers&Accessories|Accessories&Peripherals|Cables&Accessories|Cables",
	"Home&Kitchen|Kitchen&HomeAppliances|SmallKitchenAppliances",
	"Electronics|HomeTheater,TV&Video|Televisions|SmartTelevisions",
	"Electronics|WearableTechnology|SmartWatches",
}

// SampleConfig controls synthetic export generation.
type SampleConfig struct {
	// Rows is the number of raw rows to emit.
	Rows int

	// Seed makes output reproducible when non-zero.
	Seed uint64

	// DirtyFraction is the approximate fraction of rows emitted with a
	// data-quality defect: a NULL rating count, the "|" rating sentinel,
	// mismatched review lists, or a duplicated product id.
	DirtyFraction float64
}

// SampleWriter emits a synthetic raw export with the fixed 16-column
// layout the loader expects, including the noise the pipeline has to
// clean: rupee prices with thousands separators, percent signs, and
// comma-joined review lists.
type SampleWriter struct {
	faker *Faker
	cfg   SampleConfig

	lastProductID string
}

// NewSampleWriter creates a SampleWriter.
func NewSampleWriter(cfg SampleConfig) *SampleWriter {
	f := NewFaker()
	if cfg.Seed != 0 {
		f = NewFakerWithSeed(cfg.Seed)
	}
	return &SampleWriter{faker: f, cfg: cfg}
}

// WriteFile generates the sample export at path.
func (s *SampleWriter) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sample file: %w", err)
	}
	defer f.Close()

	if err := s.Write(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	logging.Info().
		Str("path", path).
		Int("rows", s.cfg.Rows).
		Msg("Wrote sample export")

	return nil
}

// Write generates the sample export to w.
func (s *SampleWriter) Write(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(source.Header); err != nil {
		return err
	}

	for i := 0; i < s.cfg.Rows; i++ {
		if err := cw.Write(s.row()); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func (s *SampleWriter) row() []string {
	productID := "B0" + strings.ToUpper(s.faker.StringN(2)) + s.faker.Digits(6)
	actual := s.faker.Float64(199, 49999)
	discountPct := float64(s.faker.Int(5, 80))
	discounted := actual * (1 - discountPct/100)
	rating := fmt.Sprintf("%.1f", s.faker.Float64(2.5, 5.0))
	ratingCount := formatThousands(int64(s.faker.Int(5, 400000)))

	reviews := s.faker.Int(1, 8)
	userIDs := make([]string, reviews)
	userNames := make([]string, reviews)
	reviewIDs := make([]string, reviews)
	reviewTitles := make([]string, reviews)
	for j := range userIDs {
		userIDs[j] = "AE" + strings.ToUpper(s.faker.StringN(12))
		userNames[j] = strings.ToLower(s.faker.Name())
		reviewIDs[j] = "R" + strings.ToUpper(s.faker.StringN(12))
		reviewTitles[j] = strings.ReplaceAll(s.faker.Sentence(3), ",", "")
	}

	row := []string{
		productID,
		s.faker.ProductName(),
		Choose(s.faker, categoryPaths),
		"₹" + formatThousands(int64(discounted)),
		"₹" + formatThousands(int64(actual)),
		fmt.Sprintf("%d%%", int(discountPct)),
		rating,
		ratingCount,
		s.faker.ProductDescription(),
		strings.Join(userIDs, ","),
		strings.Join(userNames, ","),
		strings.Join(reviewIDs, ","),
		strings.Join(reviewTitles, ","),
		s.faker.Sentence(12),
		s.faker.URL(),
		s.faker.URL(),
	}

	if s.faker.Float64(0, 1) < s.cfg.DirtyFraction {
		s.dirty(row)
	}
	s.lastProductID = row[0]

	return row
}

// dirty injects one of the defects the pipeline is built to handle.
func (s *SampleWriter) dirty(row []string) {
	switch s.faker.Int(0, 3) {
	case 0:
		row[7] = "NULL" // rating count missing: row filter fodder
	case 1:
		row[6] = "|" // the known malformed rating token
	case 2:
		// Drop one user id so the parallel lists no longer align.
		ids := strings.Split(row[9], ",")
		if len(ids) > 1 {
			row[9] = strings.Join(ids[1:], ",")
		} else {
			row[9] = row[9] + ",AE" + strings.ToUpper(s.faker.StringN(12))
		}
	case 3:
		// Duplicate the previous product id to exercise dedup.
		if s.lastProductID != "" {
			row[0] = s.lastProductID
		}
	}
}

// formatThousands renders n with comma thousands separators
// (1,234,567), matching the export.
func formatThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
