package pipeline

import (
	"github.com/shopmetrics/reviewpipe/internal/logging"
)

// Counts holds the checkpoint row counts accumulated over a run. They are
// logged as the run progresses and persisted in the run metadata as a
// manual sanity check.
type Counts struct {
	Raw            int
	AfterFilter    int
	Products       int
	Reviews        int
	MismatchedRows int
}

// Result is the output of a full pipeline run: the two model tables plus
// the checkpoint counts.
type Result struct {
	Products []Product
	Reviews  []Review
	Counts   Counts
}

// Run executes the full cleaning pipeline over the raw rows: normalize,
// filter, split categories, then fork into the review branch (explode,
// dedupe by review id) and the product branch (dedupe by product id) and
// project the two model tables. The whole run is a full recompute; nothing
// is incremental and no stage reads its own previous output.
func Run(raws []RawRecord) Result {
	recs := make([]Record, len(raws))
	for i, raw := range raws {
		recs[i].Raw = raw
	}

	NormalizeAll(recs)
	recs = FilterBroken(recs)
	SplitCategories(recs)

	logging.Info().
		Int("raw_rows", len(raws)).
		Int("rows", len(recs)).
		Msg("Filtered broken rows")

	exploded := ExplodeReviews(recs)
	if exploded.MismatchedRows > 0 {
		logging.Warn().
			Int("rows", exploded.MismatchedRows).
			Msg("Dropped rows with mismatched review list lengths")
	}

	reviews := DedupeReviews(exploded.Reviews)
	products := buildProducts(DedupeProducts(recs))

	logging.Info().
		Int("products", len(products)).
		Int("reviews", len(reviews)).
		Msg("Deduplicated model rows")

	return Result{
		Products: products,
		Reviews:  reviews,
		Counts: Counts{
			Raw:            len(raws),
			AfterFilter:    len(recs),
			Products:       len(products),
			Reviews:        len(reviews),
			MismatchedRows: exploded.MismatchedRows,
		},
	}
}

// buildProducts projects the deduplicated records into dim_product rows.
// Records without a product id cannot join to anything and are excluded.
func buildProducts(recs []Record) []Product {
	out := make([]Product, 0, len(recs))
	for _, r := range recs {
		if r.Raw.ProductID == "" {
			continue
		}
		out = append(out, Product{
			ProductID:          r.Raw.ProductID,
			ProductName:        r.Raw.ProductName,
			Category:           r.Category,
			DiscountedPrice:    r.DiscountedPrice,
			ActualPrice:        r.ActualPrice,
			DiscountPercentage: r.DiscountPercentage,
			Rating:             r.Rating,
			RatingCount:        r.RatingCount,
			AboutProduct:       r.Raw.AboutProduct,
		})
	}
	return out
}
