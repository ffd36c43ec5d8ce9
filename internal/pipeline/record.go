//-------------------------------------------------------------------------
//
// ShopMetrics ReviewPipe
//
// Portions copyright (c) 2025 - 2026, ShopMetrics, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package pipeline implements the cleaning and reshaping stages that turn
// the raw product/review export into the dim_product and fact_review
// tables. Each stage is a pure function from input rows to output rows so
// the whole chain can be unit tested without a database.
package pipeline

// RawRecord is one row of the source file exactly as ingested: every field
// is text. Fields that were the literal string "NULL" (or "null") in the
// file arrive here as empty strings. RawRecord exists only at ingestion
// time; nothing downstream of the pipeline reads it.
type RawRecord struct {
	ProductID          string
	ProductName        string
	Category           string
	DiscountedPrice    string
	ActualPrice        string
	DiscountPercentage string
	Rating             string
	RatingCount        string
	AboutProduct       string
	UserID             string
	UserName           string
	ReviewID           string
	ReviewTitle        string
	ReviewContent      string
	ImgLink            string
	ProductLink        string
}

// CategoryLevels holds the pipe-delimited category hierarchy split into at
// most five positions, level 1 (most general) first. Positions beyond the
// split length are nil.
type CategoryLevels [5]*string

// Level returns the category at 1-based level n, or nil when n is out of
// range or the level was not present in the source string.
func (c CategoryLevels) Level(n int) *string {
	if n < 1 || n > len(c) {
		return nil
	}
	return c[n-1]
}

// Record is a RawRecord plus the typed fields the normalizer and splitter
// derive from it. A nil numeric field means the source text could not be
// parsed ("unrecoverable for this field").
type Record struct {
	Raw RawRecord

	DiscountedPrice    *float64
	ActualPrice        *float64
	DiscountPercentage *float64
	Rating             *float64
	RatingCount        *int64

	Category CategoryLevels
}

// Product is one row of analytics.dim_product: one row per distinct
// product id, the most-reviewed variant surviving dedup.
type Product struct {
	ProductID          string
	ProductName        string
	Category           CategoryLevels
	DiscountedPrice    *float64
	ActualPrice        *float64
	DiscountPercentage *float64
	Rating             *float64
	RatingCount        *int64
	AboutProduct       string
}

// Review is one row of analytics.fact_review: one row per distinct review
// id after explosion and dedup.
type Review struct {
	ReviewID    string
	ReviewTitle string
	ProductID   string
	UserID      string
	UserName    string
}
