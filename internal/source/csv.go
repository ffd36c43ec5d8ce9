//-------------------------------------------------------------------------
//
// ShopMetrics ReviewPipe
//
// Portions copyright (c) 2025 - 2026, ShopMetrics, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package source reads the raw product/review export. The file layout is
// fixed: comma-separated, one header row, optional double-quote enclosure,
// sixteen columns in a known order, and the literal text "NULL"/"null"
// meaning a missing value. Anything structurally different is a fatal
// error, not a recoverable one.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopmetrics/reviewpipe/internal/pipeline"
)

// FieldCount is the fixed column count of the export.
const FieldCount = 16

// Header is the expected header row, in column order.
var Header = []string{
	"product_id", "product_name", "category",
	"discounted_price", "actual_price", "discount_percentage",
	"rating", "rating_count", "about_product",
	"user_id", "user_name", "review_id", "review_title", "review_content",
	"img_link", "product_link",
}

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\ufeff"

// ReadFile loads the raw export at path into memory.
func ReadFile(path string) ([]pipeline.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}
	defer f.Close()

	recs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return recs, nil
}

// Read parses raw records from r. The header row is validated for width
// and skipped; every data row must have exactly FieldCount columns.
func Read(r io.Reader) ([]pipeline.RawRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = FieldCount

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("source file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("malformed header row: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	var recs []pipeline.RawRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed row: %w", err)
		}
		recs = append(recs, toRecord(row))
	}

	return recs, nil
}

// toRecord maps one CSV row onto a RawRecord, turning literal NULL tokens
// into empty strings (the pipeline's null representation for raw text).
func toRecord(row []string) pipeline.RawRecord {
	return pipeline.RawRecord{
		ProductID:          nullable(row[0]),
		ProductName:        nullable(row[1]),
		Category:           nullable(row[2]),
		DiscountedPrice:    nullable(row[3]),
		ActualPrice:        nullable(row[4]),
		DiscountPercentage: nullable(row[5]),
		Rating:             nullable(row[6]),
		RatingCount:        nullable(row[7]),
		AboutProduct:       nullable(row[8]),
		UserID:             nullable(row[9]),
		UserName:           nullable(row[10]),
		ReviewID:           nullable(row[11]),
		ReviewTitle:        nullable(row[12]),
		ReviewContent:      nullable(row[13]),
		ImgLink:            nullable(row[14]),
		ProductLink:        nullable(row[15]),
	}
}

func nullable(s string) string {
	if s == "NULL" || s == "null" {
		return ""
	}
	return s
}
