package warehouse

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopmetrics/reviewpipe/internal/logging"
	"github.com/shopmetrics/reviewpipe/internal/pipeline"
)

var stagingColumns = []string{
	"product_id", "product_name", "category",
	"discounted_price", "actual_price", "discount_percentage",
	"rating", "rating_count", "about_product",
	"user_id", "user_name", "review_id", "review_title", "review_content",
	"img_link", "product_link",
}

// StageRaw truncates the staging table and bulk-loads the raw records into
// it via COPY. Empty raw fields (literal NULLs in the file) are stored as
// SQL NULL.
func (w *Warehouse) StageRaw(ctx context.Context, pool *pgxpool.Pool, recs []pipeline.RawRecord) (int64, error) {
	if _, err := pool.Exec(ctx, fmt.Sprintf("TRUNCATE %s", w.stagingTable())); err != nil {
		return 0, fmt.Errorf("failed to truncate staging table: %w", err)
	}

	rows := make([][]any, len(recs))
	for i, r := range recs {
		rows[i] = []any{
			textOrNil(r.ProductID), textOrNil(r.ProductName), textOrNil(r.Category),
			textOrNil(r.DiscountedPrice), textOrNil(r.ActualPrice), textOrNil(r.DiscountPercentage),
			textOrNil(r.Rating), textOrNil(r.RatingCount), textOrNil(r.AboutProduct),
			textOrNil(r.UserID), textOrNil(r.UserName), textOrNil(r.ReviewID),
			textOrNil(r.ReviewTitle), textOrNil(r.ReviewContent),
			textOrNil(r.ImgLink), textOrNil(r.ProductLink),
		}
	}

	n, err := pool.CopyFrom(ctx,
		pgx.Identifier{w.staging, "raw_product_review"},
		stagingColumns,
		pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("failed to copy raw rows: %w", err)
	}

	logging.Info().
		Int64("rows", n).
		Str("table", w.stagingTable()).
		Msg("Staged raw rows")

	return n, nil
}

func textOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
