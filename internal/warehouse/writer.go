package warehouse

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopmetrics/reviewpipe/internal/logging"
	"github.com/shopmetrics/reviewpipe/internal/pipeline"
)

// WriteProducts rebuilds dim_product wholesale from the cleaned,
// deduplicated products.
func (w *Warehouse) WriteProducts(ctx context.Context, pool *pgxpool.Pool, products []pipeline.Product) (int64, error) {
	if _, err := pool.Exec(ctx, fmt.Sprintf("TRUNCATE %s CASCADE", w.dimProduct())); err != nil {
		return 0, fmt.Errorf("failed to truncate %s: %w", w.dimProduct(), err)
	}

	rows := make([][]any, len(products))
	for i, p := range products {
		rows[i] = []any{
			p.ProductID, textOrNil(p.ProductName),
			p.Category.Level(1), p.Category.Level(2), p.Category.Level(3),
			p.Category.Level(4), p.Category.Level(5),
			p.DiscountedPrice, p.ActualPrice, p.DiscountPercentage,
			p.Rating, p.RatingCount,
			textOrNil(p.AboutProduct),
		}
	}

	n, err := pool.CopyFrom(ctx,
		pgx.Identifier{w.analytics, "dim_product"},
		[]string{
			"product_id", "product_name",
			"category1", "category2", "category3", "category4", "category5",
			"discounted_price", "actual_price", "discount_percentage",
			"rating", "rating_count", "about_product",
		},
		pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("failed to copy products: %w", err)
	}

	logging.Info().
		Int64("rows", n).
		Str("table", w.dimProduct()).
		Msg("Rebuilt product dimension")

	return n, nil
}

// WriteReviews rebuilds fact_review wholesale from the deduplicated
// exploded reviews.
func (w *Warehouse) WriteReviews(ctx context.Context, pool *pgxpool.Pool, reviews []pipeline.Review) (int64, error) {
	if _, err := pool.Exec(ctx, fmt.Sprintf("TRUNCATE %s", w.factReview())); err != nil {
		return 0, fmt.Errorf("failed to truncate %s: %w", w.factReview(), err)
	}

	rows := make([][]any, len(reviews))
	for i, r := range reviews {
		rows[i] = []any{
			r.ReviewID, textOrNil(r.ReviewTitle), textOrNil(r.ProductID),
			textOrNil(r.UserID), textOrNil(r.UserName),
		}
	}

	n, err := pool.CopyFrom(ctx,
		pgx.Identifier{w.analytics, "fact_review"},
		[]string{"review_id", "review_title", "product_id", "user_id", "user_name"},
		pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("failed to copy reviews: %w", err)
	}

	logging.Info().
		Int64("rows", n).
		Str("table", w.factReview()).
		Msg("Rebuilt review fact")

	return n, nil
}
