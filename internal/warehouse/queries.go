//-------------------------------------------------------------------------
//
// ShopMetrics ReviewPipe
//
// Portions copyright (c) 2025 - 2026, ShopMetrics, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

import (
	"context"
	"fmt"
)

// ProductReviewCount is one row of the most-reviewed-products report.
type ProductReviewCount struct {
	ProductID   string
	ProductName string
	Reviews     int64
}

// ReviewerCount is one row of the reviewer-ranking report.
type ReviewerCount struct {
	UserID   string
	UserName string
	Reviews  int64
}

// TopProducts returns the limit most-reviewed products, descending.
func (w *Warehouse) TopProducts(ctx context.Context, db DB, limit int) ([]ProductReviewCount, error) {
	sql := fmt.Sprintf(`
        SELECT p.product_id, COALESCE(p.product_name, ''), COUNT(f.review_id) AS reviews
        FROM %s f
        JOIN %s p ON p.product_id = f.product_id
        GROUP BY p.product_id, p.product_name
        ORDER BY reviews DESC, p.product_id
        LIMIT $1
    `, w.factReview(), w.dimProduct())

	rows, err := db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("top products query failed: %w", err)
	}
	defer rows.Close()

	var out []ProductReviewCount
	for rows.Next() {
		var r ProductReviewCount
		if err := rows.Scan(&r.ProductID, &r.ProductName, &r.Reviews); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// TopReviewers returns the limit reviewers ranked by review count in the
// given direction ("asc" or "desc"). The original workload ordered this
// ascending while labeling itself "top reviewers"; callers that pass the
// ascending default should tell the user about it rather than silently
// correcting the behavior.
func (w *Warehouse) TopReviewers(ctx context.Context, db DB, limit int, order string) ([]ReviewerCount, error) {
	dir := "ASC"
	if order == "desc" {
		dir = "DESC"
	}

	sql := fmt.Sprintf(`
        SELECT f.user_id, COALESCE(MAX(f.user_name), ''), COUNT(*) AS reviews
        FROM %s f
        WHERE f.user_id IS NOT NULL
        GROUP BY f.user_id
        ORDER BY reviews %s, f.user_id
        LIMIT $1
    `, w.factReview(), dir)

	rows, err := db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("top reviewers query failed: %w", err)
	}
	defer rows.Close()

	var out []ReviewerCount
	for rows.Next() {
		var r ReviewerCount
		if err := rows.Scan(&r.UserID, &r.UserName, &r.Reviews); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
