//-------------------------------------------------------------------------
//
// ShopMetrics ReviewPipe
//
// Portions copyright (c) 2025 - 2026, ShopMetrics, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package warehouse owns the Postgres side of the pipeline: the staging
// and analytics schemas, the wholesale table rebuilds, and the reporting
// queries. Schema names come from configuration rather than an ambient
// "current database" so a run can target any pair of schemas explicitly.
package warehouse

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopmetrics/reviewpipe/internal/logging"
)

// DB is an interface that both *pgxpool.Pool and *pgx.Conn satisfy, so the
// reporting queries can run on either.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Warehouse binds the target schema names for one pipeline run.
type Warehouse struct {
	staging   string
	analytics string
}

// New creates a Warehouse targeting the given schemas.
func New(stagingSchema, analyticsSchema string) *Warehouse {
	return &Warehouse{
		staging:   stagingSchema,
		analytics: analyticsSchema,
	}
}

// createSchemaSQL is the full DDL for both schemas. The staging table is
// deliberately all TEXT: typing happens in the pipeline, not in the
// warehouse. The analytics tables are the star schema the reporting
// queries consume.
const createSchemaSQL = `
CREATE SCHEMA IF NOT EXISTS %[1]s;
CREATE SCHEMA IF NOT EXISTS %[2]s;

-- Raw rows exactly as ingested. Rebuilt wholesale every run; nothing
-- downstream reads it after the pipeline completes.
CREATE TABLE IF NOT EXISTS %[1]s.raw_product_review (
    product_id          TEXT,
    product_name        TEXT,
    category            TEXT,
    discounted_price    TEXT,
    actual_price        TEXT,
    discount_percentage TEXT,
    rating              TEXT,
    rating_count        TEXT,
    about_product       TEXT,
    user_id             TEXT,
    user_name           TEXT,
    review_id           TEXT,
    review_title        TEXT,
    review_content      TEXT,
    img_link            TEXT,
    product_link        TEXT
);

-- Product dimension: one row per product id.
CREATE TABLE IF NOT EXISTS %[2]s.dim_product (
    product_id          TEXT PRIMARY KEY,
    product_name        TEXT,
    category1           TEXT,
    category2           TEXT,
    category3           TEXT,
    category4           TEXT,
    category5           TEXT,
    discounted_price    DOUBLE PRECISION,
    actual_price        DOUBLE PRECISION,
    discount_percentage DOUBLE PRECISION,
    rating              DOUBLE PRECISION,
    rating_count        BIGINT,
    about_product       TEXT
);

-- Review fact: one row per review id.
CREATE TABLE IF NOT EXISTS %[2]s.fact_review (
    review_id    TEXT PRIMARY KEY,
    review_title TEXT,
    product_id   TEXT REFERENCES %[2]s.dim_product(product_id),
    user_id      TEXT,
    user_name    TEXT
);

CREATE INDEX IF NOT EXISTS idx_fact_review_product ON %[2]s.fact_review(product_id);
CREATE INDEX IF NOT EXISTS idx_fact_review_user ON %[2]s.fact_review(user_id);
`

const dropSchemaSQL = `
DROP TABLE IF EXISTS %[1]s.raw_product_review CASCADE;
DROP TABLE IF EXISTS %[2]s.fact_review CASCADE;
DROP TABLE IF EXISTS %[2]s.dim_product CASCADE;
DROP SCHEMA IF EXISTS %[1]s CASCADE;
DROP SCHEMA IF EXISTS %[2]s CASCADE;
`

// CreateSchema creates both schemas and all pipeline tables.
func (w *Warehouse) CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	sql := fmt.Sprintf(createSchemaSQL, w.staging, w.analytics)
	if _, err := pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	logging.Debug().
		Str("staging", w.staging).
		Str("analytics", w.analytics).
		Msg("Created schemas")

	return nil
}

// DropSchema drops both schemas and everything in them.
func (w *Warehouse) DropSchema(ctx context.Context, pool *pgxpool.Pool) error {
	sql := fmt.Sprintf(dropSchemaSQL, w.staging, w.analytics)
	if _, err := pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	return nil
}

// stagingTable returns the qualified staging table name.
func (w *Warehouse) stagingTable() string {
	return w.staging + ".raw_product_review"
}

// dimProduct returns the qualified product dimension name.
func (w *Warehouse) dimProduct() string {
	return w.analytics + ".dim_product"
}

// factReview returns the qualified review fact name.
func (w *Warehouse) factReview() string {
	return w.analytics + ".fact_review"
}
