//-------------------------------------------------------------------------
//
// ShopMetrics ReviewPipe
//
// Portions copyright (c) 2025 - 2026, ShopMetrics, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopmetrics/reviewpipe/internal/logging"
	"github.com/shopmetrics/reviewpipe/internal/pipeline"
	"github.com/shopmetrics/reviewpipe/pkg/version"
)

const metadataTable = "etl_metadata"

// createMetadataTableSQL creates the metadata table if it doesn't exist.
const createMetadataTableSQL = `
CREATE TABLE IF NOT EXISTS etl_metadata (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// SaveRunMetadata records the outcome of a pipeline run: version, source
// file, completion time, and the checkpoint row counts. These are the
// manual sanity-check numbers an operator compares between runs.
func SaveRunMetadata(ctx context.Context, pool *pgxpool.Pool, sourcePath string, counts pipeline.Counts) error {
	_, err := pool.Exec(ctx, createMetadataTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	metadata := map[string]string{
		"version":          version.Short(),
		"source_path":      sourcePath,
		"completed_at":     time.Now().UTC().Format(time.RFC3339),
		"raw_rows":         strconv.Itoa(counts.Raw),
		"rows_post_filter": strconv.Itoa(counts.AfterFilter),
		"dim_product_rows": strconv.Itoa(counts.Products),
		"fact_review_rows": strconv.Itoa(counts.Reviews),
		"mismatched_rows":  strconv.Itoa(counts.MismatchedRows),
	}

	for key, value := range metadata {
		_, err := pool.Exec(ctx, `
            INSERT INTO etl_metadata (key, value) VALUES ($1, $2)
            ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
        `, key, value)
		if err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}

	logging.Debug().
		Str("source", sourcePath).
		Int("raw_rows", counts.Raw).
		Msg("Saved run metadata")

	return nil
}

// GetMetadataValue retrieves a single metadata value by key.
func GetMetadataValue(ctx context.Context, pool *pgxpool.Pool, key string) (string, error) {
	var value string
	err := pool.QueryRow(ctx, `
        SELECT value FROM etl_metadata WHERE key = $1
    `, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// GetAllMetadata retrieves all metadata as a map.
func GetAllMetadata(ctx context.Context, pool *pgxpool.Pool) (map[string]string, error) {
	rows, err := pool.Query(ctx, `SELECT key, value FROM etl_metadata`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metadata := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		metadata[key] = value
	}

	return metadata, rows.Err()
}

// DropMetadata drops the metadata table.
func DropMetadata(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", metadataTable))
	return err
}

// MetadataExists checks if the metadata table exists.
func MetadataExists(ctx context.Context, pool *pgxpool.Pool) (bool, error) {
	var exists bool
	err := pool.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT FROM information_schema.tables
            WHERE table_name = $1
        )
    `, metadataTable).Scan(&exists)
	return exists, err
}
