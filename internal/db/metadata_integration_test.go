//go:build integration
// +build integration

// Integration tests for run metadata persistence.
// Run with: go test -tags=integration ./internal/db/...

package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopmetrics/reviewpipe/internal/db"
	"github.com/shopmetrics/reviewpipe/internal/pipeline"
	"github.com/shopmetrics/reviewpipe/internal/testutil"
)

func TestSaveRunMetadata(t *testing.T) {
	baseConnStr := testutil.SkipIfNoPostgres(t)

	testConnStr := testutil.CreateTestDB(t, baseConnStr, "metadata")
	dbName := testutil.GetDBNameFromConnStr(testConnStr)

	cleanup := testutil.NewTestCleanup(t, baseConnStr, dbName)
	t.Cleanup(cleanup.Cleanup)

	pool := testutil.ConnectTestDB(t, testConnStr)
	cleanup.SetPool(pool)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	exists, err := db.MetadataExists(ctx, pool)
	if err != nil {
		t.Fatalf("MetadataExists failed: %v", err)
	}
	if exists {
		t.Fatal("metadata table should not exist yet")
	}

	counts := pipeline.Counts{
		Raw:            1465,
		AfterFilter:    1463,
		Products:       1351,
		Reviews:        1194,
		MismatchedRows: 2,
	}
	if err := db.SaveRunMetadata(ctx, pool, "data/amazon.csv", counts); err != nil {
		t.Fatalf("SaveRunMetadata failed: %v", err)
	}

	got, err := db.GetMetadataValue(ctx, pool, "raw_rows")
	if err != nil {
		t.Fatalf("GetMetadataValue failed: %v", err)
	}
	if got != "1465" {
		t.Errorf("raw_rows = %q, want %q", got, "1465")
	}

	all, err := db.GetAllMetadata(ctx, pool)
	if err != nil {
		t.Fatalf("GetAllMetadata failed: %v", err)
	}
	if all["source_path"] != "data/amazon.csv" {
		t.Errorf("source_path = %q", all["source_path"])
	}
	if all["dim_product_rows"] != "1351" {
		t.Errorf("dim_product_rows = %q", all["dim_product_rows"])
	}

	// Saving again overwrites in place.
	counts.Raw = 1500
	if err := db.SaveRunMetadata(ctx, pool, "data/amazon.csv", counts); err != nil {
		t.Fatalf("second SaveRunMetadata failed: %v", err)
	}
	got, err = db.GetMetadataValue(ctx, pool, "raw_rows")
	if err != nil {
		t.Fatalf("GetMetadataValue failed: %v", err)
	}
	if got != "1500" {
		t.Errorf("raw_rows after rewrite = %q, want %q", got, "1500")
	}

	if err := db.DropMetadata(ctx, pool); err != nil {
		t.Fatalf("DropMetadata failed: %v", err)
	}
}
