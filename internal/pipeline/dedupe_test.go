package pipeline

import "testing"

func TestDedupeProductsKeepsMostReviewed(t *testing.T) {
	recs := []Record{
		{Raw: RawRecord{ProductID: "P1", ProductName: "first"}, RatingCount: i(10)},
		{Raw: RawRecord{ProductID: "P1", ProductName: "second"}, RatingCount: i(50)},
	}

	got := DedupeProducts(recs)

	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	if *got[0].RatingCount != 50 {
		t.Errorf("surviving RatingCount = %d, want 50", *got[0].RatingCount)
	}
	if got[0].Raw.ProductName != "second" {
		t.Errorf("surviving row = %q, want %q", got[0].Raw.ProductName, "second")
	}
}

func TestDedupeProductsTieKeepsFirst(t *testing.T) {
	recs := []Record{
		{Raw: RawRecord{ProductID: "P1", ProductName: "first"}, RatingCount: i(10)},
		{Raw: RawRecord{ProductID: "P1", ProductName: "second"}, RatingCount: i(10)},
	}

	got := DedupeProducts(recs)

	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	if got[0].Raw.ProductName != "first" {
		t.Errorf("tie should keep the earlier row, got %q", got[0].Raw.ProductName)
	}
}

func TestDedupeReviewsAscendingProductID(t *testing.T) {
	reviews := []Review{
		{ReviewID: "r1", ProductID: "B"},
		{ReviewID: "r1", ProductID: "A"},
	}

	got := DedupeReviews(reviews)

	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	if got[0].ProductID != "A" {
		t.Errorf("surviving ProductID = %q, want %q", got[0].ProductID, "A")
	}
}

// Duplicate-free input must come back as an identity copy, original order
// included.
func TestDedupeIdentityOnUniqueKeys(t *testing.T) {
	reviews := []Review{
		{ReviewID: "r3", ProductID: "C"},
		{ReviewID: "r1", ProductID: "A"},
		{ReviewID: "r2", ProductID: "B"},
	}

	got := DedupeReviews(reviews)

	if len(got) != len(reviews) {
		t.Fatalf("expected %d rows, got %d", len(reviews), len(got))
	}
	for idx := range reviews {
		if got[idx] != reviews[idx] {
			t.Errorf("row %d = %+v, want %+v", idx, got[idx], reviews[idx])
		}
	}
}

func TestDedupeOutputNeverLarger(t *testing.T) {
	recs := []Record{
		{Raw: RawRecord{ProductID: "P1"}, RatingCount: i(1)},
		{Raw: RawRecord{ProductID: "P2"}, RatingCount: i(2)},
		{Raw: RawRecord{ProductID: "P1"}, RatingCount: i(3)},
		{Raw: RawRecord{ProductID: "P3"}, RatingCount: i(4)},
		{Raw: RawRecord{ProductID: "P2"}, RatingCount: i(5)},
	}

	got := DedupeProducts(recs)

	if len(got) > len(recs) {
		t.Errorf("output (%d) larger than input (%d)", len(got), len(recs))
	}
	if len(got) != 3 {
		t.Errorf("expected 3 distinct products, got %d", len(got))
	}

	seen := make(map[string]bool)
	for _, r := range got {
		if seen[r.Raw.ProductID] {
			t.Errorf("duplicate key %q survived dedup", r.Raw.ProductID)
		}
		seen[r.Raw.ProductID] = true
	}
}
