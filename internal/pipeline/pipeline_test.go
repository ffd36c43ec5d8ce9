package pipeline

import "testing"

// Five raw rows: one with a NULL rating count, one with a 3-vs-2 review
// list mismatch, and one duplicate product id pair. The model must come
// out with 3 products and the exploded reviews of the surviving rows.
func TestRunEndToEnd(t *testing.T) {
	raws := []RawRecord{
		{
			ProductID:          "P1",
			ProductName:        "USB Cable",
			Category:           "Electronics|Cables",
			DiscountedPrice:    "₹199",
			ActualPrice:        "₹499",
			DiscountPercentage: "60%",
			Rating:             "4.1",
			RatingCount:        "1,024",
			UserID:             "u1,u2",
			UserName:           "alice adams,bob brown",
			ReviewID:           "r1,r2",
			ReviewTitle:        "Great,Fine",
		},
		{
			// Broken row: rating count is null, dropped by the filter.
			ProductID:       "P2",
			ProductName:     "Charger",
			DiscountedPrice: "₹899",
			Rating:          "3.9",
			RatingCount:     "",
			UserID:          "u3",
			UserName:        "carol clark",
			ReviewID:        "r3",
			ReviewTitle:     "Meh",
		},
		{
			// Mismatched review lists (3 ids vs 2 names): contributes a
			// product but zero reviews.
			ProductID:   "P3",
			ProductName: "Headphones",
			Rating:      "4.5",
			RatingCount: "300",
			UserID:      "u4,u5,u6",
			UserName:    "dan,erin",
			ReviewID:    "r4,r5,r6",
			ReviewTitle: "a,b,c",
		},
		{
			// Duplicate product pair: this one loses (lower rating count).
			ProductID:   "P4",
			ProductName: "Monitor v1",
			Rating:      "4.0",
			RatingCount: "10",
			UserID:      "u7",
			UserName:    "frank field",
			ReviewID:    "r7",
			ReviewTitle: "Old",
		},
		{
			ProductID:   "P4",
			ProductName: "Monitor v2",
			Rating:      "4.3",
			RatingCount: "50",
			UserID:      "u8",
			UserName:    "grace gray",
			ReviewID:    "r8",
			ReviewTitle: "New",
		},
	}

	res := Run(raws)

	if res.Counts.Raw != 5 {
		t.Errorf("Counts.Raw = %d, want 5", res.Counts.Raw)
	}
	if res.Counts.AfterFilter != 4 {
		t.Errorf("Counts.AfterFilter = %d, want 4", res.Counts.AfterFilter)
	}
	if res.Counts.MismatchedRows != 1 {
		t.Errorf("Counts.MismatchedRows = %d, want 1", res.Counts.MismatchedRows)
	}

	if len(res.Products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(res.Products))
	}
	byID := make(map[string]Product)
	for _, p := range res.Products {
		byID[p.ProductID] = p
	}
	if _, ok := byID["P2"]; ok {
		t.Error("P2 should have been filtered out")
	}
	if p := byID["P4"]; p.ProductName != "Monitor v2" {
		t.Errorf("P4 survivor = %q, want the most-reviewed variant", p.ProductName)
	}
	if p := byID["P1"]; p.Category.Level(2) == nil || *p.Category.Level(2) != "Cables" {
		t.Error("P1 category level 2 should be 'Cables'")
	}

	// Valid exploded reviews: 2 from P1, 0 from P3 (mismatch), 1 each
	// from the P4 pair.
	if len(res.Reviews) != 4 {
		t.Fatalf("expected 4 reviews, got %d", len(res.Reviews))
	}
	for _, r := range res.Reviews {
		if r.ReviewID == "r3" {
			t.Error("r3 belongs to a filtered row and should not appear")
		}
	}
}

func TestRunEmptyInput(t *testing.T) {
	res := Run(nil)

	if len(res.Products) != 0 || len(res.Reviews) != 0 {
		t.Errorf("expected empty model, got %d products and %d reviews",
			len(res.Products), len(res.Reviews))
	}
}

func TestBuildProductsSkipsNullProductID(t *testing.T) {
	recs := []Record{
		{Raw: RawRecord{ProductID: "P1", ProductName: "kept"}, RatingCount: i(1)},
		{Raw: RawRecord{ProductID: "", ProductName: "dropped"}, RatingCount: i(2)},
	}

	got := buildProducts(recs)

	if len(got) != 1 {
		t.Fatalf("expected 1 product, got %d", len(got))
	}
	if got[0].ProductID != "P1" {
		t.Errorf("ProductID = %q, want P1", got[0].ProductID)
	}
}
