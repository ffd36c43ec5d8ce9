package pipeline

import "testing"

func TestNormalizePrices(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *float64
	}{
		{name: "currency and separator", raw: "₹1,099", want: f(1099)},
		{name: "currency only", raw: "₹399", want: f(399)},
		{name: "decimal", raw: "₹1,499.50", want: f(1499.5)},
		{name: "already clean", raw: "1099", want: f(1099)},
		{name: "empty", raw: "", want: nil},
		{name: "garbage", raw: "n/a", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{Raw: RawRecord{DiscountedPrice: tt.raw, ActualPrice: tt.raw}}
			Normalize(&rec)
			checkFloat(t, "DiscountedPrice", rec.DiscountedPrice, tt.want)
			checkFloat(t, "ActualPrice", rec.ActualPrice, tt.want)
		})
	}
}

func TestNormalizeDiscountPercentage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *float64
	}{
		{name: "percent sign", raw: "64%", want: f(64)},
		{name: "clean", raw: "64", want: f(64)},
		{name: "empty", raw: "", want: nil},
		{name: "garbage", raw: "many%", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{Raw: RawRecord{DiscountPercentage: tt.raw}}
			Normalize(&rec)
			checkFloat(t, "DiscountPercentage", rec.DiscountPercentage, tt.want)
		})
	}
}

func TestNormalizeRatingCount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *int64
	}{
		{name: "separator", raw: "24,269", want: i(24269)},
		{name: "clean", raw: "992", want: i(992)},
		{name: "empty", raw: "", want: nil},
		{name: "garbage", raw: "lots", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{Raw: RawRecord{RatingCount: tt.raw}}
			Normalize(&rec)
			if (rec.RatingCount == nil) != (tt.want == nil) {
				t.Fatalf("RatingCount nil mismatch: got %v, want %v", rec.RatingCount, tt.want)
			}
			if tt.want != nil && *rec.RatingCount != *tt.want {
				t.Errorf("RatingCount = %d, want %d", *rec.RatingCount, *tt.want)
			}
		})
	}
}

func TestNormalizeRating(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *float64
	}{
		{name: "numeric", raw: "4.2", want: f(4.2)},
		{name: "sentinel replaced with default", raw: "|", want: f(4.0)},
		{name: "padded sentinel", raw: " | ", want: f(4.0)},
		// Non-sentinel garbage is nulled like every other numeric field.
		{name: "other garbage", raw: "five stars", want: nil},
		{name: "empty", raw: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{Raw: RawRecord{Rating: tt.raw}}
			Normalize(&rec)
			checkFloat(t, "Rating", rec.Rating, tt.want)
		})
	}
}

// Stripping noise then parsing must equal parsing the noise-free string
// directly.
func TestStripIdempotence(t *testing.T) {
	dirty := Record{Raw: RawRecord{
		DiscountedPrice:    "₹1,099",
		ActualPrice:        "₹2,499",
		DiscountPercentage: "56%",
		RatingCount:        "24,269",
	}}
	clean := Record{Raw: RawRecord{
		DiscountedPrice:    "1099",
		ActualPrice:        "2499",
		DiscountPercentage: "56",
		RatingCount:        "24269",
	}}
	Normalize(&dirty)
	Normalize(&clean)

	checkFloat(t, "DiscountedPrice", dirty.DiscountedPrice, clean.DiscountedPrice)
	checkFloat(t, "ActualPrice", dirty.ActualPrice, clean.ActualPrice)
	checkFloat(t, "DiscountPercentage", dirty.DiscountPercentage, clean.DiscountPercentage)
	if *dirty.RatingCount != *clean.RatingCount {
		t.Errorf("RatingCount = %d, want %d", *dirty.RatingCount, *clean.RatingCount)
	}
}

func f(v float64) *float64 { return &v }
func i(v int64) *int64     { return &v }

func checkFloat(t *testing.T, field string, got, want *float64) {
	t.Helper()
	if (got == nil) != (want == nil) {
		t.Fatalf("%s nil mismatch: got %v, want %v", field, got, want)
	}
	if want != nil && *got != *want {
		t.Errorf("%s = %v, want %v", field, *got, *want)
	}
}
