package pipeline

import "testing"

func TestFilterBroken(t *testing.T) {
	recs := []Record{
		{Raw: RawRecord{ProductID: "A"}, RatingCount: i(10)},
		{Raw: RawRecord{ProductID: "B"}}, // nil rating count
		{Raw: RawRecord{ProductID: "C"}, RatingCount: i(0)},
		{Raw: RawRecord{ProductID: "D"}},
	}

	got := FilterBroken(recs)

	if len(got) != 2 {
		t.Fatalf("expected 2 surviving rows, got %d", len(got))
	}
	if got[0].Raw.ProductID != "A" || got[1].Raw.ProductID != "C" {
		t.Errorf("unexpected survivors: %s, %s", got[0].Raw.ProductID, got[1].Raw.ProductID)
	}
}

// Output count must exactly equal the count of input rows with a non-nil
// rating count.
func TestFilterBrokenCountIdentity(t *testing.T) {
	recs := []Record{
		{RatingCount: i(1)},
		{},
		{RatingCount: i(2)},
		{RatingCount: i(3)},
		{},
	}

	want := 0
	for _, r := range recs {
		if r.RatingCount != nil {
			want++
		}
	}

	if got := len(FilterBroken(recs)); got != want {
		t.Errorf("filtered count = %d, want %d", got, want)
	}
}

func TestFilterBrokenEmpty(t *testing.T) {
	if got := FilterBroken(nil); len(got) != 0 {
		t.Errorf("expected empty output, got %d rows", len(got))
	}
}
