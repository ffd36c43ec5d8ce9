package pipeline

// FilterBroken drops records whose cleaned rating count is nil. In the
// source data a missing rating count correlates strongly with the other
// numeric fields being missing too, so it serves as a blunt proxy for
// "this row is fundamentally broken". It is not a full validation pass.
func FilterBroken(recs []Record) []Record {
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		if r.RatingCount != nil {
			out = append(out, r)
		}
	}
	return out
}
