package pipeline

// Dedupe collapses rows sharing a partition key to exactly one winner.
// The first row seen for a key becomes the incumbent; a later row replaces
// it only when better reports it strictly preferable. Ties keep the
// incumbent, so the outcome is deterministic for a given input order, and
// duplicate-free input passes through untouched in its original order.
func Dedupe[T any](rows []T, key func(T) string, better func(challenger, incumbent T) bool) []T {
	index := make(map[string]int, len(rows))
	out := make([]T, 0, len(rows))

	for _, row := range rows {
		k := key(row)
		if i, ok := index[k]; ok {
			if better(row, out[i]) {
				out[i] = row
			}
			continue
		}
		index[k] = len(out)
		out = append(out, row)
	}
	return out
}

// DedupeReviews keeps one row per review id. A duplicate review id is not a
// modeled scenario, so the ordering rule (lowest product id wins) is just a
// deterministic safety net.
func DedupeReviews(reviews []Review) []Review {
	return Dedupe(reviews,
		func(r Review) string { return r.ReviewID },
		func(challenger, incumbent Review) bool {
			return challenger.ProductID < incumbent.ProductID
		})
}

// DedupeProducts keeps one row per product id, preferring the variant with
// the highest rating count ("most reviewed wins"). Equal counts keep the
// earlier row.
func DedupeProducts(recs []Record) []Record {
	return Dedupe(recs,
		func(r Record) string { return r.Raw.ProductID },
		func(challenger, incumbent Record) bool {
			return ratingCountOf(challenger) > ratingCountOf(incumbent)
		})
}

func ratingCountOf(r Record) int64 {
	if r.RatingCount == nil {
		return -1
	}
	return *r.RatingCount
}
