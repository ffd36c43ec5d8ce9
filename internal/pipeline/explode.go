package pipeline

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// listDelimiter separates the embedded review lists: one raw row carries up
// to eight reviews as comma-joined parallel arrays in the user id, user
// name, review id and review title fields.
const listDelimiter = ","

// ExplodeResult holds the exploded reviews plus the data-quality counters
// the exploder accumulates.
type ExplodeResult struct {
	// Reviews is one row per (record, index) pair, pre-dedup.
	Reviews []Review

	// MismatchedRows counts input records dropped because their four
	// parallel lists had unequal lengths.
	MismatchedRows int

	// EmptyRows counts input records with no review data at all.
	EmptyRows int
}

// ExplodeReviews expands each record's comma-joined parallel review lists
// into one Review per index. The alignment policy is all-or-nothing: if the
// four lists differ in length the record contributes zero reviews. No
// partial recovery (such as truncating to the shortest list) is attempted;
// the drop is counted so the caller can report it.
func ExplodeReviews(recs []Record) ExplodeResult {
	title := cases.Title(language.English)
	var res ExplodeResult

	for _, rec := range recs {
		if rec.Raw.ReviewID == "" {
			res.EmptyRows++
			continue
		}

		ids := strings.Split(rec.Raw.UserID, listDelimiter)
		names := strings.Split(rec.Raw.UserName, listDelimiter)
		reviewIDs := strings.Split(rec.Raw.ReviewID, listDelimiter)
		titles := strings.Split(rec.Raw.ReviewTitle, listDelimiter)

		if len(ids) != len(names) || len(ids) != len(reviewIDs) || len(ids) != len(titles) {
			res.MismatchedRows++
			continue
		}

		for i := range reviewIDs {
			res.Reviews = append(res.Reviews, Review{
				ReviewID:    strings.TrimSpace(reviewIDs[i]),
				ReviewTitle: strings.TrimSpace(titles[i]),
				ProductID:   rec.Raw.ProductID,
				UserID:      strings.TrimSpace(ids[i]),
				UserName:    title.String(strings.TrimSpace(names[i])),
			})
		}
	}

	return res
}
