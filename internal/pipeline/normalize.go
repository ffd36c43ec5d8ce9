package pipeline

import (
	"strconv"
	"strings"
)

// Noise characters stripped per field before numeric parsing. The source
// export formats prices as "₹1,099", counts as "24,269" and percentages
// as "64%".
const (
	currencySymbol     = "₹"
	thousandsSeparator = ","
	percentSign        = "%"
)

// ratingSentinel is the one malformed rating token the source is known to
// contain. It is substituted with ratingDefault rather than nulled, so the
// row keeps a usable rating. Any other non-numeric rating parses to nil
// like the rest of the numeric fields.
const (
	ratingSentinel = "|"
	ratingDefault  = 4.0
)

// Normalize derives the typed numeric fields of rec from its raw text.
// Parse failures become nil, never errors.
func Normalize(rec *Record) {
	rec.DiscountedPrice = parseFloat(strip(rec.Raw.DiscountedPrice, currencySymbol, thousandsSeparator))
	rec.ActualPrice = parseFloat(strip(rec.Raw.ActualPrice, currencySymbol, thousandsSeparator))
	rec.DiscountPercentage = parseFloat(strip(rec.Raw.DiscountPercentage, percentSign))
	rec.RatingCount = parseInt(strip(rec.Raw.RatingCount, thousandsSeparator))
	rec.Rating = parseRating(rec.Raw.Rating)
}

// NormalizeAll runs Normalize over every record in place.
func NormalizeAll(recs []Record) {
	for i := range recs {
		Normalize(&recs[i])
	}
}

func parseRating(raw string) *float64 {
	if strings.TrimSpace(raw) == ratingSentinel {
		v := ratingDefault
		return &v
	}
	return parseFloat(raw)
}

func strip(s string, noise ...string) string {
	for _, n := range noise {
		s = strings.ReplaceAll(s, n, "")
	}
	return strings.TrimSpace(s)
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt(s string) *int64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
