package pipeline

import "strings"

// categoryDelimiter separates hierarchy levels in the raw category string,
// e.g. "Computers&Accessories|Accessories&Peripherals|Cables&Accessories".
const categoryDelimiter = "|"

// SplitCategory decomposes a raw category string into at most five trimmed
// hierarchy levels, level 1 the most general. Segments past the fifth are
// dropped; missing positions stay nil. No validation is done beyond the
// positional truncation.
func SplitCategory(raw string) CategoryLevels {
	var levels CategoryLevels
	if strings.TrimSpace(raw) == "" {
		return levels
	}
	parts := strings.Split(raw, categoryDelimiter)
	for i := 0; i < len(levels) && i < len(parts); i++ {
		v := strings.TrimSpace(parts[i])
		levels[i] = &v
	}
	return levels
}

// SplitCategories runs SplitCategory over every record in place.
func SplitCategories(recs []Record) {
	for i := range recs {
		recs[i].Category = SplitCategory(recs[i].Raw.Category)
	}
}
