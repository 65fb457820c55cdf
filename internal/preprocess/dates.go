package preprocess

import (
	"strings"
	"time"
)

// Accepted source date layouts, tried in order. The Play scraper emits
// RFC3339 timestamps; older exports carry plain dates in several shapes.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006", // MM/DD/YYYY
	"January 2, 2006",
	"2 January 2006",
}

// normalizeDate parses a loosely formatted date into YYYY-MM-DD.
func normalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}
