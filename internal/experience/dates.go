package experience

import (
	"strings"
	"time"
)

var layouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01",
	"01/2006",
	"Jan 2006",
	"January 2006",
	"2006",
}

// ParseDate accepts the date shapes found in parsed résumés.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
