// Package experience derives years of experience from work history.
package experience

import (
	"math"
	"strings"
	"time"

	"github.com/spigell/job-matcher/internal/textutil"
)

const DefaultEntryLevelYears = 0.5

// Entry is one position of a work history. Dates are kept as the raw strings
// found in the résumé record; EndDate may be empty or "present".
type Entry struct {
	Title       string `json:"title,omitempty" mapstructure:"title"`
	Description string `json:"description,omitempty" mapstructure:"description"`
	StartDate   string `json:"start_date,omitempty" mapstructure:"start_date"`
	EndDate     string `json:"end_date,omitempty" mapstructure:"end_date"`
}

func DefaultEntryLevelMarkers() []string {
	return []string{"internship", "intern", "project", "projects", "training", "trainee"}
}

type Options struct {
	// EntryLevelMarkers are matched as whole tokens against the history text.
	EntryLevelMarkers []string
	// EntryLevelYears is reported for a history that has markers but no measurable duration.
	EntryLevelYears float64
	// Now is the clock used for open-ended positions. Defaults to time.Now.
	Now func() time.Time
}

// Calculator is safe for concurrent use.
type Calculator struct {
	markers         map[string]struct{}
	entryLevelYears float64
	now             func() time.Time
}

func NewCalculator(opts Options) *Calculator {
	markers := opts.EntryLevelMarkers
	if markers == nil {
		markers = DefaultEntryLevelMarkers()
	}

	c := &Calculator{
		markers:         make(map[string]struct{}, len(markers)),
		entryLevelYears: opts.EntryLevelYears,
		now:             opts.Now,
	}
	for _, m := range markers {
		for _, token := range textutil.Tokenize(m) {
			c.markers[token] = struct{}{}
		}
	}
	if c.entryLevelYears <= 0 {
		c.entryLevelYears = DefaultEntryLevelYears
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// Years returns the total experience of history in years. Entries whose start
// date is missing or unparseable, or whose end date is unparseable, are skipped.
// An empty history falls back to declared, or 0 when nothing was declared.
func (c *Calculator) Years(history []Entry, declared *float64) float64 {
	if len(history) == 0 {
		if declared == nil || math.IsNaN(*declared) || *declared < 0 {
			return 0
		}
		return *declared
	}

	now := c.now()
	months := 0
	for _, entry := range history {
		start, ok := ParseDate(entry.StartDate)
		if !ok {
			continue
		}

		end := now
		if !isOpenEnded(entry.EndDate) {
			if end, ok = ParseDate(entry.EndDate); !ok {
				continue
			}
		}

		months += MonthsBetween(start, end)
	}

	if months == 0 && c.hasEntryLevelMarker(history) {
		return c.entryLevelYears
	}

	return float64(months) / 12
}

func (c *Calculator) hasEntryLevelMarker(history []Entry) bool {
	for _, token := range textutil.Tokenize(Text(history)) {
		if _, ok := c.markers[token]; ok {
			return true
		}
	}
	return false
}

// Score is 100 when the requirement is met or absent, otherwise the met share
// of the requirement rounded to an integer.
func Score(years, required float64) float64 {
	if required <= 0 || years >= required {
		return 100
	}
	if years <= 0 {
		return 0
	}
	return math.Max(0, math.Min(100, math.Round(100*years/required)))
}

// Text joins titles and descriptions of the history in order.
func Text(history []Entry) string {
	parts := make([]string, 0, len(history)*2)
	for _, entry := range history {
		if s := strings.TrimSpace(entry.Title); s != "" {
			parts = append(parts, s)
		}
		if s := strings.TrimSpace(entry.Description); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// MonthsBetween counts whole calendar months from start to end, never negative.
func MonthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func isOpenEnded(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "present", "current", "now":
		return true
	}
	return false
}
