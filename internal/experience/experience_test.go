package experience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock() time.Time {
	return time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
}

func TestCalculatorYears(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(Options{Now: fixedClock})
	three := 3.0
	negative := -2.0

	tests := []struct {
		name     string
		history  []Entry
		declared *float64
		expect   float64
	}{
		{
			name:    "closed range",
			history: []Entry{{StartDate: "2023-01", EndDate: "2024-07"}},
			expect:  1.5,
		},
		{
			name:    "open range uses the clock",
			history: []Entry{{StartDate: "2025-01-15", EndDate: "Present"}},
			expect:  1,
		},
		{
			name: "entries are summed and bad ones skipped",
			history: []Entry{
				{StartDate: "Jan 2020", EndDate: "Jan 2021"},
				{StartDate: "someday", EndDate: "2022-01"},
				{StartDate: "2021-06", EndDate: "never"},
				{StartDate: "06/2021", EndDate: "12/2021"},
			},
			expect: 1.5,
		},
		{
			name:    "day of month completes a month",
			history: []Entry{{StartDate: "2024-01-20", EndDate: "2024-03-19"}},
			expect:  1.0 / 12,
		},
		{
			name:    "negative span counts as zero",
			history: []Entry{{StartDate: "2024-05", EndDate: "2023-05"}},
			expect:  0,
		},
		{
			name:    "entry level marker",
			history: []Entry{{Title: "Summer Internship", StartDate: "2024-05", EndDate: "2024-05"}},
			expect:  DefaultEntryLevelYears,
		},
		{
			name:    "marker without dates",
			history: []Entry{{Description: "University capstone project"}},
			expect:  DefaultEntryLevelYears,
		},
		{
			name:    "no marker no duration",
			history: []Entry{{Title: "Cashier"}},
			expect:  0,
		},
		{
			name:     "history wins over declared",
			history:  []Entry{{StartDate: "2023-01", EndDate: "2024-01"}},
			declared: &three,
			expect:   1,
		},
		{
			name:     "declared fallback",
			declared: &three,
			expect:   3,
		},
		{
			name:     "negative declared",
			declared: &negative,
			expect:   0,
		},
		{
			name:   "nothing at all",
			expect: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expect, calc.Years(tt.history, tt.declared), 1e-9)
		})
	}
}

func TestCalculatorCustomMarkers(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(Options{EntryLevelMarkers: []string{"Bootcamp"}, EntryLevelYears: 0.25, Now: fixedClock})

	assert.InDelta(t, 0.25, calc.Years([]Entry{{Title: "Go bootcamp"}}, nil), 1e-9)
	assert.Zero(t, calc.Years([]Entry{{Title: "Internship"}}, nil))
}

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		years, required, expect float64
	}{
		{0, 0, 100},
		{0, -1, 100},
		{1.5, 2, 75},
		{5, 2, 100},
		{2, 2, 100},
		{1, 3, 33},
		{0, 2, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, Score(tt.years, tt.required), "years=%v required=%v", tt.years, tt.required)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"2024-03-01", "2024-03", "03/2024", "Mar 2024", "march 2024", "2024-03-01T10:00:00Z"} {
		got, ok := ParseDate(s)
		if assert.True(t, ok, s) {
			assert.Equal(t, 2024, got.Year(), s)
			assert.Equal(t, time.March, got.Month(), s)
		}
	}

	for _, s := range []string{"", "soon", "32/2024"} {
		_, ok := ParseDate(s)
		assert.False(t, ok, s)
	}
}
