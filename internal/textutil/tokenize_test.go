package textutil

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:   "empty input",
			input:  "",
			expect: []string{},
		},
		{
			name:   "punctuation only",
			input:  " ,.;!? ",
			expect: []string{},
		},
		{
			name:   "lower-cases and splits on punctuation",
			input:  "Senior Node.js Developer, REST APIs",
			expect: []string{"senior", "node", "js", "developer", "rest", "apis"},
		},
		{
			name:   "keeps digits underscores and duplicates",
			input:  "go_lang go 1.22 go",
			expect: []string{"go_lang", "go", "1", "22", "go"},
		},
		{
			name:   "unicode letters",
			input:  "Résumé: C++ développeur",
			expect: []string{"résumé", "c", "développeur"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Tokenize(tt.input); !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestIndexSequence(t *testing.T) {
	t.Parallel()

	haystack := Tokenize("We build REST API services in Node.js")

	tests := []struct {
		name   string
		needle []string
		expect int
	}{
		{name: "single token", needle: []string{"services"}, expect: 4},
		{name: "multi token", needle: []string{"rest", "api"}, expect: 2},
		{name: "dotted skill", needle: Tokenize("node.js"), expect: 6},
		{name: "out of order", needle: []string{"api", "rest"}, expect: -1},
		{name: "empty needle", needle: nil, expect: -1},
		{name: "longer than haystack", needle: Tokenize("a b c d e f g h i"), expect: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IndexSequence(haystack, tt.needle); got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}
