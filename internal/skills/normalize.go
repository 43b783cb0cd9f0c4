// Package skills resolves surface skill strings against required skills.
package skills

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical lower-case form of a skill string:
// NFKC-normalized, case-folded, trimmed, with inner whitespace collapsed.
func Normalize(skill string) string {
	if skill == "" {
		return ""
	}
	folded := cases.Fold().String(norm.NFKC.String(skill))
	return strings.Join(strings.Fields(folded), " ")
}

// ParseList normalizes a skill list. Every item may itself be a
// comma-separated list. Empty items are dropped and duplicates removed,
// keeping the first occurrence.
func ParseList(items ...string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			s := Normalize(part)
			if s == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
