// Package textutil holds the text helpers shared by the matching components.
package textutil

import (
	"strings"
	"unicode"
)

// Tokenize lower-cases text and returns the maximal runs of word characters
// (letters, digits and underscore) in their original order. Duplicates are kept.
func Tokenize(text string) []string {
	if text == "" {
		return []string{}
	}

	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
}

// IndexSequence returns the index of the first contiguous occurrence of needle
// in haystack, or -1.
func IndexSequence(haystack, needle []string) int {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return -1
	}

outer:
	for i := 0; i+len(needle) <= len(haystack); i++ {
		for j := range needle {
			if haystack[i+j] != needle[j] {
				continue outer
			}
		}
		return i
	}
	return -1
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
