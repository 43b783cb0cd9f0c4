package textutil

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLToText strips markup from an HTML fragment and collapses whitespace.
// Plain text passes through unchanged apart from whitespace collapsing.
func HTMLToText(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	// Block elements run together in Text(), so pad them first.
	doc.Find("p, li, br, div, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})

	return strings.Join(strings.Fields(doc.Text()), " "), nil
}
