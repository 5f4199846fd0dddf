// Package cleaning provides best-effort normalization of raw scraped records
// into the fixed cleaned-record shape. Parsing failures degrade to null
// fields; the package never rejects a record.
package cleaning

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

var (
	// whitespacePattern matches runs of whitespace, including newlines and tabs
	whitespacePattern = regexp.MustCompile(`\s+`)
	// tagPattern matches HTML tags; every tag becomes a space so text
	// never fuses across tag boundaries
	tagPattern = regexp.MustCompile(`<[^>]+>`)
)

// NormalizeText normalizes a textual field: NFKC Unicode normalization,
// HTML entity decoding and tag stripping, then whitespace collapsed to
// single spaces and trimmed. Already-clean text passes through unchanged.
func NormalizeText(raw string) string {
	t := norm.NFKC.String(raw)

	// Only pay for an HTML parse when markup or entities are plausible.
	// Tags are replaced with spaces first; the parse then handles entity
	// decoding and whatever markup the regex pass left behind.
	if strings.ContainsAny(t, "<&") {
		t = tagPattern.ReplaceAllString(t, " ")
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(t)); err == nil {
			t = doc.Text()
		}
	}

	t = whitespacePattern.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}
