// Package validation classifies cleaned records against a fixed rule set
// and aggregates the results into a quality report.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonathan/scrape-quality/internal/types"
)

// DefaultMinContentLength is the minimum trimmed content length before
// CONTENT_TOO_SHORT fires.
const DefaultMinContentLength = 30

// isoShapePattern matches the YYYY-MM-DD shape; calendar validity is
// checked separately via time.Parse.
var isoShapePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateRecord evaluates every rule against one cleaned record and
// returns the violations in taxonomy order. Rules are independent: a
// record can carry several codes, and a nil price or date is not itself a
// violation — only a present-but-malformed value is flagged.
func ValidateRecord(rec *types.CleanedRecord, minContentLength int) []types.Violation {
	if minContentLength <= 0 {
		minContentLength = DefaultMinContentLength
	}

	var violations []types.Violation

	if !rec.Present("title") {
		violations = append(violations, types.Violation{
			Code:    types.MissingTitle,
			Field:   "title",
			Details: "Required field 'title' is missing or empty.",
		})
	}

	if !rec.Present("content") {
		violations = append(violations, types.Violation{
			Code:    types.MissingContent,
			Field:   "content",
			Details: "Required field 'content' is missing or empty.",
		})
	} else if n := utf8.RuneCountInString(strings.TrimSpace(*rec.Content)); n < minContentLength {
		violations = append(violations, types.Violation{
			Code:    types.ContentTooShort,
			Field:   "content",
			Details: fmt.Sprintf("Content has %d characters, minimum is %d.", n, minContentLength),
		})
	}

	if !rec.Present("url") {
		violations = append(violations, types.Violation{
			Code:    types.MissingURL,
			Field:   "url",
			Details: "Required field 'url' is missing or empty.",
		})
	} else if url := strings.TrimSpace(*rec.URL); !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		violations = append(violations, types.Violation{
			Code:    types.InvalidURL,
			Field:   "url",
			Details: "URL should start with http:// or https://.",
		})
	}

	if rec.Price != nil && *rec.Price < 0 {
		violations = append(violations, types.Violation{
			Code:    types.InvalidPrice,
			Field:   "price",
			Details: fmt.Sprintf("Price %.2f is negative.", *rec.Price),
		})
	}

	if rec.ScrapedAt != nil && !isISODate(*rec.ScrapedAt) {
		violations = append(violations, types.Violation{
			Code:    types.InvalidDate,
			Field:   "scraped_at",
			Details: "scraped_at should be an ISO-8601 date (YYYY-MM-DD).",
		})
	}

	return violations
}

func isISODate(s string) bool {
	if !isoShapePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
