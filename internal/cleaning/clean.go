package cleaning

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jonathan/scrape-quality/internal/types"
)

// Stats summarizes one cleaning pass for verbose output.
type Stats struct {
	Records    int
	NullFields map[string]int // field name → records where it came out null
}

// CleanRecord maps one raw record to the fixed cleaned shape. Missing or
// unparseable inputs become nil fields; the function never fails. Cleaning
// is a pure function of the single record, so re-cleaning an already
// cleaned record is a no-op.
func CleanRecord(raw types.RawRecord) types.CleanedRecord {
	price, embedded := ParsePrice(raw["price"])

	currency := trimUpper(raw["currency"])
	if currency == nil {
		currency = embedded
	}

	return types.CleanedRecord{
		ID:        trimOnly(raw["id"]),
		Title:     cleanText(raw["title"]),
		Content:   cleanText(contentSource(raw)),
		Price:     price,
		Currency:  currency,
		URL:       trimOnly(raw["url"]),
		ScrapedAt: ParseDate(raw["scraped_at"]),
	}
}

// CleanDataset cleans every record, preserving input order and count.
func CleanDataset(records []types.RawRecord) ([]types.CleanedRecord, *Stats) {
	cleaned := make([]types.CleanedRecord, 0, len(records))
	stats := &Stats{Records: len(records), NullFields: make(map[string]int)}

	for _, raw := range records {
		rec := CleanRecord(raw)
		for _, field := range types.CleanedFields {
			if !rec.Present(field) {
				stats.NullFields[field]++
			}
		}
		cleaned = append(cleaned, rec)
	}
	return cleaned, stats
}

// contentSource prefers the "content" field, falling back to the legacy
// "description" key when content is absent or blank.
func contentSource(raw types.RawRecord) any {
	if s, ok := stringify(raw["content"]); ok && strings.TrimSpace(s) != "" {
		return raw["content"]
	}
	return raw["description"]
}

// stringify converts a scalar raw value to its string form. Nested
// structures and nulls report false so they degrade to nil fields.
func stringify(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case json.Number:
		return s.String(), true
	case bool:
		return strconv.FormatBool(s), true
	default:
		return "", false
	}
}

func cleanText(v any) *string {
	s, ok := stringify(v)
	if !ok {
		return nil
	}
	if t := NormalizeText(s); t != "" {
		return &t
	}
	return nil
}

func trimOnly(v any) *string {
	s, ok := stringify(v)
	if !ok {
		return nil
	}
	if t := strings.TrimSpace(s); t != "" {
		return &t
	}
	return nil
}

func trimUpper(v any) *string {
	s, ok := stringify(v)
	if !ok {
		return nil
	}
	if t := strings.ToUpper(strings.TrimSpace(s)); t != "" {
		return &t
	}
	return nil
}
