// Package types provides type definitions for structured data used throughout the scrape-quality system.
package types

import "strings"

// RawRecord represents a single scraped record as decoded from JSON.
// Field names and value types are unvalidated; values may be strings,
// numbers, null, or nested structures.
type RawRecord map[string]any

// CleanedRecord is the fixed seven-field shape produced by the cleaning
// stage. Nil pointers serialize as explicit JSON nulls; every marshaled
// record carries exactly these seven keys.
type CleanedRecord struct {
	ID        *string  `json:"id"`
	Title     *string  `json:"title"`
	Content   *string  `json:"content"`
	Price     *float64 `json:"price"`
	Currency  *string  `json:"currency"`
	URL       *string  `json:"url"`
	ScrapedAt *string  `json:"scraped_at"`
}

// CleanedFields lists the cleaned-record field names in canonical order.
// Completeness reporting iterates this list so output ordering is stable.
var CleanedFields = []string{"id", "title", "content", "price", "currency", "url", "scraped_at"}

// Present reports whether the named field carries a usable value:
// non-nil, and for string fields non-empty after trimming.
func (r *CleanedRecord) Present(field string) bool {
	switch field {
	case "id":
		return hasText(r.ID)
	case "title":
		return hasText(r.Title)
	case "content":
		return hasText(r.Content)
	case "price":
		return r.Price != nil
	case "currency":
		return hasText(r.Currency)
	case "url":
		return hasText(r.URL)
	case "scraped_at":
		return hasText(r.ScrapedAt)
	default:
		return false
	}
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// Str returns a pointer to s, for building records with literal values.
func Str(s string) *string { return &s }

// Float returns a pointer to f, for building records with literal values.
func Float(f float64) *float64 { return &f }
