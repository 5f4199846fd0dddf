package validation

import (
	"math"
	"sort"

	"github.com/jonathan/scrape-quality/internal/types"
)

// FieldCompleteness is the percentage of records where one field carries a
// non-null, non-empty value, rounded to one decimal place.
type FieldCompleteness struct {
	Field   string  `json:"field"`
	Percent float64 `json:"percent"`
}

// CodeCount is the number of records-times-rules a violation code fired.
type CodeCount struct {
	Code  types.Code `json:"code"`
	Count int        `json:"count"`
}

// RecordResult pairs one record's identifier with its violations.
type RecordResult struct {
	ID         string            `json:"id,omitempty"`
	Violations []types.Violation `json:"violations,omitempty"`
}

// Report is the aggregate outcome of validating one dataset.
type Report struct {
	TotalRecords    int                 `json:"total_records"`
	ValidRecords    int                 `json:"valid_records"`
	InvalidRecords  int                 `json:"invalid_records"`
	TotalViolations int                 `json:"total_violations"`
	Completeness    []FieldCompleteness `json:"completeness"`
	Frequencies     []CodeCount         `json:"frequencies"`
	Results         []RecordResult      `json:"results"`
}

// BuildReport validates every record once and aggregates totals,
// per-field completeness, and violation frequencies. Frequencies are
// sorted by descending count, ties broken by taxonomy order, and only
// non-zero codes appear. An empty dataset reports 0.0 completeness for
// every field.
func BuildReport(records []types.CleanedRecord, minContentLength int) *Report {
	report := &Report{
		TotalRecords: len(records),
		Results:      make([]RecordResult, 0, len(records)),
	}

	presentCounts := make(map[string]int, len(types.CleanedFields))
	violationCounts := make(map[types.Code]int)

	for i := range records {
		rec := &records[i]

		for _, field := range types.CleanedFields {
			if rec.Present(field) {
				presentCounts[field]++
			}
		}

		violations := ValidateRecord(rec, minContentLength)
		if len(violations) == 0 {
			report.ValidRecords++
		} else {
			report.InvalidRecords++
		}
		report.TotalViolations += len(violations)
		for _, v := range violations {
			violationCounts[v.Code]++
		}

		id := ""
		if rec.ID != nil {
			id = *rec.ID
		}
		report.Results = append(report.Results, RecordResult{ID: id, Violations: violations})
	}

	report.Completeness = make([]FieldCompleteness, 0, len(types.CleanedFields))
	for _, field := range types.CleanedFields {
		percent := 0.0
		if report.TotalRecords > 0 {
			percent = math.Round(1000*float64(presentCounts[field])/float64(report.TotalRecords)) / 10
		}
		report.Completeness = append(report.Completeness, FieldCompleteness{Field: field, Percent: percent})
	}

	// Collect in taxonomy order first so the stable sort preserves it on ties.
	for _, code := range types.Taxonomy {
		if n := violationCounts[code]; n > 0 {
			report.Frequencies = append(report.Frequencies, CodeCount{Code: code, Count: n})
		}
	}
	sort.SliceStable(report.Frequencies, func(i, j int) bool {
		return report.Frequencies[i].Count > report.Frequencies[j].Count
	})

	return report
}
