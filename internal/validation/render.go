package validation

import (
	"fmt"
	"strings"
)

// RenderReport formats the aggregate into the fixed human-readable layout:
// a summary header, per-field completeness, the most common violations,
// and per-record details. Output is deterministic for a given report.
func RenderReport(r *Report) string {
	var sb strings.Builder

	sb.WriteString("DATA QUALITY REPORT\n")
	sb.WriteString("===================\n\n")

	sb.WriteString("SUMMARY\n")
	sb.WriteString("-------\n")
	fmt.Fprintf(&sb, "Total records: %d\n", r.TotalRecords)
	fmt.Fprintf(&sb, "Valid records: %d\n", r.ValidRecords)
	fmt.Fprintf(&sb, "Invalid records: %d\n", r.InvalidRecords)
	fmt.Fprintf(&sb, "Total individual violations: %d\n\n", r.TotalViolations)

	sb.WriteString("COMPLETENESS (per field, % non-empty)\n")
	sb.WriteString("-------------------------------------\n")
	for _, fc := range r.Completeness {
		fmt.Fprintf(&sb, "- %s: %.1f%%\n", fc.Field, fc.Percent)
	}
	sb.WriteString("\n")

	sb.WriteString("COMMON VALIDATION FAILURES\n")
	sb.WriteString("--------------------------\n")
	if len(r.Frequencies) == 0 {
		sb.WriteString("No validation failures.\n")
	} else {
		for _, cc := range r.Frequencies {
			fmt.Fprintf(&sb, "- %s: %d occurrences\n", cc.Code, cc.Count)
		}
	}
	sb.WriteString("\n")

	sb.WriteString("DETAILS (per record)\n")
	sb.WriteString("--------------------\n")
	for i, result := range r.Results {
		id := result.ID
		if id == "" {
			id = fmt.Sprintf("#%d", i+1)
		}
		fmt.Fprintf(&sb, "Record %d (id=%s)\n", i+1, id)
		if len(result.Violations) == 0 {
			sb.WriteString("  OK\n")
		} else {
			for _, v := range result.Violations {
				fmt.Fprintf(&sb, "  - [%s] %s: %s\n", v.Field, v.Code, v.Details)
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
