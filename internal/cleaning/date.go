package cleaning

import (
	"regexp"
	"strings"
	"time"
)

// isoDate is the output layout for all parsed dates.
const isoDate = "2006-01-02"

// dateLayouts lists the accepted input formats in priority order; the
// first layout that parses wins. Month-first slash dates take priority
// over day-first dash dates, so "03/04/2021" reads as March 4.
var dateLayouts = []string{
	isoDate,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
}

// shapePattern rejects inputs that cannot be a date before trying layouts.
var shapePattern = regexp.MustCompile(`^\d{1,4}[-/]\d{1,2}[-/]\d{1,4}([T ].*)?$`)

// ParseDate coerces a raw value to an ISO-8601 date string (YYYY-MM-DD).
// Time-of-day and zone information is discarded; no timezone conversion is
// performed. Unrecognized formats and invalid calendar dates yield nil.
func ParseDate(raw any) *string {
	s, ok := raw.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" || !shapePattern.MatchString(s) {
		return nil
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		out := t.Format(isoDate)
		return &out
	}
	return nil
}
