package types

// Code identifies a validation rule failure.
type Code string

// The fixed violation taxonomy, in evaluation order. ValidateRecord emits
// codes in this order and report tie-breaking follows it.
const (
	MissingTitle    Code = "MISSING_TITLE"
	MissingContent  Code = "MISSING_CONTENT"
	ContentTooShort Code = "CONTENT_TOO_SHORT"
	MissingURL      Code = "MISSING_URL"
	InvalidURL      Code = "INVALID_URL"
	InvalidPrice    Code = "INVALID_PRICE"
	InvalidDate     Code = "INVALID_DATE"
)

// Taxonomy lists every violation code in taxonomy order.
var Taxonomy = []Code{
	MissingTitle,
	MissingContent,
	ContentTooShort,
	MissingURL,
	InvalidURL,
	InvalidPrice,
	InvalidDate,
}

// Violation represents a single validation failure on one record.
type Violation struct {
	Code    Code   `json:"code"`
	Field   string `json:"field"`
	Details string `json:"details"`
}
