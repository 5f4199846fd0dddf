// Package dataset reads and writes the JSON artifacts exchanged at the
// pipeline boundary and enforces the top-level input shape.
package dataset

import "fmt"

// StructureError represents a fatal input-shape failure: the top level is
// not an array, or an element is not an object. Per-field noise inside a
// record is never a StructureError; that is the cleaner's territory.
type StructureError struct {
	Message string
	Cause   error
}

func (e *StructureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("input shape error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("input shape error: %s", e.Message)
}

func (e *StructureError) Unwrap() error {
	return e.Cause
}

// FileReadError represents an error reading an input file.
type FileReadError struct {
	Path  string
	Cause error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}
