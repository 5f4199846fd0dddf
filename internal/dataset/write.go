package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/scrape-quality/internal/types"
)

// WriteRecords serializes cleaned records as an indented top-level JSON
// array. Callers run the full cleaning pass before writing, so a fatal
// failure never leaves a partial output file behind.
func WriteRecords(path string, records []types.CleanedRecord, indent int) error {
	if records == nil {
		records = []types.CleanedRecord{}
	}
	data, err := json.MarshalIndent(records, "", strings.Repeat(" ", indent))
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	return writeFile(path, append(data, '\n'))
}

// WriteText writes a rendered report to path.
func WriteText(path string, text string) error {
	return writeFile(path, []byte(text))
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
