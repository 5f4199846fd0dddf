package dataset

import (
	"encoding/json"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/scrape-quality/internal/types"
)

// recordArraySchema is the structural contract for both pipeline inputs: a
// top-level array whose elements are all objects.
const recordArraySchema = `{
	"type": "array",
	"items": {"type": "object"}
}`

// LoadRaw reads a raw-record dataset from path. The top-level shape is
// checked before decoding; a non-array top level or a non-object element
// is a *StructureError and fatal for the run.
func LoadRaw(path string) ([]types.RawRecord, error) {
	data, err := readAndCheck(path)
	if err != nil {
		return nil, err
	}

	var records []types.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &StructureError{Message: "failed to decode record array", Cause: err}
	}
	return records, nil
}

// LoadCleaned reads a cleaned-record dataset from path, applying the same
// structural gate as LoadRaw. Unknown keys in a record are ignored;
// missing keys decode to null fields.
func LoadCleaned(path string) ([]types.CleanedRecord, error) {
	data, err := readAndCheck(path)
	if err != nil {
		return nil, err
	}

	var records []types.CleanedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &StructureError{Message: "failed to decode cleaned record array", Cause: err}
	}
	return records, nil
}

func readAndCheck(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Cause: err}
	}
	if err := checkShape(data); err != nil {
		return nil, err
	}
	return data, nil
}

// checkShape validates the raw bytes against the array-of-objects schema.
func checkShape(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(recordArraySchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return &StructureError{Message: "input is not valid JSON", Cause: err}
	}
	if !result.Valid() {
		msg := "expected a top-level array of record objects"
		if errs := result.Errors(); len(errs) > 0 {
			msg = errs[0].String()
		}
		return &StructureError{Message: msg}
	}
	return nil
}
