// Package dataio reads JSON seed files from disk.
package dataio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lapanaderia/semilla/internal/database"
)

// NotFoundError reports a seed file that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("JSON file not found: %s", e.Path)
}

// MalformedDataError reports a seed file whose content is not a JSON array
// of records.
type MalformedDataError struct {
	Path string
	Err  error
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("invalid JSON in %s: %v", e.Path, e.Err)
}

func (e *MalformedDataError) Unwrap() error { return e.Err }

// LoadRecords parses the file at path as a list of records. The records are
// returned exactly as decoded; interpreting their fields is the caller's
// job. The existence check runs first so a missing file never surfaces as a
// parse error.
func LoadRecords(path string) ([]database.Record, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []database.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &MalformedDataError{Path: path, Err: err}
	}
	// A JSON null decodes into a nil slice without error; only a real
	// array yields records (an empty array decodes to a non-nil slice).
	if records == nil {
		return nil, &MalformedDataError{Path: path, Err: fmt.Errorf("top-level value is not an array")}
	}
	return records, nil
}
