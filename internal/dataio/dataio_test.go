package dataio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadRecords(t *testing.T) {
	path := writeFile(t, "categories.json", `[
		{"id": 1, "name": "Pan Dulce"},
		{"id": 2, "name": "Cakes"},
		{"id": 3, "name": "Drinks"}
	]`)

	records, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("Expected 3 records, got %d", len(records))
	}
	if records[0]["name"] != "Pan Dulce" {
		t.Errorf("Expected first record name 'Pan Dulce', got %v", records[0]["name"])
	}
}

func TestLoadRecordsEmptyArray(t *testing.T) {
	path := writeFile(t, "empty.json", "[]")

	records, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected 0 records, got %d", len(records))
	}
}

func TestLoadRecordsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	_, err := LoadRecords(path)
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected NotFoundError, got %T: %v", err, err)
	}
	if notFound.Path != path {
		t.Errorf("Expected error path '%s', got '%s'", path, notFound.Path)
	}
}

func TestLoadRecordsMalformedJSON(t *testing.T) {
	path := writeFile(t, "broken.json", `[{"id": 1,]`)

	_, err := LoadRecords(path)
	var malformed *MalformedDataError
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected MalformedDataError, got %T: %v", err, err)
	}
}

func TestLoadRecordsNonArrayTopLevel(t *testing.T) {
	path := writeFile(t, "object.json", `{"id": 1, "name": "Pan Dulce"}`)

	_, err := LoadRecords(path)
	var malformed *MalformedDataError
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected MalformedDataError for non-array top level, got %T: %v", err, err)
	}
}

func TestLoadRecordsNullTopLevel(t *testing.T) {
	// `null` decodes into a nil slice without a decoding error; it must
	// still be rejected rather than pass as a zero-record data set.
	path := writeFile(t, "null.json", `null`)

	_, err := LoadRecords(path)
	var malformed *MalformedDataError
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected MalformedDataError for null top level, got %T: %v", err, err)
	}
}
