package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testConfig() *Config {
	return &Config{
		DataDir: "data",
		EnvFile: ".env",
		Database: Database{
			URLEnv: "SEMILLA_TEST_URL",
			KeyEnv: "SEMILLA_TEST_KEY",
		},
	}
}

// writeDataFiles creates the fixed data layout under a temp base path.
func writeDataFiles(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	dataDir := filepath.Join(base, "data")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		t.Fatalf("Failed to create data dir: %v", err)
	}
	for _, name := range []string{"categories.json", "menu_items.json"} {
		if err := os.WriteFile(filepath.Join(dataDir, name), []byte("[]"), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return base
}

func TestEnvironmentMissingURL(t *testing.T) {
	t.Setenv("SEMILLA_TEST_URL", "")
	t.Setenv("SEMILLA_TEST_KEY", "service-key")

	loader := NewLoader(t.TempDir(), testConfig())
	_, err := loader.Environment()
	if err == nil {
		t.Fatal("Expected error for missing URL variable, got nil")
	}

	var missing *MissingConfigurationError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingConfigurationError, got %T", err)
	}
	if missing.Variable != "SEMILLA_TEST_URL" {
		t.Errorf("Expected error to name SEMILLA_TEST_URL, got '%s'", missing.Variable)
	}
}

func TestEnvironmentMissingKey(t *testing.T) {
	t.Setenv("SEMILLA_TEST_URL", "postgres://example.supabase.co/postgres")
	t.Setenv("SEMILLA_TEST_KEY", "")

	loader := NewLoader(t.TempDir(), testConfig())
	_, err := loader.Environment()

	var missing *MissingConfigurationError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingConfigurationError, got %v", err)
	}
	if missing.Variable != "SEMILLA_TEST_KEY" {
		t.Errorf("Expected error to name SEMILLA_TEST_KEY, got '%s'", missing.Variable)
	}
}

func TestEnvironmentCachesUntilCleared(t *testing.T) {
	t.Setenv("SEMILLA_TEST_URL", "postgres://first.example/postgres")
	t.Setenv("SEMILLA_TEST_KEY", "first-key")

	loader := NewLoader(t.TempDir(), testConfig())
	creds, err := loader.Environment()
	if err != nil {
		t.Fatalf("Environment failed: %v", err)
	}
	if creds.URL != "postgres://first.example/postgres" {
		t.Errorf("Unexpected URL: %s", creds.URL)
	}

	t.Setenv("SEMILLA_TEST_URL", "postgres://second.example/postgres")

	cached, err := loader.Environment()
	if err != nil {
		t.Fatalf("Environment failed: %v", err)
	}
	if cached.URL != "postgres://first.example/postgres" {
		t.Errorf("Expected cached URL, got '%s'", cached.URL)
	}

	loader.ClearCache()
	reloaded, err := loader.Environment()
	if err != nil {
		t.Fatalf("Environment failed after ClearCache: %v", err)
	}
	if reloaded.URL != "postgres://second.example/postgres" {
		t.Errorf("Expected reloaded URL after ClearCache, got '%s'", reloaded.URL)
	}
}

func TestDataFilePaths(t *testing.T) {
	loader := NewLoader("/srv/bakery", testConfig())
	paths := loader.DataFilePaths()

	want := map[string]string{
		CategoriesFile: filepath.Join("/srv/bakery", "data", "categories.json"),
		MenuItemsFile:  filepath.Join("/srv/bakery", "data", "menu_items.json"),
		EnvFile:        filepath.Join("/srv/bakery", ".env"),
	}
	for name, path := range want {
		if paths[name] != path {
			t.Errorf("Expected %s path '%s', got '%s'", name, path, paths[name])
		}
	}
}

func TestValidatePasses(t *testing.T) {
	t.Setenv("SEMILLA_TEST_URL", "postgres://example.supabase.co/postgres")
	t.Setenv("SEMILLA_TEST_KEY", "service-key")

	base := writeDataFiles(t)
	loader := NewLoader(base, testConfig())

	// No .env file exists under base; its absence must not fail validation.
	if !loader.Validate() {
		t.Error("Expected Validate to pass with credentials and data files present")
	}
}

func TestValidateFailsOnMissingCredential(t *testing.T) {
	t.Setenv("SEMILLA_TEST_URL", "")
	t.Setenv("SEMILLA_TEST_KEY", "")

	base := writeDataFiles(t)
	loader := NewLoader(base, testConfig())

	if loader.Validate() {
		t.Error("Expected Validate to fail without credentials")
	}
}

func TestValidateFailsOnMissingDataFile(t *testing.T) {
	t.Setenv("SEMILLA_TEST_URL", "postgres://example.supabase.co/postgres")
	t.Setenv("SEMILLA_TEST_KEY", "service-key")

	base := writeDataFiles(t)
	if err := os.Remove(filepath.Join(base, "data", "menu_items.json")); err != nil {
		t.Fatalf("Failed to remove data file: %v", err)
	}

	loader := NewLoader(base, testConfig())
	if loader.Validate() {
		t.Error("Expected Validate to fail with a required data file missing")
	}
}

func TestValidateWithNoRequiredFiles(t *testing.T) {
	t.Setenv("SEMILLA_TEST_URL", "postgres://example.supabase.co/postgres")
	t.Setenv("SEMILLA_TEST_KEY", "service-key")

	// Empty base dir: nothing on disk, but nothing is required either.
	loader := NewLoader(t.TempDir(), testConfig())
	loader.SetRequiredFiles()

	if !loader.Validate() {
		t.Error("Expected Validate to pass when no files are required")
	}
}
