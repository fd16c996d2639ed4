package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// MissingConfigurationError reports a required environment variable that is
// absent.
type MissingConfigurationError struct {
	Variable string
}

func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("required environment variable %s not found", e.Variable)
}

// Credentials for the remote datastore.
type Credentials struct {
	URL string
	Key string
}

// Logical names for the files the Loader resolves.
const (
	CategoriesFile = "categories"
	MenuItemsFile  = "menu_items"
	EnvFile        = "env"
)

// Loader resolves credentials and data-file locations. Results are cached
// for the lifetime of a run; ClearCache forces a reload.
type Loader struct {
	basePath string
	cfg      *Config
	required []string

	creds *Credentials
	paths map[string]string
}

func NewLoader(basePath string, cfg *Config) *Loader {
	return &Loader{
		basePath: basePath,
		cfg:      cfg,
		required: []string{CategoriesFile, MenuItemsFile},
	}
}

// SetRequiredFiles overrides which data files Validate demands on disk.
// The compiled-in bread locations run requires none. The env file is never
// required; credentials may come straight from the process environment.
func (l *Loader) SetRequiredFiles(names ...string) {
	l.required = names
}

// Environment reads the two required credential variables, failing with a
// MissingConfigurationError that names the absent one.
func (l *Loader) Environment() (Credentials, error) {
	if l.creds != nil {
		return *l.creds, nil
	}

	url := os.Getenv(l.cfg.Database.URLEnv)
	if url == "" {
		return Credentials{}, &MissingConfigurationError{Variable: l.cfg.Database.URLEnv}
	}
	key := os.Getenv(l.cfg.Database.KeyEnv)
	if key == "" {
		return Credentials{}, &MissingConfigurationError{Variable: l.cfg.Database.KeyEnv}
	}

	l.creds = &Credentials{URL: url, Key: key}
	return *l.creds, nil
}

// DataFilePaths builds the fixed relative layout under the base path. It
// does not touch the filesystem.
func (l *Loader) DataFilePaths() map[string]string {
	if l.paths != nil {
		return l.paths
	}

	dataDir := filepath.Join(l.basePath, l.cfg.DataDir)
	l.paths = map[string]string{
		CategoriesFile: filepath.Join(dataDir, "categories.json"),
		MenuItemsFile:  filepath.Join(dataDir, "menu_items.json"),
		EnvFile:        filepath.Join(l.basePath, l.cfg.EnvFile),
	}
	return l.paths
}

// Validate checks that the credentials are present and that every required
// data file exists on disk. Failures are caught and reported here; the
// result is a plain pass/fail.
func (l *Loader) Validate() bool {
	if _, err := l.Environment(); err != nil {
		color.Red("❌ Configuration validation failed: %v", err)
		return false
	}

	paths := l.DataFilePaths()
	for _, name := range l.required {
		if _, err := os.Stat(paths[name]); err != nil {
			color.Red("❌ Configuration validation failed: required file not found: %s", paths[name])
			return false
		}
	}
	return true
}

// ClearCache drops the cached credentials and paths so the next call
// reloads them.
func (l *Loader) ClearCache() {
	l.creds = nil
	l.paths = nil
}
