// Package file loads the service configuration from a TOML file, with
// environment overrides for deployment-provided values.
package file

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full service configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Search SearchConfig `toml:"search"`
	Sheet  SheetConfig  `toml:"sheet"`
	Export ExportConfig `toml:"export"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":3001".
	Addr string `toml:"addr"`

	// BasicAuthUsername and BasicAuthPassword guard the API.
	// Empty credentials disable the auth middleware.
	BasicAuthUsername string `toml:"basic_auth_username"`
	BasicAuthPassword string `toml:"basic_auth_password"`
}

// SearchConfig configures the transcript search index.
type SearchConfig struct {
	// Endpoint is the search domain URL.
	Endpoint string `toml:"endpoint"`

	// Region is the AWS region of the domain.
	Region string `toml:"region"`

	// DefaultNamespace is the partition used when a request names none.
	DefaultNamespace string `toml:"default_namespace"`

	// Limit bounds the search result set size.
	Limit int `toml:"limit"`
}

// SheetConfig configures the spreadsheet store.
type SheetConfig struct {
	// SpreadsheetID is the target spreadsheet.
	SpreadsheetID string `toml:"spreadsheet_id"`

	// SheetName is the tab the export writes to.
	SheetName string `toml:"sheet_name"`

	// CredentialsFile is the service account JSON key path.
	CredentialsFile string `toml:"credentials_file"`
}

// ExportConfig tunes the export run.
type ExportConfig struct {
	// MaxRows caps how many of the most recent records one run exports.
	MaxRows int `toml:"max_rows"`

	// FullRefresh clears and rewrites the sheet every run instead of
	// appending with a header check.
	FullRefresh bool `toml:"full_refresh"`
}

// Default returns the built-in configuration values.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":3001"},
		Search: SearchConfig{
			DefaultNamespace: "qa",
			Limit:            500,
		},
		Sheet: SheetConfig{
			SheetName: "Transcripts",
		},
		Export: ExportConfig{
			MaxRows: 15,
		},
	}
}

// Load reads the configuration file at path, layered over Default and
// under any environment overrides. A missing file is not an error; the
// defaults plus environment apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Fall through to defaults + environment.
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv layers deployment environment variables over the file values.
// Environment always wins so container deployments need no config file.
func (c *Config) applyEnv() {
	setIfPresent := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setIfPresent(&c.Server.BasicAuthUsername, "BASIC_AUTH_USERNAME")
	setIfPresent(&c.Server.BasicAuthPassword, "BASIC_AUTH_PASSWORD")
	setIfPresent(&c.Search.Endpoint, "ES_ENDPOINT")
	setIfPresent(&c.Search.Region, "AWS_REGION")
	setIfPresent(&c.Sheet.SpreadsheetID, "SPREADSHEET_ID")
	setIfPresent(&c.Sheet.SheetName, "SHEET_NAME")
	setIfPresent(&c.Sheet.CredentialsFile, "GOOGLE_APPLICATION_CREDENTIALS")
}

// Validate checks that everything a `serve` run needs is present.
func (c Config) Validate() error {
	if c.Search.Endpoint == "" {
		return fmt.Errorf("search.endpoint (or ES_ENDPOINT) is required")
	}
	if c.Sheet.SpreadsheetID == "" {
		return fmt.Errorf("sheet.spreadsheet_id (or SPREADSHEET_ID) is required")
	}
	if c.Sheet.CredentialsFile == "" {
		return fmt.Errorf("sheet.credentials_file (or GOOGLE_APPLICATION_CREDENTIALS) is required")
	}
	return nil
}
