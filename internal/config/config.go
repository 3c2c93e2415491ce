// Package config loads and validates i18nbuilder configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/i18nbuilder/internal/errors"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = "i18nbuilder.yaml"

// Config is the on-disk configuration.
type Config struct {
	SourceDir     string   `yaml:"source_dir"`
	OutputDir     string   `yaml:"output_dir"`
	Locales       []string `yaml:"locales"`
	Mode          string   `yaml:"mode,omitempty"`          // dev|prod|both|off, default both
	Minify        bool     `yaml:"minify"`                  // compact output
	OutputFormat  string   `yaml:"output_format,omitempty"` // json|json5|js, default json
	ExternalLinks bool     `yaml:"external_links"`          // mark http(s) links target=_blank
	Sanitize      bool     `yaml:"sanitize"`                // allow raw HTML, cleaned by a UGC policy
	Concurrency   int      `yaml:"concurrency,omitempty"`   // locales processed in parallel, default 1
}

// Load reads configPath after loading .env files, expanding ${VAR}
// references in the YAML. Unknown keys are rejected.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, derrors.ConfigNotFound(configPath)
	}
	if err != nil {
		return nil, derrors.Wrap(err, derrors.CategoryConfig, derrors.SeverityFatal, "failed to read config file").
			WithContext("path", configPath)
	}

	return Parse([]byte(os.ExpandEnv(string(data))))
}

// Parse decodes YAML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, derrors.Wrap(err, derrors.CategoryConfig, derrors.SeverityFatal, "failed to unmarshal config")
	}
	return &cfg, nil
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Config{
		SourceDir:    "src/locales",
		OutputDir:    "public/locales",
		Locales:      []string{"en", "de"},
		Mode:         "both",
		OutputFormat: "json",
		Concurrency:  1,
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
