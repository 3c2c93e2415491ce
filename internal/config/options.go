package config

import (
	"log/slog"

	"git.home.luguber.info/inful/i18nbuilder/internal/emit"
	derrors "git.home.luguber.info/inful/i18nbuilder/internal/errors"
	"git.home.luguber.info/inful/i18nbuilder/internal/gate"
	"git.home.luguber.info/inful/i18nbuilder/internal/locale"
	"git.home.luguber.info/inful/i18nbuilder/internal/logfields"
)

// Options is the validated, typed configuration for one build invocation.
// It is passed by value and never modified after Resolve.
type Options struct {
	SourceDir     string
	OutputDir     string
	Locales       []string
	Mode          gate.Mode
	Minify        bool
	Format        emit.Format
	ExternalLinks bool
	Sanitize      bool
	Concurrency   int
}

// Overrides carries command-line values that take precedence over the file.
// Empty strings and false leave the file value alone.
type Overrides struct {
	SourceDir     string
	OutputDir     string
	Locales       []string
	Mode          string
	Format        string
	Minify        bool
	ExternalLinks bool
	Concurrency   int
}

// Apply copies set override values into c.
func (c *Config) Apply(o Overrides) {
	if o.SourceDir != "" {
		c.SourceDir = o.SourceDir
	}
	if o.OutputDir != "" {
		c.OutputDir = o.OutputDir
	}
	if len(o.Locales) > 0 {
		c.Locales = append([]string(nil), o.Locales...)
	}
	if o.Mode != "" {
		c.Mode = o.Mode
	}
	if o.Format != "" {
		c.OutputFormat = o.Format
	}
	if o.Minify {
		c.Minify = true
	}
	if o.ExternalLinks {
		c.ExternalLinks = true
	}
	if o.Concurrency > 0 {
		c.Concurrency = o.Concurrency
	}
}

// Resolve validates c and returns typed Options with defaults applied.
func (c *Config) Resolve() (Options, error) {
	if c.SourceDir == "" {
		return Options{}, derrors.ConfigRequired("source_dir")
	}
	if c.OutputDir == "" {
		return Options{}, derrors.ConfigRequired("output_dir")
	}
	if len(c.Locales) == 0 {
		return Options{}, derrors.ConfigRequired("locales")
	}

	seen := make(map[string]struct{}, len(c.Locales))
	for _, l := range c.Locales {
		if err := locale.ValidateIdentifier(l); err != nil {
			return Options{}, derrors.ValidationFailed("locales", err.Error())
		}
		if _, dup := seen[l]; dup {
			return Options{}, derrors.ValidationFailed("locales", "duplicate locale "+l)
		}
		seen[l] = struct{}{}
		if !locale.IsLanguageTag(l) {
			slog.Warn("Locale is not a BCP 47 language tag", logfields.Locale(l))
		}
	}

	mode, err := gate.ParseMode(c.Mode)
	if err != nil {
		return Options{}, derrors.ValidationFailed("mode", err.Error())
	}
	format, err := emit.ParseFormat(c.OutputFormat)
	if err != nil {
		return Options{}, derrors.ValidationFailed("output_format", err.Error())
	}

	concurrency := c.Concurrency
	switch {
	case concurrency < 0:
		return Options{}, derrors.ValidationFailed("concurrency", "must not be negative")
	case concurrency == 0:
		concurrency = 1
	}

	return Options{
		SourceDir:     c.SourceDir,
		OutputDir:     c.OutputDir,
		Locales:       append([]string(nil), c.Locales...),
		Mode:          mode,
		Minify:        c.Minify,
		Format:        format,
		ExternalLinks: c.ExternalLinks,
		Sanitize:      c.Sanitize,
		Concurrency:   concurrency,
	}, nil
}
