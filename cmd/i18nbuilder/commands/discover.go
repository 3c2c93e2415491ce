package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/i18nbuilder/internal/aggregate"
	"git.home.luguber.info/inful/i18nbuilder/internal/config"
	derrors "git.home.luguber.info/inful/i18nbuilder/internal/errors"
	"git.home.luguber.info/inful/i18nbuilder/internal/locale"
)

// DiscoverCmd implements the 'discover' command.
type DiscoverCmd struct {
	Source string   `short:"s" help:"Source root with one directory per locale (overrides source_dir)"`
	Locale []string `short:"l" help:"Locale to list; repeatable (overrides locales)"`
}

func (d *DiscoverCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config, d.Source != "" && len(d.Locale) > 0)
	if err != nil {
		return err
	}
	cfg.Apply(config.Overrides{SourceDir: d.Source, Locales: d.Locale})

	if cfg.SourceDir == "" {
		return derrors.ConfigRequired("source_dir")
	}
	if len(cfg.Locales) == 0 {
		return derrors.ConfigRequired("locales")
	}
	for _, l := range cfg.Locales {
		if err := locale.ValidateIdentifier(l); err != nil {
			return derrors.ValidationFailed("locales", err.Error())
		}
	}
	return RunDiscover(g, cfg.SourceDir, cfg.Locales)
}

// RunDiscover prints each locale's fragments in merge order.
func RunDiscover(g *Global, sourceDir string, locales []string) error {
	slog.Info("Starting fragment discovery", "locales", len(locales))

	found, err := aggregate.Discover(sourceDir, locales)
	if err != nil {
		return err
	}

	out := g.out()
	for _, l := range locales {
		files := found[l]
		_, _ = fmt.Fprintf(out, "%s (%d fragments)\n", l, len(files))
		for _, f := range files {
			_, _ = fmt.Fprintf(out, "  %s\n", f)
		}
	}
	return nil
}
