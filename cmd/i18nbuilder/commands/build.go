package commands

import (
	"fmt"
	"log/slog"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/i18nbuilder/internal/aggregate"
	"git.home.luguber.info/inful/i18nbuilder/internal/config"
	derrors "git.home.luguber.info/inful/i18nbuilder/internal/errors"
	"git.home.luguber.info/inful/i18nbuilder/internal/gate"
	"git.home.luguber.info/inful/i18nbuilder/internal/logfields"
	"git.home.luguber.info/inful/i18nbuilder/internal/metrics"
	"git.home.luguber.info/inful/i18nbuilder/internal/plugin"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Source        string   `short:"s" help:"Source root with one directory per locale (overrides source_dir)"`
	Output        string   `short:"o" help:"Output directory (overrides output_dir)"`
	Locale        []string `short:"l" help:"Locale to build; repeatable (overrides locales)"`
	Mode          string   `help:"Activation mode: dev, prod, both or off (overrides mode)"`
	Format        string   `short:"f" help:"Output format: json, json5 or js (overrides output_format)"`
	Minify        bool     `help:"Write compact output"`
	ExternalLinks bool     `name:"external-links" help:"Open http(s) links in a new tab"`
	Concurrency   int      `short:"j" help:"Locales processed in parallel"`
	Env           string   `help:"Host environment: development or production" env:"I18NBUILDER_ENV" default:"production"`
	MetricsFile   string   `name:"metrics-file" help:"Write Prometheus metrics to this file after the build" type:"path"`
}

func (b *BuildCmd) overrides() config.Overrides {
	return config.Overrides{
		SourceDir:     b.Source,
		OutputDir:     b.Output,
		Locales:       b.Locale,
		Mode:          b.Mode,
		Format:        b.Format,
		Minify:        b.Minify,
		ExternalLinks: b.ExternalLinks,
		Concurrency:   b.Concurrency,
	}
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	env, err := gate.ParseHostEnv(b.Env)
	if err != nil {
		return derrors.ValidationFailed("env", err.Error())
	}

	cfg, err := loadConfig(root.Config, b.Source != "" && b.Output != "" && len(b.Locale) > 0)
	if err != nil {
		return err
	}
	cfg.Apply(b.overrides())
	opts, err := cfg.Resolve()
	if err != nil {
		return err
	}

	return RunBuild(g, opts, env, b.MetricsFile)
}

// RunBuild runs the aggregator through the plugin host and reports the
// written files on g's output.
func RunBuild(g *Global, opts config.Options, env gate.HostEnv, metricsFile string) error {
	logger := slog.Default()
	out := g.out()

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var registry *prom.Registry
	if metricsFile != "" {
		registry = prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(registry)
	}

	p := aggregate.NewPlugin(aggregate.New(opts).WithRecorder(recorder), logger)
	host := plugin.NewHost(logger)
	if err := host.Register(p); err != nil {
		return derrors.InternalError("register plugin", err)
	}

	logger.Info("Starting i18n build",
		logfields.Mode(string(opts.Mode)),
		logfields.Format(string(opts.Format)),
		slog.String("env", env.String()),
		slog.Int("locales", len(opts.Locales)))

	buildID, runErr := host.Run(g.ctx(), env)

	if registry != nil {
		if err := metrics.WriteTextfile(metricsFile, registry); err != nil {
			logger.Warn("Failed to write metrics", logfields.BuildID(buildID), logfields.Path(metricsFile), logfields.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}

	if !p.Ran() {
		_, _ = fmt.Fprintf(out, "Skipped: mode %s does not run in %s\n", opts.Mode, env)
		return nil
	}
	for _, r := range p.Results() {
		_, _ = fmt.Fprintf(out, "%s: %s (%d fragments)\n", r.Locale, r.Path, r.Fragments)
	}
	return nil
}
