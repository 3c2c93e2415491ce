package aggregate

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/i18nbuilder/internal/gate"
	"git.home.luguber.info/inful/i18nbuilder/internal/logfields"
	"git.home.luguber.info/inful/i18nbuilder/internal/metrics"
	"git.home.luguber.info/inful/i18nbuilder/internal/plugin"
	"git.home.luguber.info/inful/i18nbuilder/internal/version"
)

// PluginName is the name the aggregator registers under.
const PluginName = "i18n-json-md"

// Plugin adapts an Aggregator to the host lifecycle, applying the
// activation gate at build start.
type Plugin struct {
	agg     *Aggregator
	logger  *slog.Logger
	results []LocaleResult
	ran     bool
}

// NewPlugin wraps agg. A nil logger uses slog.Default.
func NewPlugin(agg *Aggregator, logger *slog.Logger) *Plugin {
	if logger == nil {
		logger = slog.Default()
	}
	return &Plugin{agg: agg, logger: logger}
}

func (p *Plugin) Metadata() plugin.PluginMetadata {
	return plugin.PluginMetadata{
		Name:        PluginName,
		Version:     version.Version,
		Description: "Aggregates Markdown-bearing translation fragments per locale",
	}
}

func (p *Plugin) ConfigResolved(env gate.HostEnv) plugin.Resolved {
	return plugin.Resolved{Env: env}
}

// BuildStart evaluates the gate once, then runs every locale. A closed gate
// is a successful no-op: nothing is read or written.
func (p *Plugin) BuildStart(ctx context.Context, r plugin.Resolved) error {
	mode := p.agg.Options().Mode
	logger := p.logger.With(logfields.Plugin(PluginName), logfields.Mode(string(mode)))
	if r.BuildID != "" {
		logger = logger.With(logfields.BuildID(r.BuildID))
	}

	if !gate.ShouldRun(mode, r.Env) {
		logger.Info("Activation gate closed, skipping", slog.String("env", r.Env.String()))
		p.agg.recorder.IncBuildOutcome(metrics.ResultSkipped)
		return nil
	}

	results, err := p.agg.Run(ctx, logger)
	if err != nil {
		return err
	}
	p.results = results
	p.ran = true
	return nil
}

// Ran reports whether the last BuildStart passed the gate and succeeded.
func (p *Plugin) Ran() bool {
	return p.ran
}

// Results returns the locale results of the last successful run.
func (p *Plugin) Results() []LocaleResult {
	return p.results
}
