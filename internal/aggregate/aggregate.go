// Package aggregate combines per-locale translation fragments into one output
// file per locale: discover, load, merge, emit.
package aggregate

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"git.home.luguber.info/inful/i18nbuilder/internal/config"
	"git.home.luguber.info/inful/i18nbuilder/internal/emit"
	derrors "git.home.luguber.info/inful/i18nbuilder/internal/errors"
	"git.home.luguber.info/inful/i18nbuilder/internal/fragment"
	"git.home.luguber.info/inful/i18nbuilder/internal/locale"
	"git.home.luguber.info/inful/i18nbuilder/internal/logfields"
	"git.home.luguber.info/inful/i18nbuilder/internal/markdown"
	"git.home.luguber.info/inful/i18nbuilder/internal/merge"
	"git.home.luguber.info/inful/i18nbuilder/internal/metrics"
	"git.home.luguber.info/inful/i18nbuilder/internal/tree"
)

// LocaleResult describes one written locale file.
type LocaleResult struct {
	Locale    string
	Path      string
	Fragments int
	Duration  time.Duration
}

// Aggregator runs the pipeline for every configured locale.
type Aggregator struct {
	opts     config.Options
	loader   *fragment.Loader
	emitter  *emit.Emitter
	recorder metrics.Recorder
}

// New creates an Aggregator using the Markdown transformer.
func New(opts config.Options) *Aggregator {
	t := markdown.NewTransformer(markdown.Options{Sanitize: opts.Sanitize})
	return &Aggregator{
		opts:     opts,
		loader:   fragment.NewLoader(t, opts.ExternalLinks),
		emitter:  emit.New(opts.OutputDir, opts.Format, opts.Minify),
		recorder: metrics.NoopRecorder{},
	}
}

// WithTransformer replaces the string transformer. Nil disables it.
func (a *Aggregator) WithTransformer(t fragment.Transformer) *Aggregator {
	a.loader = fragment.NewLoader(t, a.opts.ExternalLinks)
	return a
}

// WithRecorder sets the metrics recorder.
func (a *Aggregator) WithRecorder(r metrics.Recorder) *Aggregator {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	a.recorder = r
	return a
}

// Options returns the options the Aggregator was built with.
func (a *Aggregator) Options() config.Options {
	return a.opts
}

// Run processes every locale and returns results in configuration order.
// The first failure aborts the run. With Concurrency above one, locales are
// processed in parallel; each locale's fragments are still merged in order.
func (a *Aggregator) Run(ctx context.Context, logger *slog.Logger) ([]LocaleResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()
	results := make([]LocaleResult, len(a.opts.Locales))

	var err error
	if a.opts.Concurrency <= 1 {
		for i, l := range a.opts.Locales {
			if results[i], err = a.Locale(ctx, logger, l); err != nil {
				break
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(a.opts.Concurrency)
		for i, l := range a.opts.Locales {
			g.Go(func() error {
				res, lerr := a.Locale(gctx, logger, l)
				results[i] = res
				return lerr
			})
		}
		err = g.Wait()
	}

	a.recorder.ObserveBuildDuration(time.Since(start))
	if err != nil {
		a.recorder.IncBuildOutcome(metrics.ResultFailed)
		return nil, err
	}
	a.recorder.IncBuildOutcome(metrics.ResultSuccess)
	logger.Info("Locales aggregated",
		slog.Int("locales", len(results)),
		logfields.DurationMS(ms(time.Since(start))))
	return results, nil
}

// Locale builds and writes the combined file for one locale.
func (a *Aggregator) Locale(ctx context.Context, logger *slog.Logger, id string) (LocaleResult, error) {
	start := time.Now()
	logger = logger.With(logfields.Locale(id))

	res, err := a.locale(ctx, logger, id)
	res.Duration = time.Since(start)
	a.recorder.ObserveLocaleDuration(id, res.Duration)
	if err != nil {
		a.recorder.IncLocaleResult(id, metrics.ResultFailed)
		logger.Error("Locale failed", logfields.Error(err))
		return res, err
	}
	a.recorder.IncLocaleResult(id, metrics.ResultSuccess)
	logger.Info("Locale written",
		logfields.Path(res.Path),
		logfields.Fragments(res.Fragments),
		logfields.DurationMS(ms(res.Duration)))
	return res, nil
}

func (a *Aggregator) locale(ctx context.Context, logger *slog.Logger, id string) (LocaleResult, error) {
	res := LocaleResult{Locale: id}

	files, err := locale.Resolve(a.opts.SourceDir, id)
	if err != nil {
		return res, derrors.DiscoveryFailed(id, err)
	}
	if len(files) == 0 {
		logger.Warn("No fragments found for locale", logfields.Path(locale.Dir(a.opts.SourceDir, id)))
	}
	logger.Debug("Fragments discovered", logfields.Stage("discover"), logfields.Fragments(len(files)))

	localeDir := locale.Dir(a.opts.SourceDir, id)
	combined := tree.NewMapping()
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return res, derrors.BuildFailed("load", err).WithContext("locale", id)
		}
		frag, err := a.loader.Load(f, localeDir)
		if err != nil {
			return res, err
		}
		merge.Merge(combined, frag)
		res.Fragments++
	}
	a.recorder.AddFragments(id, res.Fragments)
	logger.Debug("Fragments merged", logfields.Stage("merge"), logfields.Fragments(res.Fragments))

	if err := ctx.Err(); err != nil {
		return res, derrors.BuildFailed("emit", err).WithContext("locale", id)
	}
	path, err := a.emitter.Emit(id, combined)
	if err != nil {
		return res, err
	}
	res.Path = path
	logger.Debug("Locale emitted", logfields.Stage("emit"), logfields.Path(path))
	return res, nil
}

// Discover returns each locale's fragment files without reading them.
func Discover(sourceDir string, locales []string) (map[string][]string, error) {
	out := make(map[string][]string, len(locales))
	for _, l := range locales {
		files, err := locale.Resolve(sourceDir, l)
		if err != nil {
			return nil, derrors.DiscoveryFailed(l, err)
		}
		out[l] = files
	}
	return out, nil
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
