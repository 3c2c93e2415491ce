package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	localeDuration *prom.HistogramVec
	buildDuration  prom.Histogram
	localeResults  *prom.CounterVec
	fragments      *prom.CounterVec
	buildOutcome   *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them with reg.
// A nil reg gets a private registry.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		localeDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "i18nbuilder",
			Name:      "locale_duration_seconds",
			Help:      "Duration of aggregating one locale",
			Buckets:   prom.DefBuckets,
		}, []string{"locale"}),
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "i18nbuilder",
			Name:      "build_duration_seconds",
			Help:      "Total build duration",
			Buckets:   prom.DefBuckets,
		}),
		localeResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "i18nbuilder",
			Name:      "locale_results_total",
			Help:      "Locale results by outcome",
		}, []string{"locale", "result"}),
		fragments: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "i18nbuilder",
			Name:      "fragments_loaded_total",
			Help:      "Fragment files loaded per locale",
		}, []string{"locale"}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "i18nbuilder",
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.localeDuration, pr.buildDuration, pr.localeResults, pr.fragments, pr.buildOutcome)
	return pr
}

func (p *PrometheusRecorder) ObserveLocaleDuration(locale string, d time.Duration) {
	if p == nil {
		return
	}
	p.localeDuration.WithLabelValues(locale).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncLocaleResult(locale string, result ResultLabel) {
	if p == nil {
		return
	}
	p.localeResults.WithLabelValues(locale, string(result)).Inc()
}

func (p *PrometheusRecorder) AddFragments(locale string, n int) {
	if p == nil {
		return
	}
	p.fragments.WithLabelValues(locale).Add(float64(n))
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome ResultLabel) {
	if p == nil {
		return
	}
	p.buildOutcome.WithLabelValues(string(outcome)).Inc()
}
