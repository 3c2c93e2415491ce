package metrics

import "time"

// ResultLabel enumerates locale result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
	ResultSkipped ResultLabel = "skipped"
)

// Recorder defines observability hooks for build and locale metrics.
type Recorder interface {
	ObserveLocaleDuration(locale string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncLocaleResult(locale string, result ResultLabel)
	AddFragments(locale string, n int)
	IncBuildOutcome(outcome ResultLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveLocaleDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)          {}
func (NoopRecorder) IncLocaleResult(string, ResultLabel)         {}
func (NoopRecorder) AddFragments(string, int)                    {}
func (NoopRecorder) IncBuildOutcome(ResultLabel)                 {}
