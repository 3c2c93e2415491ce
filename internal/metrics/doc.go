// Package metrics provides build metrics for i18nbuilder.
//
// Components receive a Recorder through dependency injection. NoopRecorder is
// the default, so call sites never nil-check:
//
//	agg := aggregate.New(opts) // uses metrics.NoopRecorder{}
//	agg.WithRecorder(metrics.NewPrometheusRecorder(reg))
//
// The CLI builds a Prometheus registry only when --metrics-file is given and
// writes it in text exposition format after the run (WriteTextfile), which
// suits node_exporter's textfile collector in CI.
package metrics
