package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyLocale     = "locale"
	KeyFile       = "file"
	KeyPath       = "path"
	KeyStage      = "stage"
	KeyFormat     = "format"
	KeyMode       = "mode"
	KeyFragments  = "fragments"
	KeyDurationMS = "duration_ms"
	KeyPlugin     = "plugin"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Locale(l string) slog.Attr       { return slog.String(KeyLocale, l) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Mode(m string) slog.Attr         { return slog.String(KeyMode, m) }
func Fragments(n int) slog.Attr       { return slog.Int(KeyFragments, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Plugin(name string) slog.Attr    { return slog.String(KeyPlugin, name) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
