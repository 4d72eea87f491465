package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyPath       = "path"
	KeyConfig     = "config"
	KeyTag        = "tag"
	KeyTags       = "tags"
	KeyPages      = "pages"
	KeyOverviews  = "overview_pages"
	KeyTemplate   = "template"
	KeyEvent      = "event"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Config(p string) slog.Attr       { return slog.String(KeyConfig, p) }
func Tag(name string) slog.Attr       { return slog.String(KeyTag, name) }
func Tags(n int) slog.Attr            { return slog.Int(KeyTags, n) }
func Pages(n int) slog.Attr           { return slog.Int(KeyPages, n) }
func Overviews(n int) slog.Attr       { return slog.Int(KeyOverviews, n) }
func Template(name string) slog.Attr  { return slog.String(KeyTemplate, name) }
func Event(op string) slog.Attr       { return slog.String(KeyEvent, op) }

// Elapsed reports the time since start as duration_ms.
func Elapsed(start time.Time) slog.Attr {
	return DurationMS(float64(time.Since(start).Microseconds()) / 1000)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
