// Package logfields holds the canonical slog attribute keys used across the
// build, so that log lines stay greppable as the code moves around.
package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPage       = "page"
	KeyFile       = "file"
	KeyVersion    = "version"
	KeyPath       = "path"
	KeyStage      = "stage"
	KeyBinding    = "binding"
	KeyCount      = "count"
	KeyBytes      = "bytes"
	KeyDurationMS = "duration_ms"
	KeyExecutable = "executable"
	KeyError      = "error"
)

func Page(key string) slog.Attr     { return slog.String(KeyPage, key) }
func File(name string) slog.Attr    { return slog.String(KeyFile, name) }
func Version(v string) slog.Attr    { return slog.String(KeyVersion, v) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func Stage(name string) slog.Attr   { return slog.String(KeyStage, name) }
func Binding(kind string) slog.Attr { return slog.String(KeyBinding, kind) }
func Count(n int) slog.Attr         { return slog.Int(KeyCount, n) }
func Bytes(n int) slog.Attr         { return slog.Int(KeyBytes, n) }
func Executable(p string) slog.Attr { return slog.String(KeyExecutable, p) }

// Duration reports d in milliseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
