// Package logging provides the diagnostic logger used by services and
// commands. User-facing output never goes through it.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// EnvVar selects the console format when set to "dev".
const EnvVar = "FUEL_ENV"

// Logger is a leveled, component-scoped logger.
type Logger interface {
	Debugf(format string, args ...any)
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	// With returns a logger tagged with another component.
	With(component string) Logger
}

// Options configures New.
type Options struct {
	Level   string    // debug, info, warn, error; default warn
	Console bool      // human-readable output instead of JSON lines
	Out     io.Writer // default os.Stderr
}

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	base zerolog.Logger // without the component field
	log  zerolog.Logger
}

// New creates a logger for component. Console output is also enabled when
// FUEL_ENV=dev.
func New(component string, opts Options) Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	if opts.Console || strings.EqualFold(os.Getenv(EnvVar), "dev") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	base := zerolog.New(out).
		Level(ParseLevel(opts.Level)).
		With().Timestamp().
		Logger()
	return withComponent(base, component)
}

func withComponent(base zerolog.Logger, component string) *ZerologLogger {
	return &ZerologLogger{base: base, log: base.With().Str("component", component).Logger()}
}

// ParseLevel maps a config level name to a zerolog level. Unknown names
// fall back to warn.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return lvl
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	ev := l.log.Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}

// With returns a logger whose component field is replaced by component.
func (l *ZerologLogger) With(component string) Logger {
	return withComponent(l.base, component)
}

// Nop implements Logger with no-op methods.
type Nop struct{}

func (Nop) Debugf(string, ...any)         {}
func (Nop) Debugw(string, map[string]any) {}
func (Nop) Infof(string, ...any)          {}
func (Nop) Warnf(string, ...any)          {}
func (Nop) Errorf(string, ...any)         {}
func (n Nop) With(string) Logger          { return n }
