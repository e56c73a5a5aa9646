package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Field is a structured logging key/value pair. Fields are attached to log
// events and rendered by the backend in its native format.
type Field struct {
	Key   string
	Value any
}

// String creates a string-valued field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int-valued field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a uint64-valued field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64-valued field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err creates an error field with the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging interface used throughout the application.
// The Printf/Println methods exist for compatibility with components that
// expect a standard-library style logger.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Debug(msg string, fields ...Field)
	Printf(format string, v ...any)
	Println(v ...any)
}

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewDefaultLogger returns a logger writing human-readable output to stderr
// with timestamps, suitable as the application-wide default.
func NewDefaultLogger() *ZerologAdapter {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return &ZerologAdapter{logger: zl}
}

// NewLogger returns a logger writing JSON to w, tagged with a component field.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{logger: zl}
}

// Info logs a message at info level.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	a.withFields(a.logger.Info(), fields).Msg(msg)
}

// Error logs a message at error level with the given error attached.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	a.withFields(a.logger.Error().Err(err), fields).Msg(msg)
}

// Debug logs a message at debug level.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	a.withFields(a.logger.Debug(), fields).Msg(msg)
}

// Printf logs a formatted message at info level.
func (a *ZerologAdapter) Printf(format string, v ...any) {
	a.logger.Info().Msg(fmt.Sprintf(format, v...))
}

// Println logs its arguments at info level.
func (a *ZerologAdapter) Println(v ...any) {
	a.logger.Info().Msg(fmt.Sprint(v...))
}

// withFields attaches structured fields to a zerolog event.
func (a *ZerologAdapter) withFields(ev *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			ev = ev.Str(f.Key, v)
		case int:
			ev = ev.Int(f.Key, v)
		case uint64:
			ev = ev.Uint64(f.Key, v)
		case float64:
			ev = ev.Float64(f.Key, v)
		case error:
			ev = ev.AnErr(f.Key, v)
		case nil:
			// Skip nil values (e.g., Err(nil)).
		default:
			ev = ev.Interface(f.Key, v)
		}
	}
	return ev
}
