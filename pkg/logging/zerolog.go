// Package logging adapts github.com/rs/zerolog to core.Logger, the
// minimal Printf-shaped contract the renderer and scene-construction
// code depend on so neither is coupled to a concrete logging library.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/afnanenayet/nib/pkg/core"
)

// ZerologLogger adapts a zerolog.Logger to core.Logger.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger builds a ZerologLogger writing human-readable,
// colorized output to w, matching cmd/raytracer's default console
// presentation.
func NewZerologLogger(w io.Writer) *ZerologLogger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return &ZerologLogger{logger: zerolog.New(console).With().Timestamp().Logger()}
}

// NewStderrLogger builds a ZerologLogger writing to os.Stderr, the
// default used by cmd/raytracer.
func NewStderrLogger() *ZerologLogger {
	return NewZerologLogger(os.Stderr)
}

// Printf implements core.Logger by formatting the message at Info level.
func (l *ZerologLogger) Printf(format string, args ...interface{}) {
	l.logger.Info().Msgf(format, args...)
}

var _ core.Logger = (*ZerologLogger)(nil)
