// Package logging maps the CLI verbosity count onto a zerolog logger.
//
// The logger is constructed once at startup and handed to components
// explicitly; nothing in this module installs a process-global logger.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger for the given -v count:
//
//	0   warnings only, bare messages
//	1   info, level-prefixed
//	2   debug, level plus caller
//	3+  trace, timestamped with caller; trace level also echoes every
//	    composed engine command line
func New(verbosity int) zerolog.Logger {
	return NewWithWriter(os.Stdout, verbosity)
}

// NewWithWriter is New with an explicit sink, for tests.
func NewWithWriter(out io.Writer, verbosity int) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: out, NoColor: true}

	var level zerolog.Level
	switch verbosity {
	case 0:
		level = zerolog.WarnLevel
		console.PartsOrder = []string{zerolog.MessageFieldName}
	case 1:
		level = zerolog.InfoLevel
		console.PartsOrder = []string{
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		}
	case 2:
		level = zerolog.DebugLevel
		console.PartsOrder = []string{
			zerolog.LevelFieldName,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		}
	default:
		level = zerolog.TraceLevel
	}

	ctx := zerolog.New(console).Level(level).With()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	if verbosity >= 3 {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}
