package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the component-tagged logging interface shared by every package.
type Logger interface {
	Debugf(component string, format string, args ...interface{})
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Debugf(component, format string, args ...interface{}) {}
func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// ZeroLogger writes human-readable lines through zerolog's console writer.
type ZeroLogger struct{ log zerolog.Logger }

// New returns a logger writing to w. Debug lines are dropped unless debug is set.
func New(w io.Writer, debug bool) ZeroLogger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return ZeroLogger{log: zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()}
}

func (l ZeroLogger) Debugf(component, format string, args ...interface{}) {
	l.log.Debug().Str("component", component).Msg(fmt.Sprintf(format, args...))
}

func (l ZeroLogger) Infof(component, format string, args ...interface{}) {
	l.log.Info().Str("component", component).Msg(fmt.Sprintf(format, args...))
}

func (l ZeroLogger) Errorf(component, format string, args ...interface{}) {
	l.log.Error().Str("component", component).Msg(fmt.Sprintf(format, args...))
}
