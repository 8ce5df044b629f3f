package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console zerolog logger writing to w. Debug lowers the level
// from info to debug.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Adapter exposes a zerolog logger through the printf-style interface the
// engine and the solvers log to.
type Adapter struct {
	Log zerolog.Logger
}

// NewAdapter tags every entry with the component name.
func NewAdapter(log zerolog.Logger, component string) *Adapter {
	return &Adapter{Log: log.With().Str("component", component).Logger()}
}

func (a *Adapter) Debugf(format string, args ...any) { a.Log.Debug().Msg(fmt.Sprintf(format, args...)) }
func (a *Adapter) Infof(format string, args ...any)  { a.Log.Info().Msg(fmt.Sprintf(format, args...)) }
func (a *Adapter) Warnf(format string, args ...any)  { a.Log.Warn().Msg(fmt.Sprintf(format, args...)) }
func (a *Adapter) Errorf(format string, args ...any) { a.Log.Error().Msg(fmt.Sprintf(format, args...)) }
