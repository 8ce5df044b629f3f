package calculation

import (
	"github.com/rgehrsitz/firego/internal/domain"
)

// Engine runs every projection and simulation over a Snapshot. It holds
// only configuration, so a single Engine is safe for concurrent use.
type Engine struct {
	Assumptions domain.Assumptions
	Logger      Logger

	// Workers bounds the Monte Carlo worker pool. Zero means GOMAXPROCS,
	// one forces sequential execution.
	Workers int
}

// NewEngine creates an engine with the default assumptions.
func NewEngine() *Engine {
	return NewEngineWithAssumptions(domain.DefaultAssumptions())
}

// NewEngineWithAssumptions creates an engine with caller supplied assumptions.
func NewEngineWithAssumptions(assumptions domain.Assumptions) *Engine {
	return &Engine{
		Assumptions: assumptions,
		Logger:      NopLogger{},
	}
}

// SetLogger sets the logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

func (e *Engine) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}
