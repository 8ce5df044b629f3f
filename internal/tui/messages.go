package tui

import (
	"github.com/rgehrsitz/firego/internal/config"
	"github.com/rgehrsitz/firego/internal/domain"
)

// Tab is one page of the dashboard.
type Tab int

const (
	TabProjection Tab = iota
	TabScenarios
	TabMonteCarlo
	TabWithdrawal
	TabResilience
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabProjection:
		return "Projection"
	case TabScenarios:
		return "Scenarios"
	case TabMonteCarlo:
		return "Monte Carlo"
	case TabWithdrawal:
		return "Withdrawal"
	case TabResilience:
		return "Resilience"
	default:
		return "Unknown"
	}
}

// ErrorMsg displays an error to the user.
type ErrorMsg struct {
	Err error
}

// InputLoadedMsg carries the parsed input file.
type InputLoadedMsg struct {
	Input *config.Input
}

// MonteCarloCompleteMsg carries a finished run. Generation identifies the
// recompute that started it; results from superseded runs are dropped.
type MonteCarloCompleteMsg struct {
	Generation int
	Result     domain.MonteCarloResult
}
