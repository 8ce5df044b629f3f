package breakeven

import (
	"errors"

	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrNoSolution is returned when the search bracket does not contain a root.
var ErrNoSolution = errors.New("no solution in search bracket")

// SolveTarget names the quantity a solver searches for
type SolveTarget string

const (
	SolveMonthlySavings SolveTarget = "monthly_savings"
	SolveYearlySpending SolveTarget = "yearly_spending"
)

// SavingsResult is the smallest monthly saving that reaches FIRE by TargetAge
type SavingsResult struct {
	Iterations      int    `json:"iterations"`
	ConvergenceInfo string `json:"convergenceInfo"`

	TargetAge              int             `json:"targetAge"`
	CurrentAge             int             `json:"currentAge"`
	RequiredMonthlySavings decimal.Decimal `json:"requiredMonthlySavings"`
	CurrentMonthlySavings  decimal.Decimal `json:"currentMonthlySavings"`
	AdditionalSavings      decimal.Decimal `json:"additionalSavings"` // zero when already on track
	AlreadyOnTrack         bool            `json:"alreadyOnTrack"`

	// Projection at the required savings
	Projection domain.FireProjection `json:"projection"`
}

// SpendingResult is the largest yearly spend a strategy funds to the target age
type SpendingResult struct {
	Iterations      int    `json:"iterations"`
	ConvergenceInfo string `json:"convergenceInfo"`

	Strategy                  domain.WithdrawalStrategy `json:"strategy"`
	SustainableYearlyExpenses decimal.Decimal           `json:"sustainableYearlyExpenses"`
	SustainableMonthly        decimal.Decimal           `json:"sustainableMonthly"`
	PlannedYearlyExpenses     decimal.Decimal           `json:"plannedYearlyExpenses"`
	Headroom                  decimal.Decimal           `json:"headroom"` // sustainable minus planned

	// Schedule at the sustainable spend
	Result domain.WithdrawalResult `json:"result"`
}

// Report bundles every solver that applies to one input
type Report struct {
	Savings         *SavingsResult  `json:"savings,omitempty"`
	Spending        *SpendingResult `json:"spending,omitempty"`
	Recommendations []string        `json:"recommendations"`
}

// SolverOptions configures the bisection
type SolverOptions struct {
	Tolerance     decimal.Decimal // Convergence tolerance in currency units
	MaxIterations int             // Maximum bisection steps
	MaxExpansions int             // Bracket doublings before giving up
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromInt(1),
		MaxIterations: 100,
		MaxExpansions: 20,
	}
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
