package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/firego/internal/calculation"
	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/shopspring/decimal"
)

var decimalTwo = decimal.NewFromInt(2)

// Solver finds break-even inputs by bisection over the engine
type Solver struct {
	CalcEngine *calculation.Engine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.Engine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.Engine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// RequiredMonthlySavings searches for the smallest monthly saving, holding
// expenses fixed, at which the point projection reaches FIRE no later than
// targetAge. A birth date is required.
func (s *Solver) RequiredMonthlySavings(ctx context.Context, snapshot domain.Snapshot, targetAge int) (*SavingsResult, error) {
	currentAge := snapshot.CurrentAge()
	if currentAge == nil {
		return nil, &BreakEvenError{
			Operation: "required_savings",
			Message:   "date of birth is required",
		}
	}

	target := s.CalcEngine.FireTarget(snapshot.MonthlyExpenses)
	if target.IsZero() {
		return nil, &BreakEvenError{
			Operation: "required_savings",
			Message:   "monthly expenses must be positive",
			Cause:     ErrNoSolution,
		}
	}

	withSavings := func(savings decimal.Decimal) domain.Snapshot {
		adjusted := snapshot
		adjusted.MonthlyIncome = snapshot.MonthlyExpenses.Add(savings)
		return adjusted
	}
	meets := func(savings decimal.Decimal) bool {
		p := s.CalcEngine.ProjectFire(withSavings(savings))
		return p.FireAge != nil && *p.FireAge <= targetAge
	}

	// Saving the whole gap in one month crosses at month one.
	hi := maxDecimal(target.Sub(snapshot.NetWorth()), s.Options.Tolerance)
	if !meets(hi) {
		return nil, &BreakEvenError{
			Operation: "required_savings",
			Message:   fmt.Sprintf("target age %d cannot be reached from age %d", targetAge, *currentAge),
			Cause:     ErrNoSolution,
		}
	}

	required, iterations := decimal.Zero, 0
	if !meets(decimal.Zero) {
		var err error
		required, iterations, err = s.bisect(ctx, decimal.Zero, hi, func(v decimal.Decimal) bool { return !meets(v) })
		if err != nil {
			return nil, &BreakEvenError{Operation: "required_savings", Message: "search interrupted", Cause: err}
		}
		// bisect returns the last failing value; the answer is the upper edge.
		required = required.Add(s.Options.Tolerance).RoundCeil(2)
		if !meets(required) {
			required = hi
		}
	}

	current := snapshot.MonthlySavings()
	result := &SavingsResult{
		Iterations:             iterations,
		ConvergenceInfo:        fmt.Sprintf("Converged within $%s", s.Options.Tolerance.StringFixed(0)),
		TargetAge:              targetAge,
		CurrentAge:             *currentAge,
		RequiredMonthlySavings: required,
		CurrentMonthlySavings:  current,
		AdditionalSavings:      maxDecimal(decimal.Zero, required.Sub(current)),
		AlreadyOnTrack:         current.GreaterThanOrEqual(required),
		Projection:             s.CalcEngine.ProjectFire(withSavings(required)),
	}
	return result, nil
}

// SustainableSpending searches for the largest yearly expense the plan's
// strategy funds through the target age without depleting the portfolio.
func (s *Solver) SustainableSpending(ctx context.Context, plan domain.WithdrawalPlan) (*SpendingResult, error) {
	if plan.TargetAge <= plan.RetirementAge {
		return nil, &BreakEvenError{
			Operation: "sustainable_spending",
			Message:   "withdrawal horizon is empty",
			Cause:     ErrNoSolution,
		}
	}

	var simErr error
	simulate := func(expenses decimal.Decimal) domain.WithdrawalResult {
		p := plan
		p.YearlyExpenses = expenses
		result, err := s.CalcEngine.SimulateWithdrawal(p)
		if err != nil && simErr == nil {
			simErr = err
		}
		return result
	}
	survives := func(expenses decimal.Decimal) bool {
		return !simulate(expenses).Depleted
	}

	floor := simulate(decimal.Zero)
	if simErr != nil {
		return nil, &BreakEvenError{Operation: "sustainable_spending", Message: "invalid plan", Cause: simErr}
	}
	if floor.Depleted {
		return nil, &BreakEvenError{
			Operation: "sustainable_spending",
			Message:   "the portfolio cannot fund any spending",
			Cause:     ErrNoSolution,
		}
	}

	hi := maxDecimal(plan.StartingPortfolio, s.Options.Tolerance)
	for i := 0; survives(hi); i++ {
		if i >= s.Options.MaxExpansions {
			return nil, &BreakEvenError{
				Operation: "sustainable_spending",
				Message:   "spending is unbounded for this plan",
				Cause:     ErrNoSolution,
			}
		}
		hi = hi.Mul(decimalTwo)
	}

	sustainable, iterations, err := s.bisect(ctx, decimal.Zero, hi, survives)
	if err != nil {
		return nil, &BreakEvenError{Operation: "sustainable_spending", Message: "search interrupted", Cause: err}
	}
	sustainable = sustainable.RoundFloor(2)

	schedule := simulate(sustainable)
	return &SpendingResult{
		Iterations:                iterations,
		ConvergenceInfo:           fmt.Sprintf("Converged within $%s", s.Options.Tolerance.StringFixed(0)),
		Strategy:                  schedule.Strategy,
		SustainableYearlyExpenses: sustainable,
		SustainableMonthly:        sustainable.Div(decimal.NewFromInt(12)).RoundFloor(2),
		PlannedYearlyExpenses:     plan.YearlyExpenses,
		Headroom:                  sustainable.Sub(plan.YearlyExpenses),
		Result:                    schedule,
	}, nil
}

// bisect narrows [lo, hi] where ok(lo) holds and ok(hi) does not, and
// returns the largest value known to satisfy ok.
func (s *Solver) bisect(ctx context.Context, lo, hi decimal.Decimal, ok func(decimal.Decimal) bool) (decimal.Decimal, int, error) {
	iterations := 0
	for iterations < s.Options.MaxIterations && hi.Sub(lo).GreaterThan(s.Options.Tolerance) {
		iterations++

		select {
		case <-ctx.Done():
			return decimal.Zero, iterations, ctx.Err()
		default:
		}

		mid := lo.Add(hi).Div(decimalTwo)
		if ok(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	if l := s.CalcEngine.Logger; l != nil {
		l.Debugf("bisection stopped after %d iterations at [%s, %s]", iterations, lo.StringFixed(2), hi.StringFixed(2))
	}
	return lo, iterations, nil
}

func maxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
