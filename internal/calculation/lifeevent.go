package calculation

import (
	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/shopspring/decimal"
)

// LifeEventImpact diffs the point projection of the baseline snapshot
// against one adjusted by the event. Delay and lost days never go negative.
func (e *Engine) LifeEventImpact(s domain.Snapshot, event domain.LifeEvent) domain.LifeEventImpact {
	baseline := e.ProjectFire(s)
	adjusted := e.ProjectFire(s.WithAdjustments(
		event.OneTimeCost.Neg(),
		event.MonthlyCostChange,
		event.MonthlyIncomeChange,
	))

	impact := domain.LifeEventImpact{
		Event:     event,
		TotalCost: EventTotalCost(event),
		Baseline:  baseline,
		Adjusted:  adjusted,
	}

	deltaDays := decimal.NewFromInt(int64(e.horizonDays(adjusted) - e.horizonDays(baseline)))
	impact.FireDelayMonths = max(0, roundInt(deltaDays.Div(daysPerMonth)))

	dailyExpenses := s.YearlyExpenses().Div(daysPerYear)
	if dailyExpenses.GreaterThan(decimalZero) {
		impact.FreedomDaysLost = max(0, roundInt(impact.TotalCost.Div(dailyExpenses)))
	}
	return impact
}

// EventTotalCost is the one-time cost plus the net monthly change over the
// event's duration.
func EventTotalCost(event domain.LifeEvent) decimal.Decimal {
	duration := decimal.NewFromInt(int64(event.DurationMonths))
	return event.OneTimeCost.
		Add(event.MonthlyCostChange.Mul(duration)).
		Sub(event.MonthlyIncomeChange.Mul(duration))
}

// horizonDays is the countdown used for diffing. An unreachable target
// counts as the full search cap so that losing achievability registers as a
// delay.
func (e *Engine) horizonDays(p domain.FireProjection) int {
	switch p.FireDate.Kind {
	case domain.FireDateProjected:
		return p.CountdownDays
	case domain.FireDateReached:
		return 0
	default:
		return monthsToDays(e.Assumptions.SearchCapMonths)
	}
}
