package calculation

import (
	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/shopspring/decimal"
)

// SimulateScenarios runs the drifter, current and optimizer trajectories
// over years (zero or less means the configured scenario horizon).
func (e *Engine) SimulateScenarios(s domain.Snapshot, years int) []domain.ScenarioPath {
	profiles := domain.DefaultScenarioProfiles()
	paths := make([]domain.ScenarioPath, 0, len(profiles))
	for _, profile := range profiles {
		paths = append(paths, e.SimulateScenario(s, profile, years))
	}
	return paths
}

// SimulateScenario compounds monthly at one fixed return while the
// profile's expense and savings drift is re-applied every 12 months. The
// FIRE target follows the scenario's current expenses, so it is recomputed
// every month; the first month net worth meets it is kept even if net worth
// later falls back below.
func (e *Engine) SimulateScenario(s domain.Snapshot, profile domain.ScenarioProfile, years int) domain.ScenarioPath {
	if years <= 0 {
		years = e.Assumptions.ScenarioYears
	}
	months := years * 12
	swr := e.Assumptions.SafeWithdrawalRate
	monthlyReturn := s.ReturnOr(e.Assumptions.DefaultReturn).Div(decimalTwelve)
	start := s.ReferenceDate()

	expenses := s.MonthlyExpenses.Mul(profile.ExpenseMultiplier)
	savings := maxDecimal(decimalZero, s.MonthlyIncome.Sub(expenses)).Mul(profile.ContributionMultiplier)
	expenseFactor := decimalOne.Add(profile.ExpenseGrowth)
	savingsFactor := decimalOne.Add(profile.SavingsGrowth)

	path := domain.ScenarioPath{
		Name:   profile.Name,
		Label:  profile.Label,
		Color:  profile.Color,
		Months: make([]domain.ProjectionMonth, 0, months+1),
	}

	netWorth := s.NetWorth()
	point := projectionPoint(s, start, 0, netWorth, swr, decimalZero, decimalZero)
	path.Months = append(path.Months, point)
	e.markCrossing(&path, point, expenses)

	for m := 1; m <= months; m++ {
		growth := roundMoney(netWorth.Mul(monthlyReturn))
		netWorth = netWorth.Add(growth).Add(savings)

		point = projectionPoint(s, start, m, netWorth, swr, savings, growth)
		path.Months = append(path.Months, point)
		e.markCrossing(&path, point, expenses)

		if m%12 == 0 {
			expenses = roundMoney(expenses.Mul(expenseFactor))
			savings = roundMoney(maxDecimal(decimalZero, s.MonthlyIncome.Sub(expenses)).Mul(savingsFactor))
		}
	}
	return path
}

func (e *Engine) markCrossing(path *domain.ScenarioPath, point domain.ProjectionMonth, monthlyExpenses decimal.Decimal) {
	if path.FireMonth != nil {
		return
	}
	target := e.FireTarget(monthlyExpenses)
	if target.GreaterThan(decimalZero) && point.NetWorth.GreaterThanOrEqual(target) {
		month := point.Month
		path.FireMonth = &month
		path.FireAge = domain.AddAge(point.Age, 0)
	}
}
