package calculation

import (
	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/shopspring/decimal"
)

// FireTarget is yearly expenses divided by the safe withdrawal rate, or zero
// when there are no expenses. Every component sizes its target this way.
func (e *Engine) FireTarget(monthlyExpenses decimal.Decimal) decimal.Decimal {
	if monthlyExpenses.LessThanOrEqual(decimalZero) || e.Assumptions.SafeWithdrawalRate.IsZero() {
		return decimalZero
	}
	return monthlyExpenses.Mul(decimalTwelve).Div(e.Assumptions.SafeWithdrawalRate)
}

// ProjectFire runs the point projection at the snapshot's expected return,
// falling back to the default return.
func (e *Engine) ProjectFire(s domain.Snapshot) domain.FireProjection {
	return e.ProjectFireAt(s, s.ReturnOr(e.Assumptions.DefaultReturn))
}

// ProjectFireAt runs the point projection at a fixed annual return.
func (e *Engine) ProjectFireAt(s domain.Snapshot, annualReturn decimal.Decimal) domain.FireProjection {
	swr := e.Assumptions.SafeWithdrawalRate
	netWorth := s.NetWorth()
	target := e.FireTarget(s.MonthlyExpenses)
	savings := s.MonthlySavings()
	currentAge := s.CurrentAge()

	p := domain.FireProjection{
		AnnualReturn:         annualReturn,
		FireTarget:           target,
		NetWorth:             netWorth,
		FreedomPercentage:    freedomPercentage(netWorth, target),
		CurrentAge:           currentAge,
		MonthlyPassiveIncome: netWorth.Mul(swr).Div(decimalTwelve),
		MonthlySavings:       savings,
		SavingsRate:          decimalZero,
	}
	if s.MonthlyIncome.GreaterThan(decimalZero) {
		p.SavingsRate = savings.Div(s.MonthlyIncome).Mul(decimalHundred)
	}
	p.FreedomYears, p.FreedomMonths = freedomRunway(netWorth, s.MonthlyExpenses)

	switch {
	case target.GreaterThan(decimalZero) && netWorth.GreaterThanOrEqual(target):
		p.FireDate = domain.Reached()
		p.FireAge = domain.AddAge(currentAge, 0)

	case savings.GreaterThan(decimalZero) && target.GreaterThan(netWorth):
		months, ok := e.monthsToTarget(netWorth, target, savings, annualReturn)
		if !ok {
			e.logger().Debugf("target %s not reached within %d months at %s", target.StringFixed(2), e.Assumptions.SearchCapMonths, annualReturn)
			p.FireDate = domain.NotAchievable()
			break
		}
		p.MonthsToFire = months
		p.CountdownDays = monthsToDays(months)
		p.CountdownYears = months / 12
		p.CountdownMonths = months % 12
		p.FireAge = domain.AddAge(currentAge, months/12)
		p.FireDate = domain.ProjectedDate(s.ReferenceDate().AddDate(0, months, 0))

	default:
		p.FireDate = domain.NotAchievable()
	}

	return p
}

// monthsToTarget compounds monthly until target is met, giving up at the
// search cap.
func (e *Engine) monthsToTarget(netWorth, target, monthlySavings, annualReturn decimal.Decimal) (int, bool) {
	growthFactor := decimalOne.Add(annualReturn.Div(decimalTwelve))
	projected := netWorth
	for month := 1; month <= e.Assumptions.SearchCapMonths; month++ {
		projected = roundMoney(projected.Mul(growthFactor).Add(monthlySavings))
		if projected.GreaterThanOrEqual(target) {
			return month, true
		}
	}
	return 0, false
}

// ProjectRange runs the point projection at the optimistic, default and
// pessimistic returns. The snapshot's expected return is ignored.
func (e *Engine) ProjectRange(s domain.Snapshot) domain.FireRange {
	return domain.FireRange{
		Optimistic:  e.ProjectFireAt(s, e.Assumptions.OptimisticReturn),
		Expected:    e.ProjectFireAt(s, e.Assumptions.DefaultReturn),
		Pessimistic: e.ProjectFireAt(s, e.Assumptions.PessimisticReturn),
	}
}

func freedomPercentage(netWorth, target decimal.Decimal) decimal.Decimal {
	if target.LessThanOrEqual(decimalZero) {
		return decimalZero
	}
	pct := netWorth.Div(target).Mul(decimalHundred)
	return maxDecimal(decimalZero, minDecimal(pct, decimalHundred))
}

// freedomRunway is how many years and months net worth alone would cover
// current expenses.
func freedomRunway(netWorth, monthlyExpenses decimal.Decimal) (int, int) {
	if monthlyExpenses.LessThanOrEqual(decimalZero) || netWorth.LessThanOrEqual(decimalZero) {
		return 0, 0
	}
	totalMonths := int(netWorth.Div(monthlyExpenses).Floor().IntPart())
	return totalMonths / 12, totalMonths % 12
}
