package calculation

import (
	"time"

	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectForward returns months+1 points of constant-return compounding at
// the snapshot's expected return (or the default).
func (e *Engine) ProjectForward(s domain.Snapshot, months int) []domain.ProjectionMonth {
	return e.ProjectForwardAt(s, months, s.ReturnOr(e.Assumptions.DefaultReturn))
}

// ProjectForwardAt returns months+1 points: index 0 is today with no
// contribution or growth, then one point per month where growth is taken on
// the opening balance before the month's savings are added.
func (e *Engine) ProjectForwardAt(s domain.Snapshot, months int, annualReturn decimal.Decimal) []domain.ProjectionMonth {
	if months < 0 {
		months = 0
	}
	swr := e.Assumptions.SafeWithdrawalRate
	monthlyReturn := annualReturn.Div(decimalTwelve)
	savings := s.MonthlySavings()
	start := s.ReferenceDate()

	points := make([]domain.ProjectionMonth, 0, months+1)
	netWorth := s.NetWorth()
	points = append(points, projectionPoint(s, start, 0, netWorth, swr, decimalZero, decimalZero))

	for m := 1; m <= months; m++ {
		growth := roundMoney(netWorth.Mul(monthlyReturn))
		netWorth = netWorth.Add(growth).Add(savings)
		points = append(points, projectionPoint(s, start, m, netWorth, swr, savings, growth))
	}
	return points
}

func projectionPoint(s domain.Snapshot, start time.Time, month int, netWorth, swr, contribution, growth decimal.Decimal) domain.ProjectionMonth {
	date := start.AddDate(0, month, 0)
	var age *int
	if s.DateOfBirth != nil && !s.DateOfBirth.IsZero() {
		a := domain.AgeAt(*s.DateOfBirth, date)
		age = &a
	}
	return domain.ProjectionMonth{
		Month:         month,
		Date:          date,
		NetWorth:      netWorth,
		PassiveIncome: netWorth.Mul(swr).Div(decimalTwelve),
		Age:           age,
		Contribution:  contribution,
		Growth:        growth,
	}
}
