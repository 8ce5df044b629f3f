package calculation

import (
	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	liquidShare          = decimal.NewFromFloat(0.3)
	emergencyTargetMonth = decimal.NewFromInt(6)
	emergencyMonthCap    = decimal.NewFromInt(1000)
	debtFreeRatio        = decimal.NewFromInt(10)
	diversifiedRatio     = decimal.NewFromInt(3)
	targetSavingsRate    = decimal.NewFromFloat(0.30)
	subScoreMax          = decimal.NewFromInt(25)
)

// ScoreResilience computes the static 0-100 composite from the snapshot.
func (e *Engine) ScoreResilience(s domain.Snapshot) domain.ResilienceScore {
	score := domain.ResilienceScore{
		Emergency:       emergencyScore(s),
		Diversification: diversificationScore(s),
		DebtRatio:       debtRatioScore(s),
		SavingsRate:     savingsRateScore(s),
	}
	score.Total = score.Emergency + score.Diversification + score.DebtRatio + score.SavingsRate
	score.Label = domain.LabelForScore(score.Total)
	return score
}

// subScore scales a 0..1 fraction onto 0..25, rounded and clamped.
func subScore(fraction decimal.Decimal) int {
	v := roundInt(fraction.Mul(subScoreMax))
	return min(25, max(0, v))
}

// emergencyScore rewards six months of expenses held in liquid assets,
// estimated as 30% of total assets.
func emergencyScore(s domain.Snapshot) int {
	if s.MonthlyExpenses.LessThanOrEqual(decimalZero) {
		return 0
	}
	liquid := s.TotalAssets.Mul(liquidShare)
	months := minDecimal(liquid.Div(s.MonthlyExpenses), emergencyMonthCap)
	return subScore(months.Div(emergencyTargetMonth))
}

func diversificationScore(s domain.Snapshot) int {
	var ratio decimal.Decimal
	switch {
	case s.TotalDebts.GreaterThan(decimalZero):
		ratio = s.TotalAssets.Div(s.TotalDebts)
	case s.TotalAssets.GreaterThan(decimalZero):
		ratio = debtFreeRatio
	default:
		ratio = decimalZero
	}
	return subScore(minDecimal(ratio.Div(diversifiedRatio), decimalOne))
}

func debtRatioScore(s domain.Snapshot) int {
	debtPct := decimalOne
	if s.TotalAssets.GreaterThan(decimalZero) {
		debtPct = s.TotalDebts.Div(s.TotalAssets)
	}
	return subScore(decimalOne.Sub(minDecimal(debtPct, decimalOne)))
}

func savingsRateScore(s domain.Snapshot) int {
	if s.MonthlyIncome.LessThanOrEqual(decimalZero) {
		return 0
	}
	rate := s.MonthlySavings().Div(s.MonthlyIncome)
	return subScore(minDecimal(rate.Div(targetSavingsRate), decimalOne))
}
