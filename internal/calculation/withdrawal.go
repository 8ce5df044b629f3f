package calculation

import (
	"fmt"

	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	variableFloorShare = decimal.NewFromFloat(0.5)

	guardrailUpperReturn = decimal.NewFromFloat(0.20)
	guardrailLowerReturn = decimal.NewFromFloat(-0.20)
	guardrailRaise       = decimal.NewFromFloat(1.10)
	guardrailCut         = decimal.NewFromFloat(0.90)
	guardrailCeiling     = decimal.NewFromFloat(1.20)
	guardrailFloor       = decimal.NewFromFloat(0.80)

	bucketCashShare   = decimal.NewFromFloat(0.15)
	bucketBondShare   = decimal.NewFromFloat(0.30)
	bucketStockShare  = decimal.NewFromFloat(0.55)
	bucketBondReturn  = decimal.NewFromFloat(0.03)
	bucketCashYears   = decimal.NewFromInt(3)
	bucketRefillShare = decimal.NewFromFloat(0.10)
)

// withdrawalState carries the running values of the year loop.
type withdrawalState struct {
	balance decimal.Decimal

	// guardrails
	running  decimal.Decimal
	baseline decimal.Decimal

	// bucket
	cash   decimal.Decimal
	bonds  decimal.Decimal
	stocks decimal.Decimal
}

// SimulateWithdrawal produces a yearly schedule from the retirement age to
// the target age. A non-positive horizon yields an empty result. Only an
// unknown strategy tag is an error.
func (e *Engine) SimulateWithdrawal(plan domain.WithdrawalPlan) (domain.WithdrawalResult, error) {
	strategy, err := domain.ParseWithdrawalStrategy(string(plan.Strategy))
	if err != nil {
		return domain.WithdrawalResult{}, fmt.Errorf("simulate withdrawal: %w", err)
	}

	result := domain.WithdrawalResult{
		Strategy:          strategy,
		MonthlyWithdrawal: decimalZero,
		YearlyWithdrawal:  decimalZero,
		Schedule:          []domain.WithdrawalYear{},
	}

	totalYears := plan.TargetAge - plan.RetirementAge
	if totalYears <= 0 {
		e.logger().Debugf("withdrawal horizon %d..%d is empty", plan.RetirementAge, plan.TargetAge)
		return result, nil
	}
	result.TotalYears = totalYears

	annualReturn := e.Assumptions.DefaultReturn
	if plan.AnnualReturn != nil {
		annualReturn = *plan.AnnualReturn
	}

	state := withdrawalState{balance: plan.StartingPortfolio}
	if strategy == domain.StrategyBucket {
		state.cash = plan.StartingPortfolio.Mul(bucketCashShare)
		state.bonds = plan.StartingPortfolio.Mul(bucketBondShare)
		state.stocks = plan.StartingPortfolio.Mul(bucketStockShare)
	}

	for year := 0; year < totalYears; year++ {
		age := plan.RetirementAge + year
		pension := decimalZero
		if age >= e.Assumptions.StatePensionAge {
			pension = e.Assumptions.StatePensionAnnual
		}
		needed := maxDecimal(decimalZero, plan.YearlyExpenses.Sub(pension))

		row := domain.WithdrawalYear{
			Age:           age,
			Year:          year + 1,
			StartBalance:  state.balance,
			PensionIncome: pension,
		}

		switch strategy {
		case domain.StrategyClassic:
			row.Withdrawal = minDecimal(needed, state.balance)
			row.Growth = state.balance.Sub(row.Withdrawal).Mul(annualReturn)
			state.balance = state.balance.Sub(row.Withdrawal).Add(row.Growth)

		case domain.StrategyVariable:
			rule := maxDecimal(state.balance.Mul(e.Assumptions.SafeWithdrawalRate), needed.Mul(variableFloorShare))
			row.Withdrawal = minDecimal(rule, state.balance)
			row.Growth = state.balance.Sub(row.Withdrawal).Mul(annualReturn)
			state.balance = state.balance.Sub(row.Withdrawal).Add(row.Growth)

		case domain.StrategyGuardrails:
			if year == 0 {
				state.running = needed
				state.baseline = needed
			} else {
				state.running = e.adjustGuardrail(state, result.Schedule[year-1])
			}
			row.Withdrawal = minDecimal(state.running, state.balance)
			row.Growth = state.balance.Sub(row.Withdrawal).Mul(annualReturn)
			state.balance = state.balance.Sub(row.Withdrawal).Add(row.Growth)

		case domain.StrategyBucket:
			row.Withdrawal, row.Growth = drawBuckets(&state, needed, plan.YearlyExpenses, annualReturn)
		}

		state.balance = roundMoney(maxDecimal(decimalZero, state.balance))
		row.Withdrawal = roundMoney(row.Withdrawal)
		row.Growth = roundMoney(row.Growth)
		row.EndBalance = state.balance
		result.Schedule = append(result.Schedule, row)

		if !result.Depleted && row.EndBalance.LessThanOrEqual(decimalZero) {
			result.Depleted = true
			result.SuccessYears = year
		}
	}

	if !result.Depleted {
		result.SuccessYears = totalYears
	}
	result.YearlyWithdrawal = result.Schedule[0].Withdrawal
	result.MonthlyWithdrawal = result.YearlyWithdrawal.Div(decimalTwelve)
	return result, nil
}

// adjustGuardrail moves the running withdrawal by the previous year's
// realized return, bounded to the baseline band, then applies inflation.
func (e *Engine) adjustGuardrail(state withdrawalState, prev domain.WithdrawalYear) decimal.Decimal {
	running := state.running
	invested := prev.StartBalance.Sub(prev.Withdrawal)
	realized := decimalZero
	if invested.GreaterThan(decimalZero) {
		realized = prev.Growth.Div(invested)
	}

	switch {
	case realized.GreaterThan(guardrailUpperReturn):
		running = minDecimal(running.Mul(guardrailRaise), state.baseline.Mul(guardrailCeiling))
	case realized.LessThan(guardrailLowerReturn):
		running = maxDecimal(running.Mul(guardrailCut), state.baseline.Mul(guardrailFloor))
	}
	return roundMoney(running.Mul(decimalOne.Add(e.Assumptions.Inflation)))
}

// drawBuckets withdraws needed from cash, then bonds, then stocks, grows the
// invested pools and refills cash from stocks. It updates the pools and the
// total balance in place.
func drawBuckets(state *withdrawalState, needed, yearlyExpenses, annualReturn decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	remaining := needed
	for _, pool := range []*decimal.Decimal{&state.cash, &state.bonds, &state.stocks} {
		take := minDecimal(remaining, maxDecimal(decimalZero, *pool))
		*pool = pool.Sub(take)
		remaining = remaining.Sub(take)
	}
	withdrawal := needed.Sub(remaining)

	bondGrowth := state.bonds.Mul(bucketBondReturn)
	stockGrowth := state.stocks.Mul(annualReturn)
	state.bonds = roundMoney(state.bonds.Add(bondGrowth))
	state.stocks = roundMoney(state.stocks.Add(stockGrowth))

	cashTarget := yearlyExpenses.Mul(bucketCashYears)
	if state.cash.LessThan(cashTarget) && state.stocks.GreaterThan(cashTarget) {
		refill := minDecimal(cashTarget.Sub(state.cash), state.stocks.Mul(bucketRefillShare))
		state.cash = roundMoney(state.cash.Add(refill))
		state.stocks = roundMoney(state.stocks.Sub(refill))
	}

	state.balance = state.cash.Add(state.bonds).Add(state.stocks)
	return withdrawal, bondGrowth.Add(stockGrowth)
}
