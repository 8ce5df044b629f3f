package calculation

import (
	"testing"

	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retirementPlan(strategy domain.WithdrawalStrategy) domain.WithdrawalPlan {
	r := d(0.07)
	return domain.WithdrawalPlan{
		StartingPortfolio: d(1000000),
		RetirementAge:     60,
		TargetAge:         65,
		Strategy:          strategy,
		YearlyExpenses:    d(40000),
		AnnualReturn:      &r,
	}
}

func TestSimulateWithdrawal_Classic(t *testing.T) {
	engine := NewEngine()
	result, err := engine.SimulateWithdrawal(retirementPlan(domain.StrategyClassic))
	require.NoError(t, err)

	require.Len(t, result.Schedule, 5)
	assert.Equal(t, 5, result.TotalYears)
	assert.Equal(t, 5, result.SuccessYears)
	assert.False(t, result.Depleted)
	assert.True(t, result.YearlyWithdrawal.Equal(d(40000)))
	assert.InDelta(t, 3333.3333, result.MonthlyWithdrawal.InexactFloat64(), 0.001)

	expected := []string{"1027200", "1056304", "1087445.28", "1120766.4496", "1156420.101072"}
	for i, want := range expected {
		row := result.Schedule[i]
		assert.Equal(t, 60+i, row.Age)
		assert.Equal(t, i+1, row.Year)
		assert.True(t, row.Withdrawal.Equal(d(40000)), "year %d", i)
		assert.True(t, row.PensionIncome.IsZero(), "below pension age")
		assert.True(t, row.EndBalance.Equal(decimal.RequireFromString(want)), "year %d: got %s want %s", i, row.EndBalance, want)
		if i > 0 {
			assert.True(t, row.StartBalance.Equal(result.Schedule[i-1].EndBalance))
		}
	}
	assert.True(t, result.FinalBalance().Equal(decimal.RequireFromString("1156420.101072")))
	assert.True(t, result.TotalWithdrawn().Equal(d(200000)))
}

func TestSimulateWithdrawal_Variable(t *testing.T) {
	engine := NewEngine()
	result, err := engine.SimulateWithdrawal(retirementPlan(domain.StrategyVariable))
	require.NoError(t, err)

	assert.True(t, result.Schedule[0].Withdrawal.Equal(d(40000)), "4%% of 1M")
	assert.True(t, result.Schedule[1].Withdrawal.Equal(d(41088)), "4%% of 1027200")
}

func TestSimulateWithdrawal_VariableFloor(t *testing.T) {
	engine := NewEngine()
	plan := retirementPlan(domain.StrategyVariable)
	plan.StartingPortfolio = d(300000)

	result, err := engine.SimulateWithdrawal(plan)
	require.NoError(t, err)
	assert.True(t, result.Schedule[0].Withdrawal.Equal(d(20000)), "half the need beats 4%% of 300k")
}

func TestSimulateWithdrawal_GuardrailsInflatesInsideBand(t *testing.T) {
	engine := NewEngine()
	result, err := engine.SimulateWithdrawal(retirementPlan(domain.StrategyGuardrails))
	require.NoError(t, err)

	assert.True(t, result.Schedule[0].Withdrawal.Equal(d(40000)))
	assert.True(t, result.Schedule[1].Withdrawal.Equal(d(40800)), "got %s", result.Schedule[1].Withdrawal)
	assert.True(t, result.Schedule[2].Withdrawal.Equal(d(41616)), "got %s", result.Schedule[2].Withdrawal)
}

func TestSimulateWithdrawal_GuardrailsRaiseIsCapped(t *testing.T) {
	engine := NewEngine()
	plan := retirementPlan(domain.StrategyGuardrails)
	r := d(0.25)
	plan.AnnualReturn = &r

	result, err := engine.SimulateWithdrawal(plan)
	require.NoError(t, err)
	assert.True(t, result.Schedule[1].Withdrawal.Equal(d(44880)), "got %s", result.Schedule[1].Withdrawal)
	assert.True(t, result.Schedule[2].Withdrawal.Equal(d(48960)), "raise is capped at 120%% of the first year, got %s", result.Schedule[2].Withdrawal)
}

func TestSimulateWithdrawal_GuardrailsCut(t *testing.T) {
	engine := NewEngine()
	plan := retirementPlan(domain.StrategyGuardrails)
	r := d(-0.25)
	plan.AnnualReturn = &r

	result, err := engine.SimulateWithdrawal(plan)
	require.NoError(t, err)
	assert.True(t, result.Schedule[1].Withdrawal.Equal(d(36720)), "got %s", result.Schedule[1].Withdrawal)
	assert.True(t, result.Schedule[2].Withdrawal.Equal(d(33708.96)), "got %s", result.Schedule[2].Withdrawal)
	assert.True(t, result.Schedule[3].Withdrawal.Equal(d(32640)), "cut is floored at 80%% of the first year, got %s", result.Schedule[3].Withdrawal)
}

func TestSimulateWithdrawal_Bucket(t *testing.T) {
	engine := NewEngine()
	result, err := engine.SimulateWithdrawal(retirementPlan(domain.StrategyBucket))
	require.NoError(t, err)

	first := result.Schedule[0]
	assert.True(t, first.StartBalance.Equal(d(1000000)))
	assert.True(t, first.Withdrawal.Equal(d(40000)))
	assert.True(t, first.Growth.Equal(d(47500)), "bonds at 3%% plus stocks at 7%%, got %s", first.Growth)
	assert.True(t, first.EndBalance.Equal(d(1007500)), "got %s", first.EndBalance)
}

func TestSimulateWithdrawal_Depletion(t *testing.T) {
	engine := NewEngine()
	plan := retirementPlan(domain.StrategyClassic)
	plan.StartingPortfolio = d(100000)
	zero := decimal.Zero
	plan.AnnualReturn = &zero

	result, err := engine.SimulateWithdrawal(plan)
	require.NoError(t, err)

	assert.True(t, result.Depleted)
	assert.Equal(t, 2, result.SuccessYears)
	require.Len(t, result.Schedule, 5, "the schedule runs to the target age")
	assert.True(t, result.Schedule[2].Withdrawal.Equal(d(20000)))
	for _, row := range result.Schedule[2:] {
		assert.True(t, row.EndBalance.IsZero())
	}
	assert.True(t, result.Schedule[4].Withdrawal.IsZero())
}

func TestSimulateWithdrawal_PensionOffsetsNeed(t *testing.T) {
	engine := NewEngine()
	plan := retirementPlan(domain.StrategyClassic)
	plan.RetirementAge = 66
	plan.TargetAge = 69
	zero := decimal.Zero
	plan.AnnualReturn = &zero

	result, err := engine.SimulateWithdrawal(plan)
	require.NoError(t, err)

	assert.True(t, result.Schedule[0].PensionIncome.IsZero())
	assert.True(t, result.Schedule[0].Withdrawal.Equal(d(40000)))
	assert.True(t, result.Schedule[1].PensionIncome.Equal(d(12000)))
	assert.True(t, result.Schedule[1].Withdrawal.Equal(d(28000)))
}

func TestSimulateWithdrawal_EmptyHorizon(t *testing.T) {
	engine := NewEngine()

	for _, target := range []int{60, 55} {
		plan := retirementPlan(domain.StrategyClassic)
		plan.TargetAge = target

		result, err := engine.SimulateWithdrawal(plan)
		require.NoError(t, err)
		assert.Empty(t, result.Schedule)
		assert.Zero(t, result.TotalYears)
		assert.Zero(t, result.SuccessYears)
		assert.False(t, result.Depleted)
		assert.True(t, result.YearlyWithdrawal.IsZero())
		assert.True(t, result.FinalBalance().IsZero())
	}
}

func TestSimulateWithdrawal_UnknownStrategy(t *testing.T) {
	engine := NewEngine()
	_, err := engine.SimulateWithdrawal(retirementPlan("annuity"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownStrategy)
	assert.Contains(t, err.Error(), "annuity")
}

func TestSimulateWithdrawal_StrategyTagIsCaseInsensitive(t *testing.T) {
	engine := NewEngine()
	result, err := engine.SimulateWithdrawal(retirementPlan("Guardrails"))

	require.NoError(t, err)
	assert.Equal(t, domain.StrategyGuardrails, result.Strategy)
}

func TestSimulateWithdrawal_DefaultReturn(t *testing.T) {
	engine := NewEngine()
	plan := retirementPlan(domain.StrategyClassic)
	plan.AnnualReturn = nil

	result, err := engine.SimulateWithdrawal(plan)
	require.NoError(t, err)
	assert.True(t, result.Schedule[0].Growth.Equal(d(67200)))
}

func TestSimulateWithdrawal_AllStrategiesStayNonNegative(t *testing.T) {
	engine := NewEngine()
	for _, strategy := range domain.AllStrategies() {
		plan := retirementPlan(strategy)
		plan.StartingPortfolio = d(250000)
		plan.TargetAge = 95

		result, err := engine.SimulateWithdrawal(plan)
		require.NoError(t, err, strategy)
		require.Len(t, result.Schedule, 35)
		for _, row := range result.Schedule {
			assert.False(t, row.EndBalance.IsNegative(), "%s age %d", strategy, row.Age)
			assert.False(t, row.Withdrawal.IsNegative(), "%s age %d", strategy, row.Age)
		}
		assert.LessOrEqual(t, result.SuccessYears, result.TotalYears)
	}
}
