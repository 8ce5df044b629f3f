package compare

import (
	"strings"
	"testing"
	"time"

	"github.com/rgehrsitz/firego/internal/calculation"
	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() domain.Snapshot {
	dob := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)
	return domain.Snapshot{
		TotalAssets:     decimal.NewFromInt(50000),
		MonthlyIncome:   decimal.NewFromInt(3000),
		MonthlyExpenses: decimal.NewFromInt(2000),
		DateOfBirth:     &dob,
		AsOf:            time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testPlan() domain.WithdrawalPlan {
	r := decimal.NewFromFloat(0.05)
	return domain.WithdrawalPlan{
		StartingPortfolio: decimal.NewFromInt(400000),
		RetirementAge:     60,
		TargetAge:         95,
		Strategy:          domain.StrategyClassic,
		YearlyExpenses:    decimal.NewFromInt(40000),
		AnnualReturn:      &r,
	}
}

func TestCompareEngine_Scenarios(t *testing.T) {
	ce := NewCompareEngine(calculation.NewEngine())

	compSet, err := ce.Scenarios(testSnapshot(), 40)
	require.NoError(t, err)

	assert.Equal(t, domain.ScenarioCurrent, compSet.BaseScenarioName)
	assert.Equal(t, 40, compSet.Years)
	require.NotNil(t, compSet.BaseResult)
	require.Len(t, compSet.AlternativeResults, 2)

	drifter, optimizer := compSet.AlternativeResults[0], compSet.AlternativeResults[1]
	assert.Equal(t, domain.ScenarioDrifter, drifter.ScenarioName)
	assert.Equal(t, domain.ScenarioOptimizer, optimizer.ScenarioName)

	require.NotNil(t, optimizer.FireMonthDiff)
	assert.Less(t, *optimizer.FireMonthDiff, 0)
	assert.True(t, optimizer.NetWorthDiffFromBase.IsPositive())
	assert.True(t, drifter.NetWorthDiffFromBase.IsNegative())

	joined := strings.Join(compSet.Recommendations, "\n")
	assert.Contains(t, joined, "The Optimizer reaches FIRE")
	assert.Contains(t, joined, "Best Net Worth: The Optimizer")
}

func TestCompareEngine_CompareScenariosRequiresCurrent(t *testing.T) {
	ce := NewCompareEngine(calculation.NewEngine())
	paths := ce.CalcEngine.SimulateScenarios(testSnapshot(), 5)

	_, err := ce.CompareScenarios([]domain.ScenarioPath{paths[0], paths[2]})
	assert.Error(t, err)
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	mc := NewMetricsCalculator()
	baseMonth, altMonth := 200, 150

	base := ScenarioResult{FinalNetWorth: decimal.NewFromInt(100000), FireMonth: &baseMonth}
	alt := ScenarioResult{FinalNetWorth: decimal.NewFromInt(150000), FireMonth: &altMonth}

	got := mc.CalculateComparison(alt, base)
	assert.True(t, got.NetWorthDiffFromBase.Equal(decimal.NewFromInt(50000)))
	assert.True(t, got.NetWorthPctFromBase.Equal(decimal.NewFromInt(50)))
	require.NotNil(t, got.FireMonthDiff)
	assert.Equal(t, -50, *got.FireMonthDiff)

	never := mc.CalculateComparison(ScenarioResult{FinalNetWorth: decimal.NewFromInt(1)}, base)
	assert.Nil(t, never.FireMonthDiff)

	zeroBase := mc.CalculateComparison(alt, ScenarioResult{})
	assert.True(t, zeroBase.NetWorthPctFromBase.IsZero())
}

func TestGenerateRecommendations_BaseNeverReaches(t *testing.T) {
	month := 300
	compSet := &ScenarioComparison{
		Years:      20,
		BaseResult: &ScenarioResult{Label: "Current Path"},
		AlternativeResults: []ScenarioResult{
			{Label: "The Optimizer", FireMonth: &month},
		},
	}

	recs := GenerateRecommendations(compSet)
	require.Len(t, recs, 2)
	assert.Equal(t, "Current Path does not reach FIRE within 20 years", recs[0])
	assert.Equal(t, "The Optimizer reaches FIRE after 25 years", recs[1])
}

func TestCompareEngine_CompareStrategies(t *testing.T) {
	ce := NewCompareEngine(calculation.NewEngine())

	compSet, err := ce.CompareStrategies(testPlan())
	require.NoError(t, err)
	require.Len(t, compSet.Results, 4)

	seenDepleted := false
	for i, r := range compSet.Results {
		assert.Equal(t, i+1, r.Rank)
		assert.Equal(t, 35, r.TotalYears)
		assert.NotEmpty(t, r.Description)
		if r.Depleted {
			seenDepleted = true
		} else {
			assert.False(t, seenDepleted, "surviving strategies rank ahead of depleted ones")
		}
		if i > 0 {
			prev := compSet.Results[i-1]
			if prev.Depleted == r.Depleted {
				assert.GreaterOrEqual(t, prev.SuccessYears, r.SuccessYears)
			}
		}
	}

	best := compSet.Best()
	require.NotNil(t, best)
	assert.False(t, best.Depleted)
	assert.Equal(t, domain.StrategyClassic, compSet.Plan.Strategy, "plan is reported unchanged")

	var classic StrategyResult
	for _, r := range compSet.Results {
		if r.Strategy == domain.StrategyClassic {
			classic = r
		}
	}
	assert.True(t, classic.Depleted)
	assert.Contains(t, strings.Join(compSet.Recommendations, "\n"), "Avoid classic")
}

func TestCompareEngine_CompareStrategiesEmptyHorizon(t *testing.T) {
	ce := NewCompareEngine(calculation.NewEngine())
	plan := testPlan()
	plan.TargetAge = plan.RetirementAge

	compSet, err := ce.CompareStrategies(plan)
	require.NoError(t, err)
	for _, r := range compSet.Results {
		assert.Zero(t, r.TotalYears)
		assert.False(t, r.Depleted)
	}
}

func TestMonthsText(t *testing.T) {
	assert.Equal(t, "7 months", monthsText(7))
	assert.Equal(t, "2 years", monthsText(24))
	assert.Equal(t, "17 years 11 months", monthsText(215))
}
