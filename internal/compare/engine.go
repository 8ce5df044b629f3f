package compare

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/rgehrsitz/firego/internal/calculation"
	"github.com/rgehrsitz/firego/internal/domain"
)

// CompareEngine orchestrates scenario and withdrawal comparisons
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// Scenarios simulates the three trajectories and compares them against the
// current path.
func (ce *CompareEngine) Scenarios(s domain.Snapshot, years int) (*ScenarioComparison, error) {
	if years <= 0 {
		years = ce.CalcEngine.Assumptions.ScenarioYears
	}
	return ce.CompareScenarios(ce.CalcEngine.SimulateScenarios(s, years))
}

// CompareScenarios measures every path against the current path.
func (ce *CompareEngine) CompareScenarios(paths []domain.ScenarioPath) (*ScenarioComparison, error) {
	var base *domain.ScenarioPath
	for i := range paths {
		if paths[i].Name == domain.ScenarioCurrent {
			base = &paths[i]
			break
		}
	}
	if base == nil {
		return nil, fmt.Errorf("base scenario %s not found", domain.ScenarioCurrent)
	}

	baseResult := ce.MetricsCalculator.CalculateMetrics(*base)
	alternatives := []ScenarioResult{}
	for _, path := range paths {
		if path.Name == base.Name {
			continue
		}
		altResult := ce.MetricsCalculator.CalculateMetrics(path)
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(altResult, baseResult))
	}

	compSet := &ScenarioComparison{
		BaseScenarioName:   base.Name,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	if n := len(base.Months); n > 0 {
		compSet.Years = (n - 1) / 12
	}
	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet, nil
}

// CompareStrategies runs every withdrawal strategy for the plan and ranks
// them: surviving strategies first, then by years funded, then by final
// balance. The plan's own strategy tag is ignored.
func (ce *CompareEngine) CompareStrategies(plan domain.WithdrawalPlan) (*StrategyComparison, error) {
	results := make([]StrategyResult, 0, len(domain.AllStrategies()))
	for _, strategy := range domain.AllStrategies() {
		p := plan
		p.Strategy = strategy
		result, err := ce.CalcEngine.SimulateWithdrawal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to simulate %s: %w", strategy, err)
		}
		results = append(results, ce.MetricsCalculator.CalculateStrategy(result))
	}

	slices.SortStableFunc(results, func(a, b StrategyResult) int {
		if a.Depleted != b.Depleted {
			if a.Depleted {
				return 1
			}
			return -1
		}
		if c := cmp.Compare(b.SuccessYears, a.SuccessYears); c != 0 {
			return c
		}
		return b.FinalBalance.Cmp(a.FinalBalance)
	})
	for i := range results {
		results[i].Rank = i + 1
	}

	compSet := &StrategyComparison{Plan: plan, Results: results}
	compSet.Recommendations = GenerateStrategyRecommendations(compSet)
	return compSet, nil
}
