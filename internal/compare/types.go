package compare

import (
	"fmt"

	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/shopspring/decimal"
)

// ScenarioResult holds the comparison metrics for one trajectory
type ScenarioResult struct {
	ScenarioName domain.ScenarioName `json:"scenarioName"`
	Label        string              `json:"label"`

	// Key Metrics
	FinalNetWorth      decimal.Decimal `json:"finalNetWorth"`
	FinalPassiveIncome decimal.Decimal `json:"finalPassiveIncome"`
	FireMonth          *int            `json:"fireMonth"`
	FireAge            *int            `json:"fireAge"`

	// Comparison to Base
	NetWorthDiffFromBase decimal.Decimal `json:"netWorthDiffFromBase"`
	NetWorthPctFromBase  decimal.Decimal `json:"netWorthPctFromBase"`
	FireMonthDiff        *int            `json:"fireMonthDiff"` // nil unless both paths reach FIRE
}

// Reached reports whether the trajectory crossed its target.
func (r ScenarioResult) Reached() bool { return r.FireMonth != nil }

// ScenarioComparison is the current path measured against its alternatives
type ScenarioComparison struct {
	BaseScenarioName   domain.ScenarioName `json:"baseScenarioName"`
	Years              int                 `json:"years"`
	BaseResult         *ScenarioResult     `json:"baseResult"`
	AlternativeResults []ScenarioResult    `json:"alternativeResults"`
	Recommendations    []string            `json:"recommendations"`
	ConfigPath         string              `json:"configPath,omitempty"`
}

// StrategyResult summarizes one withdrawal schedule
type StrategyResult struct {
	Rank                int                       `json:"rank"`
	Strategy            domain.WithdrawalStrategy `json:"strategy"`
	Description         string                    `json:"description"`
	FirstYearWithdrawal decimal.Decimal           `json:"firstYearWithdrawal"`
	TotalWithdrawn      decimal.Decimal           `json:"totalWithdrawn"`
	FinalBalance        decimal.Decimal           `json:"finalBalance"`
	SuccessYears        int                       `json:"successYears"`
	TotalYears          int                       `json:"totalYears"`
	Depleted            bool                      `json:"depleted"`
}

// StrategyComparison ranks every withdrawal strategy for one plan
type StrategyComparison struct {
	Plan            domain.WithdrawalPlan `json:"plan"`
	Results         []StrategyResult      `json:"results"`
	Recommendations []string              `json:"recommendations"`
	ConfigPath      string                `json:"configPath,omitempty"`
}

// Best returns the top ranked strategy, or nil for an empty comparison.
func (sc *StrategyComparison) Best() *StrategyResult {
	if len(sc.Results) == 0 {
		return nil
	}
	return &sc.Results[0]
}

// MetricsCalculator extracts key metrics from simulated paths
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the comparison metrics for a scenario path
func (mc *MetricsCalculator) CalculateMetrics(path domain.ScenarioPath) ScenarioResult {
	final := path.Final()
	return ScenarioResult{
		ScenarioName:       path.Name,
		Label:              path.Label,
		FinalNetWorth:      final.NetWorth,
		FinalPassiveIncome: final.PassiveIncome,
		FireMonth:          path.FireMonth,
		FireAge:            path.FireAge,
	}
}

// CalculateComparison computes deltas between a scenario and the base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ScenarioResult) ScenarioResult {
	scenario.NetWorthDiffFromBase = scenario.FinalNetWorth.Sub(base.FinalNetWorth)

	if !base.FinalNetWorth.IsZero() {
		scenario.NetWorthPctFromBase = scenario.NetWorthDiffFromBase.
			Div(base.FinalNetWorth.Abs()).
			Mul(decimal.NewFromInt(100))
	}

	if scenario.Reached() && base.Reached() {
		diff := *scenario.FireMonth - *base.FireMonth
		scenario.FireMonthDiff = &diff
	}

	return scenario
}

// CalculateStrategy summarizes a withdrawal result
func (mc *MetricsCalculator) CalculateStrategy(result domain.WithdrawalResult) StrategyResult {
	return StrategyResult{
		Strategy:            result.Strategy,
		Description:         result.Strategy.Description(),
		FirstYearWithdrawal: result.YearlyWithdrawal,
		TotalWithdrawn:      result.TotalWithdrawn(),
		FinalBalance:        result.FinalBalance(),
		SuccessYears:        result.SuccessYears,
		TotalYears:          result.TotalYears,
		Depleted:            result.Depleted,
	}
}

// GenerateRecommendations creates recommendations based on scenario results
func GenerateRecommendations(compSet *ScenarioComparison) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil {
		return recommendations
	}
	base := compSet.BaseResult

	if !base.Reached() {
		recommendations = append(recommendations,
			fmt.Sprintf("%s does not reach FIRE within %d years", base.Label, compSet.Years))
	}

	for _, alt := range compSet.AlternativeResults {
		switch {
		case alt.FireMonthDiff != nil && *alt.FireMonthDiff < 0:
			recommendations = append(recommendations,
				fmt.Sprintf("%s reaches FIRE %s earlier than %s", alt.Label, monthsText(-*alt.FireMonthDiff), base.Label))
		case alt.FireMonthDiff != nil && *alt.FireMonthDiff > 0:
			recommendations = append(recommendations,
				fmt.Sprintf("%s delays FIRE by %s", alt.Label, monthsText(*alt.FireMonthDiff)))
		case alt.Reached() && !base.Reached():
			recommendations = append(recommendations,
				fmt.Sprintf("%s reaches FIRE after %s", alt.Label, monthsText(*alt.FireMonth)))
		case !alt.Reached() && base.Reached():
			recommendations = append(recommendations,
				fmt.Sprintf("%s never reaches FIRE within %d years", alt.Label, compSet.Years))
		}
	}

	// Find best final net worth
	best := base
	for i := range compSet.AlternativeResults {
		if compSet.AlternativeResults[i].FinalNetWorth.GreaterThan(best.FinalNetWorth) {
			best = &compSet.AlternativeResults[i]
		}
	}
	if best != base {
		recommendations = append(recommendations,
			"Best Net Worth: "+best.Label+" ends $"+best.NetWorthDiffFromBase.StringFixed(0)+
				" ahead of "+base.Label)
	}

	return recommendations
}

// GenerateStrategyRecommendations describes the ranked strategies
func GenerateStrategyRecommendations(compSet *StrategyComparison) []string {
	recommendations := []string{}

	best := compSet.Best()
	if best == nil {
		return recommendations
	}

	if best.Depleted {
		recommendations = append(recommendations,
			fmt.Sprintf("Every strategy depletes the portfolio; %s lasts longest at %d of %d years",
				best.Strategy, best.SuccessYears, best.TotalYears))
		return recommendations
	}

	recommendations = append(recommendations,
		fmt.Sprintf("Best Strategy: %s lasts all %d years and ends with $%s",
			best.Strategy, best.TotalYears, best.FinalBalance.StringFixed(0)))

	for _, r := range compSet.Results[1:] {
		if r.Depleted {
			recommendations = append(recommendations,
				fmt.Sprintf("Avoid %s: the portfolio runs out after %d years", r.Strategy, r.SuccessYears))
		}
	}

	// Find highest total spending among survivors
	mostSpent := best
	for i := range compSet.Results {
		r := &compSet.Results[i]
		if !r.Depleted && r.TotalWithdrawn.GreaterThan(mostSpent.TotalWithdrawn) {
			mostSpent = r
		}
	}
	if mostSpent != best {
		recommendations = append(recommendations,
			fmt.Sprintf("Most Spending: %s withdraws $%s more over retirement than %s",
				mostSpent.Strategy, mostSpent.TotalWithdrawn.Sub(best.TotalWithdrawn).StringFixed(0), best.Strategy))
	}

	return recommendations
}

func monthsText(months int) string {
	if months < 12 {
		return fmt.Sprintf("%d months", months)
	}
	years, rest := months/12, months%12
	if rest == 0 {
		return fmt.Sprintf("%d years", years)
	}
	return fmt.Sprintf("%d years %d months", years, rest)
}
