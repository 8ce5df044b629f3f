package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionMonth is one point of a month-indexed trajectory.
type ProjectionMonth struct {
	Month         int             `json:"month"`
	Date          time.Time       `json:"date"`
	NetWorth      decimal.Decimal `json:"netWorth"`
	PassiveIncome decimal.Decimal `json:"passiveIncome"`
	Age           *int            `json:"age"`
	Contribution  decimal.Decimal `json:"contribution"`
	Growth        decimal.Decimal `json:"growth"`
}

// ScenarioName identifies one of the behavioral trajectories.
type ScenarioName string

const (
	ScenarioDrifter   ScenarioName = "drifter"
	ScenarioCurrent   ScenarioName = "current"
	ScenarioOptimizer ScenarioName = "optimizer"
)

// ScenarioProfile parameterizes a behavioral trajectory.
type ScenarioProfile struct {
	Name  ScenarioName `json:"name"`
	Label string       `json:"label"`
	Color string       `json:"color"`

	ExpenseGrowth          decimal.Decimal `json:"expenseGrowth"`     // applied every 12 months
	SavingsGrowth          decimal.Decimal `json:"savingsGrowth"`     // applied every 12 months
	ExpenseMultiplier      decimal.Decimal `json:"expenseMultiplier"` // applied once at the start
	ContributionMultiplier decimal.Decimal `json:"contributionMultiplier"`
}

// DefaultScenarioProfiles returns drifter, current and optimizer in that order.
func DefaultScenarioProfiles() []ScenarioProfile {
	return []ScenarioProfile{
		{
			Name:                   ScenarioDrifter,
			Label:                  "The Drifter",
			Color:                  "#ef4444",
			ExpenseGrowth:          decimal.NewFromFloat(0.03),
			SavingsGrowth:          decimal.NewFromFloat(-0.02),
			ExpenseMultiplier:      decimal.NewFromFloat(1.05),
			ContributionMultiplier: decimal.NewFromFloat(0.8),
		},
		{
			Name:                   ScenarioCurrent,
			Label:                  "Current Path",
			Color:                  "#3b82f6",
			ExpenseGrowth:          decimal.Zero,
			SavingsGrowth:          decimal.Zero,
			ExpenseMultiplier:      decimal.NewFromInt(1),
			ContributionMultiplier: decimal.NewFromInt(1),
		},
		{
			Name:                   ScenarioOptimizer,
			Label:                  "The Optimizer",
			Color:                  "#22c55e",
			ExpenseGrowth:          decimal.NewFromFloat(-0.01),
			SavingsGrowth:          decimal.NewFromFloat(0.02),
			ExpenseMultiplier:      decimal.NewFromFloat(0.9),
			ContributionMultiplier: decimal.NewFromFloat(1.2),
		},
	}
}

// ScenarioPath is the trajectory of one behavioral scenario.
type ScenarioPath struct {
	Name   ScenarioName      `json:"name"`
	Label  string            `json:"label"`
	Color  string            `json:"color"`
	Months []ProjectionMonth `json:"months"`

	// FireMonth is the first index at which net worth met the scenario's
	// own target; nil when never crossed.
	FireMonth *int `json:"fireMonth"`
	FireAge   *int `json:"fireAge"`
}

// Final returns the last point of the path.
func (p ScenarioPath) Final() ProjectionMonth {
	if len(p.Months) == 0 {
		return ProjectionMonth{}
	}
	return p.Months[len(p.Months)-1]
}

// Reached reports whether the scenario crossed its target.
func (p ScenarioPath) Reached() bool { return p.FireMonth != nil }
