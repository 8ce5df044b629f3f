package domain

import (
	"github.com/shopspring/decimal"
)

// LifeEvent is a discrete change supplied by the caller, such as a child, a
// sabbatical or a house purchase.
type LifeEvent struct {
	Name                string          `yaml:"name" json:"name" toml:"name"`
	Type                string          `yaml:"type" json:"type" toml:"type"`
	TargetAge           *int            `yaml:"target_age,omitempty" json:"targetAge,omitempty" toml:"target_age,omitempty"`
	OneTimeCost         decimal.Decimal `yaml:"one_time_cost" json:"oneTimeCost" toml:"one_time_cost"`
	MonthlyCostChange   decimal.Decimal `yaml:"monthly_cost_change" json:"monthlyCostChange" toml:"monthly_cost_change"`
	MonthlyIncomeChange decimal.Decimal `yaml:"monthly_income_change" json:"monthlyIncomeChange" toml:"monthly_income_change"`
	DurationMonths      int             `yaml:"duration_months" json:"durationMonths" toml:"duration_months"`
}

// LifeEventImpact is the marginal effect of one event on the FIRE horizon.
type LifeEventImpact struct {
	Event           LifeEvent       `json:"event"`
	FireDelayMonths int             `json:"fireDelayMonths"`
	TotalCost       decimal.Decimal `json:"totalCost"`
	FreedomDaysLost int             `json:"freedomDaysLost"`

	Baseline FireProjection `json:"baseline"`
	Adjusted FireProjection `json:"adjusted"`
}
