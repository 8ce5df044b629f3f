package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is the aggregated financial position the engine projects from.
// Callers build a fresh one per request; the engine never mutates it.
type Snapshot struct {
	TotalAssets          decimal.Decimal `yaml:"total_assets" json:"totalAssets" toml:"total_assets"`
	TotalDebts           decimal.Decimal `yaml:"total_debts" json:"totalDebts" toml:"total_debts"`
	MonthlyIncome        decimal.Decimal `yaml:"monthly_income" json:"monthlyIncome" toml:"monthly_income"`
	MonthlyExpenses      decimal.Decimal `yaml:"monthly_expenses" json:"monthlyExpenses" toml:"monthly_expenses"`
	MonthlyContributions decimal.Decimal `yaml:"monthly_contributions" json:"monthlyContributions" toml:"monthly_contributions"` // informational only
	YearlyMustExpenses   decimal.Decimal `yaml:"yearly_must_expenses" json:"yearlyMustExpenses" toml:"yearly_must_expenses"`     // informational only

	DateOfBirth    *time.Time       `yaml:"date_of_birth,omitempty" json:"dateOfBirth,omitempty" toml:"date_of_birth,omitempty"`
	ExpectedReturn *decimal.Decimal `yaml:"expected_return,omitempty" json:"expectedReturn,omitempty" toml:"expected_return,omitempty"`

	// AsOf anchors calendar dates and ages. Zero means time.Now().
	AsOf time.Time `yaml:"as_of,omitempty" json:"asOf,omitempty" toml:"as_of,omitempty"`
}

// NetWorth is assets minus debts and may be negative.
func (s Snapshot) NetWorth() decimal.Decimal {
	return s.TotalAssets.Sub(s.TotalDebts)
}

// MonthlySavings is income minus expenses; the compounding savings rate.
func (s Snapshot) MonthlySavings() decimal.Decimal {
	return s.MonthlyIncome.Sub(s.MonthlyExpenses)
}

// YearlyExpenses is twelve months of current spending.
func (s Snapshot) YearlyExpenses() decimal.Decimal {
	return s.MonthlyExpenses.Mul(decimal.NewFromInt(12))
}

// ReferenceDate returns AsOf, or the current time when AsOf is unset.
func (s Snapshot) ReferenceDate() time.Time {
	if s.AsOf.IsZero() {
		return time.Now()
	}
	return s.AsOf
}

// CurrentAge returns the completed years of age at the reference date, or
// nil when no birth date is known.
func (s Snapshot) CurrentAge() *int {
	if s.DateOfBirth == nil || s.DateOfBirth.IsZero() {
		return nil
	}
	age := AgeAt(*s.DateOfBirth, s.ReferenceDate())
	return &age
}

// ReturnOr returns the snapshot's expected return override, or fallback.
func (s Snapshot) ReturnOr(fallback decimal.Decimal) decimal.Decimal {
	if s.ExpectedReturn != nil {
		return *s.ExpectedReturn
	}
	return fallback
}

// WithAdjustments returns a copy with the given deltas applied to assets,
// expenses and income.
func (s Snapshot) WithAdjustments(assetDelta, expenseDelta, incomeDelta decimal.Decimal) Snapshot {
	adjusted := s
	adjusted.TotalAssets = s.TotalAssets.Add(assetDelta)
	adjusted.MonthlyExpenses = s.MonthlyExpenses.Add(expenseDelta)
	adjusted.MonthlyIncome = s.MonthlyIncome.Add(incomeDelta)
	return adjusted
}

// AgeAt returns completed years between birth and at.
func AgeAt(birth, at time.Time) int {
	age := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		age--
	}
	return age
}

// AddAge returns base plus years, preserving nil.
func AddAge(base *int, years int) *int {
	if base == nil {
		return nil
	}
	v := *base + years
	return &v
}
