package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Assumptions holds every modeling constant the engine uses. It is passed by
// value into the engine and never mutated after construction.
type Assumptions struct {
	SafeWithdrawalRate decimal.Decimal `yaml:"safe_withdrawal_rate" json:"safeWithdrawalRate" toml:"safe_withdrawal_rate"`
	DefaultReturn      decimal.Decimal `yaml:"default_return" json:"defaultReturn" toml:"default_return"`
	Volatility         decimal.Decimal `yaml:"volatility" json:"volatility" toml:"volatility"`
	Inflation          decimal.Decimal `yaml:"inflation" json:"inflation" toml:"inflation"`

	StatePensionAge    int             `yaml:"state_pension_age" json:"statePensionAge" toml:"state_pension_age"`
	StatePensionAnnual decimal.Decimal `yaml:"state_pension_annual" json:"statePensionAnnual" toml:"state_pension_annual"`

	SearchCapMonths       int `yaml:"search_cap_months" json:"searchCapMonths" toml:"search_cap_months"`
	MonteCarloSimulations int `yaml:"monte_carlo_simulations" json:"monteCarloSimulations" toml:"monte_carlo_simulations"`
	MonteCarloYears       int `yaml:"monte_carlo_years" json:"monteCarloYears" toml:"monte_carlo_years"`
	ScenarioYears         int `yaml:"scenario_years" json:"scenarioYears" toml:"scenario_years"`

	// Range projector returns; the expected leg uses DefaultReturn.
	OptimisticReturn  decimal.Decimal `yaml:"optimistic_return" json:"optimisticReturn" toml:"optimistic_return"`
	PessimisticReturn decimal.Decimal `yaml:"pessimistic_return" json:"pessimisticReturn" toml:"pessimistic_return"`
}

// DefaultAssumptions returns the stock set of modeling constants.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		SafeWithdrawalRate:    decimal.NewFromFloat(0.04),
		DefaultReturn:         decimal.NewFromFloat(0.07),
		Volatility:            decimal.NewFromFloat(0.15),
		Inflation:             decimal.NewFromFloat(0.02),
		StatePensionAge:       67,
		StatePensionAnnual:    decimal.NewFromInt(12000),
		SearchCapMonths:       600,
		MonteCarloSimulations: 1000,
		MonteCarloYears:       40,
		ScenarioYears:         40,
		OptimisticReturn:      decimal.NewFromFloat(0.09),
		PessimisticReturn:     decimal.NewFromFloat(0.04),
	}
}

// Validate checks that the assumptions can drive the engine without
// producing degenerate divisions or unbounded loops.
func (a Assumptions) Validate() error {
	if a.SafeWithdrawalRate.LessThanOrEqual(decimal.Zero) || a.SafeWithdrawalRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("safe withdrawal rate must be in (0, 1], got %s", a.SafeWithdrawalRate)
	}
	if a.DefaultReturn.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("default return must be greater than -100%%, got %s", a.DefaultReturn)
	}
	if a.Volatility.LessThan(decimal.Zero) {
		return fmt.Errorf("volatility cannot be negative, got %s", a.Volatility)
	}
	if a.StatePensionAge < 0 {
		return fmt.Errorf("state pension age cannot be negative, got %d", a.StatePensionAge)
	}
	if a.StatePensionAnnual.LessThan(decimal.Zero) {
		return fmt.Errorf("state pension amount cannot be negative, got %s", a.StatePensionAnnual)
	}
	if a.SearchCapMonths <= 0 {
		return fmt.Errorf("search cap must be positive, got %d", a.SearchCapMonths)
	}
	if a.MonteCarloSimulations <= 0 {
		return fmt.Errorf("monte carlo simulation count must be positive, got %d", a.MonteCarloSimulations)
	}
	if a.MonteCarloYears <= 0 {
		return fmt.Errorf("monte carlo horizon must be positive, got %d", a.MonteCarloYears)
	}
	if a.ScenarioYears <= 0 {
		return fmt.Errorf("scenario horizon must be positive, got %d", a.ScenarioYears)
	}
	if a.OptimisticReturn.LessThan(a.DefaultReturn) || a.PessimisticReturn.GreaterThan(a.DefaultReturn) {
		return fmt.Errorf("range returns must satisfy pessimistic <= default <= optimistic (%s, %s, %s)",
			a.PessimisticReturn, a.DefaultReturn, a.OptimisticReturn)
	}
	return nil
}

// AssumptionsList renders the assumptions as human readable lines for reports.
func (a Assumptions) AssumptionsList() []string {
	hundred := decimal.NewFromInt(100)
	return []string{
		fmt.Sprintf("Safe withdrawal rate: %s%%", a.SafeWithdrawalRate.Mul(hundred).StringFixed(1)),
		fmt.Sprintf("Expected annual return: %s%%", a.DefaultReturn.Mul(hundred).StringFixed(1)),
		fmt.Sprintf("Return volatility (Monte Carlo): %s%%", a.Volatility.Mul(hundred).StringFixed(1)),
		fmt.Sprintf("Inflation (guardrails drift): %s%%", a.Inflation.Mul(hundred).StringFixed(1)),
		fmt.Sprintf("State pension: %s per year from age %d", a.StatePensionAnnual.StringFixed(0), a.StatePensionAge),
	}
}
