package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of an input file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported input format %q (use .yaml, .yml, .json or .toml)", filepath.Ext(filename))
	}
}

// Input is the content of one input file: a snapshot plus everything the
// outer commands need to drive the engine.
type Input struct {
	Snapshot    domain.Snapshot        `yaml:"snapshot" json:"snapshot" toml:"snapshot"`
	Assumptions *AssumptionOverrides   `yaml:"assumptions,omitempty" json:"assumptions,omitempty" toml:"assumptions,omitempty"`
	LifeEvents  []domain.LifeEvent     `yaml:"life_events,omitempty" json:"lifeEvents,omitempty" toml:"life_events,omitempty"`
	Withdrawal  *domain.WithdrawalPlan `yaml:"withdrawal,omitempty" json:"withdrawal,omitempty" toml:"withdrawal,omitempty"`

	// TargetFireAge drives the required-savings solver.
	TargetFireAge *int `yaml:"target_fire_age,omitempty" json:"targetFireAge,omitempty" toml:"target_fire_age,omitempty"`
}

// AssumptionOverrides holds the assumptions a file sets; nil fields keep
// the defaults.
type AssumptionOverrides struct {
	SafeWithdrawalRate    *decimal.Decimal `yaml:"safe_withdrawal_rate,omitempty" json:"safeWithdrawalRate,omitempty" toml:"safe_withdrawal_rate,omitempty"`
	DefaultReturn         *decimal.Decimal `yaml:"default_return,omitempty" json:"defaultReturn,omitempty" toml:"default_return,omitempty"`
	Volatility            *decimal.Decimal `yaml:"volatility,omitempty" json:"volatility,omitempty" toml:"volatility,omitempty"`
	Inflation             *decimal.Decimal `yaml:"inflation,omitempty" json:"inflation,omitempty" toml:"inflation,omitempty"`
	StatePensionAge       *int             `yaml:"state_pension_age,omitempty" json:"statePensionAge,omitempty" toml:"state_pension_age,omitempty"`
	StatePensionAnnual    *decimal.Decimal `yaml:"state_pension_annual,omitempty" json:"statePensionAnnual,omitempty" toml:"state_pension_annual,omitempty"`
	SearchCapMonths       *int             `yaml:"search_cap_months,omitempty" json:"searchCapMonths,omitempty" toml:"search_cap_months,omitempty"`
	MonteCarloSimulations *int             `yaml:"monte_carlo_simulations,omitempty" json:"monteCarloSimulations,omitempty" toml:"monte_carlo_simulations,omitempty"`
	MonteCarloYears       *int             `yaml:"monte_carlo_years,omitempty" json:"monteCarloYears,omitempty" toml:"monte_carlo_years,omitempty"`
	ScenarioYears         *int             `yaml:"scenario_years,omitempty" json:"scenarioYears,omitempty" toml:"scenario_years,omitempty"`
	OptimisticReturn      *decimal.Decimal `yaml:"optimistic_return,omitempty" json:"optimisticReturn,omitempty" toml:"optimistic_return,omitempty"`
	PessimisticReturn     *decimal.Decimal `yaml:"pessimistic_return,omitempty" json:"pessimisticReturn,omitempty" toml:"pessimistic_return,omitempty"`
}

// Apply merges the overrides over base.
func (o *AssumptionOverrides) Apply(base domain.Assumptions) domain.Assumptions {
	if o == nil {
		return base
	}
	setDecimal(&base.SafeWithdrawalRate, o.SafeWithdrawalRate)
	setDecimal(&base.DefaultReturn, o.DefaultReturn)
	setDecimal(&base.Volatility, o.Volatility)
	setDecimal(&base.Inflation, o.Inflation)
	setInt(&base.StatePensionAge, o.StatePensionAge)
	setDecimal(&base.StatePensionAnnual, o.StatePensionAnnual)
	setInt(&base.SearchCapMonths, o.SearchCapMonths)
	setInt(&base.MonteCarloSimulations, o.MonteCarloSimulations)
	setInt(&base.MonteCarloYears, o.MonteCarloYears)
	setInt(&base.ScenarioYears, o.ScenarioYears)
	setDecimal(&base.OptimisticReturn, o.OptimisticReturn)
	setDecimal(&base.PessimisticReturn, o.PessimisticReturn)
	return base
}

func setDecimal(dst *decimal.Decimal, v *decimal.Decimal) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// ResolvedAssumptions returns the defaults with the file's overrides applied.
func (in *Input) ResolvedAssumptions() domain.Assumptions {
	return in.Assumptions.Apply(domain.DefaultAssumptions())
}

// LifeEvent finds a life event by name, case-insensitively.
func (in *Input) LifeEvent(name string) (domain.LifeEvent, bool) {
	for _, e := range in.LifeEvents {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return domain.LifeEvent{}, false
}

// InputParser handles parsing of input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates an input file in YAML, JSON or TOML
func (ip *InputParser) LoadFromFile(filename string) (*Input, error) {
	format, err := FormatFromPath(filename)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return ip.Parse(data, format)
}

// Parse decodes and validates input data in the given format
func (ip *InputParser) Parse(data []byte, format Format) (*Input, error) {
	var input Input
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &input); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &input); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &input); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}

	ip.applyDefaults(&input)

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// applyDefaults fills the withdrawal plan gaps from the snapshot.
func (ip *InputParser) applyDefaults(input *Input) {
	if input.Withdrawal == nil {
		return
	}
	if input.Withdrawal.Strategy == "" {
		input.Withdrawal.Strategy = domain.StrategyClassic
	}
	if input.Withdrawal.YearlyExpenses.IsZero() {
		input.Withdrawal.YearlyExpenses = input.Snapshot.YearlyExpenses()
	}
}

// ValidateInput validates a decoded input
func (ip *InputParser) ValidateInput(input *Input) error {
	if err := ip.ValidateSnapshot(&input.Snapshot); err != nil {
		return fmt.Errorf("snapshot validation failed: %w", err)
	}
	if err := input.ResolvedAssumptions().Validate(); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}
	for i, event := range input.LifeEvents {
		if err := ip.ValidateLifeEvent(&event); err != nil {
			return fmt.Errorf("life event %d (%s) validation failed: %w", i, event.Name, err)
		}
	}
	if input.Withdrawal != nil {
		if err := ip.ValidateWithdrawal(input.Withdrawal); err != nil {
			return fmt.Errorf("withdrawal validation failed: %w", err)
		}
	}
	if input.TargetFireAge != nil {
		if *input.TargetFireAge <= 0 {
			return fmt.Errorf("target FIRE age must be positive")
		}
		if input.Snapshot.DateOfBirth == nil {
			return fmt.Errorf("target FIRE age requires a date of birth")
		}
	}
	return nil
}

// ValidateSnapshot rejects negative balances, an impossible return and a
// birth date after the reference date.
func (ip *InputParser) ValidateSnapshot(s *domain.Snapshot) error {
	if s.TotalAssets.IsNegative() {
		return fmt.Errorf("total assets cannot be negative")
	}
	if s.TotalDebts.IsNegative() {
		return fmt.Errorf("total debts cannot be negative")
	}
	if s.MonthlyIncome.IsNegative() {
		return fmt.Errorf("monthly income cannot be negative")
	}
	if s.MonthlyExpenses.IsNegative() {
		return fmt.Errorf("monthly expenses cannot be negative")
	}
	if s.ExpectedReturn != nil && s.ExpectedReturn.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("expected return must be greater than -100%%")
	}
	if s.DateOfBirth != nil {
		ref := s.ReferenceDate()
		if s.DateOfBirth.After(ref) {
			return fmt.Errorf("date of birth %s is after %s", s.DateOfBirth.Format(time.DateOnly), ref.Format(time.DateOnly))
		}
	}
	return nil
}

// ValidateLifeEvent validates a single life event
func (ip *InputParser) ValidateLifeEvent(event *domain.LifeEvent) error {
	if event.Name == "" {
		return fmt.Errorf("name is required")
	}
	if event.DurationMonths < 0 {
		return fmt.Errorf("duration cannot be negative")
	}
	if event.TargetAge != nil && *event.TargetAge < 0 {
		return fmt.Errorf("target age cannot be negative")
	}
	return nil
}

// ValidateWithdrawal normalizes the strategy tag and checks the plan bounds.
func (ip *InputParser) ValidateWithdrawal(plan *domain.WithdrawalPlan) error {
	strategy, err := domain.ParseWithdrawalStrategy(string(plan.Strategy))
	if err != nil {
		return err
	}
	plan.Strategy = strategy

	if plan.StartingPortfolio.IsNegative() {
		return fmt.Errorf("starting portfolio cannot be negative")
	}
	if plan.YearlyExpenses.IsNegative() {
		return fmt.Errorf("yearly expenses cannot be negative")
	}
	if plan.RetirementAge < 0 {
		return fmt.Errorf("retirement age cannot be negative")
	}
	if plan.TargetAge < plan.RetirementAge {
		return fmt.Errorf("target age %d is before retirement age %d", plan.TargetAge, plan.RetirementAge)
	}
	if plan.AnnualReturn != nil && plan.AnnualReturn.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("annual return must be greater than -100%%")
	}
	return nil
}
