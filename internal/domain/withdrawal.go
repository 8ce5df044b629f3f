package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownStrategy is returned for a withdrawal strategy tag the engine
// does not implement.
var ErrUnknownStrategy = errors.New("unknown withdrawal strategy")

// WithdrawalStrategy tags a decumulation rule.
type WithdrawalStrategy string

const (
	StrategyClassic    WithdrawalStrategy = "classic"
	StrategyVariable   WithdrawalStrategy = "variable"
	StrategyGuardrails WithdrawalStrategy = "guardrails"
	StrategyBucket     WithdrawalStrategy = "bucket"
)

// AllStrategies lists the implemented strategies in display order.
func AllStrategies() []WithdrawalStrategy {
	return []WithdrawalStrategy{StrategyClassic, StrategyVariable, StrategyGuardrails, StrategyBucket}
}

// Description is a one-line summary used by reports.
func (s WithdrawalStrategy) Description() string {
	switch s {
	case StrategyClassic:
		return "Fixed need, inflation ignored"
	case StrategyVariable:
		return "Percent of balance, floored at half the need"
	case StrategyGuardrails:
		return "Guyton-Klinger bands around the first-year draw"
	case StrategyBucket:
		return "Cash / bonds / stocks drawn in order"
	default:
		return ""
	}
}

// ParseWithdrawalStrategy accepts a strategy tag, case-insensitively.
func ParseWithdrawalStrategy(tag string) (WithdrawalStrategy, error) {
	s := WithdrawalStrategy(strings.ToLower(strings.TrimSpace(tag)))
	for _, known := range AllStrategies() {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, tag)
}

// WithdrawalPlan is the input of the withdrawal simulator.
type WithdrawalPlan struct {
	StartingPortfolio decimal.Decimal    `yaml:"starting_portfolio" json:"startingPortfolio" toml:"starting_portfolio"`
	RetirementAge     int                `yaml:"retirement_age" json:"retirementAge" toml:"retirement_age"`
	TargetAge         int                `yaml:"target_age" json:"targetAge" toml:"target_age"`
	Strategy          WithdrawalStrategy `yaml:"strategy" json:"strategy" toml:"strategy"`
	YearlyExpenses    decimal.Decimal    `yaml:"yearly_expenses" json:"yearlyExpenses" toml:"yearly_expenses"`
	AnnualReturn      *decimal.Decimal   `yaml:"annual_return,omitempty" json:"annualReturn,omitempty" toml:"annual_return,omitempty"`
}

// WithdrawalYear is one row of a withdrawal schedule.
type WithdrawalYear struct {
	Age           int             `json:"age"`
	Year          int             `json:"year"` // 1-based year of retirement
	StartBalance  decimal.Decimal `json:"startBalance"`
	Withdrawal    decimal.Decimal `json:"withdrawal"`
	PensionIncome decimal.Decimal `json:"pensionIncome"`
	Growth        decimal.Decimal `json:"growth"`
	EndBalance    decimal.Decimal `json:"endBalance"`
}

// WithdrawalResult is the schedule produced for one strategy.
type WithdrawalResult struct {
	Strategy          WithdrawalStrategy `json:"strategy"`
	MonthlyWithdrawal decimal.Decimal    `json:"monthlyWithdrawal"`
	YearlyWithdrawal  decimal.Decimal    `json:"yearlyWithdrawal"`
	SuccessYears      int                `json:"successYears"`
	TotalYears        int                `json:"totalYears"`
	Schedule          []WithdrawalYear   `json:"schedule"`
	Depleted          bool               `json:"depleted"`
}

// FinalBalance is the end balance of the last scheduled year.
func (r WithdrawalResult) FinalBalance() decimal.Decimal {
	if len(r.Schedule) == 0 {
		return decimal.Zero
	}
	return r.Schedule[len(r.Schedule)-1].EndBalance
}

// TotalWithdrawn sums every scheduled withdrawal.
func (r WithdrawalResult) TotalWithdrawn() decimal.Decimal {
	total := decimal.Zero
	for _, y := range r.Schedule {
		total = total.Add(y.Withdrawal)
	}
	return total
}
