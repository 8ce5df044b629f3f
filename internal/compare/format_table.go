package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// FormatScenarios generates a formatted table comparing the trajectories
func (tf *TableFormatter) FormatScenarios(compSet *ScenarioComparison) string {
	var sb strings.Builder

	sb.WriteString("FIRE SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	sb.WriteString(fmt.Sprintf("Horizon: %d years\n", compSet.Years))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 25
	numWidth := 15

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Final Net Worth",
		numWidth, "FIRE In",
		numWidth, "FIRE Age"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.scenarioRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.scenarioRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.Label))
			sb.WriteString(fmt.Sprintf("  Final Net Worth:  %s$%s (%s%%)\n",
				tf.deltaSymbol(alt.NetWorthDiffFromBase),
				tf.formatDecimal(alt.NetWorthDiffFromBase.Abs()),
				alt.NetWorthPctFromBase.StringFixed(1)))

			if alt.FireMonthDiff != nil && *alt.FireMonthDiff != 0 {
				sign := "+"
				if *alt.FireMonthDiff < 0 {
					sign = ""
				}
				sb.WriteString(fmt.Sprintf("  FIRE Timing:      %s%d months\n", sign, *alt.FireMonthDiff))
			}
		}
		sb.WriteString("\n")
	}

	tf.writeRecommendations(&sb, compSet.Recommendations)
	return sb.String()
}

// FormatStrategies generates a ranked table of withdrawal strategies
func (tf *TableFormatter) FormatStrategies(compSet *StrategyComparison) string {
	var sb strings.Builder

	sb.WriteString("WITHDRAWAL STRATEGY COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Portfolio: $%s  Ages %d-%d  Yearly expenses: $%s\n",
		tf.formatDecimal(compSet.Plan.StartingPortfolio),
		compSet.Plan.RetirementAge, compSet.Plan.TargetAge,
		tf.formatDecimal(compSet.Plan.YearlyExpenses)))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("%-4s %-12s %14s %14s %14s %12s\n",
		"#", "Strategy", "1st Year", "Total Drawn", "Final", "Funded"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for _, r := range compSet.Results {
		funded := fmt.Sprintf("%d/%d yrs", r.SuccessYears, r.TotalYears)
		if r.Depleted {
			funded = fmt.Sprintf("depleted %d", r.SuccessYears)
		}
		sb.WriteString(fmt.Sprintf("%-4d %-12s %14s %14s %14s %12s\n",
			r.Rank,
			r.Strategy,
			"$"+tf.formatDecimal(r.FirstYearWithdrawal),
			"$"+tf.formatDecimal(r.TotalWithdrawn),
			"$"+tf.formatDecimal(r.FinalBalance),
			funded))
	}
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	tf.writeRecommendations(&sb, compSet.Recommendations)
	return sb.String()
}

func (tf *TableFormatter) writeRecommendations(sb *strings.Builder, recommendations []string) {
	if len(recommendations) == 0 {
		return
	}
	sb.WriteString("RECOMMENDATIONS\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	for _, rec := range recommendations {
		sb.WriteString(fmt.Sprintf("• %s\n", rec))
	}
	sb.WriteString("\n")
}

// scenarioRow formats a single scenario row
func (tf *TableFormatter) scenarioRow(result *ScenarioResult, nameWidth, numWidth int, isBase bool) string {
	name := result.Label
	if isBase {
		name += " (base)"
	}

	fireIn := "never"
	if result.FireMonth != nil {
		fireIn = monthsText(*result.FireMonth)
	}
	fireAge := "-"
	if result.FireAge != nil {
		fireAge = fmt.Sprintf("%d", *result.FireAge)
	}

	return fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, "$"+tf.formatDecimal(result.FinalNetWorth),
		numWidth, fireIn,
		numWidth, fireAge)
}

// formatDecimal formats a decimal for display (in thousands)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a + or - symbol for deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ScenarioComparison) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if alt.FireMonthDiff != nil && *alt.FireMonthDiff != 0 {
			change = fmt.Sprintf("%+d mo", *alt.FireMonthDiff)
		} else if !alt.Reached() {
			change = "never"
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}
