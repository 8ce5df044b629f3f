package breakeven

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// TableFormatter formats solver results as a console table
type TableFormatter struct{}

// Format generates a formatted table for a solver report
func (tf *TableFormatter) Format(report *Report) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN RESULTS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	if r := report.Savings; r != nil {
		sb.WriteString("REQUIRED MONTHLY SAVINGS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		sb.WriteString(fmt.Sprintf("Target FIRE Age:     %d (now %d)\n", r.TargetAge, r.CurrentAge))
		sb.WriteString(fmt.Sprintf("Required Savings:    $%s/month\n", tf.formatCurrency(r.RequiredMonthlySavings)))
		sb.WriteString(fmt.Sprintf("Current Savings:     $%s/month\n", tf.formatCurrency(r.CurrentMonthlySavings)))
		sb.WriteString(fmt.Sprintf("Status:              %s\n", tf.formatStatus(r.AlreadyOnTrack)))
		sb.WriteString(fmt.Sprintf("Projected FIRE Date: %s\n", r.Projection.FireDate.Label()))
		sb.WriteString(fmt.Sprintf("Iterations:          %d\n", r.Iterations))
		sb.WriteString("\n")
	}

	if r := report.Spending; r != nil {
		sb.WriteString("SUSTAINABLE SPENDING\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		sb.WriteString(fmt.Sprintf("Strategy:            %s\n", r.Strategy))
		sb.WriteString(fmt.Sprintf("Sustainable Spend:   $%s/year ($%s/month)\n",
			tf.formatCurrency(r.SustainableYearlyExpenses), tf.formatCurrency(r.SustainableMonthly)))
		sb.WriteString(fmt.Sprintf("Planned Spend:       $%s/year\n", tf.formatCurrency(r.PlannedYearlyExpenses)))
		sb.WriteString(fmt.Sprintf("Headroom:            %s$%s\n", tf.deltaSymbol(r.Headroom), tf.formatShort(r.Headroom.Abs())))
		sb.WriteString(fmt.Sprintf("Final Balance:       $%s\n", tf.formatShort(r.Result.FinalBalance())))
		sb.WriteString(fmt.Sprintf("Iterations:          %d\n", r.Iterations))
		sb.WriteString("\n")
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range report.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(report *Report) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Helper methods

func (tf *TableFormatter) formatStatus(onTrack bool) string {
	if onTrack {
		return "✓ On track"
	}
	return "⚠ Needs more savings"
}

func (tf *TableFormatter) formatCurrency(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func (tf *TableFormatter) formatShort(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}
