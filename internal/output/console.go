package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/firego/internal/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB"))
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

const ruleWidth = 72

// ConsoleFormatter renders a styled plain-text report for the terminal.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer

	title := report.Title
	if title == "" {
		title = "FIRE ANALYSIS"
	}
	fmt.Fprintln(&buf, titleStyle.Render(strings.ToUpper(title)))
	fmt.Fprintln(&buf, strings.Repeat("=", ruleWidth))

	if report.IsEmpty() {
		fmt.Fprintln(&buf, mutedStyle.Render("Nothing to report."))
		return buf.Bytes(), nil
	}

	if report.Projection != nil {
		writeProjection(&buf, report.Projection)
	}
	if report.Range != nil {
		writeRange(&buf, report.Range)
	}
	if len(report.Trajectory) > 0 {
		writeTrajectory(&buf, report.Trajectory)
	}
	if len(report.Scenarios) > 0 {
		writeScenarios(&buf, report.Scenarios)
	}
	if report.MonteCarlo != nil {
		writeMonteCarlo(&buf, report.MonteCarlo)
	}
	if report.Withdrawal != nil {
		writeWithdrawal(&buf, report.Withdrawal)
	}
	if len(report.LifeEvents) > 0 {
		writeLifeEvents(&buf, report.LifeEvents)
	}
	if report.Resilience != nil {
		writeResilience(&buf, report.Resilience)
	}

	if len(report.Assumptions) > 0 {
		section(&buf, "KEY ASSUMPTIONS")
		for _, a := range report.Assumptions {
			fmt.Fprintf(&buf, "  • %s\n", a)
		}
	}
	return buf.Bytes(), nil
}

func section(buf *bytes.Buffer, name string) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, sectionStyle.Render(name))
	fmt.Fprintln(buf, strings.Repeat("-", ruleWidth))
}

func line(buf *bytes.Buffer, label, value string) {
	fmt.Fprintf(buf, "  %-24s %s\n", label+":", value)
}

func fireStatus(p *domain.FireProjection) string {
	switch p.FireDate.Kind {
	case domain.FireDateReached:
		return goodStyle.Render(p.FireDate.Label())
	case domain.FireDateNotAchievable:
		return badStyle.Render(p.FireDate.Label())
	default:
		return fmt.Sprintf("%s (in %s, %s days)", p.FireDate.Label(),
			FormatYearsMonths(p.CountdownYears, p.CountdownMonths), FormatInt(p.CountdownDays))
	}
}

func writeProjection(buf *bytes.Buffer, p *domain.FireProjection) {
	section(buf, "FIRE PROJECTION")
	line(buf, "Net worth", FormatCurrency(p.NetWorth))
	line(buf, "FIRE target", FormatCurrency(p.FireTarget))
	line(buf, "Freedom", FormatPercentage(p.FreedomPercentage))
	line(buf, "Annual return", FormatRate(p.AnnualReturn))
	line(buf, "Monthly savings", FormatCurrency(p.MonthlySavings))
	line(buf, "Savings rate", FormatPercentage(p.SavingsRate))
	line(buf, "Passive income / month", FormatCurrency(p.MonthlyPassiveIncome))
	line(buf, "Runway", FormatYearsMonths(p.FreedomYears, p.FreedomMonths))
	line(buf, "FIRE date", fireStatus(p))
	line(buf, "Current age", FormatAge(p.CurrentAge))
	line(buf, "FIRE age", FormatAge(p.FireAge))
}

func writeRange(buf *bytes.Buffer, r *domain.FireRange) {
	section(buf, "FIRE RANGE")
	fmt.Fprintf(buf, "  %-12s %8s %-16s %8s %8s\n", "Case", "Return", "FIRE date", "Months", "Age")
	rows := []struct {
		name string
		p    domain.FireProjection
	}{
		{"Optimistic", r.Optimistic},
		{"Expected", r.Expected},
		{"Pessimistic", r.Pessimistic},
	}
	for _, row := range rows {
		fmt.Fprintf(buf, "  %-12s %8s %-16s %8d %8s\n", row.name, FormatRate(row.p.AnnualReturn),
			row.p.FireDate.Label(), row.p.MonthsToFire, FormatAge(row.p.FireAge))
	}
}

func writeTrajectory(buf *bytes.Buffer, months []domain.ProjectionMonth) {
	section(buf, "NET WORTH TRAJECTORY")
	fmt.Fprintf(buf, "  %6s %-10s %16s %14s %6s\n", "Month", "Date", "Net worth", "Passive/mo", "Age")
	last := len(months) - 1
	for i, m := range months {
		if i%12 != 0 && i != last {
			continue
		}
		fmt.Fprintf(buf, "  %6d %-10s %16s %14s %6s\n", m.Month, m.Date.Format("2006-01"),
			FormatWholeCurrency(m.NetWorth), FormatWholeCurrency(m.PassiveIncome), FormatAge(m.Age))
	}
}

func writeScenarios(buf *bytes.Buffer, paths []domain.ScenarioPath) {
	section(buf, "BEHAVIORAL SCENARIOS")
	fmt.Fprintf(buf, "  %-16s %16s %12s %8s\n", "Scenario", "Final net worth", "FIRE month", "Age")
	for _, p := range paths {
		fireMonth := "never"
		if p.FireMonth != nil {
			fireMonth = FormatInt(*p.FireMonth)
		}
		fmt.Fprintf(buf, "  %-16s %16s %12s %8s\n", p.Label, FormatWholeCurrency(p.Final().NetWorth),
			fireMonth, FormatAge(p.FireAge))
	}
}

func writeMonteCarlo(buf *bytes.Buffer, mc *domain.MonteCarloResult) {
	section(buf, "MONTE CARLO")
	line(buf, "Simulations", FormatInt(mc.Simulations))
	line(buf, "Years", FormatInt(mc.Years))
	line(buf, "FIRE probability", FormatRate(mc.FireProb))
	line(buf, "FIRE age p10/p50/p90", fmt.Sprintf("%s / %s / %s",
		FormatAge(mc.P10FireAge), FormatAge(mc.P50FireAge), FormatAge(mc.P90FireAge)))
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  %5s %14s %14s %14s %14s %14s\n", "Year", "P10", "P25", "P50", "P75", "P90")
	for y := 0; y < len(mc.P50); y++ {
		if y%5 != 0 && y != len(mc.P50)-1 {
			continue
		}
		fmt.Fprintf(buf, "  %5d %14s %14s %14s %14s %14s\n", y,
			FormatWholeCurrency(mc.P10[y]), FormatWholeCurrency(mc.P25[y]), FormatWholeCurrency(mc.P50[y]),
			FormatWholeCurrency(mc.P75[y]), FormatWholeCurrency(mc.P90[y]))
	}
}

func writeWithdrawal(buf *bytes.Buffer, r *domain.WithdrawalResult) {
	section(buf, "WITHDRAWAL PLAN: "+strings.ToUpper(string(r.Strategy)))
	line(buf, "First-year withdrawal", FormatCurrency(r.YearlyWithdrawal))
	line(buf, "Monthly", FormatCurrency(r.MonthlyWithdrawal))
	status := goodStyle.Render(fmt.Sprintf("funded %d of %d years", r.SuccessYears, r.TotalYears))
	if r.Depleted {
		status = badStyle.Render(fmt.Sprintf("depleted after %d of %d years", r.SuccessYears, r.TotalYears))
	}
	line(buf, "Outcome", status)
	line(buf, "Final balance", FormatCurrency(r.FinalBalance()))
	if len(r.Schedule) == 0 {
		return
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  %4s %4s %14s %12s %10s %12s %14s\n", "Year", "Age", "Start", "Withdrawal", "Pension", "Growth", "End")
	for _, y := range r.Schedule {
		fmt.Fprintf(buf, "  %4d %4d %14s %12s %10s %12s %14s\n", y.Year, y.Age,
			FormatWholeCurrency(y.StartBalance), FormatWholeCurrency(y.Withdrawal), FormatWholeCurrency(y.PensionIncome),
			FormatWholeCurrency(y.Growth), FormatWholeCurrency(y.EndBalance))
	}
}

func writeLifeEvents(buf *bytes.Buffer, impacts []domain.LifeEventImpact) {
	section(buf, "LIFE EVENTS")
	fmt.Fprintf(buf, "  %-20s %14s %14s %14s\n", "Event", "Total cost", "FIRE delay", "Freedom lost")
	for _, im := range impacts {
		fmt.Fprintf(buf, "  %-20s %14s %11d mo %9s days\n", im.Event.Name,
			FormatWholeCurrency(im.TotalCost), im.FireDelayMonths, FormatInt(im.FreedomDaysLost))
	}
}

func writeResilience(buf *bytes.Buffer, r *domain.ResilienceScore) {
	section(buf, "RESILIENCE")
	total := fmt.Sprintf("%d / 100 (%s)", r.Total, r.Label)
	if r.Total >= 60 {
		total = goodStyle.Render(total)
	} else if r.Total < 40 {
		total = badStyle.Render(total)
	}
	line(buf, "Score", total)
	line(buf, "Emergency fund", fmt.Sprintf("%d / 25", r.Emergency))
	line(buf, "Diversification", fmt.Sprintf("%d / 25", r.Diversification))
	line(buf, "Debt ratio", fmt.Sprintf("%d / 25", r.DebtRatio))
	line(buf, "Savings rate", fmt.Sprintf("%d / 25", r.SavingsRate))
}
