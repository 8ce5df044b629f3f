package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVFormatter writes one block per populated section. Each block starts
// with a single-field row naming the section, followed by a header row.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	var records [][]string
	if report.Projection != nil {
		records = append(records, []string{"projection"}, projectionHeader())
		records = append(records, projectionRow("point", *report.Projection))
	}
	if report.Range != nil {
		records = append(records, []string{"range"}, projectionHeader())
		records = append(records,
			projectionRow("optimistic", report.Range.Optimistic),
			projectionRow("expected", report.Range.Expected),
			projectionRow("pessimistic", report.Range.Pessimistic))
	}
	if len(report.Trajectory) > 0 {
		records = append(records, []string{"trajectory"},
			[]string{"Month", "Date", "NetWorth", "PassiveIncome", "Age", "Contribution", "Growth"})
		for _, m := range report.Trajectory {
			records = append(records, []string{
				strconv.Itoa(m.Month), m.Date.Format("2006-01-02"), money(m.NetWorth),
				money(m.PassiveIncome), ageField(m.Age), money(m.Contribution), money(m.Growth),
			})
		}
	}
	if len(report.Scenarios) > 0 {
		records = append(records, []string{"scenarios"},
			[]string{"Scenario", "Month", "NetWorth", "PassiveIncome", "Age"})
		for _, p := range report.Scenarios {
			for _, m := range p.Months {
				records = append(records, []string{
					string(p.Name), strconv.Itoa(m.Month), money(m.NetWorth), money(m.PassiveIncome), ageField(m.Age),
				})
			}
		}
	}
	if mc := report.MonteCarlo; mc != nil {
		records = append(records, []string{"monte_carlo"},
			[]string{"Year", "P10", "P25", "P50", "P75", "P90"})
		for y := range mc.P50 {
			records = append(records, []string{
				strconv.Itoa(y), money(mc.P10[y]), money(mc.P25[y]), money(mc.P50[y]), money(mc.P75[y]), money(mc.P90[y]),
			})
		}
	}
	if r := report.Withdrawal; r != nil {
		records = append(records, []string{"withdrawal"},
			[]string{"Strategy", "Year", "Age", "StartBalance", "Withdrawal", "PensionIncome", "Growth", "EndBalance"})
		for _, y := range r.Schedule {
			records = append(records, []string{
				string(r.Strategy), strconv.Itoa(y.Year), strconv.Itoa(y.Age), money(y.StartBalance),
				money(y.Withdrawal), money(y.PensionIncome), money(y.Growth), money(y.EndBalance),
			})
		}
	}
	if len(report.LifeEvents) > 0 {
		records = append(records, []string{"life_events"},
			[]string{"Event", "Type", "TotalCost", "FireDelayMonths", "FreedomDaysLost"})
		for _, im := range report.LifeEvents {
			records = append(records, []string{
				im.Event.Name, im.Event.Type, money(im.TotalCost),
				strconv.Itoa(im.FireDelayMonths), strconv.Itoa(im.FreedomDaysLost),
			})
		}
	}
	if r := report.Resilience; r != nil {
		records = append(records, []string{"resilience"},
			[]string{"Total", "Emergency", "Diversification", "DebtRatio", "SavingsRate", "Label"})
		records = append(records, []string{
			strconv.Itoa(r.Total), strconv.Itoa(r.Emergency), strconv.Itoa(r.Diversification),
			strconv.Itoa(r.DebtRatio), strconv.Itoa(r.SavingsRate), string(r.Label),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func projectionHeader() []string {
	return []string{"Case", "AnnualReturn", "NetWorth", "FireTarget", "FreedomPct", "FireDate", "MonthsToFire", "FireAge"}
}

func projectionRow(name string, p domain.FireProjection) []string {
	date := p.FireDate.Kind.String()
	if p.FireDate.Kind == domain.FireDateProjected {
		date = p.FireDate.Date.Format("2006-01-02")
	}
	return []string{
		name, p.AnnualReturn.String(), money(p.NetWorth), money(p.FireTarget),
		p.FreedomPercentage.StringFixed(2), date, strconv.Itoa(p.MonthsToFire), ageField(p.FireAge),
	}
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func ageField(age *int) string {
	if age == nil {
		return ""
	}
	return strconv.Itoa(*age)
}
