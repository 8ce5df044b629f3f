package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/rgehrsitz/firego/internal/domain"
)

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

// pdfReport lays out one A4 summary document.
type pdfReport struct {
	pdf *fpdf.Fpdf
}

// PDFReport renders the populated sections of the report into a PDF
// document and returns its bytes.
func PDFReport(report *Report) ([]byte, error) {
	r := &pdfReport{pdf: fpdf.New("P", "mm", "A4", "")}
	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetAutoPageBreak(true, pdfMarginBottom)
	r.pdf.SetTitle(reportTitle(report), false)
	r.pdf.AddPage()

	r.title(reportTitle(report))
	if report.Projection != nil {
		r.projection(report.Projection)
	}
	if report.Range != nil {
		r.fireRange(report.Range)
	}
	if len(report.Scenarios) > 0 {
		r.scenarios(report.Scenarios)
	}
	if report.MonteCarlo != nil {
		r.monteCarlo(report.MonteCarlo)
	}
	if report.Withdrawal != nil {
		r.withdrawal(report.Withdrawal)
	}
	if len(report.LifeEvents) > 0 {
		r.lifeEvents(report.LifeEvents)
	}
	if report.Resilience != nil {
		r.resilience(report.Resilience)
	}
	if len(report.Assumptions) > 0 {
		r.heading("Key Assumptions")
		r.pdf.SetFont("Arial", "", 10)
		for _, a := range report.Assumptions {
			r.pdf.CellFormat(pdfContentWidth, 6, "- "+a, "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func reportTitle(report *Report) string {
	if report.Title != "" {
		return report.Title
	}
	return "FIRE Analysis"
}

func (r *pdfReport) title(text string) {
	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 12, text, "", 1, "C", false, 0, "")
	r.pdf.Ln(4)
}

func (r *pdfReport) heading(text string) {
	r.pdf.Ln(4)
	r.pdf.SetFont("Arial", "B", 13)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 8, text, "B", 1, "L", false, 0, "")
	r.pdf.Ln(2)
	r.pdf.SetTextColor(50, 50, 50)
}

func (r *pdfReport) keyValue(key, value string) {
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.CellFormat(pdfContentWidth*0.45, 6, key, "", 0, "L", false, 0, "")
	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.CellFormat(pdfContentWidth*0.55, 6, value, "", 1, "L", false, 0, "")
}

// table draws a header row and body rows with equal column widths.
func (r *pdfReport) table(header []string, rows [][]string) {
	width := pdfContentWidth / float64(len(header))
	r.pdf.SetFillColor(230, 236, 245)
	r.pdf.SetFont("Arial", "B", 9)
	for _, h := range header {
		r.pdf.CellFormat(width, 7, h, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)
	r.pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		for i, cell := range row {
			align := "R"
			if i == 0 {
				align = "L"
			}
			r.pdf.CellFormat(width, 6, cell, "1", 0, align, false, 0, "")
		}
		r.pdf.Ln(-1)
	}
}

func (r *pdfReport) projection(p *domain.FireProjection) {
	r.heading("FIRE Projection")
	r.keyValue("Net worth", FormatCurrency(p.NetWorth))
	r.keyValue("FIRE target", FormatCurrency(p.FireTarget))
	r.keyValue("Freedom", FormatPercentage(p.FreedomPercentage))
	r.keyValue("Annual return", FormatRate(p.AnnualReturn))
	r.keyValue("Monthly savings", FormatCurrency(p.MonthlySavings))
	r.keyValue("FIRE date", p.FireDate.Label())
	if p.FireDate.Kind == domain.FireDateProjected {
		r.keyValue("Countdown", fmt.Sprintf("%s (%s days)", FormatYearsMonths(p.CountdownYears, p.CountdownMonths), FormatInt(p.CountdownDays)))
	}
	r.keyValue("FIRE age", FormatAge(p.FireAge))
}

func (r *pdfReport) fireRange(fr *domain.FireRange) {
	r.heading("FIRE Range")
	row := func(name string, p domain.FireProjection) []string {
		return []string{name, FormatRate(p.AnnualReturn), p.FireDate.Label(), FormatInt(p.MonthsToFire), FormatAge(p.FireAge)}
	}
	r.table([]string{"Case", "Return", "FIRE date", "Months", "Age"}, [][]string{
		row("Optimistic", fr.Optimistic),
		row("Expected", fr.Expected),
		row("Pessimistic", fr.Pessimistic),
	})
}

func (r *pdfReport) scenarios(paths []domain.ScenarioPath) {
	r.heading("Behavioral Scenarios")
	rows := make([][]string, 0, len(paths))
	for _, p := range paths {
		fireMonth := "never"
		if p.FireMonth != nil {
			fireMonth = FormatInt(*p.FireMonth)
		}
		rows = append(rows, []string{p.Label, FormatWholeCurrency(p.Final().NetWorth), fireMonth, FormatAge(p.FireAge)})
	}
	r.table([]string{"Scenario", "Final net worth", "FIRE month", "FIRE age"}, rows)
}

func (r *pdfReport) monteCarlo(mc *domain.MonteCarloResult) {
	r.heading("Monte Carlo")
	r.keyValue("Simulations", FormatInt(mc.Simulations))
	r.keyValue("FIRE probability", FormatRate(mc.FireProb))
	r.keyValue("FIRE age p10 / p50 / p90", strings.Join([]string{
		FormatAge(mc.P10FireAge), FormatAge(mc.P50FireAge), FormatAge(mc.P90FireAge)}, " / "))
	r.pdf.Ln(2)
	var rows [][]string
	for y := 0; y < len(mc.P50); y += 5 {
		rows = append(rows, []string{FormatInt(y), FormatWholeCurrency(mc.P10[y]), FormatWholeCurrency(mc.P50[y]), FormatWholeCurrency(mc.P90[y])})
	}
	r.table([]string{"Year", "P10", "P50", "P90"}, rows)
}

func (r *pdfReport) withdrawal(w *domain.WithdrawalResult) {
	r.heading("Withdrawal Plan (" + string(w.Strategy) + ")")
	r.keyValue("First-year withdrawal", FormatCurrency(w.YearlyWithdrawal))
	outcome := fmt.Sprintf("funded %d of %d years", w.SuccessYears, w.TotalYears)
	if w.Depleted {
		outcome = fmt.Sprintf("depleted after %d of %d years", w.SuccessYears, w.TotalYears)
	}
	r.keyValue("Outcome", outcome)
	r.keyValue("Final balance", FormatCurrency(w.FinalBalance()))
}

func (r *pdfReport) lifeEvents(impacts []domain.LifeEventImpact) {
	r.heading("Life Events")
	rows := make([][]string, 0, len(impacts))
	for _, im := range impacts {
		rows = append(rows, []string{im.Event.Name, FormatWholeCurrency(im.TotalCost),
			FormatInt(im.FireDelayMonths) + " mo", FormatInt(im.FreedomDaysLost)})
	}
	r.table([]string{"Event", "Total cost", "FIRE delay", "Freedom days lost"}, rows)
}

func (r *pdfReport) resilience(s *domain.ResilienceScore) {
	r.heading("Resilience")
	r.keyValue("Score", fmt.Sprintf("%d / 100 (%s)", s.Total, s.Label))
	r.keyValue("Emergency fund", fmt.Sprintf("%d / 25", s.Emergency))
	r.keyValue("Diversification", fmt.Sprintf("%d / 25", s.Diversification))
	r.keyValue("Debt ratio", fmt.Sprintf("%d / 25", s.DebtRatio))
	r.keyValue("Savings rate", fmt.Sprintf("%d / 25", s.SavingsRate))
}
