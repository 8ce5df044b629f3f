package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/rgehrsitz/firego/internal/output"
	"github.com/rgehrsitz/firego/internal/tui/components"
	"github.com/rgehrsitz/firego/internal/tui/tuistyles"
)

// ProjectionModel shows the point projection at the dashboard's current
// return, the return range and the net worth trajectory.
type ProjectionModel struct {
	projection *domain.FireProjection
	baseline   *domain.FireProjection
	fireRange  *domain.FireRange
	trajectory []domain.ProjectionMonth
	slider     *components.ParameterSlider
	width      int
	height     int
}

// NewProjectionModel creates an empty projection scene. The slider spans
// the return range the dashboard allows.
func NewProjectionModel(minReturn, maxReturn float64) *ProjectionModel {
	return &ProjectionModel{
		slider: components.NewParameterSlider("Expected return", 0, minReturn*100, maxReturn*100, 0.5).
			WithUnit("%").
			SetFocused(true),
	}
}

// SetData replaces the scene's results. baseline is the projection at the
// input's own return and anchors the deltas.
func (m *ProjectionModel) SetData(p, baseline domain.FireProjection, r domain.FireRange, trajectory []domain.ProjectionMonth) {
	m.projection = &p
	m.baseline = &baseline
	m.fireRange = &r
	m.trajectory = trajectory
	m.slider.SetValue(p.AnnualReturn.InexactFloat64() * 100)
}

// SetSize updates the scene dimensions.
func (m *ProjectionModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the scene.
func (m *ProjectionModel) View() string {
	if m.projection == nil {
		return tuistyles.InfoStyle.Render("No projection yet")
	}
	p := m.projection

	fireDate := components.NewMetricCard("FIRE date", p.FireDate.Label())
	if p.FireDate.Kind == domain.FireDateProjected {
		fireDate.WithDescription("in " + output.FormatYearsMonths(p.CountdownYears, p.CountdownMonths))
		if d := p.MonthsToFire - m.baseline.MonthsToFire; d != 0 && m.baseline.FireDate.Kind == domain.FireDateProjected {
			fireDate.WithDelta(d < 0, fmt.Sprintf("%+d months", d))
		}
	}

	cards := []*components.MetricCard{
		fireDate,
		components.NewMetricCard("FIRE age", output.FormatAge(p.FireAge)),
		components.NewMoneyCard("FIRE target", p.FireTarget),
		components.NewMetricCard("Freedom", output.FormatPercentage(p.FreedomPercentage)).
			WithDescription(output.FormatYearsMonths(p.FreedomYears, p.FreedomMonths) + " of runway"),
	}

	sections := []string{
		m.slider.Render(),
		components.MetricGrid(cards, 4),
		m.renderRange(),
		m.renderChart(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *ProjectionModel) renderRange() string {
	if m.fireRange == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(tuistyles.TableHeaderStyle.Render(fmt.Sprintf("%-12s %8s %10s %10s", "Case", "Return", "FIRE date", "Months")))
	for _, row := range []struct {
		name string
		p    domain.FireProjection
	}{
		{"Optimistic", m.fireRange.Optimistic},
		{"Expected", m.fireRange.Expected},
		{"Pessimistic", m.fireRange.Pessimistic},
	} {
		months := "-"
		if row.p.FireDate.Kind == domain.FireDateProjected {
			months = output.FormatInt(row.p.MonthsToFire)
		}
		b.WriteString("\n")
		b.WriteString(tuistyles.TableCellStyle.Render(fmt.Sprintf("%-12s %8s %10s %10s",
			row.name, output.FormatRate(row.p.AnnualReturn), row.p.FireDate.Label(), months)))
	}
	return tuistyles.BorderStyle.Render(b.String())
}

// renderChart plots one point per year so long horizons fit the width.
func (m *ProjectionModel) renderChart() string {
	var points []float64
	var labels []string
	for i, month := range m.trajectory {
		if i%12 != 0 && i != len(m.trajectory)-1 {
			continue
		}
		points = append(points, month.NetWorth.InexactFloat64())
		labels = append(labels, month.Date.Format("2006"))
	}
	return components.NewASCIIChart("Net worth").
		AddSeries("Net worth", points, tuistyles.ColorSecondary).
		WithLabels(labels).
		WithSize(max(m.width-4, 40), chartHeight(m.height)).
		Render()
}

// chartHeight leaves room for the cards and headers above a chart.
func chartHeight(height int) int {
	return max(height-24, 6)
}
