package scenes

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/rgehrsitz/firego/internal/output"
	"github.com/rgehrsitz/firego/internal/tui/components"
	"github.com/rgehrsitz/firego/internal/tui/tuistyles"
)

// MonteCarloModel shows the percentile bands of the last simulation run.
type MonteCarloModel struct {
	result  *domain.MonteCarloResult
	running bool
	sims    int
	spinner spinner.Model
	width   int
	height  int
}

// NewMonteCarloModel creates an idle Monte Carlo scene.
func NewMonteCarloModel() *MonteCarloModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary)
	return &MonteCarloModel{spinner: s}
}

// Start marks a run of sims simulations in flight and returns the spinner
// tick that animates it.
func (m *MonteCarloModel) Start(sims int) tea.Cmd {
	m.running = true
	m.sims = sims
	return m.spinner.Tick
}

// SetResult stores a finished run.
func (m *MonteCarloModel) SetResult(r domain.MonteCarloResult) {
	m.result = &r
	m.running = false
}

// Running reports whether a run is in flight.
func (m *MonteCarloModel) Running() bool { return m.running }

// SetSize updates the scene dimensions.
func (m *MonteCarloModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update advances the spinner while a run is in flight.
func (m *MonteCarloModel) Update(msg tea.Msg) (*MonteCarloModel, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); ok && m.running {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the scene.
func (m *MonteCarloModel) View() string {
	if m.running {
		return fmt.Sprintf("%s Running %s simulations...", m.spinner.View(), output.FormatInt(m.sims))
	}
	if m.result == nil {
		return tuistyles.InfoStyle.Render("No simulation yet")
	}
	r := m.result

	cards := []*components.MetricCard{
		components.NewMetricCard("FIRE probability", output.FormatPercentage(r.FireProb)).
			WithDescription(fmt.Sprintf("%s runs, %d years", output.FormatInt(r.Simulations), r.Years)),
		components.NewMetricCard("Early FIRE age (p10)", output.FormatAge(r.P10FireAge)),
		components.NewMetricCard("Median FIRE age", output.FormatAge(r.P50FireAge)),
		components.NewMetricCard("Late FIRE age (p90)", output.FormatAge(r.P90FireAge)),
	}

	labels := make([]string, len(r.P50))
	for i := range labels {
		labels[i] = fmt.Sprintf("y%d", i)
	}
	chart := components.NewASCIIChart("Net worth percentiles").
		AddDecimalSeries("p90", r.P90, tuistyles.ColorSuccess).
		AddDecimalSeries("p50", r.P50, tuistyles.ColorSecondary).
		AddDecimalSeries("p10", r.P10, tuistyles.ColorDanger).
		WithLabels(labels).
		WithXAxisLabel("years from today").
		WithSize(max(m.width-4, 40), chartHeight(m.height))

	return lipgloss.JoinVertical(lipgloss.Left, components.MetricGrid(cards, 4), chart.Render())
}
