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

// ResilienceModel shows the resilience score and what each life event in
// the input costs.
type ResilienceModel struct {
	score  *domain.ResilienceScore
	events []domain.LifeEventImpact
	width  int
}

// NewResilienceModel creates an empty resilience scene.
func NewResilienceModel() *ResilienceModel {
	return &ResilienceModel{}
}

// SetData replaces the score and life event impacts.
func (m *ResilienceModel) SetData(score domain.ResilienceScore, events []domain.LifeEventImpact) {
	m.score = &score
	m.events = events
}

// SetSize updates the scene width.
func (m *ResilienceModel) SetSize(width, _ int) {
	m.width = width
}

// View renders the scene.
func (m *ResilienceModel) View() string {
	if m.score == nil {
		return tuistyles.InfoStyle.Render("No score yet")
	}
	s := m.score
	color := tuistyles.ResilienceColor(string(s.Label))

	total := lipgloss.NewStyle().Bold(true).Foreground(color).
		Render(fmt.Sprintf("%d / 100  %s", s.Total, strings.ToUpper(string(s.Label))))

	bars := []string{
		components.NewProgressBar(s.Total, 100).WithLabel("Total").WithColor(color).Render(),
		components.NewProgressBar(s.Emergency, 25).WithLabel("Emergency fund").Render(),
		components.NewProgressBar(s.Diversification, 25).WithLabel("Diversification").Render(),
		components.NewProgressBar(s.DebtRatio, 25).WithLabel("Debt ratio").Render(),
		components.NewProgressBar(s.SavingsRate, 25).WithLabel("Savings rate").Render(),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		total,
		tuistyles.BorderStyle.Render(strings.Join(bars, "\n")),
		m.renderEvents(),
	)
}

func (m *ResilienceModel) renderEvents() string {
	if len(m.events) == 0 {
		return tuistyles.SubtitleStyle.Render("No life events in the input")
	}
	var b strings.Builder
	b.WriteString(tuistyles.TableHeaderStyle.Render(fmt.Sprintf("%-20s %12s %8s %12s", "Life event", "Cost", "Delay", "Days lost")))
	for _, e := range m.events {
		b.WriteString("\n")
		b.WriteString(tuistyles.TableCellStyle.Render(fmt.Sprintf("%-20s %12s %7dm %12s",
			truncate(e.Event.Name, 20), output.FormatWholeCurrency(e.TotalCost), e.FireDelayMonths, output.FormatInt(e.FreedomDaysLost))))
	}
	return tuistyles.BorderStyle.Render(b.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
