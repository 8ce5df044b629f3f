package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/firego/internal/compare"
	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/rgehrsitz/firego/internal/output"
	"github.com/rgehrsitz/firego/internal/tui/components"
	"github.com/rgehrsitz/firego/internal/tui/tuistyles"
)

// WithdrawalModel ranks the withdrawal strategies and charts the balance of
// the selected one.
type WithdrawalModel struct {
	comparison *compare.StrategyComparison
	schedules  map[domain.WithdrawalStrategy]domain.WithdrawalResult
	selected   int
	keys       ListKeys
	width      int
	height     int
}

// NewWithdrawalModel creates an empty withdrawal scene.
func NewWithdrawalModel() *WithdrawalModel {
	return &WithdrawalModel{keys: DefaultListKeys()}
}

// SetData replaces the ranking and the per-strategy schedules.
func (m *WithdrawalModel) SetData(comparison *compare.StrategyComparison, schedules map[domain.WithdrawalStrategy]domain.WithdrawalResult) {
	m.comparison = comparison
	m.schedules = schedules
	if comparison == nil || m.selected >= len(comparison.Results) {
		m.selected = 0
	}
}

// SetSize updates the scene dimensions.
func (m *WithdrawalModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the highlighted strategy.
func (m *WithdrawalModel) Selected() (domain.WithdrawalStrategy, bool) {
	if m.comparison == nil || m.selected >= len(m.comparison.Results) {
		return "", false
	}
	return m.comparison.Results[m.selected].Strategy, true
}

// Update moves the selection through the ranking.
func (m *WithdrawalModel) Update(msg tea.Msg) (*WithdrawalModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.comparison == nil || len(m.comparison.Results) == 0 {
		return m, nil
	}
	n := len(m.comparison.Results)
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.selected = (m.selected - 1 + n) % n
	case key.Matches(keyMsg, m.keys.Down):
		m.selected = (m.selected + 1) % n
	}
	return m, nil
}

// View renders the scene.
func (m *WithdrawalModel) View() string {
	if m.comparison == nil {
		return tuistyles.InfoStyle.Render("The input has no withdrawal section")
	}

	plan := m.comparison.Plan
	header := tuistyles.SubtitleStyle.Render(fmt.Sprintf("%s portfolio, ages %d-%d, %s / year",
		output.FormatWholeCurrency(plan.StartingPortfolio), plan.RetirementAge, plan.TargetAge,
		output.FormatWholeCurrency(plan.YearlyExpenses)))

	return lipgloss.JoinVertical(lipgloss.Left, header, m.renderRanking(), m.renderChart())
}

func (m *WithdrawalModel) renderRanking() string {
	var b strings.Builder
	b.WriteString(tuistyles.TableHeaderStyle.Render(fmt.Sprintf("  %-2s %-11s %12s %14s %14s", "#", "Strategy", "1st year", "Final", "Funded")))
	for i, r := range m.comparison.Results {
		funded := fmt.Sprintf("%d/%d yrs", r.SuccessYears, r.TotalYears)
		if r.Depleted {
			funded = fmt.Sprintf("out at yr %d", r.SuccessYears+1)
		}
		row := fmt.Sprintf("%-2d %-11s %12s %14s %14s", r.Rank, r.Strategy,
			output.FormatWholeCurrency(r.FirstYearWithdrawal), output.FormatWholeCurrency(r.FinalBalance), funded)

		b.WriteString("\n")
		if i == m.selected {
			b.WriteString(tuistyles.SelectedItemStyle.Render("▸ " + row))
		} else {
			b.WriteString(tuistyles.UnselectedItemStyle.Render("  " + row))
		}
	}
	return tuistyles.BorderStyle.Render(b.String())
}

func (m *WithdrawalModel) renderChart() string {
	strategy, ok := m.Selected()
	if !ok {
		return ""
	}
	result := m.schedules[strategy]

	points := make([]float64, 0, len(result.Schedule))
	labels := make([]string, 0, len(result.Schedule))
	for _, y := range result.Schedule {
		points = append(points, y.EndBalance.InexactFloat64())
		labels = append(labels, fmt.Sprintf("%d", y.Age))
	}
	return components.NewASCIIChart(fmt.Sprintf("Balance: %s (%s)", strategy, strategy.Description())).
		AddSeries(string(strategy), points, tuistyles.ColorAccent).
		WithLabels(labels).
		WithXAxisLabel("age").
		WithSize(max(m.width-4, 40), chartHeight(m.height)).
		Render()
}
