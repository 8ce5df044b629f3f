package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/firego/internal/output"
)

// View implements tea.Model.
func (m Model) View() string {
	switch {
	case m.err != nil:
		return m.renderError()
	case m.loading:
		return AppStyle.Render(InfoStyle.Render(fmt.Sprintf("Loading %s...", m.inputPath)))
	}

	var content string
	switch m.tab {
	case TabProjection:
		content = m.projection.View()
	case TabScenarios:
		content = m.scenarios.View()
	case TabMonteCarlo:
		content = m.monteCarlo.View()
	case TabWithdrawal:
		content = m.withdrawal.View()
	case TabResilience:
		content = m.resilience.View()
	}

	return AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitleBar(),
		m.renderTabs(),
		content,
		m.renderStatusBar(),
	))
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("FIREGO")
	detail := SubtitleStyle.Render(fmt.Sprintf("%s • return %s", m.inputPath, output.FormatRate(m.annualReturn)))
	return title + "  " + detail
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, tabCount)
	for t := Tab(0); t < tabCount; t++ {
		label := fmt.Sprintf("%d %s", int(t)+1, t)
		if t == m.tab {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, InactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func (m Model) renderStatusBar() string {
	return StatusBarStyle.Width(max(m.width-2, 0)).Render(m.help.View(m.keys))
}

func (m Model) renderError() string {
	lines := []string{
		ErrorStyle.Render("Error"),
		m.err.Error(),
		"",
		SubtitleStyle.Render("press q to quit"),
	}
	return AppStyle.Render(BorderStyle.Render(strings.Join(lines, "\n")))
}
