package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case InputLoadedMsg:
		m.loading = false
		m.resize(m.width, m.height)
		cmd := m.load(msg.Input)
		return m, cmd

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case MonteCarloCompleteMsg:
		if msg.Generation == m.generation {
			m.monteCarlo.SetResult(msg.Result)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.monteCarlo, cmd = m.monteCarlo.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.loading || m.err != nil || m.input == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tabCount
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab - 1 + tabCount) % tabCount
	case key.Matches(msg, m.keys.JumpTab):
		m.tab = Tab(msg.String()[0] - '1')
	case key.Matches(msg, m.keys.ReturnUp):
		return m, m.adjustReturn(returnStep)
	case key.Matches(msg, m.keys.ReturnDown):
		return m, m.adjustReturn(returnStep.Neg())
	default:
		return m.updateCurrentTab(msg)
	}
	return m, nil
}

// updateCurrentTab forwards keys the dashboard does not bind to the scene.
func (m Model) updateCurrentTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.tab {
	case TabScenarios:
		m.scenarios, cmd = m.scenarios.Update(msg)
	case TabWithdrawal:
		m.withdrawal, cmd = m.withdrawal.Update(msg)
	}
	return m, cmd
}
