package scenes

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/rgehrsitz/firego/internal/output"
	"github.com/rgehrsitz/firego/internal/tui/components"
	"github.com/rgehrsitz/firego/internal/tui/tuistyles"
)

// ListKeys move the selection inside a scene.
type ListKeys struct {
	Up   key.Binding
	Down key.Binding
}

// DefaultListKeys binds the arrow keys and j/k.
func DefaultListKeys() ListKeys {
	return ListKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
	}
}

// ScenariosModel compares the drifter, current and optimizer trajectories.
type ScenariosModel struct {
	paths    []domain.ScenarioPath
	selected int
	keys     ListKeys
	width    int
	height   int
}

// NewScenariosModel creates an empty scenarios scene with the current path
// selected.
func NewScenariosModel() *ScenariosModel {
	return &ScenariosModel{selected: 1, keys: DefaultListKeys()}
}

// SetPaths replaces the trajectories.
func (m *ScenariosModel) SetPaths(paths []domain.ScenarioPath) {
	m.paths = paths
	if m.selected >= len(paths) {
		m.selected = 0
	}
}

// SetSize updates the scene dimensions.
func (m *ScenariosModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the highlighted path, if any.
func (m *ScenariosModel) Selected() (domain.ScenarioPath, bool) {
	if m.selected < 0 || m.selected >= len(m.paths) {
		return domain.ScenarioPath{}, false
	}
	return m.paths[m.selected], true
}

// Update moves the selection.
func (m *ScenariosModel) Update(msg tea.Msg) (*ScenariosModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.paths) == 0 {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.selected = (m.selected - 1 + len(m.paths)) % len(m.paths)
	case key.Matches(keyMsg, m.keys.Down):
		m.selected = (m.selected + 1) % len(m.paths)
	}
	return m, nil
}

// View renders the scene.
func (m *ScenariosModel) View() string {
	if len(m.paths) == 0 {
		return tuistyles.InfoStyle.Render("No scenarios yet")
	}

	chart := components.NewASCIIChart("Net worth by behavior")
	cards := make([]*components.ScenarioCard, 0, len(m.paths))
	var labels []string
	for i, path := range m.paths {
		var points []float64
		for j, month := range path.Months {
			if j%12 == 0 || j == len(path.Months)-1 {
				points = append(points, month.NetWorth.InexactFloat64())
				if i == 0 {
					labels = append(labels, month.Date.Format("2006"))
				}
			}
		}
		chart.AddSeries(path.Label, points, lipgloss.Color(path.Color))
		cards = append(cards, components.NewScenarioCardFromPath(path).SetSelected(i == m.selected))
	}
	chart.WithLabels(labels).WithSize(max(m.width-4, 40), chartHeight(m.height))

	return lipgloss.JoinVertical(lipgloss.Left,
		components.ScenarioRow(cards),
		m.renderDetail(),
		chart.Render(),
	)
}

func (m *ScenariosModel) renderDetail() string {
	path, ok := m.Selected()
	if !ok {
		return ""
	}
	final := path.Final()
	line := fmt.Sprintf("%s after %d months: %s net worth, %s passive income / month",
		path.Label, len(path.Months), output.FormatWholeCurrency(final.NetWorth), output.FormatWholeCurrency(final.PassiveIncome))
	return tuistyles.SubtitleStyle.Render(line)
}
