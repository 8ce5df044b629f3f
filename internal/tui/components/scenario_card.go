package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/rgehrsitz/firego/internal/tui/tuistyles"
)

// ScenarioCard summarizes one behavioral trajectory.
type ScenarioCard struct {
	Name       string
	Color      lipgloss.Color
	Highlights []string
	IsSelected bool
	Width      int
}

// NewScenarioCard creates an empty card 34 columns wide.
func NewScenarioCard(name string, color lipgloss.Color) *ScenarioCard {
	return &ScenarioCard{Name: name, Color: color, Width: 34}
}

// NewScenarioCardFromPath fills a card with a path's final net worth and
// FIRE crossing.
func NewScenarioCardFromPath(path domain.ScenarioPath) *ScenarioCard {
	card := NewScenarioCard(path.Label, lipgloss.Color(path.Color))
	card.AddHighlight("Final net worth " + tuistyles.FormatCurrency(path.Final().NetWorth))
	switch {
	case path.FireMonth == nil:
		card.AddHighlight("FIRE not reached")
	case path.FireAge != nil:
		card.AddHighlight(fmt.Sprintf("FIRE at age %d", *path.FireAge))
	default:
		card.AddHighlight(fmt.Sprintf("FIRE in month %d", *path.FireMonth))
	}
	return card
}

// AddHighlight appends a bullet line.
func (s *ScenarioCard) AddHighlight(highlight string) *ScenarioCard {
	s.Highlights = append(s.Highlights, highlight)
	return s
}

// SetSelected marks the card as selected.
func (s *ScenarioCard) SetSelected(selected bool) *ScenarioCard {
	s.IsSelected = selected
	return s
}

// WithWidth sets the card width.
func (s *ScenarioCard) WithWidth(width int) *ScenarioCard {
	s.Width = width
	return s
}

// Render returns the bordered card; the border takes the scenario color
// when selected.
func (s *ScenarioCard) Render() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(s.Color).Render(s.Name))
	for _, h := range s.Highlights {
		b.WriteString("\n")
		b.WriteString(tuistyles.MetricLabelStyle.Render("• " + h))
	}

	border := tuistyles.ColorBorder
	if s.IsSelected {
		border = s.Color
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(s.Width).
		Render(b.String())
}

// ScenarioRow renders cards side by side.
func ScenarioRow(cards []*ScenarioCard) string {
	if len(cards) == 0 {
		return tuistyles.InfoStyle.Render("No scenarios available")
	}
	rendered := make([]string, len(cards))
	for i, card := range cards {
		rendered[i] = card.Render()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
