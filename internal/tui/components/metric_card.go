package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/firego/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// MetricCard shows one headline number with an optional change against a
// baseline.
type MetricCard struct {
	Label       string
	Value       string
	Delta       *Delta
	Description string
	Width       int
}

// Delta is a signed change; Good says whether the direction is favourable,
// which is not always the sign (fewer months to FIRE is good).
type Delta struct {
	Good   bool
	Change string
}

// NewMetricCard creates a card 24 columns wide.
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{Label: label, Value: value, Width: 24}
}

// NewMoneyCard creates a card for a currency amount.
func NewMoneyCard(label string, amount decimal.Decimal) *MetricCard {
	return NewMetricCard(label, tuistyles.FormatCurrency(amount))
}

// WithDelta attaches a change indicator.
func (m *MetricCard) WithDelta(good bool, change string) *MetricCard {
	m.Delta = &Delta{Good: good, Change: change}
	return m
}

// WithDescription adds a muted footnote.
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithWidth sets the card width.
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Render returns the bordered card.
func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" +
		tuistyles.MetricValueStyle.Render(m.Value)
	if m.Delta != nil {
		content += "\n" + m.renderDelta()
	}
	if m.Description != "" {
		content += "\n" + tuistyles.SubtitleStyle.Render(m.Description)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width).
		Render(content)
}

// RenderCompact returns "Label: value" on one line.
func (m *MetricCard) RenderCompact() string {
	line := tuistyles.MetricLabelStyle.Render(m.Label+":") + " " + tuistyles.MetricValueStyle.Render(m.Value)
	if m.Delta != nil {
		line += " " + m.renderDelta()
	}
	return line
}

func (m *MetricCard) renderDelta() string {
	return tuistyles.MetricTrendStyle(m.Delta.Good).
		Render(fmt.Sprintf("%s %s", tuistyles.TrendIndicator(m.Delta.Good), m.Delta.Change))
}

// MetricGrid lays cards out left to right, wrapping after columns cards.
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 || columns <= 0 {
		return ""
	}
	var rows []string
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		rendered := make([]string, 0, end-start)
		for _, card := range cards[start:end] {
			rendered = append(rendered, card.Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
