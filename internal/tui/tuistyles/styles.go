// Package tuistyles holds the dashboard palette and shared lipgloss styles.
// It is a leaf package so components and scenes can share it without import
// cycles.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/firego/internal/output"
	"github.com/shopspring/decimal"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSecondary = lipgloss.Color("#3B82F6")
	ColorAccent    = lipgloss.Color("#F59E0B")
	ColorSuccess   = lipgloss.Color("#22C55E")
	ColorDanger    = lipgloss.Color("#EF4444")
	ColorInfo      = lipgloss.Color("#06B6D4")

	ColorForeground = lipgloss.Color("#E5E7EB")
	ColorMuted      = lipgloss.Color("#9CA3AF")
	ColorBorder     = lipgloss.Color("#4B5563")

	// Chart lines follow the scenario palette: drifter, current, optimizer.
	ColorChartLine1 = lipgloss.Color("#EF4444")
	ColorChartLine2 = lipgloss.Color("#3B82F6")
	ColorChartLine3 = lipgloss.Color("#22C55E")
	ColorChartLine4 = lipgloss.Color("#F59E0B")
)

var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorBorder)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground).
			Background(ColorPrimary).
			Padding(0, 2)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 2)

	SelectedItemStyle   = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	UnselectedItemStyle = lipgloss.NewStyle().Foreground(ColorForeground)

	MetricLabelStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle    = lipgloss.NewStyle().Foreground(ColorForeground).Bold(true)
	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	ParameterLabelStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	ParameterValueStyle = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
	SliderTrackStyle    = lipgloss.NewStyle().Foreground(ColorBorder)
	SliderThumbStyle    = lipgloss.NewStyle().Foreground(ColorPrimary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Italic(true)

	TableHeaderStyle    = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	TableCellStyle      = lipgloss.NewStyle().Foreground(ColorForeground)
	TableHighlightStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
)

// MetricTrendStyle colors a change by direction.
func MetricTrendStyle(positive bool) lipgloss.Style {
	if positive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns an arrow for a change direction.
func TrendIndicator(positive bool) string {
	if positive {
		return "▲"
	}
	return "▼"
}

// FormatCurrency renders whole dollars, e.g. "$1,235".
func FormatCurrency(d decimal.Decimal) string {
	return output.FormatWholeCurrency(d)
}

// ResilienceColor maps a resilience label onto the palette.
func ResilienceColor(label string) lipgloss.Color {
	switch label {
	case "excellent", "strong":
		return ColorSuccess
	case "reasonable":
		return ColorAccent
	default:
		return ColorDanger
	}
}
