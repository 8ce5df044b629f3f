package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/firego/internal/tui/tuistyles"
)

// ProgressBar is a horizontal gauge of Current out of Total.
type ProgressBar struct {
	Current     int
	Total       int
	Width       int
	Label       string
	Color       lipgloss.Color
	ShowPercent bool
	ShowCount   bool
}

// NewProgressBar creates a 30 column gauge showing the count.
func NewProgressBar(current, total int) *ProgressBar {
	return &ProgressBar{
		Current:   current,
		Total:     total,
		Width:     30,
		Color:     tuistyles.ColorSuccess,
		ShowCount: true,
	}
}

// WithLabel sets the text shown before the gauge.
func (p *ProgressBar) WithLabel(label string) *ProgressBar {
	p.Label = label
	return p
}

// WithWidth sets the gauge width.
func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.Width = width
	return p
}

// WithColor sets the fill color.
func (p *ProgressBar) WithColor(color lipgloss.Color) *ProgressBar {
	p.Color = color
	return p
}

// WithPercent toggles the percentage suffix.
func (p *ProgressBar) WithPercent(show bool) *ProgressBar {
	p.ShowPercent = show
	return p
}

// Fraction returns Current/Total clamped to [0,1].
func (p *ProgressBar) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Current) / float64(p.Total)
	return max(0, min(f, 1))
}

// Render returns "label [████░░░░] 12/25".
func (p *ProgressBar) Render() string {
	filled := int(float64(p.Width) * p.Fraction())
	empty := p.Width - filled

	var b strings.Builder
	if p.Label != "" {
		b.WriteString(tuistyles.MetricLabelStyle.Width(18).Render(p.Label))
		b.WriteString(" ")
	}
	b.WriteString("[")
	b.WriteString(lipgloss.NewStyle().Foreground(p.Color).Render(strings.Repeat("█", filled)))
	b.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("░", empty)))
	b.WriteString("]")

	var stats []string
	if p.ShowCount {
		stats = append(stats, fmt.Sprintf("%d/%d", p.Current, p.Total))
	}
	if p.ShowPercent {
		stats = append(stats, fmt.Sprintf("%.1f%%", p.Fraction()*100))
	}
	if len(stats) > 0 {
		b.WriteString(" ")
		b.WriteString(tuistyles.MetricValueStyle.Render(strings.Join(stats, " • ")))
	}
	return b.String()
}
