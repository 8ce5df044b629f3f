package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/rgehrsitz/firego/internal/tui/tuistyles"
)

// ParameterSlider shows an adjustable value inside a bounded range.
type ParameterSlider struct {
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Unit      string
	Format    string
	Width     int
	IsFocused bool
}

// NewParameterSlider creates a slider with a 20 column track.
func NewParameterSlider(label string, value, lo, hi, step float64) *ParameterSlider {
	s := &ParameterSlider{
		Label:  label,
		Min:    lo,
		Max:    hi,
		Step:   step,
		Format: "%.1f",
		Width:  20,
	}
	s.SetValue(value)
	return s
}

// WithUnit sets the unit suffix.
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithFormat sets the value format verb.
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// SetFocused highlights the slider.
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// Increment raises the value by one step, stopping at Max.
func (p *ParameterSlider) Increment() { p.SetValue(p.Value + p.Step) }

// Decrement lowers the value by one step, stopping at Min.
func (p *ParameterSlider) Decrement() { p.SetValue(p.Value - p.Step) }

// SetValue clamps value into [Min, Max].
func (p *ParameterSlider) SetValue(value float64) {
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// Fraction is the value's position in the range.
func (p *ParameterSlider) Fraction() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// Render returns "Label: 7.0% [━━━━●─────]" on one line.
func (p *ParameterSlider) Render() string {
	label := tuistyles.ParameterLabelStyle
	value := tuistyles.ParameterValueStyle
	thumb := tuistyles.SliderThumbStyle
	if p.IsFocused {
		label = label.Foreground(tuistyles.ColorPrimary)
		value = value.Foreground(tuistyles.ColorAccent)
		thumb = thumb.Foreground(tuistyles.ColorAccent)
	}

	pos := int(math.Round(float64(p.Width-1) * p.Fraction()))
	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < p.Width; i++ {
		switch {
		case i == pos:
			bar.WriteString(thumb.Render("●"))
		case i < pos:
			bar.WriteString(thumb.Render("━"))
		default:
			bar.WriteString(tuistyles.SliderTrackStyle.Render("─"))
		}
	}
	bar.WriteString("]")

	return fmt.Sprintf("%s %s %s",
		label.Render(p.Label+":"),
		value.Render(fmt.Sprintf(p.Format, p.Value)+p.Unit),
		bar.String())
}
