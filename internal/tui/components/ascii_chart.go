package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/firego/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

const yAxisWidth = 10

// DataSeries is one plotted line.
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart plots one or more money series against a shared y axis.
type ASCIIChart struct {
	Title      string
	Series     []*DataSeries
	Labels     []string // x axis, spread evenly under the plot
	Width      int
	Height     int
	ShowLegend bool
	XAxisLabel string
}

// NewASCIIChart creates a chart with a 60x12 plot area.
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:      title,
		Width:      60,
		Height:     12,
		ShowLegend: true,
	}
}

// AddSeries appends a series.
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// AddDecimalSeries appends a series of money values.
func (c *ASCIIChart) AddDecimalSeries(name string, points []decimal.Decimal, color lipgloss.Color) *ASCIIChart {
	return c.AddSeries(name, DecimalPoints(points), color)
}

// WithLabels sets the x axis labels.
func (c *ASCIIChart) WithLabels(labels []string) *ASCIIChart {
	c.Labels = labels
	return c
}

// WithSize sets the total width (y axis included) and plot height.
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// WithXAxisLabel sets the caption under the x axis.
func (c *ASCIIChart) WithXAxisLabel(label string) *ASCIIChart {
	c.XAxisLabel = label
	return c
}

// DecimalPoints converts money values for plotting.
func DecimalPoints(values []decimal.Decimal) []float64 {
	points := make([]float64, len(values))
	for i, v := range values {
		points[i] = v.InexactFloat64()
	}
	return points
}

// Render returns the chart, or a placeholder when no series has points.
func (c *ASCIIChart) Render() string {
	if !c.hasData() {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var b strings.Builder
	if c.Title != "" {
		b.WriteString(tuistyles.TitleStyle.Render(c.Title))
		b.WriteString("\n\n")
	}

	lo, hi := c.bounds()
	b.WriteString(c.renderGrid(lo, hi))

	if c.XAxisLabel != "" {
		b.WriteString("\n")
		b.WriteString(tuistyles.SubtitleStyle.Render(c.XAxisLabel))
	}
	if c.ShowLegend && len(c.Series) > 1 {
		b.WriteString("\n\n")
		b.WriteString(c.renderLegend())
	}
	return b.String()
}

func (c *ASCIIChart) hasData() bool {
	for _, s := range c.Series {
		if len(s.Points) > 0 {
			return true
		}
	}
	return false
}

func (c *ASCIIChart) plotSize() (int, int) {
	return max(c.Width-yAxisWidth-3, 2), max(c.Height, 2)
}

// bounds returns the padded value range. A flat series gets a band around
// its single value so the scale never collapses to zero.
func (c *ASCIIChart) bounds() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			lo = math.Min(lo, p)
			hi = math.Max(hi, p)
		}
	}
	if hi-lo == 0 {
		pad := math.Max(math.Abs(hi)*0.1, 1)
		return lo - pad, hi + pad
	}
	pad := (hi - lo) * 0.1
	return lo - pad, hi + pad
}

func (c *ASCIIChart) renderGrid(lo, hi float64) string {
	width, height := c.plotSize()

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	column := func(i, n int) int {
		if n <= 1 {
			return 0
		}
		return int(math.Round(float64(i) / float64(n-1) * float64(width-1)))
	}
	row := func(v float64) int {
		return height - 1 - int(math.Round((v-lo)/(hi-lo)*float64(height-1)))
	}

	for idx, s := range c.Series {
		glyph := seriesGlyph(idx)
		n := len(s.Points)
		for i, p := range s.Points {
			x, y := column(i, n), row(p)
			if i > 0 {
				drawLine(grid, column(i-1, n), row(s.Points[i-1]), x, y, glyph)
			}
			setCell(grid, x, y, glyph, true)
		}
	}

	axis := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Width(yAxisWidth).
		Align(lipgloss.Right)

	var b strings.Builder
	for i, r := range grid {
		value := hi - float64(i)/float64(height-1)*(hi-lo)
		b.WriteString(axis.Render(FormatChartValue(value)))
		b.WriteString(" │ ")
		b.WriteString(string(r))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", yAxisWidth))
	b.WriteString(" └")
	b.WriteString(strings.Repeat("─", width+1))
	b.WriteString("\n")

	if len(c.Labels) > 0 {
		b.WriteString(c.renderXAxisLabels(width))
	}
	return b.String()
}

func setCell(grid [][]rune, x, y int, glyph rune, overwrite bool) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	if overwrite || grid[y][x] == ' ' {
		grid[y][x] = glyph
	}
}

// drawLine connects two cells with Bresenham's algorithm without
// overwriting points already plotted.
func drawLine(grid [][]rune, x0, y0, x1, y1 int, glyph rune) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		setCell(grid, x0, y0, glyph, false)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// renderXAxisLabels places up to five labels at their data positions.
func (c *ASCIIChart) renderXAxisLabels(width int) string {
	const maxLabels = 5
	n := len(c.Labels)
	step := max(n/maxLabels, 1)

	line := []rune(strings.Repeat(" ", width+yAxisWidth+3))
	next := 0
	for i := 0; i < n; i += step {
		pos := yAxisWidth + 3
		if n > 1 {
			pos += int(float64(i) / float64(n-1) * float64(width-1))
		}
		if pos < next {
			continue
		}
		for j, r := range c.Labels[i] {
			if pos+j < len(line) {
				line[pos+j] = r
			}
		}
		next = pos + len([]rune(c.Labels[i])) + 1
	}
	return tuistyles.MetricLabelStyle.Render(strings.TrimRight(string(line), " "))
}

func (c *ASCIIChart) renderLegend() string {
	items := make([]string, 0, len(c.Series))
	for i, s := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(s.Color).Render(string(seriesGlyph(i)))
		items = append(items, fmt.Sprintf("%s %s", symbol, s.Name))
	}
	return tuistyles.MetricLabelStyle.Render("Legend: " + strings.Join(items, " • "))
}

func seriesGlyph(index int) rune {
	glyphs := []rune{'●', '■', '▲', '♦', '◆'}
	return glyphs[index%len(glyphs)]
}

// FormatChartValue abbreviates an axis value, e.g. "$1.2M" or "$350K".
func FormatChartValue(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	switch {
	case value >= 1_000_000:
		return fmt.Sprintf("%s$%.1fM", sign, value/1_000_000)
	case value >= 1_000:
		return fmt.Sprintf("%s$%.0fK", sign, value/1_000)
	default:
		return fmt.Sprintf("%s$%.0f", sign, value)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
