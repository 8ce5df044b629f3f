package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rgehrsitz/firego/internal/domain"
)

// Report bundles whatever a command computed. Formatters render only the
// sections that are populated.
type Report struct {
	Title       string   `json:"title,omitempty"`
	Assumptions []string `json:"assumptions,omitempty"`

	Projection *domain.FireProjection   `json:"projection,omitempty"`
	Range      *domain.FireRange        `json:"range,omitempty"`
	Trajectory []domain.ProjectionMonth `json:"trajectory,omitempty"`
	Scenarios  []domain.ScenarioPath    `json:"scenarios,omitempty"`
	MonteCarlo *domain.MonteCarloResult `json:"monteCarlo,omitempty"`
	Withdrawal *domain.WithdrawalResult `json:"withdrawal,omitempty"`
	LifeEvents []domain.LifeEventImpact `json:"lifeEvents,omitempty"`
	Resilience *domain.ResilienceScore  `json:"resilience,omitempty"`
}

// IsEmpty reports whether no section is populated.
func (r *Report) IsEmpty() bool {
	return r.Projection == nil && r.Range == nil && len(r.Trajectory) == 0 &&
		len(r.Scenarios) == 0 && r.MonteCarlo == nil && r.Withdrawal == nil &&
		len(r.LifeEvents) == 0 && r.Resilience == nil
}

// Formatter renders a report into bytes.
type Formatter interface {
	Name() string
	Format(report *Report) ([]byte, error)
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc struct {
	ID string
	F  func(report *Report) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(report *Report) ([]byte, error) { return f.F(report) }

var formatters = map[string]Formatter{}

// aliases maps alternate user-facing names onto registered formatters.
var aliases = map[string]string{
	"text":  "console",
	"table": "console",
	"txt":   "console",
}

func register(f Formatter) { formatters[f.Name()] = f }

func init() {
	register(ConsoleFormatter{})
	register(JSONFormatter{})
	register(CSVFormatter{})
}

// GetFormatterByName returns the formatter registered under name or one of
// its aliases, or nil.
func GetFormatterByName(name string) Formatter {
	key := strings.ToLower(strings.TrimSpace(name))
	if target, ok := aliases[key]; ok {
		key = target
	}
	return formatters[key]
}

// AvailableFormats lists registered formatter names, sorted.
func AvailableFormats() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists the accepted aliases, sorted.
func AvailableFormatAliases() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteFormatted renders the report and writes it to a timestamped file in
// the working directory, returning the file name.
func WriteFormatted(f Formatter, report *Report, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("fire_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return filename, nil
}
