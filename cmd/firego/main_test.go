package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const householdYAML = `snapshot:
  total_assets: 50000
  monthly_income: 3000
  monthly_expenses: 2000
  date_of_birth: 1990-06-15
  as_of: 2025-01-01

assumptions:
  monte_carlo_simulations: 40
  monte_carlo_years: 10

target_fire_age: 55

life_events:
  - name: First child
    type: family
    one_time_cost: 5000
    monthly_cost_change: 500
    duration_months: 24
  - name: Sabbatical
    type: career
    monthly_income_change: -3000
    duration_months: 6

withdrawal:
  starting_portfolio: 1000000
  retirement_age: 60
  target_age: 65
  strategy: guardrails
  yearly_expenses: 40000
  annual_return: 0.07
`

func writeInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "household.yaml")
	require.NoError(t, os.WriteFile(path, []byte(householdYAML), 0o644))
	return path
}

// resetFlags restores every flag to its default so runs don't leak into
// each other through the shared command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	require.NotNil(t, rootCmd)
	assert.Equal(t, "firego", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("format"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("debug"))
}

func TestRootCommand_Help(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "firego")
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, err := execute(t, "invalid-command")
	assert.Error(t, err)
}

func TestCommandSubcommands(t *testing.T) {
	expected := []string{
		"version", "validate", "project", "range", "trajectory", "scenarios",
		"montecarlo", "resilience", "withdraw", "event", "breakeven", "report", "serve",
	}
	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range expected {
		assert.True(t, registered[name], "command %q should be registered", name)
	}
}

func TestValidateCommand(t *testing.T) {
	path := writeInput(t)

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	_, err = execute(t, "validate", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestProjectCommand(t *testing.T) {
	out, err := execute(t, "project", writeInput(t))
	require.NoError(t, err)
	assert.Contains(t, out, "FIRE PROJECTION")
	assert.Contains(t, out, "Dec 2042")
	assert.Contains(t, out, "KEY ASSUMPTIONS")
}

func TestProjectCommand_JSON(t *testing.T) {
	out, err := execute(t, "project", writeInput(t), "--format", "json")
	require.NoError(t, err)

	var decoded struct {
		Projection struct {
			MonthsToFire int `json:"monthsToFire"`
			FireAge      int `json:"fireAge"`
			FireDate     struct {
				Kind  string `json:"kind"`
				Label string `json:"label"`
			} `json:"fireDate"`
		} `json:"projection"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 215, decoded.Projection.MonthsToFire)
	assert.Equal(t, 51, decoded.Projection.FireAge)
	assert.Equal(t, "projected", decoded.Projection.FireDate.Kind)
	assert.Equal(t, "Dec 2042", decoded.Projection.FireDate.Label)
}

func TestProjectCommand_UnknownFormat(t *testing.T) {
	_, err := execute(t, "project", writeInput(t), "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestRangeCommand_CSV(t *testing.T) {
	out, err := execute(t, "range", writeInput(t), "-f", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "range")
	assert.Contains(t, out, "2042-12-01")
}

func TestScenariosCommand_Compare(t *testing.T) {
	out, err := execute(t, "scenarios", writeInput(t), "--years", "5", "--compare")
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	out, err = execute(t, "scenarios", writeInput(t), "--years", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "BEHAVIORAL SCENARIOS")
}

func TestMonteCarloCommand(t *testing.T) {
	out, err := execute(t, "mc", writeInput(t), "--sims", "20", "--years", "5", "--workers", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "MONTE CARLO")
}

func TestWithdrawCommand(t *testing.T) {
	path := writeInput(t)

	out, err := execute(t, "withdraw", path)
	require.NoError(t, err)
	assert.Contains(t, out, "WITHDRAWAL PLAN: GUARDRAILS")

	out, err = execute(t, "withdraw", path, "--strategy", "classic")
	require.NoError(t, err)
	assert.Contains(t, out, "WITHDRAWAL PLAN: CLASSIC")
	assert.Contains(t, out, "$1,027,200")
}

func TestWithdrawCommand_All(t *testing.T) {
	out, err := execute(t, "withdraw", writeInput(t), "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "WITHDRAWAL STRATEGY COMPARISON")
	for _, s := range domain.AllStrategies() {
		assert.Contains(t, out, string(s))
	}
}

func TestWithdrawCommand_UnknownStrategy(t *testing.T) {
	_, err := execute(t, "withdraw", writeInput(t), "--strategy", "yolo")
	assert.ErrorIs(t, err, domain.ErrUnknownStrategy)
}

func TestEventCommand(t *testing.T) {
	path := writeInput(t)

	out, err := execute(t, "event", path, "--name", "First child")
	require.NoError(t, err)
	assert.Contains(t, out, "LIFE EVENTS")
	assert.Contains(t, out, "First child")
	assert.NotContains(t, out, "Sabbatical")

	_, err = execute(t, "event", path, "-n", "Lottery")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResilienceCommand(t *testing.T) {
	out, err := execute(t, "resilience", writeInput(t))
	require.NoError(t, err)
	assert.Contains(t, out, "RESILIENCE")
}

func TestBreakEvenSpendingCommand_JSON(t *testing.T) {
	out, err := execute(t, "breakeven", "spending", writeInput(t), "-f", "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, decoded, "spending")
	assert.NotContains(t, decoded, "savings")
}

func TestBreakEvenCommand_RejectsCSV(t *testing.T) {
	_, err := execute(t, "breakeven", "spending", writeInput(t), "-f", "csv")
	assert.Error(t, err)
}

func TestReportCommand(t *testing.T) {
	path := writeInput(t)
	chdirForTest(t, t.TempDir())

	out, err := execute(t, "report", path)
	require.NoError(t, err)
	assert.Contains(t, out, "fire_report.pdf")

	data, err := os.ReadFile("fire_report.pdf")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestReportCommand_Stdout(t *testing.T) {
	out, err := execute(t, "report", writeInput(t), "--output", "", "-f", "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	for _, key := range []string{"projection", "range", "scenarios", "monteCarlo", "withdrawal", "lifeEvents", "resilience"} {
		assert.Contains(t, decoded, key)
	}
}

// chdirForTest changes the working directory for the duration of the test
// and restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
