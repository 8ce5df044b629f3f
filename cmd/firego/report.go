package main

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/firego/internal/calculation"
	"github.com/rgehrsitz/firego/internal/config"
	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/rgehrsitz/firego/internal/output"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [input-file]",
	Short: "Run every analysis and write a PDF report",
	Long: `Run the projection, range, scenarios, Monte Carlo, withdrawal plan,
life events and resilience score, and write them as one PDF.

Pass --output "" to print the combined report with --format instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, engine, err := loadInput(cmd, args[0])
		if err != nil {
			return err
		}
		report, err := fullReport(input, engine)
		if err != nil {
			return err
		}

		path, _ := cmd.Flags().GetString("output")
		if path == "" {
			return render(cmd, report)
		}
		data, err := output.PDFReport(report)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	},
}

// fullReport runs every analysis the input supports.
func fullReport(input *config.Input, engine *calculation.Engine) (*output.Report, error) {
	s := input.Snapshot
	a := engine.Assumptions

	projection := engine.ProjectFire(s)
	fireRange := engine.ProjectRange(s)
	mc := engine.RunMonteCarlo(s, a.MonteCarloSimulations, a.MonteCarloYears)
	resilience := engine.ScoreResilience(s)

	report := &output.Report{
		Title:       "FIRE Report",
		Assumptions: a.AssumptionsList(),
		Projection:  &projection,
		Range:       &fireRange,
		Scenarios:   engine.SimulateScenarios(s, a.ScenarioYears),
		MonteCarlo:  &mc,
		Resilience:  &resilience,
	}

	if input.Withdrawal != nil {
		result, err := engine.SimulateWithdrawal(*input.Withdrawal)
		if err != nil {
			return nil, err
		}
		report.Withdrawal = &result
	}

	report.LifeEvents = make([]domain.LifeEventImpact, 0, len(input.LifeEvents))
	for _, event := range input.LifeEvents {
		report.LifeEvents = append(report.LifeEvents, engine.LifeEventImpact(s, event))
	}
	return report, nil
}

func init() {
	reportCmd.Flags().StringP("output", "o", "fire_report.pdf", "PDF output path")
	rootCmd.AddCommand(reportCmd)
}
