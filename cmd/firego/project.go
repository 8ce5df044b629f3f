package main

import (
	"fmt"

	"github.com/rgehrsitz/firego/internal/compare"
	"github.com/rgehrsitz/firego/internal/output"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project [input-file]",
	Short: "Project the FIRE date at the expected return",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, engine, err := loadInput(cmd, args[0])
		if err != nil {
			return err
		}
		p := engine.ProjectFire(input.Snapshot)
		return render(cmd, &output.Report{
			Title:       "FIRE Projection",
			Projection:  &p,
			Assumptions: engine.Assumptions.AssumptionsList(),
		})
	},
}

var rangeCmd = &cobra.Command{
	Use:   "range [input-file]",
	Short: "Project the FIRE date at optimistic, expected and pessimistic returns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, engine, err := loadInput(cmd, args[0])
		if err != nil {
			return err
		}
		r := engine.ProjectRange(input.Snapshot)
		return render(cmd, &output.Report{Title: "FIRE Range", Range: &r})
	},
}

var trajectoryCmd = &cobra.Command{
	Use:   "trajectory [input-file]",
	Short: "Print the month-by-month net worth projection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, engine, err := loadInput(cmd, args[0])
		if err != nil {
			return err
		}
		months, _ := cmd.Flags().GetInt("months")
		if months <= 0 {
			months = engine.Assumptions.ScenarioYears * 12
		}
		return render(cmd, &output.Report{
			Title:      "Net Worth Trajectory",
			Trajectory: engine.ProjectForward(input.Snapshot, months),
		})
	},
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios [input-file]",
	Short: "Simulate the drifter, current and optimizer trajectories",
	Long: `Simulate three behavioral trajectories from the same snapshot.

With --compare the trajectories are summarized against the current path
instead of printed in full.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, engine, err := loadInput(cmd, args[0])
		if err != nil {
			return err
		}
		years, _ := cmd.Flags().GetInt("years")
		if years <= 0 {
			years = engine.Assumptions.ScenarioYears
		}

		withCompare, _ := cmd.Flags().GetBool("compare")
		if !withCompare {
			return render(cmd, &output.Report{
				Title:     "Behavioral Scenarios",
				Scenarios: engine.SimulateScenarios(input.Snapshot, years),
			})
		}

		comparison, err := compare.NewCompareEngine(engine).Scenarios(input.Snapshot, years)
		if err != nil {
			return err
		}
		comparison.ConfigPath = args[0]

		var text string
		switch formatName(cmd) {
		case "json":
			text, err = (&compare.JSONFormatter{Pretty: true}).Format(comparison)
		case "csv":
			text, err = (&compare.CSVFormatter{}).FormatScenarios(comparison)
		default:
			text = (&compare.TableFormatter{}).FormatScenarios(comparison)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

var monteCarloCmd = &cobra.Command{
	Use:     "montecarlo [input-file]",
	Aliases: []string{"monte-carlo", "mc"},
	Short:   "Run the Monte Carlo net worth simulation",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, engine, err := loadInput(cmd, args[0])
		if err != nil {
			return err
		}
		sims, _ := cmd.Flags().GetInt("sims")
		years, _ := cmd.Flags().GetInt("years")
		workers, _ := cmd.Flags().GetInt("workers")
		if sims <= 0 {
			sims = engine.Assumptions.MonteCarloSimulations
		}
		if years <= 0 {
			years = engine.Assumptions.MonteCarloYears
		}
		engine.Workers = workers

		mc := engine.RunMonteCarlo(input.Snapshot, sims, years)
		return render(cmd, &output.Report{Title: "Monte Carlo", MonteCarlo: &mc})
	},
}

var resilienceCmd = &cobra.Command{
	Use:   "resilience [input-file]",
	Short: "Score the snapshot's financial resilience",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, engine, err := loadInput(cmd, args[0])
		if err != nil {
			return err
		}
		score := engine.ScoreResilience(input.Snapshot)
		return render(cmd, &output.Report{Title: "Resilience", Resilience: &score})
	},
}

func init() {
	trajectoryCmd.Flags().Int("months", 0, "Months to project (default: scenario horizon)")

	scenariosCmd.Flags().Int("years", 0, "Years to simulate (default: scenario horizon)")
	scenariosCmd.Flags().Bool("compare", false, "Summarize against the current path")

	monteCarloCmd.Flags().Int("sims", 0, "Number of simulations (default from assumptions)")
	monteCarloCmd.Flags().Int("years", 0, "Years per simulation (default from assumptions)")
	monteCarloCmd.Flags().Int("workers", 0, "Worker goroutines (0 = GOMAXPROCS, 1 = sequential)")

	rootCmd.AddCommand(projectCmd, rangeCmd, trajectoryCmd, scenariosCmd, monteCarloCmd, resilienceCmd)
}
