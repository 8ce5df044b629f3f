package main

import (
	"fmt"

	"github.com/rgehrsitz/firego/internal/breakeven"
	"github.com/rgehrsitz/firego/internal/calculation"
	"github.com/spf13/cobra"
)

var breakEvenCmd = &cobra.Command{
	Use:   "breakeven [input-file]",
	Short: "Solve for required savings and sustainable spending",
	Long: `Run every solver the input supports:

  savings   smallest monthly saving that reaches FIRE by target_fire_age
  spending  largest yearly spend the withdrawal plan funds to its target age

Examples:
  firego breakeven household.yaml
  firego breakeven savings household.yaml --age 45
  firego breakeven spending household.yaml --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, engine, err := loadInput(cmd, args[0])
		if err != nil {
			return err
		}
		report, err := newSolver(engine).Analyze(cmd.Context(), input.Snapshot, input.TargetFireAge, input.Withdrawal)
		if err != nil {
			return err
		}
		return writeBreakEven(cmd, report)
	},
}

var breakEvenSavingsCmd = &cobra.Command{
	Use:   "savings [input-file]",
	Short: "Monthly savings needed to reach FIRE by an age",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, engine, err := loadInput(cmd, args[0])
		if err != nil {
			return err
		}
		age, _ := cmd.Flags().GetInt("age")
		if age <= 0 {
			if input.TargetFireAge == nil {
				return fmt.Errorf("no target age: set target_fire_age in %s or pass --age", args[0])
			}
			age = *input.TargetFireAge
		}
		result, err := newSolver(engine).RequiredMonthlySavings(cmd.Context(), input.Snapshot, age)
		if err != nil {
			return err
		}
		return writeBreakEven(cmd, &breakeven.Report{Savings: result, Recommendations: []string{}})
	},
}

var breakEvenSpendingCmd = &cobra.Command{
	Use:   "spending [input-file]",
	Short: "Largest yearly spend the withdrawal plan sustains",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, engine, err := loadInput(cmd, args[0])
		if err != nil {
			return err
		}
		if input.Withdrawal == nil {
			return errNoWithdrawalPlan
		}
		result, err := newSolver(engine).SustainableSpending(cmd.Context(), *input.Withdrawal)
		if err != nil {
			return err
		}
		return writeBreakEven(cmd, &breakeven.Report{Spending: result, Recommendations: []string{}})
	},
}

// newSolver logs through the engine's logger.
func newSolver(engine *calculation.Engine) *breakeven.Solver {
	return breakeven.NewDefaultSolver(engine)
}

func writeBreakEven(cmd *cobra.Command, report *breakeven.Report) error {
	switch formatName(cmd) {
	case "json":
		text, err := (&breakeven.JSONFormatter{Pretty: true}).Format(report)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
	case "console", "table", "text", "txt":
		fmt.Fprint(cmd.OutOrStdout(), (&breakeven.TableFormatter{}).Format(report))
	default:
		return fmt.Errorf("breakeven supports console and json output, not %q", formatName(cmd))
	}
	return nil
}

func init() {
	breakEvenSavingsCmd.Flags().Int("age", 0, "Target FIRE age (default: target_fire_age from the input)")

	breakEvenCmd.AddCommand(breakEvenSavingsCmd, breakEvenSpendingCmd)
	rootCmd.AddCommand(breakEvenCmd)
}
