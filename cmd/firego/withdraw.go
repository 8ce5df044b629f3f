package main

import (
	"errors"
	"fmt"

	"github.com/rgehrsitz/firego/internal/compare"
	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/rgehrsitz/firego/internal/output"
	"github.com/spf13/cobra"
)

var errNoWithdrawalPlan = errors.New("input has no withdrawal section")

var withdrawCmd = &cobra.Command{
	Use:   "withdraw [input-file]",
	Short: "Simulate the withdrawal plan year by year",
	Long: `Simulate the input's withdrawal plan with one strategy, or rank all four.

Strategies:
  classic     fixed need, inflation ignored
  variable    percent of balance, floored at half the need
  guardrails  Guyton-Klinger bands around the first-year draw
  bucket      cash, bonds and stocks drawn in order

Examples:
  firego withdraw plan.yaml --strategy guardrails
  firego withdraw plan.yaml --all --format csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, engine, err := loadInput(cmd, args[0])
		if err != nil {
			return err
		}
		if input.Withdrawal == nil {
			return errNoWithdrawalPlan
		}
		plan := *input.Withdrawal

		if all, _ := cmd.Flags().GetBool("all"); all {
			comparison, err := compare.NewCompareEngine(engine).CompareStrategies(plan)
			if err != nil {
				return err
			}
			comparison.ConfigPath = args[0]

			var text string
			switch formatName(cmd) {
			case "json":
				text, err = (&compare.JSONFormatter{Pretty: true}).Format(comparison)
			case "csv":
				text, err = (&compare.CSVFormatter{}).FormatStrategies(comparison)
			default:
				text = (&compare.TableFormatter{}).FormatStrategies(comparison)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}

		if tag, _ := cmd.Flags().GetString("strategy"); tag != "" {
			strategy, err := domain.ParseWithdrawalStrategy(tag)
			if err != nil {
				return err
			}
			plan.Strategy = strategy
		}

		result, err := engine.SimulateWithdrawal(plan)
		if err != nil {
			return err
		}
		return render(cmd, &output.Report{Title: "Withdrawal Plan", Withdrawal: &result})
	},
}

func init() {
	withdrawCmd.Flags().StringP("strategy", "s", "", "Override the plan's strategy: classic, variable, guardrails, bucket")
	withdrawCmd.Flags().Bool("all", false, "Run and rank every strategy")

	rootCmd.AddCommand(withdrawCmd)
}
