package main

import (
	"fmt"

	"github.com/rgehrsitz/firego/internal/domain"
	"github.com/rgehrsitz/firego/internal/output"
	"github.com/spf13/cobra"
)

var eventCmd = &cobra.Command{
	Use:   "event [input-file]",
	Short: "Measure how life events move the FIRE date",
	Long: `Measure each life event in the input against the baseline projection.
Use --name to evaluate a single event.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, engine, err := loadInput(cmd, args[0])
		if err != nil {
			return err
		}

		events := input.LifeEvents
		if name, _ := cmd.Flags().GetString("name"); name != "" {
			event, ok := input.LifeEvent(name)
			if !ok {
				return fmt.Errorf("life event %q not found in %s", name, args[0])
			}
			events = []domain.LifeEvent{event}
		}
		if len(events) == 0 {
			return fmt.Errorf("input %s defines no life events", args[0])
		}

		impacts := make([]domain.LifeEventImpact, 0, len(events))
		for _, event := range events {
			impacts = append(impacts, engine.LifeEventImpact(input.Snapshot, event))
		}
		return render(cmd, &output.Report{Title: "Life Events", LifeEvents: impacts})
	},
}

func init() {
	eventCmd.Flags().StringP("name", "n", "", "Evaluate only the named event")
	rootCmd.AddCommand(eventCmd)
}
