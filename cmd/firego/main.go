package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rgehrsitz/firego/internal/calculation"
	"github.com/rgehrsitz/firego/internal/config"
	"github.com/rgehrsitz/firego/internal/logging"
	"github.com/rgehrsitz/firego/internal/output"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "firego",
	Short: "FIRE projection calculator CLI",
	Long: `Projects when a household reaches financial independence from a snapshot
of its finances, and explores trajectories, Monte Carlo bands, withdrawal
strategies, life events and resilience.

Input files may be YAML, JSON or TOML.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "firego %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate an input file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.NewInputParser().LoadFromFile(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Input file %s is valid\n", args[0])
		return nil
	},
}

// commandLogger builds the zerolog logger for a command from --debug.
func commandLogger(cmd *cobra.Command) zerolog.Logger {
	debugMode, _ := cmd.Flags().GetBool("debug")
	return logging.New(cmd.ErrOrStderr(), debugMode)
}

// loadInput parses the input file and builds an engine over its resolved
// assumptions.
func loadInput(cmd *cobra.Command, path string) (*config.Input, *calculation.Engine, error) {
	input, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, nil, err
	}
	engine := calculation.NewEngineWithAssumptions(input.ResolvedAssumptions())
	engine.SetLogger(logging.NewAdapter(commandLogger(cmd), "engine"))
	return input, engine, nil
}

// render writes the report with the formatter selected by --format.
func render(cmd *cobra.Command, report *output.Report) error {
	name, _ := cmd.Flags().GetString("format")
	f := output.GetFormatterByName(name)
	if f == nil {
		return fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(output.AvailableFormats(), ", "))
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func formatName(cmd *cobra.Command) string {
	name, _ := cmd.Flags().GetString("format")
	return strings.ToLower(strings.TrimSpace(name))
}

func init() {
	rootCmd.PersistentFlags().StringP("format", "f", "console", "Output format: console, json, csv")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
