// Package cli implements the canvasmith command surface: processing model
// responses into artifact specs, validating payloads, computing placements,
// and running the one-shot scorecard repair cycle.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/canvasmith/canvasmith/internal/config"
	"github.com/canvasmith/canvasmith/providers/observability"
	"github.com/canvasmith/canvasmith/providers/observability/slogobs"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "canvasmith",
	Short: "Turn free-form model output into typed, placeable canvas artifacts",
	Long: `canvasmith recovers structured JSON from free-form language model output,
validates it against one of the supported artifact schemas, normalizes it into
a safe renderable spec, and computes non-overlapping canvas placements.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	// A missing .env is fine; explicit config and env vars still apply.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a local config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(repairCmd)
}

func loadConfig() (*config.Configuration, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

func buildObserver(cfg *config.Configuration) observability.Observer {
	if !cfg.Verbose {
		return observability.Noop()
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slogobs.New(slog.New(handler))
}

// readInput returns the contents of the file named by args[0], or stdin when
// no argument is given.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
