package cli

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/canvasmith/canvasmith/core/repair"
	"github.com/canvasmith/canvasmith/internal/utils"
	"github.com/canvasmith/canvasmith/providers/ai/openai"
)

var repairCmd = &cobra.Command{
	Use:   "repair [file]",
	Short: "Run the scorecard repair cycle on a model response",
	Long: `Extract a scorecard from a model response, and when it fails
validation, re-prompt the configured model once with the schema and the
diagnostics to obtain a corrected payload.

Requires an API key (CANVASMITH_API_KEY or the config file).`,
	Example: `  canvasmith repair broken-scorecard.txt`,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runRepair,
}

func runRepair(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("repair needs an API key: set CANVASMITH_API_KEY or api_key in the config file")
	}

	raw, err := readInput(args)
	if err != nil {
		return err
	}

	provider := openai.New(cfg.Model).
		WithAPIKey(cfg.APIKey).
		WithBaseURL(cfg.BaseURL)

	orchestrator := repair.New(provider, repair.WithObserver(buildObserver(cfg)))

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Repairing scorecard..."
	if !cfg.Verbose {
		s.Start()
	}
	outcome, err := orchestrator.Run(cmd.Context(), raw)
	s.Stop()
	if err != nil {
		return err
	}

	if outcome.Repaired {
		fmt.Println("Scorecard recovered via repair re-prompt.")
	}
	fmt.Println(utils.JSONToString(outcome.Scorecard, true))
	return nil
}
