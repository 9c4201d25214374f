package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canvasmith/canvasmith/core/extract"
	"github.com/canvasmith/canvasmith/core/pipeline"
	"github.com/canvasmith/canvasmith/core/schema"
	"github.com/canvasmith/canvasmith/internal/utils"
	"github.com/canvasmith/canvasmith/providers/ai/openai"
)

var processKind string

var processCmd = &cobra.Command{
	Use:   "process [file]",
	Short: "Extract, validate, and normalize a model response",
	Long: `Process a raw model response into a normalized artifact spec.

The response is read from the given file, or from stdin when no file is given.
The outcome (candidate JSON, validation diagnostics, and the normalized spec)
is printed as JSON.

For the scorecard kind, a configured API key enables the one-shot repair
re-prompt when the response fails validation.`,
	Example: `  # Normalize a design spec from a saved response
  canvasmith process --kind designSpecV1 response.txt

  # Pipe a response through
  cat response.txt | canvasmith process --kind scorecard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&processKind, "kind", "k", "scorecard", "artifact schema kind")
}

func runProcess(cmd *cobra.Command, args []string) error {
	kind, err := schema.ParseKind(processKind)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	raw, err := readInput(args)
	if err != nil {
		return err
	}

	opts := []pipeline.Option{pipeline.WithObserver(buildObserver(cfg))}
	if cfg.APIKey != "" {
		provider := openai.New(cfg.Model).
			WithAPIKey(cfg.APIKey).
			WithBaseURL(cfg.BaseURL)
		opts = append(opts, pipeline.WithTransport(provider))
	}

	outcome, err := pipeline.New(opts...).Process(cmd.Context(), raw, kind)
	if errors.Is(err, extract.ErrNoJSON) {
		return fmt.Errorf("the response contains no structured payload; render it as plain text")
	}
	if err != nil {
		return err
	}

	fmt.Println(utils.JSONToString(outcome, true))
	return nil
}
