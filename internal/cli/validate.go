package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/canvasmith/canvasmith/core/extract"
	"github.com/canvasmith/canvasmith/core/schema"
	"github.com/canvasmith/canvasmith/core/validate"
	"github.com/canvasmith/canvasmith/internal/utils"
)

var validateKind string

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a model response against a schema kind",
	Long: `Validate the structured payload of a model response without normalizing it.

Prints the validation diagnostics as JSON. The exit status is non-zero when
the payload has errors or no payload could be found at all.`,
	Example: `  canvasmith validate --kind discoverySpecV1 response.txt`,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "scorecard", "artifact schema kind")
}

func runValidate(cmd *cobra.Command, args []string) error {
	kind, err := schema.ParseKind(validateKind)
	if err != nil {
		return err
	}

	raw, err := readInput(args)
	if err != nil {
		return err
	}

	candidate, ok := extract.Extract(raw)
	if !ok {
		return extract.ErrNoJSON
	}

	decoded, err := extract.Decode(candidate)
	if err != nil {
		return err
	}

	result := validate.Validate(decoded, kind)
	fmt.Println(utils.JSONToString(result, true))

	if !result.OK() {
		os.Exit(1)
	}
	return nil
}
