package cmd

import (
	"bytes"
	"fmt"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/ams-cli/internal/adapters/repository"
	"github.com/kamal-hamza/ams-cli/internal/core/domain"
	"github.com/kamal-hamza/ams-cli/pkg/ui"
)

var (
	exportField string
	exportValue string
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Write assets to a CSV file",
	Long: `Write every asset, or those matching --field/--value, to a CSV file
with the standard header. The target is replaced atomically.

Examples:
  ams export backup.csv
  ams export retired.csv --field status --value retired`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportField, "field", "", "Only export assets whose field matches --value")
	exportCmd.Flags().StringVar(&exportValue, "value", "", "Value to match with --field")
	exportCmd.MarkFlagsRequiredTogether("field", "value")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	out := cmd.OutOrStdout()
	target := args[0]

	var (
		assets []domain.Asset
		err    error
	)
	if exportField != "" {
		assets, err = assetService.FindByField(ctx, exportField, exportValue)
	} else {
		assets, err = assetService.List(ctx)
	}
	if err != nil {
		return handled(out, err)
	}

	var buf bytes.Buffer
	if err := repository.WriteAssetsCSV(&buf, assets); err != nil {
		return err
	}
	if err := atomic.WriteFile(target, &buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	fmt.Fprintln(out, ui.FormatSuccess(fmt.Sprintf("Exported %d assets to %s", len(assets), target)))
	return nil
}
