package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
	"github.com/kamal-hamza/ams-cli/internal/core/services"
	"github.com/kamal-hamza/ams-cli/pkg/ui"
)

var addInput domain.AssetInput

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new asset",
	Long: `Register a new asset. The ID is assigned automatically.

Without --sn every field is asked interactively. All values are trimmed
and stored in upper case; a blank assignee is stored as NOT ASSIGNED.

Examples:
  ams add
  ams add --sn C02XK1 --category laptop --type macbook --location "room 4" --status "in use"`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addInput.SerialNumber, "sn", "", "Serial number (required unless prompting)")
	addCmd.Flags().StringVar(&addInput.Category, "category", "", "Asset category")
	addCmd.Flags().StringVar(&addInput.Type, "type", "", "Asset type")
	addCmd.Flags().StringVar(&addInput.Location, "location", "", "Where the asset is kept")
	addCmd.Flags().StringVar(&addInput.Assignee, "assignee", "", "Who holds the asset")
	addCmd.Flags().StringVar(&addInput.Description, "description", "", "Short description")
	addCmd.Flags().StringVar(&addInput.Color, "color", "", "Asset color")
	addCmd.Flags().StringVar(&addInput.Status, "status", "", "Asset status")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	out := cmd.OutOrStdout()

	input := addInput
	if !cmd.Flags().Changed("sn") {
		next, err := assetService.NextID(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, ui.FormatAsset(fmt.Sprintf("New asset #%d", next)))
		fmt.Fprintln(out, ui.FormatMuted("All entries are stored in upper case."))

		input, err = console().AskAsset()
		if err != nil {
			return err
		}
	}

	asset, err := assetService.Create(ctx, services.CreateAssetRequest{Input: input})
	if err != nil {
		return handled(out, err)
	}

	fmt.Fprintln(out, ui.FormatSuccess(fmt.Sprintf("Asset '%s' added with ID %d", asset.SerialNumber, asset.ID)))
	return nil
}
