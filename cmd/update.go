package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
	"github.com/kamal-hamza/ams-cli/internal/core/services"
	"github.com/kamal-hamza/ams-cli/pkg/ui"
)

var updateCmd = &cobra.Command{
	Use:   "update [sn] <field> <value>",
	Short: "Change one field of an asset",
	Long: `Change a single field of the asset with the given serial number.

Without a serial number, pick the asset interactively. Renaming the
serial number onto one that is already registered is refused.

Examples:
  ams update C02XK1 location "room 7"
  ams update status retired`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	out := cmd.OutOrStdout()

	var sn string
	if len(args) == 3 {
		sn, args = args[0], args[1:]
	}
	field, value := args[0], args[1]

	// Reject a bad field before showing the picker
	column, err := domain.CanonicalField(field)
	if err != nil {
		return handled(out, err)
	}

	sn, err = pickSerial(ctx, sn, "update")
	if errors.Is(err, errCancelled) {
		fmt.Fprintln(out, ui.FormatInfo("Operation cancelled."))
		return nil
	}
	if err != nil {
		return handled(out, err)
	}

	asset, err := assetService.UpdateField(ctx, services.UpdateAssetRequest{
		SerialNumber: sn,
		Field:        column,
		Value:        value,
	})
	if err != nil {
		return handled(out, err)
	}

	fmt.Fprintln(out, ui.FormatSuccess(fmt.Sprintf("Asset '%s' updated: %s = %s",
		domain.Normalize(sn), column, asset.Field(column))))
	return nil
}
