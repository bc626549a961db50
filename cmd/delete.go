package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
	"github.com/kamal-hamza/ams-cli/pkg/ui"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete [sn]",
	Short: "Delete an asset",
	Long: `Delete the asset with the given serial number.

Without a serial number, pick the asset interactively. The deletion is
confirmed first unless confirm_delete is off or --yes is given.

Examples:
  ams delete C02XK1
  ams delete -y C02XK1
  ams delete`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	out := cmd.OutOrStdout()

	var sn string
	if len(args) == 1 {
		sn = args[0]
	}

	sn, err := pickSerial(ctx, sn, "delete")
	if errors.Is(err, errCancelled) {
		fmt.Fprintln(out, ui.FormatInfo("Operation cancelled."))
		return nil
	}
	if err != nil {
		return handled(out, err)
	}
	sn = domain.Normalize(sn)

	if appConfig.ConfirmDelete && !deleteYes {
		matches, err := assetService.FindByField(ctx, domain.FieldSN, sn)
		if err != nil {
			return handled(out, err)
		}
		if len(matches) == 0 {
			return handled(out, fmt.Errorf("%w: asset %s", domain.ErrNotFound, sn))
		}

		fmt.Fprintln(out, ui.FormatWarning("You are about to delete:"))
		fmt.Fprint(out, ui.FormatMuted(assetPreview(matches[0])))
		fmt.Fprintln(out)

		ok, err := console().Confirm("Delete asset?")
		if err != nil || !ok {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	removed, err := assetService.Delete(ctx, sn)
	if err != nil {
		return handled(out, err)
	}
	if !removed {
		return handled(out, fmt.Errorf("%w: asset %s", domain.ErrNotFound, sn))
	}

	fmt.Fprintln(out, ui.FormatSuccess(fmt.Sprintf("Asset '%s' deleted", sn)))
	return nil
}
