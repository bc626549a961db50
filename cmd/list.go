package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/ams-cli/pkg/ui"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all assets",
	Aliases: []string{"ls"},
	Long: `List every asset in store order as a table.

Examples:
  ams list
  ams ls`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	assets, err := assetService.List(getContext())
	if err != nil {
		return handled(out, err)
	}

	if len(assets) == 0 {
		fmt.Fprintln(out, ui.FormatWarning("No assets found"))
		fmt.Fprintln(out, ui.FormatInfo("Create your first asset with: ams add"))
		return nil
	}

	fmt.Fprintln(out, ui.FormatTitle("Assets"))
	fmt.Fprintln(out)
	renderAssets(out, assets)
	return nil
}
