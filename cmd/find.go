package cmd

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
	"github.com/kamal-hamza/ams-cli/pkg/ui"
)

var findCopy bool

var findCmd = &cobra.Command{
	Use:   "find <field> <value>",
	Short: "Find assets whose field equals a value",
	Long: `Find assets by exact match on one field.

The value is compared after trimming and upper-casing, so the search
is case-insensitive. Fields: ID, SN, CATEGORY, TYPE, LOCATION, ASSIGNEE,
DESCRIPTION, COLOR, STATUS.

Examples:
  ams find location "room 4"
  ams find status retired --copy`,
	Args: cobra.ExactArgs(2),
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVarP(&findCopy, "copy", "c", false, "Copy the matching serial numbers to the clipboard")
}

func runFind(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	field, value := args[0], args[1]

	matches, err := assetService.FindByField(getContext(), field, value)
	if err != nil {
		return handled(out, err)
	}

	if len(matches) == 0 {
		fmt.Fprintln(out, ui.FormatWarning(fmt.Sprintf("No assets with %s = %s",
			strings.ToUpper(field), domain.Normalize(value))))
		return nil
	}

	renderAssets(out, matches)

	if findCopy {
		serials := make([]string, len(matches))
		for i, a := range matches {
			serials[i] = a.SerialNumber
		}
		// Clipboard is best effort (headless sessions have none)
		if err := clipboard.WriteAll(strings.Join(serials, "\n")); err != nil {
			fmt.Fprintln(out, ui.FormatWarning("Could not copy to clipboard: "+err.Error()))
		} else {
			fmt.Fprintln(out, ui.FormatSuccess(fmt.Sprintf("Copied %d serial numbers to clipboard", len(serials))))
		}
	}

	return nil
}
