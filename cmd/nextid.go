package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nextIDLast bool

var nextIDCmd = &cobra.Command{
	Use:   "next-id",
	Short: "Print the ID the next asset will get",
	Long: `Print the ID the next created asset will be assigned.

With --last, print the highest ID in use instead (0 for an empty store).
Nothing is reserved.`,
	Args: cobra.NoArgs,
	RunE: runNextID,
}

func init() {
	nextIDCmd.Flags().BoolVar(&nextIDLast, "last", false, "Print the highest assigned ID instead")
}

func runNextID(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	var (
		id  int
		err error
	)
	if nextIDLast {
		id, err = assetService.LastID(ctx)
	} else {
		id, err = assetService.NextID(ctx)
	}
	if err != nil {
		return handled(cmd.OutOrStdout(), err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}
