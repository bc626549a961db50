package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/ams-cli/pkg/ui"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check a username and password",
	Long: `Verify credentials against the account store and print the result.

The username comes from --user, AMS_USER or default_user in the config;
the password from AMS_PASSWORD or an echo-less prompt.`,
	RunE: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	username, password, err := resolveCredentials()
	if err != nil {
		return err
	}

	ok, err := accountService.Login(getContext(), username, password)
	if err != nil {
		return handled(cmd.OutOrStdout(), err)
	}

	if !ok {
		fmt.Println(ui.FormatError("Invalid username or password"))
		return fmt.Errorf("%w: login failed", errReported)
	}

	fmt.Println(ui.FormatSuccess("Login successful. Welcome, " + username + "!"))
	return nil
}
