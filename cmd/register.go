package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/ams-cli/pkg/ui"
)

var registerCmd = &cobra.Command{
	Use:   "register [username]",
	Short: "Create a login account",
	Long: `Create an account that can log in to ams.

The password is asked twice without echo (or read from AMS_PASSWORD)
and only a bcrypt digest is stored.

Examples:
  ams register
  ams register alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRegister,
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	p := console()

	username := userFlag
	if len(args) == 1 {
		username = args[0]
	}

	var err error
	if username == "" {
		username, err = p.Ask("Username")
		if err != nil {
			return err
		}
	}

	password, err := readNewPassword(p)
	if err != nil {
		return handled(cmd.OutOrStdout(), err)
	}

	account, err := accountService.CreateAccount(ctx, username, password)
	if err != nil {
		return handled(cmd.OutOrStdout(), err)
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Account '%s' created", account.Username)))
	return nil
}

// readNewPassword takes AMS_PASSWORD or asks twice until both entries match
func readNewPassword(p *prompter) (string, error) {
	if password := os.Getenv("AMS_PASSWORD"); password != "" {
		return password, nil
	}

	for {
		first, err := p.Password("Password")
		if err != nil {
			return "", err
		}
		second, err := p.Password("Repeat password")
		if err != nil {
			return "", err
		}

		if first == second {
			return first, nil
		}
		fmt.Fprintln(p.out, ui.FormatWarning("Passwords do not match, try again"))
	}
}
