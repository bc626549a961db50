package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
	"github.com/kamal-hamza/ams-cli/internal/core/services"
	"github.com/kamal-hamza/ams-cli/pkg/ui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive numbered menu",
	Long: `Open the interactive menu.

Options:
  1. Create Asset
  2. Read Assets
  3. Search Assets
  4. Update Asset
  5. Delete Asset
  6. Exit

Errors such as an unknown serial number are reported and the menu
comes back. Ctrl+D (end of input) leaves the menu.`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	m := &menu{
		prompt:        console(),
		out:           os.Stdout,
		assets:        assetService,
		session:       session,
		confirmDelete: appConfig.ConfirmDelete,
	}
	return m.run(getContext())
}

// menu maps numbered choices to asset store operations
type menu struct {
	prompt        *prompter
	out           io.Writer
	assets        *services.AssetService
	session       *domain.Session
	confirmDelete bool
}

// run loops until the user exits or input ends. Recoverable store errors
// are printed and the menu is shown again.
func (m *menu) run(ctx context.Context) error {
	for {
		m.printOptions()

		choice, err := m.prompt.Ask("Enter your choice (1-6)")
		if err != nil {
			return m.leave(err)
		}

		var actionErr error
		switch choice {
		case "1":
			actionErr = m.create(ctx)
		case "2":
			actionErr = m.read(ctx)
		case "3":
			actionErr = m.search(ctx)
		case "4":
			actionErr = m.update(ctx)
		case "5":
			actionErr = m.delete(ctx)
		case "6":
			quit, err := m.prompt.Confirm("Are you sure you want to exit this application?")
			if err != nil || quit {
				return m.leave(err)
			}
			continue
		default:
			fmt.Fprintln(m.out, ui.FormatWarning("Invalid choice. Please enter a number between 1 and 6."))
			continue
		}

		if actionErr == nil {
			continue
		}
		if errors.Is(actionErr, io.EOF) {
			return m.leave(actionErr)
		}
		if !domain.IsRecoverable(actionErr) {
			return actionErr
		}
		reportError(m.out, actionErr)
	}
}

// leave prints the farewell. End of input is a normal way out.
func (m *menu) leave(err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, ui.FormatInfo("Exiting the Asset Management System. Goodbye!"))
	return nil
}

func (m *menu) printOptions() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, ui.FormatAsset("Asset Management System"))
	if m.session != nil {
		fmt.Fprintln(m.out, ui.FormatMuted("Signed in as "+m.session.Username))
	}
	for i, option := range []string{"Create Asset", "Read Assets", "Search Assets", "Update Asset", "Delete Asset", "Exit"} {
		fmt.Fprintf(m.out, "%s %s\n", ui.StyleAccent.Render(fmt.Sprintf("%d.", i+1)), option)
	}
}

func (m *menu) create(ctx context.Context) error {
	next, err := m.assets.NextID(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, ui.FormatMuted(fmt.Sprintf("New asset will get ID %d. All entries are stored in upper case.", next)))

	input, err := m.prompt.AskAsset()
	if err != nil {
		return err
	}

	asset, err := m.assets.Create(ctx, services.CreateAssetRequest{Input: input})
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, ui.FormatSuccess(fmt.Sprintf("Asset '%s' added with ID %d", asset.SerialNumber, asset.ID)))
	return nil
}

func (m *menu) read(ctx context.Context) error {
	assets, err := m.assets.List(ctx)
	if err != nil {
		return err
	}
	if len(assets) == 0 {
		fmt.Fprintln(m.out, ui.FormatWarning("No assets found"))
		return nil
	}

	fmt.Fprintln(m.out)
	renderAssets(m.out, assets)
	return nil
}

func (m *menu) search(ctx context.Context) error {
	field, err := m.prompt.Ask("Search by field (" + strings.Join(domain.Columns, " / ") + ")")
	if err != nil {
		return err
	}
	value, err := m.prompt.Ask("Value")
	if err != nil {
		return err
	}

	matches, err := m.assets.FindByField(ctx, field, value)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(m.out, ui.FormatWarning(fmt.Sprintf("No assets with %s = %s", strings.ToUpper(field), domain.Normalize(value))))
		return nil
	}

	fmt.Fprintln(m.out)
	renderAssets(m.out, matches)
	return nil
}

func (m *menu) update(ctx context.Context) error {
	sn, err := m.prompt.Ask("Serial number of the asset to update")
	if err != nil {
		return err
	}
	field, err := m.prompt.Ask("Field to update (" + strings.Join(domain.Columns[1:], " / ") + ")")
	if err != nil {
		return err
	}
	value, err := m.prompt.Ask("New value for " + strings.ToUpper(field))
	if err != nil {
		return err
	}

	asset, err := m.assets.UpdateField(ctx, services.UpdateAssetRequest{
		SerialNumber: sn,
		Field:        field,
		Value:        value,
	})
	if err != nil {
		return err
	}

	column, _ := domain.CanonicalField(field)
	fmt.Fprintln(m.out, ui.FormatSuccess(fmt.Sprintf("Asset '%s' updated: %s = %s",
		domain.Normalize(sn), column, asset.Field(column))))
	return nil
}

func (m *menu) delete(ctx context.Context) error {
	sn, err := m.prompt.Ask("Serial number of the asset to delete")
	if err != nil {
		return err
	}
	sn = domain.Normalize(sn)

	if m.confirmDelete {
		ok, err := m.prompt.Confirm(fmt.Sprintf("Delete asset '%s'?", sn))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(m.out, ui.FormatMuted("Cancelled."))
			return nil
		}
	}

	removed, err := m.assets.Delete(ctx, sn)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Fprintln(m.out, ui.FormatWarning(fmt.Sprintf("Asset '%s' not found", sn)))
		return nil
	}

	fmt.Fprintln(m.out, ui.FormatSuccess(fmt.Sprintf("Asset '%s' deleted", sn)))
	return nil
}
