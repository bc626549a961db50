package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/ams-cli/pkg/ui"
)

var configShow bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the ams configuration file",
	Long: `Open config.yaml in $EDITOR, or print the effective settings with --show.

The file is created with commented defaults if it does not exist yet.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShow, "show", false, "Print the effective configuration")
}

func runConfig(cmd *cobra.Command, args []string) error {
	path := appWorkspace.ConfigPath

	if configShow {
		printConfig()
		return nil
	}

	// Ensure it exists
	if err := createDefaultConfig(appWorkspace); err != nil {
		return err
	}

	fmt.Println(ui.FormatInfo("Opening config: " + path))

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	c := exec.Command(editor, path)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

func printConfig() {
	fmt.Println(ui.FormatTitle("Configuration"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("config file", appWorkspace.ConfigPath))
	fmt.Println(ui.RenderKeyValue("data_dir", appWorkspace.RootPath))
	fmt.Println(ui.RenderKeyValue("assets_file", appWorkspace.AssetsPath))
	fmt.Println(ui.RenderKeyValue("accounts_file", appWorkspace.AccountsPath))
	fmt.Println(ui.RenderKeyValue("activity_log", appWorkspace.ActivityLogPath))
	fmt.Println(ui.RenderKeyValue("require_login", fmt.Sprint(appConfig.RequireLogin)))
	fmt.Println(ui.RenderKeyValue("default_user", appConfig.DefaultUser))
	fmt.Println(ui.RenderKeyValue("color_theme", appConfig.ColorTheme))
	fmt.Println(ui.RenderKeyValue("confirm_delete", fmt.Sprint(appConfig.ConfirmDelete)))
	fmt.Println(ui.RenderKeyValue("default_action", appConfig.DefaultAction))
	fmt.Println(ui.RenderKeyValue("report_title", appConfig.ReportTitle))
	fmt.Println(ui.RenderKeyValue("watch_debounce_ms", fmt.Sprint(appConfig.WatchDebounceMS)))
}
