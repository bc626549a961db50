package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/ams-cli/pkg/ui"
	"github.com/kamal-hamza/ams-cli/pkg/workspace"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the ams workspace",
	Long: `Initialize the ams workspace directory.

This creates the data directory (default ~/.local/share/ams/) and a
commented config.yaml in the config directory. The inventory files are
created on first write:
  - assets.csv   : The asset records
  - accounts.csv : Registered accounts
  - activity.log : Append-only activity trail
  - reports/     : Generated HTML reports`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Check if already initialized
	if appWorkspace.Exists() {
		fmt.Println(ui.FormatWarning("Workspace already initialized"))
		fmt.Println(ui.FormatMuted("Location: " + appWorkspace.RootPath))
		return nil
	}

	fmt.Println(ui.FormatRocket("Initializing ams workspace..."))
	fmt.Println()

	if err := appWorkspace.Initialize(); err != nil {
		fmt.Println(ui.FormatError("Failed to initialize workspace"))
		return err
	}

	if err := createDefaultConfig(appWorkspace); err != nil {
		// Config is optional
		fmt.Println(ui.FormatWarning("Failed to create default config: " + err.Error()))
	}

	fmt.Println(ui.FormatSuccess("Workspace initialized successfully!"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Location", appWorkspace.RootPath))
	fmt.Println(ui.RenderKeyValue("Config", appWorkspace.ConfigPath))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Next steps:"))
	fmt.Println(ui.FormatMuted("  1. Create an account: ams register"))
	fmt.Println(ui.FormatMuted("  2. Add an asset: ams add"))
	fmt.Println(ui.FormatMuted("  3. Open the menu: ams"))

	return nil
}

// createDefaultConfig writes a commented config unless one already exists
func createDefaultConfig(w *workspace.Workspace) error {
	if _, err := os.Stat(w.ConfigPath); err == nil {
		return nil
	}

	defaultConfig := `# AMS Configuration
# This file is optional - all settings have sensible defaults

# Where the inventory files live (AMS_DATA_DIR and --data-dir override this)
# data_dir: ""

# File names, relative to data_dir unless absolute
# assets_file: assets.csv
# accounts_file: accounts.csv
# activity_log: activity.log

# Ask for a username and password before touching the asset store
# require_login: true
# default_user: ""

# auto, dark or light
# color_theme: auto

# Ask before deleting an asset
# confirm_delete: true

# What a bare 'ams' runs: menu, list or browse
# default_action: menu

# report_title: Asset Inventory
# watch_debounce_ms: 300
`

	if err := os.MkdirAll(filepath.Dir(w.ConfigPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return os.WriteFile(w.ConfigPath, []byte(defaultConfig), 0644)
}
