package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/ams-cli/internal/adapters/activity"
	"github.com/kamal-hamza/ams-cli/internal/adapters/hasher"
	"github.com/kamal-hamza/ams-cli/internal/adapters/repository"
	"github.com/kamal-hamza/ams-cli/internal/core/domain"
	"github.com/kamal-hamza/ams-cli/internal/core/services"
	"github.com/kamal-hamza/ams-cli/pkg/config"
	"github.com/kamal-hamza/ams-cli/pkg/ui"
	"github.com/kamal-hamza/ams-cli/pkg/workspace"
)

var (
	// Global configuration and workspace
	appConfig    *config.Config
	appWorkspace *workspace.Workspace

	// Repositories
	assetRepo   *repository.CSVAssetRepository
	accountRepo *repository.CSVAccountRepository

	// Activity log, closed when the command finishes
	activityLog *activity.Log

	// Services
	assetService   *services.AssetService
	accountService *services.AccountService

	// Session of the user the command runs for
	session *domain.Session

	// Global flags
	dataDirFlag string
	userFlag    string
)

var errWorkspaceMissing = errors.New("workspace not initialized")

// Commands that run before any account exists or never touch the stores
var skipLogin = map[string]bool{
	"init":     true,
	"register": true,
	"login":    true,
	"version":  true,
	"config":   true,
	"help":     true,
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ams",
	Short: "AMS - A terminal asset inventory",
	Long: ui.StyleTitle.Render("AMS") + " - Asset Management System\n\n" +
		"Track physical assets (serial number, category, type, location,\n" +
		"assignee, description, color, status) in a plain CSV file.\n" +
		"Run without a subcommand to open the interactive menu.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initializeApp,
	RunE:              runDefaultAction,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	closeApp()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Println(ui.FormatError(err.Error()))
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(nextIDCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Directory holding the inventory files")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "Account to log in as")
}

// initializeApp loads configuration, wires the stores and logs the user in
func initializeApp(cmd *cobra.Command, args []string) error {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Println(ui.FormatWarning("Ignoring .env: " + err.Error()))
	}

	configPath, err := workspace.ConfigPath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to load config"))
		return err
	}
	appConfig = cfg
	ui.SetTheme(appConfig.ColorTheme)

	dataDir := dataDirFlag
	if dataDir == "" {
		dataDir = os.Getenv("AMS_DATA_DIR")
	}

	ws, err := workspace.New(appConfig, dataDir)
	if err != nil {
		return fmt.Errorf("failed to resolve workspace: %w", err)
	}
	appWorkspace = ws

	name := cmd.Name()
	if name == "init" || name == "version" || name == "config" || name == "help" {
		return nil
	}

	if !appWorkspace.Exists() {
		fmt.Println(ui.FormatError("Workspace not initialized"))
		fmt.Println(ui.FormatInfo("Run 'ams init' to create " + appWorkspace.RootPath))
		return fmt.Errorf("%w: %w", errReported, errWorkspaceMissing)
	}

	// The activity trail is best effort
	logger := activity.Discard()
	if log, err := activity.Open(appWorkspace.ActivityLogPath); err != nil {
		fmt.Println(ui.FormatWarning("Activity log unavailable: " + err.Error()))
	} else {
		activityLog = log
		logger = log.Logger()
	}

	// Initialize repositories
	assetRepo = repository.NewCSVAssetRepository(appWorkspace.AssetsPath)
	accountRepo = repository.NewCSVAccountRepository(appWorkspace.AccountsPath)

	// Initialize services
	accountService = services.NewAccountService(accountRepo, hasher.NewBcrypt(), logger)

	if skipLogin[name] {
		return nil
	}

	if err := authenticate(getContext()); err != nil {
		return err
	}

	assetService = services.NewAssetService(assetRepo, logger.With("user", session.Username))
	return nil
}

// authenticate establishes the session, prompting for whatever the
// flags and environment do not provide
func authenticate(ctx context.Context) error {
	if !appConfig.RequireLogin {
		session = domain.GuestSession()
		return nil
	}

	hasAccounts, err := accountService.HasAccounts(ctx)
	if err != nil {
		return err
	}
	if !hasAccounts {
		fmt.Println(ui.FormatWarning("No accounts registered"))
		fmt.Println(ui.FormatInfo("Create one with: ams register"))
		return fmt.Errorf("%w: no accounts", errReported)
	}

	username, password, err := resolveCredentials()
	if err != nil {
		return err
	}

	ok, err := accountService.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println(ui.FormatError("Invalid username or password"))
		return fmt.Errorf("%w: login failed", errReported)
	}

	session = domain.NewSession(username)
	return nil
}

// resolveCredentials picks the username from --user, AMS_USER or the
// config, and the password from AMS_PASSWORD or an echo-less prompt
func resolveCredentials() (string, string, error) {
	username := userFlag
	if username == "" {
		username = os.Getenv("AMS_USER")
	}
	if username == "" {
		username = appConfig.DefaultUser
	}

	var err error
	if username == "" {
		username, err = console().Ask("Username")
		if err != nil {
			return "", "", err
		}
	}

	password := os.Getenv("AMS_PASSWORD")
	if password == "" {
		fmt.Println(ui.FormatLock("Logging in as " + username))
		password, err = console().Password("Password")
		if err != nil {
			return "", "", err
		}
	}

	return username, password, nil
}

// runDefaultAction runs what the config names for a bare `ams`
func runDefaultAction(cmd *cobra.Command, args []string) error {
	switch appConfig.DefaultAction {
	case "list":
		return runList(cmd, args)
	case "browse":
		return runBrowse(cmd, args)
	default:
		return runMenu(cmd, args)
	}
}

func closeApp() {
	if activityLog != nil {
		if err := activityLog.Close(); err != nil {
			slog.Warn("failed to close activity log", "error", err)
		}
		activityLog = nil
	}
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
