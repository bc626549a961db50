package cmd

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
	"github.com/kamal-hamza/ams-cli/internal/core/ports/mocks"
	"github.com/kamal-hamza/ams-cli/internal/core/services"
)

// TestCommandStructure verifies that all commands are properly registered
func TestCommandStructure(t *testing.T) {
	commands := []string{
		"init", "register", "login", "add", "list", "ls", "find", "update",
		"delete", "next-id", "menu", "browse", "report", "watch", "export",
		"config", "version",
	}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{cmdName})
			if err != nil {
				t.Fatalf("Command '%s' not found: %v", cmdName, err)
			}
			if cmd == nil || cmd == rootCmd {
				t.Fatalf("Command '%s' resolved to the root command", cmdName)
			}
			if cmd.Use == "" {
				t.Errorf("Command '%s' has no Use field", cmdName)
			}
		})
	}
}

// TestRootCommandExists verifies the root command is properly configured
func TestRootCommandExists(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("Root command is nil")
	}

	if rootCmd.Use != "ams" {
		t.Errorf("Expected root command Use to be 'ams', got '%s'", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Root command Short description is empty")
	}

	if rootCmd.RunE == nil {
		t.Error("Root command should run the default action")
	}
}

// TestCommandsHaveHelp verifies all commands have help text
func TestCommandsHaveHelp(t *testing.T) {
	commands := rootCmd.Commands()

	if len(commands) == 0 {
		t.Fatal("No commands registered")
	}

	for _, cmd := range commands {
		t.Run(cmd.Name(), func(t *testing.T) {
			if cmd.Short == "" {
				t.Errorf("Command '%s' has no Short description", cmd.Name())
			}
		})
	}
}

// TestServiceInitialization verifies services can be initialized with mocks
func TestServiceInitialization(t *testing.T) {
	activity := mocks.NewMockActivityLog()

	if services.NewAssetService(mocks.NewMockAssetRepository(), activity) == nil {
		t.Error("AssetService is nil")
	}

	if services.NewAccountService(mocks.NewMockAccountRepository(), mocks.MockHasher{}, activity) == nil {
		t.Error("AccountService is nil")
	}
}

// TestFlagsExist verifies important flags are registered
func TestFlagsExist(t *testing.T) {
	tests := []struct {
		command  string
		flagName string
	}{
		{"add", "sn"},
		{"add", "assignee"},
		{"add", "status"},
		{"find", "copy"},
		{"delete", "yes"},
		{"next-id", "last"},
		{"report", "output"},
		{"report", "open"},
		{"watch", "quiet"},
		{"export", "field"},
		{"export", "value"},
		{"config", "show"},
	}

	for _, tt := range tests {
		t.Run(tt.command+"_"+tt.flagName, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{tt.command})
			if err != nil {
				t.Fatalf("Command '%s' not found: %v", tt.command, err)
			}

			flag := cmd.Flags().Lookup(tt.flagName)
			if flag == nil {
				t.Errorf("Flag '--%s' not found on command '%s'", tt.flagName, tt.command)
			}
		})
	}

	for _, name := range []string{"data-dir", "user"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Global flag '--%s' not registered", name)
		}
	}
}

func TestHandled(t *testing.T) {
	var out strings.Builder

	if err := handled(&out, nil); err != nil {
		t.Errorf("nil should stay nil, got %v", err)
	}

	err := handled(&out, domain.ErrNotFound)
	if !errors.Is(err, errReported) || !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("recoverable error should be marked reported, got %v", err)
	}
	if !strings.Contains(out.String(), "not found") {
		t.Errorf("recoverable error should be printed, got %q", out.String())
	}

	fatal := errors.New("disk full")
	if err := handled(&out, fatal); err != fatal {
		t.Errorf("other errors should pass through, got %v", err)
	}
}

func TestRenderAssets(t *testing.T) {
	var out strings.Builder
	renderAssets(&out, []domain.Asset{
		{ID: 1, SerialNumber: "C02", Category: "LAPTOP", Assignee: domain.Unassigned, Status: "IN USE"},
		{ID: 2, SerialNumber: "D17", Category: "MONITOR", Assignee: "ALICE", Status: "RETIRED"},
	})

	for _, want := range []string{"ID", "ASSIGNEE", "C02", "D17", "NOT ASSIGNED", "Total: 2 assets"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

// executeCLI runs the root command with fresh global state
func executeCLI(t *testing.T, args ...string) error {
	t.Helper()

	dataDirFlag, userFlag = "", ""
	session, assetService, accountService = nil, nil, nil

	rootCmd.SetArgs(args)
	rootCmd.SetOut(io.Discard)
	err := rootCmd.Execute()
	closeApp()
	return err
}

func TestCLI_EndToEnd(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "inventory")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("AMS_DATA_DIR", "")
	t.Setenv("AMS_USER", "")
	t.Setenv("AMS_PASSWORD", "s3cret")

	// Nothing works before init
	err := executeCLI(t, "--data-dir", dataDir, "list")
	if !errors.Is(err, errWorkspaceMissing) {
		t.Fatalf("expected missing workspace error, got %v", err)
	}

	if err := executeCLI(t, "--data-dir", dataDir, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	// Login is required and no account exists yet
	if err := executeCLI(t, "--data-dir", dataDir, "next-id"); !errors.Is(err, errReported) {
		t.Fatalf("expected login to be refused without accounts, got %v", err)
	}

	if err := executeCLI(t, "--data-dir", dataDir, "register", "alice"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	err = executeCLI(t, "--data-dir", dataDir, "--user", "alice",
		"add", "--sn", " c02xk1 ", "--category", "laptop", "--location", "room 4")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if session == nil || session.Username != "alice" || !session.Authenticated {
		t.Errorf("expected an authenticated session for alice, got %+v", session)
	}

	data, err := os.ReadFile(filepath.Join(dataDir, "assets.csv"))
	if err != nil {
		t.Fatalf("assets file not written: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, strings.Join(domain.Columns, ",")+"\n") {
		t.Errorf("unexpected header:\n%s", content)
	}
	if !strings.Contains(content, "1,C02XK1,LAPTOP,,ROOM 4,NOT ASSIGNED,,,") {
		t.Errorf("record not normalized:\n%s", content)
	}

	exported := filepath.Join(t.TempDir(), "export.csv")
	if err := executeCLI(t, "--data-dir", dataDir, "--user", "alice", "export", exported); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if got, _ := os.ReadFile(exported); string(got) != content {
		t.Errorf("export should match the store:\n%s\nvs\n%s", got, content)
	}

	// Wrong password is refused and logged
	t.Setenv("AMS_PASSWORD", "wrong")
	if err := executeCLI(t, "--data-dir", dataDir, "--user", "alice", "list"); !errors.Is(err, errReported) {
		t.Fatalf("expected login failure, got %v", err)
	}

	logData, err := os.ReadFile(filepath.Join(dataDir, "activity.log"))
	if err != nil {
		t.Fatalf("activity log missing: %v", err)
	}
	for _, want := range []string{"account created", "asset created", "login failed", "user=alice"} {
		if !strings.Contains(string(logData), want) {
			t.Errorf("activity log missing %q:\n%s", want, logData)
		}
	}
	if strings.Contains(string(logData), "wrong") || strings.Contains(string(logData), "s3cret") {
		t.Error("activity log must never contain passwords")
	}
}

func TestCLI_LoginDisabled(t *testing.T) {
	dataDir := t.TempDir()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("AMS_DATA_DIR", "")

	configPath := filepath.Join(configHome, "ams", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(configPath, []byte("require_login: false\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := executeCLI(t, "--data-dir", dataDir, "next-id"); err != nil {
		t.Fatalf("next-id failed: %v", err)
	}
	if session == nil || session.Authenticated || session.Username != "guest" {
		t.Errorf("expected guest session, got %+v", session)
	}
}
