package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kamal-hamza/ams-cli/pkg/config"
)

func TestNew_XDGDefaults(t *testing.T) {
	dataHome := t.TempDir()
	configHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("XDG_CONFIG_HOME", configHome)

	w, err := New(config.DefaultConfig(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"root", w.RootPath, filepath.Join(dataHome, "ams")},
		{"assets", w.AssetsPath, filepath.Join(dataHome, "ams", "assets.csv")},
		{"accounts", w.AccountsPath, filepath.Join(dataHome, "ams", "accounts.csv")},
		{"activity", w.ActivityLogPath, filepath.Join(dataHome, "ams", "activity.log")},
		{"reports", w.ReportsPath, filepath.Join(dataHome, "ams", "reports")},
		{"config", w.ConfigPath, filepath.Join(configHome, "ams", "config.yaml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, want %q", tt.got, tt.expected)
			}
		})
	}
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := config.DefaultConfig()
	cfg.DataDir = "/from/config"
	cfg.AccountsFile = "/etc/ams/accounts.csv"

	w, err := New(cfg, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.RootPath != "/from/config" {
		t.Errorf("expected config data dir, got %q", w.RootPath)
	}
	if w.AccountsPath != "/etc/ams/accounts.csv" {
		t.Errorf("absolute file setting should be kept, got %q", w.AccountsPath)
	}

	w, err = New(cfg, "/from/flag")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.AssetsPath != filepath.Join("/from/flag", "assets.csv") {
		t.Errorf("explicit data dir should win, got %q", w.AssetsPath)
	}
}

func TestWorkspace_InitializeAndExists(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := filepath.Join(t.TempDir(), "inventory")

	w, err := New(config.DefaultConfig(), root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.Exists() {
		t.Fatal("workspace should not exist before Initialize")
	}
	if err := w.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if !w.Exists() {
		t.Error("workspace should exist after Initialize")
	}
	if _, err := os.Stat(w.ReportsPath); err != nil {
		t.Errorf("reports directory missing: %v", err)
	}

	// Idempotent
	if err := w.Initialize(); err != nil {
		t.Errorf("second Initialize failed: %v", err)
	}
}

func TestWorkspace_GetReportPath(t *testing.T) {
	w := &Workspace{ReportsPath: "/test/ams/reports"}

	if got := w.GetReportPath("report.html"); got != "/test/ams/reports/report.html" {
		t.Errorf("GetReportPath = %q", got)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandHome("~/inventory")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join(home, "inventory") {
		t.Errorf("expandHome = %q", got)
	}

	got, _ = expandHome("/abs/path")
	if got != "/abs/path" {
		t.Errorf("absolute path changed: %q", got)
	}
}
