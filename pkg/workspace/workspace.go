package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kamal-hamza/ams-cli/pkg/config"
)

// Workspace represents the directory holding the inventory files
type Workspace struct {
	RootPath        string
	AssetsPath      string
	AccountsPath    string
	ActivityLogPath string
	ReportsPath     string
	ConfigPath      string
}

// New resolves the workspace for cfg. dataDir, when non-empty, takes
// precedence over cfg.DataDir; both fall back to the XDG data directory.
func New(cfg *config.Config, dataDir string) (*Workspace, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", err)
	}

	root := dataDir
	if root == "" {
		root = cfg.DataDir
	}
	if root == "" {
		root, err = defaultRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to determine data directory: %w", err)
		}
	}

	root, err = expandHome(root)
	if err != nil {
		return nil, err
	}

	return &Workspace{
		RootPath:        root,
		AssetsPath:      resolve(root, cfg.AssetsFile),
		AccountsPath:    resolve(root, cfg.AccountsFile),
		ActivityLogPath: resolve(root, cfg.ActivityLog),
		ReportsPath:     filepath.Join(root, "reports"),
		ConfigPath:      configPath,
	}, nil
}

// defaultRoot follows the XDG Base Directory specification on Unix and
// uses AppData on Windows
func defaultRoot() (string, error) {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "ams"), nil
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "ams"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".local", "share", "ams"), nil
}

// ConfigPath returns where config.yaml lives
func ConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "ams", "config.yaml"), nil
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "ams-config", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "ams", "config.yaml"), nil
}

// Initialize creates the workspace directories if they don't exist
func (w *Workspace) Initialize() error {
	directories := []string{
		w.RootPath,
		w.ReportsPath,
		filepath.Dir(w.AssetsPath),
		filepath.Dir(w.AccountsPath),
		filepath.Dir(w.ActivityLogPath),
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// Exists checks if the workspace has been initialized
func (w *Workspace) Exists() bool {
	info, err := os.Stat(w.RootPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// GetReportPath returns the full path for a generated report
func (w *Workspace) GetReportPath(filename string) string {
	return filepath.Join(w.ReportsPath, filename)
}

// resolve keeps absolute file settings and places relative ones under root
func resolve(root, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(root, name)
}

func expandHome(path string) (string, error) {
	if path != "~" && !hasHomePrefix(path) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

func hasHomePrefix(path string) bool {
	return len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator)
}
