package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
)

// errCancelled is returned when the user backs out of a picker
var errCancelled = errors.New("cancelled")

// pickSerial returns sn when given, otherwise lets the user pick an asset
// with the fuzzy finder
func pickSerial(ctx context.Context, sn, action string) (string, error) {
	if sn != "" {
		return sn, nil
	}

	assets, err := assetService.List(ctx)
	if err != nil {
		return "", err
	}
	if len(assets) == 0 {
		return "", fmt.Errorf("%w: no assets to %s", domain.ErrNotFound, action)
	}

	idx, err := fuzzyfinder.Find(
		assets,
		func(i int) string {
			return assetLabel(assets[i])
		},
		fuzzyfinder.WithHeader("Select an asset to "+action),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return assetPreview(assets[i])
		}),
	)
	if err != nil {
		// Ctrl+C or ESC
		return "", errCancelled
	}
	return assets[idx].SerialNumber, nil
}

// OpenFile opens a file with the OS default application.
func OpenFile(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	// Start() detaches so ams can exit while the browser stays open
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open '%s': %w", path, err)
	}

	return nil
}
