package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestWatchLoop(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "assets.csv")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		t.Fatalf("failed to watch: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, watcher, target, 20*time.Millisecond, func() {
			changes <- struct{}{}
		})
	}()

	// Other files in the directory are ignored
	if err := os.WriteFile(filepath.Join(dir, "accounts.csv"), []byte("x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changes:
		t.Fatal("change in another file should not trigger a refresh")
	case <-time.After(200 * time.Millisecond):
	}

	// A burst of writes is reported once
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(target, []byte("ID,SN\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a refresh after writing the store")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchLoop returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watchLoop did not stop after cancel")
	}
}
