package activity

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_AppendsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "activity.log")
	ctx := context.Background()

	first, err := Open(path)
	require.NoError(t, err)
	first.Logger().InfoContext(ctx, "asset created", "sn", "AB-12", "id", 1)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	second.Logger().WarnContext(ctx, "login failed", "user", "alice")
	require.NoError(t, second.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "time=")
	assert.Contains(t, lines[0], `msg="asset created"`)
	assert.Contains(t, lines[0], "sn=AB-12")
	assert.Contains(t, lines[1], "level=WARN")
	assert.Contains(t, lines[1], "user=alice")

	assert.Contains(t, lines[0], "run="+first.RunID())
	assert.Contains(t, lines[1], "run="+second.RunID())
	assert.NotEqual(t, first.RunID(), second.RunID())
}

func TestDiscard(t *testing.T) {
	// Must not panic or write anywhere
	Discard().InfoContext(context.Background(), "ignored", "k", "v")
}
