package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
)

func TestCSVAccountRepository_AppendAndList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.csv")
	repo := NewCSVAccountRepository(path)
	ctx := context.Background()

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)

	require.NoError(t, repo.Append(ctx, domain.Account{Username: "alice", PasswordHash: "$2a$04$abc"}))
	require.NoError(t, repo.Append(ctx, domain.Account{Username: "bob", PasswordHash: "$2a$04$def"}))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Account{
		{Username: "alice", PasswordHash: "$2a$04$abc"},
		{Username: "bob", PasswordHash: "$2a$04$def"},
	}, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "username,password_hash\n"))
}

func TestCSVAccountRepository_MissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.csv")
	require.NoError(t, os.WriteFile(path, []byte("user,hash\nalice,x\n"), 0644))

	_, err := NewCSVAccountRepository(path).List(context.Background())
	assert.Error(t, err)
}
