package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
	"github.com/kamal-hamza/ams-cli/internal/core/ports"
)

// CSVAccountRepository stores credentials as username,password_hash rows
type CSVAccountRepository struct {
	file tableFile
	mu   sync.RWMutex
}

// NewCSVAccountRepository creates a repository backed by the file at path
func NewCSVAccountRepository(path string) *CSVAccountRepository {
	return &CSVAccountRepository{
		file: tableFile{path: path, header: domain.AccountColumns},
	}
}

var _ ports.AccountRepository = (*CSVAccountRepository)(nil)

// List returns every stored account
func (r *CSVAccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, err := r.file.read()
	if err != nil {
		return nil, err
	}
	return r.decode(t)
}

// Append adds one account
func (r *CSVAccountRepository) Append(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := []string{account.Username, account.PasswordHash}
	return r.file.appendRow(row, func(old *table) ([][]string, error) {
		accounts, err := r.decode(old)
		if err != nil {
			return nil, err
		}
		rows := make([][]string, len(accounts))
		for i, a := range accounts {
			rows[i] = []string{a.Username, a.PasswordHash}
		}
		return rows, nil
	})
}

func (r *CSVAccountRepository) decode(t *table) ([]domain.Account, error) {
	if len(t.header) == 0 {
		return nil, nil
	}

	idx := t.index()
	userCol, ok := idx["USERNAME"]
	if !ok {
		return nil, fmt.Errorf("%s: header has no username column", r.file.path)
	}
	hashCol, ok := idx["PASSWORD_HASH"]
	if !ok {
		return nil, fmt.Errorf("%s: header has no password_hash column", r.file.path)
	}

	accounts := make([]domain.Account, 0, len(t.rows))
	for _, row := range t.rows {
		if isBlankRow(row) || userCol >= len(row) || hashCol >= len(row) {
			continue
		}
		accounts = append(accounts, domain.Account{
			Username:     row[userCol],
			PasswordHash: row[hashCol],
		})
	}
	return accounts, nil
}
