package mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
)

// MockAssetRepository is an in-memory AssetRepository for testing.
// A nil assets slice with Exists false behaves like a missing store.
type MockAssetRepository struct {
	mu     sync.RWMutex
	assets []domain.Asset
	exists bool

	// Error injection
	ListErr    error
	AppendErr  error
	ReplaceErr error

	// Call counters
	AppendCalls  int
	ReplaceCalls int
}

// NewMockAssetRepository creates a mock whose store does not exist yet
func NewMockAssetRepository() *MockAssetRepository {
	return &MockAssetRepository{}
}

// Seed replaces the stored records and marks the store as existing
func (m *MockAssetRepository) Seed(assets ...domain.Asset) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.assets = append([]domain.Asset(nil), assets...)
	m.exists = true
}

// Snapshot returns a copy of the stored records
func (m *MockAssetRepository) Snapshot() []domain.Asset {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]domain.Asset(nil), m.assets...)
}

// List returns all records in insertion order
func (m *MockAssetRepository) List(ctx context.Context) ([]domain.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if !m.exists {
		return nil, fmt.Errorf("%w: mock", domain.ErrStoreNotFound)
	}
	return append([]domain.Asset(nil), m.assets...), nil
}

// Append adds a record to the end of the store
func (m *MockAssetRepository) Append(ctx context.Context, asset domain.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.AppendCalls++
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.assets = append(m.assets, asset)
	m.exists = true
	return nil
}

// ReplaceAll swaps the stored records
func (m *MockAssetRepository) ReplaceAll(ctx context.Context, assets []domain.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ReplaceCalls++
	if m.ReplaceErr != nil {
		return m.ReplaceErr
	}
	m.assets = append([]domain.Asset(nil), assets...)
	m.exists = true
	return nil
}

// MockAccountRepository is an in-memory AccountRepository for testing
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts []domain.Account
	exists   bool

	AppendErr error
}

// NewMockAccountRepository creates a mock whose store does not exist yet
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

// List returns all accounts
func (m *MockAccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.exists {
		return nil, fmt.Errorf("%w: mock", domain.ErrStoreNotFound)
	}
	return append([]domain.Account(nil), m.accounts...), nil
}

// Append adds an account
func (m *MockAccountRepository) Append(ctx context.Context, account domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.accounts = append(m.accounts, account)
	m.exists = true
	return nil
}

// MockHasher is a reversible PasswordHasher, good enough to check that
// plaintext never reaches the repository.
type MockHasher struct{}

// Hash prefixes and reverses the password
func (MockHasher) Hash(password string) (string, error) {
	runes := []rune(password)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return "mock$" + string(runes), nil
}

// Verify recomputes the digest and compares
func (h MockHasher) Verify(password, digest string) bool {
	d, _ := h.Hash(password)
	return d == digest
}

// ActivityEntry is one recorded activity message
type ActivityEntry struct {
	Level   string
	Message string
	Args    []any
}

// MockActivityLog records every entry in memory
type MockActivityLog struct {
	mu      sync.Mutex
	Entries []ActivityEntry
}

// NewMockActivityLog creates an empty recorder
func NewMockActivityLog() *MockActivityLog {
	return &MockActivityLog{}
}

// InfoContext records an info entry
func (l *MockActivityLog) InfoContext(ctx context.Context, msg string, args ...any) {
	l.add("INFO", msg, args)
}

// WarnContext records a warning entry
func (l *MockActivityLog) WarnContext(ctx context.Context, msg string, args ...any) {
	l.add("WARN", msg, args)
}

func (l *MockActivityLog) add(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, ActivityEntry{Level: level, Message: msg, Args: args})
}

// Messages returns the recorded messages in order
func (l *MockActivityLog) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		out[i] = e.Message
	}
	return out
}

// Contains reports whether any recorded message contains substr
func (l *MockActivityLog) Contains(substr string) bool {
	for _, m := range l.Messages() {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}
