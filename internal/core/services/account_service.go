package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
	"github.com/kamal-hamza/ams-cli/internal/core/ports"
)

// AccountService creates accounts and verifies logins
type AccountService struct {
	repo     ports.AccountRepository
	hasher   ports.PasswordHasher
	activity ports.ActivityLog
}

// NewAccountService creates a new account service
func NewAccountService(repo ports.AccountRepository, hasher ports.PasswordHasher, activity ports.ActivityLog) *AccountService {
	return &AccountService{
		repo:     repo,
		hasher:   hasher,
		activity: activity,
	}
}

func (s *AccountService) load(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.repo.List(ctx)
	if errors.Is(err, domain.ErrStoreNotFound) {
		return nil, nil
	}
	return accounts, err
}

// HasAccounts reports whether at least one account has been registered
func (s *AccountService) HasAccounts(ctx context.Context) (bool, error) {
	accounts, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	return len(accounts) > 0, nil
}

// CreateAccount registers username with a digest of password
func (s *AccountService) CreateAccount(ctx context.Context, username, password string) (*domain.Account, error) {
	if err := domain.ValidateCredentials(username, password); err != nil {
		return nil, err
	}

	accounts, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}

	for _, a := range accounts {
		if a.Username == username {
			return nil, fmt.Errorf("%w: %s", domain.ErrUsernameTaken, username)
		}
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := domain.Account{Username: username, PasswordHash: digest}
	if err := s.repo.Append(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.activity.InfoContext(ctx, "account created", "user", username)
	return &account, nil
}

// Login reports whether username exists and password matches its digest
func (s *AccountService) Login(ctx context.Context, username, password string) (bool, error) {
	accounts, err := s.load(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read accounts: %w", err)
	}

	for _, a := range accounts {
		if a.Username == username && s.hasher.Verify(password, a.PasswordHash) {
			s.activity.InfoContext(ctx, "login succeeded", "user", username)
			return true, nil
		}
	}

	s.activity.WarnContext(ctx, "login failed", "user", username)
	return false, nil
}
