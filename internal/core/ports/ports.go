package ports

import (
	"context"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
)

// AssetRepository defines the port for the asset record file
type AssetRepository interface {
	// List returns every record in file order.
	// A missing store yields domain.ErrStoreNotFound.
	List(ctx context.Context) ([]domain.Asset, error)

	// Append adds one record, writing the header first when the store is new
	Append(ctx context.Context, asset domain.Asset) error

	// ReplaceAll rewrites the whole store with the given records
	ReplaceAll(ctx context.Context, assets []domain.Asset) error
}

// AccountRepository defines the port for the credential file
type AccountRepository interface {
	// List returns every account. A missing store yields domain.ErrStoreNotFound.
	List(ctx context.Context) ([]domain.Account, error)

	// Append adds one account, creating the store with its header if absent
	Append(ctx context.Context, account domain.Account) error
}

// PasswordHasher computes and checks one-way password digests
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// ActivityLog is the append-only audit sink. *slog.Logger satisfies it.
type ActivityLog interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
}
