package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
	"github.com/kamal-hamza/ams-cli/internal/core/ports"
)

// AssetService implements the asset store operations on top of a
// record-file repository. Every call re-reads the store; nothing is cached.
type AssetService struct {
	repo     ports.AssetRepository
	activity ports.ActivityLog
}

// NewAssetService creates a new asset service
func NewAssetService(repo ports.AssetRepository, activity ports.ActivityLog) *AssetService {
	return &AssetService{
		repo:     repo,
		activity: activity,
	}
}

// CreateAssetRequest represents a request to register a new asset
type CreateAssetRequest struct {
	Input domain.AssetInput
}

// UpdateAssetRequest represents a single-field update
type UpdateAssetRequest struct {
	SerialNumber string
	Field        string
	Value        string
}

// load reads all records, treating a missing store as empty
func (s *AssetService) load(ctx context.Context) ([]domain.Asset, error) {
	assets, err := s.repo.List(ctx)
	if errors.Is(err, domain.ErrStoreNotFound) {
		return nil, nil
	}
	return assets, err
}

// LastID returns the highest id in the store, or 0 when it is absent or empty
func (s *AssetService) LastID(ctx context.Context) (int, error) {
	assets, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return maxID(assets), nil
}

// NextID returns the id the next Create will assign. It does not reserve it.
func (s *AssetService) NextID(ctx context.Context) (int, error) {
	last, err := s.LastID(ctx)
	if err != nil {
		return 0, err
	}
	return last + 1, nil
}

// Create normalizes the input, enforces serial uniqueness and appends the record
func (s *AssetService) Create(ctx context.Context, req CreateAssetRequest) (*domain.Asset, error) {
	assets, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read assets: %w", err)
	}

	asset, err := domain.NewAsset(maxID(assets)+1, req.Input)
	if err != nil {
		return nil, err
	}

	if i := indexBySerial(assets, asset.SerialNumber); i >= 0 {
		return nil, fmt.Errorf("%w: %s is already registered (ID %d)",
			domain.ErrDuplicateSerialNumber, asset.SerialNumber, assets[i].ID)
	}

	if err := s.repo.Append(ctx, *asset); err != nil {
		return nil, fmt.Errorf("failed to save asset: %w", err)
	}

	s.activity.InfoContext(ctx, "asset created", "id", asset.ID, "sn", asset.SerialNumber)
	return asset, nil
}

// List returns every record in file order.
// A missing store is reported as domain.ErrStoreNotFound.
func (s *AssetService) List(ctx context.Context) ([]domain.Asset, error) {
	return s.repo.List(ctx)
}

// FindByField returns records whose column equals value after normalization
func (s *AssetService) FindByField(ctx context.Context, field, value string) ([]domain.Asset, error) {
	column, err := domain.CanonicalField(field)
	if err != nil {
		return nil, err
	}

	assets, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read assets: %w", err)
	}

	want := domain.NormalizeField(column, value)
	if column == domain.FieldID {
		probe := domain.Asset{}
		if err := probe.SetField(domain.FieldID, value); err == nil {
			want = probe.Field(domain.FieldID)
		}
	}

	var matches []domain.Asset
	for i := range assets {
		if assets[i].Field(column) == want {
			matches = append(matches, assets[i])
		}
	}
	return matches, nil
}

// UpdateField changes one column of the record with the given serial and
// rewrites the store. Renaming a serial onto another record's serial is
// rejected with domain.ErrDuplicateSerialNumber.
func (s *AssetService) UpdateField(ctx context.Context, req UpdateAssetRequest) (*domain.Asset, error) {
	column, err := domain.CanonicalField(req.Field)
	if err != nil {
		return nil, err
	}

	assets, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexBySerial(assets, domain.Normalize(req.SerialNumber))
	if idx < 0 {
		return nil, fmt.Errorf("%w: asset %s", domain.ErrNotFound, domain.Normalize(req.SerialNumber))
	}

	updated := assets[idx]
	if err := updated.SetField(column, req.Value); err != nil {
		return nil, err
	}

	if column == domain.FieldSN {
		for i := range assets {
			if i != idx && assets[i].SerialNumber == updated.SerialNumber {
				return nil, fmt.Errorf("%w: %s is already registered (ID %d)",
					domain.ErrDuplicateSerialNumber, updated.SerialNumber, assets[i].ID)
			}
		}
	}

	assets[idx] = updated
	if err := s.repo.ReplaceAll(ctx, assets); err != nil {
		return nil, fmt.Errorf("failed to rewrite assets: %w", err)
	}

	s.activity.InfoContext(ctx, "asset updated",
		"sn", domain.Normalize(req.SerialNumber), "field", column, "value", updated.Field(column))
	return &updated, nil
}

// Delete removes the record with the given serial and rewrites the store.
// It reports whether anything was removed.
func (s *AssetService) Delete(ctx context.Context, serialNumber string) (bool, error) {
	assets, err := s.repo.List(ctx)
	if err != nil {
		return false, err
	}

	sn := domain.Normalize(serialNumber)
	remaining := make([]domain.Asset, 0, len(assets))
	for _, a := range assets {
		if a.SerialNumber != sn {
			remaining = append(remaining, a)
		}
	}

	if len(remaining) == len(assets) {
		return false, nil
	}

	if err := s.repo.ReplaceAll(ctx, remaining); err != nil {
		return false, fmt.Errorf("failed to rewrite assets: %w", err)
	}

	s.activity.InfoContext(ctx, "asset deleted", "sn", sn, "removed", len(assets)-len(remaining))
	return true, nil
}

// Summary aggregates the current store for reporting
func (s *AssetService) Summary(ctx context.Context) (domain.Summary, error) {
	assets, err := s.load(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("failed to read assets: %w", err)
	}
	return domain.Summarize(assets), nil
}

func maxID(assets []domain.Asset) int {
	highest := 0
	for _, a := range assets {
		if a.ID > highest {
			highest = a.ID
		}
	}
	return highest
}

func indexBySerial(assets []domain.Asset, sn string) int {
	for i := range assets {
		if assets[i].SerialNumber == sn {
			return i
		}
	}
	return -1
}
