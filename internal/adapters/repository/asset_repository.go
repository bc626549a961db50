package repository

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
	"github.com/kamal-hamza/ams-cli/internal/core/ports"
)

// CSVAssetRepository stores assets in a header-first CSV file.
// Columns are located by header name, so files written before the
// ASSIGNEE column existed still load and are upgraded on the next write.
type CSVAssetRepository struct {
	file tableFile
	mu   sync.RWMutex
}

// NewCSVAssetRepository creates a repository backed by the file at path
func NewCSVAssetRepository(path string) *CSVAssetRepository {
	return &CSVAssetRepository{
		file: tableFile{path: path, header: domain.Columns},
	}
}

// Ensure it implements the interface
var _ ports.AssetRepository = (*CSVAssetRepository)(nil)

// Path returns the backing file path
func (r *CSVAssetRepository) Path() string {
	return r.file.path
}

// List returns every record in file order
func (r *CSVAssetRepository) List(ctx context.Context) ([]domain.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, err := r.file.read()
	if err != nil {
		return nil, err
	}
	return r.decode(t)
}

// Append adds one record to the end of the file
func (r *CSVAssetRepository) Append(ctx context.Context, asset domain.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.file.appendRow(asset.Row(), func(old *table) ([][]string, error) {
		assets, err := r.decode(old)
		if err != nil {
			return nil, err
		}
		return encodeAssets(assets), nil
	})
}

// ReplaceAll rewrites the file with a fresh header and the given records
func (r *CSVAssetRepository) ReplaceAll(ctx context.Context, assets []domain.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.file.rewrite(encodeAssets(assets))
}

// decode converts table rows to assets by header name
func (r *CSVAssetRepository) decode(t *table) ([]domain.Asset, error) {
	if len(t.header) == 0 {
		return nil, nil
	}

	idx := t.index()
	if _, ok := idx[domain.FieldID]; !ok {
		return nil, fmt.Errorf("%s: header has no %s column", r.file.path, domain.FieldID)
	}
	if _, ok := idx[domain.FieldSN]; !ok {
		return nil, fmt.Errorf("%s: header has no %s column", r.file.path, domain.FieldSN)
	}

	cell := func(row []string, field string) string {
		i, ok := idx[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	assets := make([]domain.Asset, 0, len(t.rows))
	for n, row := range t.rows {
		if isBlankRow(row) {
			continue
		}

		id, err := strconv.Atoi(cell(row, domain.FieldID))
		if err != nil {
			// +2: one for the header, one for 1-based line numbers
			return nil, fmt.Errorf("%s line %d: invalid %s %q", r.file.path, n+2, domain.FieldID, cell(row, domain.FieldID))
		}

		// Hand-edited rows are normalized like created ones
		field := func(name string) string {
			return domain.NormalizeField(name, cell(row, name))
		}

		assets = append(assets, domain.Asset{
			ID:           id,
			SerialNumber: field(domain.FieldSN),
			Category:     field(domain.FieldCategory),
			Type:         field(domain.FieldType),
			Location:     field(domain.FieldLocation),
			Assignee:     field(domain.FieldAssignee),
			Description:  field(domain.FieldDescription),
			Color:        field(domain.FieldColor),
			Status:       field(domain.FieldStatus),
		})
	}

	return assets, nil
}

// WriteAssetsCSV encodes assets with the store header to w
func WriteAssetsCSV(w io.Writer, assets []domain.Asset) error {
	return writeTable(w, domain.Columns, encodeAssets(assets))
}

func encodeAssets(assets []domain.Asset) [][]string {
	rows := make([][]string, len(assets))
	for i := range assets {
		rows[i] = assets[i].Row()
	}
	return rows
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
