package repository

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
)

// tableFile is a header-first CSV file that is read whole, appended to,
// or replaced whole. It never holds a handle between calls.
type tableFile struct {
	path   string
	header []string
}

// table is the parsed content of a tableFile
type table struct {
	header []string
	rows   [][]string
}

// index maps normalized header names to their column position
func (t *table) index() map[string]int {
	idx := make(map[string]int, len(t.header))
	for i, h := range t.header {
		idx[strings.ToUpper(strings.TrimSpace(h))] = i
	}
	return idx
}

// read loads the whole file. A missing file yields domain.ErrStoreNotFound;
// an empty file yields an empty table.
func (f *tableFile) read() (*table, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, classifyFileError(f.path, err)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", f.path, err)
	}

	if len(records) == 0 {
		return &table{}, nil
	}

	// Strip a UTF-8 BOM left by spreadsheet programs
	records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")

	return &table{header: records[0], rows: records[1:]}, nil
}

// appendRow adds one row. A new or empty file is written whole with the
// header first. When the existing header differs from ours (an older
// layout), the file is rewritten via upgrade so columns never misalign.
func (f *tableFile) appendRow(row []string, upgrade func(*table) ([][]string, error)) error {
	existing, err := f.read()
	switch {
	case errors.Is(err, domain.ErrStoreNotFound):
		return f.rewrite([][]string{row})
	case err != nil:
		return err
	}

	if len(existing.header) == 0 {
		return f.rewrite([][]string{row})
	}

	if !sameHeader(existing.header, f.header) {
		rows, err := upgrade(existing)
		if err != nil {
			return err
		}
		return f.rewrite(append(rows, row))
	}

	file, err := os.OpenFile(f.path, os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		return classifyFileError(f.path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if !endsWithNewline(file, info.Size()) {
		buf.WriteString("\n")
	}

	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if _, err := file.Write(buf.Bytes()); err != nil {
		return classifyFileError(f.path, err)
	}
	return nil
}

// rewrite replaces the file with a fresh header and rows. The content goes
// to a temporary file in the same directory which is then renamed over the
// store, so readers see either the old table or the new one. Every OS error
// along the way is classified so a read-only or locked store stays
// recoverable.
func (f *tableFile) rewrite(rows [][]string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return classifyFileError(f.path, err)
	}
	name := tmp.Name()
	defer func() {
		tmp.Close()
		if err != nil {
			_ = os.Remove(name)
		}
	}()

	w := bufio.NewWriter(tmp)
	if err := writeTable(w, f.header, rows); err != nil {
		return classifyFileError(f.path, err)
	}
	if err := w.Flush(); err != nil {
		return classifyFileError(f.path, err)
	}
	if err := tmp.Sync(); err != nil {
		return classifyFileError(f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return classifyFileError(f.path, err)
	}

	mode := fs.FileMode(0644)
	if info, statErr := os.Stat(f.path); statErr == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(name, mode); err != nil {
		return classifyFileError(f.path, err)
	}

	if err := atomic.ReplaceFile(name, f.path); err != nil {
		return classifyFileError(f.path, err)
	}
	return nil
}

// writeTable encodes header and rows as CSV
func writeTable(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

// classifyFileError maps OS errors onto the recoverable store errors
func classifyFileError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", domain.ErrStoreNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s is read-only or held open by another program (close it and retry): %v",
			domain.ErrPermissionDenied, path, err)
	}
	return fmt.Errorf("%s: %w", path, err)
}

func sameHeader(a, b []string) bool {
	norm := func(in []string) []string {
		out := make([]string, len(in))
		for i, s := range in {
			out[i] = strings.ToUpper(strings.TrimSpace(s))
		}
		return out
	}
	return slices.Equal(norm(a), norm(b))
}

func endsWithNewline(file *os.File, size int64) bool {
	last := make([]byte, 1)
	if _, err := file.ReadAt(last, size-1); err != nil {
		return true
	}
	return last[0] == '\n'
}
