// Package csvx implements the row-level store behind the organizer's record
// repositories: a comma-delimited UTF-8 file with a single header row.
//
// "No records yet" and "no file yet" are the same observable state: listing a
// store whose file does not exist returns an empty result, not an error. Edit
// and delete are full-store rewrites; the rewrite goes through a temp file in
// the same directory followed by a rename, so a crash mid-write cannot leave
// the store truncated.
package csvx

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/dporg/internal/filex"
)

// Store reads and writes rows of one delimited-text file.
type Store struct {
	path   string
	header []string
}

func New(path string, header []string) *Store {
	return &Store{path: path, header: header}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// List returns all data rows in file order, the header row excluded.
// A missing file yields a nil slice and no error.
func (s *Store) List() ([][]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	if len(records) <= 1 {
		return nil, nil
	}
	return records[1:], nil
}

// Append adds one row at the end of the store, creating the file (and its
// parent directories) with a header first when the store is absent or empty.
func (s *Store) Append(row []string) error {
	if err := filex.EnsureParentDir(s.path); err != nil {
		return err
	}

	needHeader := true
	if info, err := os.Stat(s.path); err == nil && info.Size() > 0 {
		needHeader = false
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o660)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write(s.header); err != nil {
			return fmt.Errorf("write header %s: %w", s.path, err)
		}
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("append %s: %w", s.path, err)
	}
	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", s.path, err)
	}
	return nil
}

// Rewrite replaces the entire store contents with a fresh header and the
// given rows. The new contents are written to a uniquely named temp file
// next to the store and renamed over it.
func (s *Store) Rewrite(rows [][]string) error {
	if err := filex.EnsureParentDir(s.path); err != nil {
		return err
	}

	tmp := s.path + ".tmp-" + uuid.NewString()

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o660)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}

	w := csv.NewWriter(f)
	writeErr := w.Write(s.header)
	for _, row := range rows {
		if writeErr != nil {
			break
		}
		writeErr = w.Write(row)
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}

	if closeErr := f.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		os.Remove(tmp)
		return fmt.Errorf("rewrite %s: %w", s.path, writeErr)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
