// Package assets manages the flat folder of product files available for
// sending. Files are identified by filename; size and modification time are
// read from disk on demand, never stored.
package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/dporg/internal/filex"
	"github.com/dmitrijs2005/dporg/internal/logging"
)

// FileInfo describes one managed file at read time.
type FileInfo struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// IngestResult reports the outcome of bringing one source file under
// management.
type IngestResult struct {
	Source string
	Dest   string
	Err    error
}

// Manager owns the managed folder.
type Manager struct {
	dir string
	log logging.Logger
}

func NewManager(dir string, log logging.Logger) *Manager {
	return &Manager{dir: dir, log: log}
}

// Dir returns the managed folder path.
func (m *Manager) Dir() string {
	return m.dir
}

// Path returns the full path of a managed file by name.
func (m *Manager) Path(name string) string {
	return filepath.Join(m.dir, name)
}

// Ingest copies the source file into the managed folder, keeping the
// original filename unless it collides, in which case _1, _2, ... is
// appended before the extension until a free name is found. The folder is
// created first if absent. Returns the managed path.
func (m *Manager) Ingest(ctx context.Context, sourcePath string) (string, error) {
	if err := filex.EnsureDir(m.dir); err != nil {
		return "", err
	}

	dest := filex.UniquePath(m.dir, filepath.Base(sourcePath))

	if err := copyFile(sourcePath, dest); err != nil {
		m.log.Error(ctx, "error copying file", "src", sourcePath, "err", err)
		return "", fmt.Errorf("ingest %s: %w", sourcePath, err)
	}

	m.log.Info(ctx, "added file", "path", dest)
	return dest, nil
}

// IngestBatch ingests every source independently: one failure is reported in
// its result and the remaining files are still processed.
func (m *Manager) IngestBatch(ctx context.Context, sources []string) []IngestResult {
	results := make([]IngestResult, 0, len(sources))
	for _, src := range sources {
		dest, err := m.Ingest(ctx, src)
		results = append(results, IngestResult{Source: src, Dest: dest, Err: err})
	}
	return results
}

// List returns the managed files with attributes computed at read time.
// Subdirectories are skipped. A missing folder reads as empty.
func (m *Manager) List(ctx context.Context) ([]FileInfo, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list %s: %w", m.dir, err)
	}

	var result []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		result = append(result, FileInfo{
			Name:    info.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return result, nil
}

// Remove deletes a managed file immediately; there is no trash or undo.
// Removing a file that does not exist is a no-op.
func (m *Manager) Remove(ctx context.Context, name string) error {
	if err := os.Remove(m.Path(name)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("remove %s: %w", name, err)
	}
	m.log.Info(ctx, "removed file", "name", name)
	return nil
}

// copyFile copies src to dest byte-for-byte, carrying over the source's
// permissions and modification time.
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return err
	}

	return os.Chtimes(dest, time.Now(), info.ModTime())
}
