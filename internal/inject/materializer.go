package inject

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/phxforge/internal/filesystem"
)

// Materializer is the create-if-absent write primitive for generated files.
//
// Re-running never overwrites a file a previous run (or the user) has already
// produced, even if the template content has changed since. This is a
// deliberate create-once policy, not a template sync.
type Materializer struct {
	fs filesystem.FileSystem
}

// NewMaterializer creates a new Materializer
func NewMaterializer(fs filesystem.FileSystem) *Materializer {
	return &Materializer{fs: fs}
}

// Materialize writes content to dir/filename unless the file already exists,
// creating intermediate directories as needed. It reports whether the file
// was already present.
func (m *Materializer) Materialize(dir, filename, content string) (bool, error) {
	path := filepath.Join(dir, filename)

	if m.fs.Exists(path) {
		return true, nil
	}

	if err := m.fs.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := m.fs.WriteFile(path, []byte(content), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return false, nil
}
