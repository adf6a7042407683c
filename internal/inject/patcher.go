package inject

import (
	"fmt"
	"strings"

	"github.com/jakoblorz/phxforge/internal/filesystem"
)

// PatchOptions controls how a block is applied.
//
// SkipIfPresent is deliberately not defaulted away: the patcher itself has no
// idempotence guarantee, so every call site must state whether re-applying the
// same block should be a no-op.
type PatchOptions struct {
	// SkipIfPresent makes the patch a no-op when the block already occurs
	// anywhere in the target file
	SkipIfPresent bool
}

// Patcher inserts a text block immediately after a marker in a generated file.
type Patcher struct {
	fs filesystem.FileSystem
}

// NewPatcher creates a new Patcher
func NewPatcher(fs filesystem.FileSystem) *Patcher {
	return &Patcher{fs: fs}
}

// Patch inserts block directly after the first occurrence of marker in the
// file at path, leaving the marker itself intact. It fails without touching
// the file when the marker is absent.
func (p *Patcher) Patch(path, marker, block string, opts PatchOptions) error {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	content := string(data)

	if opts.SkipIfPresent && strings.Contains(content, block) {
		return nil
	}

	markerIdx := strings.Index(content, marker)
	if markerIdx == -1 {
		return fmt.Errorf("marker %q not found in %s", marker, path)
	}

	insertAt := markerIdx + len(marker)
	content = content[:insertAt] + block + content[insertAt:]

	if err := p.fs.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
