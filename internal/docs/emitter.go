package docs

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/phxforge/internal/filesystem"
	"github.com/jakoblorz/phxforge/internal/inject"
	"github.com/jakoblorz/phxforge/internal/models"
)

// modulesSubdir is where module documentation lives under the project root.
const modulesSubdir = "docs/modules"

// Emitter writes per-module markdown documentation into the project's docs
// tree. It goes through the Materializer, so a doc file the user has edited
// is never clobbered.
type Emitter struct {
	fs           filesystem.FileSystem
	materializer *inject.Materializer
}

// NewEmitter creates a new Emitter
func NewEmitter(fs filesystem.FileSystem) *Emitter {
	return &Emitter{
		fs:           fs,
		materializer: inject.NewMaterializer(fs),
	}
}

// Emit writes the documentation for a module, named by its key. The document
// gets a YAML frontmatter header so installed modules can be listed later.
func (e *Emitter) Emit(ctx *models.ProjectContext, key, title, markdown string) error {
	content := fmt.Sprintf("---\nkey: %s\ntitle: %s\n---\n\n%s", key, title, markdown)

	dir := filepath.Join(ctx.RootPath, modulesSubdir)
	if _, err := e.materializer.Materialize(dir, key+".md", content); err != nil {
		return fmt.Errorf("failed to emit docs for module %s: %w", key, err)
	}

	return nil
}

// Dir returns the absolute docs directory for a project root.
func Dir(rootPath string) string {
	return filepath.Join(rootPath, modulesSubdir)
}
