package inject

import (
	"fmt"
	"strings"

	"github.com/jakoblorz/phxforge/internal/filesystem"
	"github.com/jakoblorz/phxforge/internal/models"
)

// DepsAnchor is the start of the dependency list in a generated mix.exs,
// including the opening bracket line so insertions land inside the list.
// Exported so health checks can verify the exact anchor injection needs.
const DepsAnchor = "defp deps do\n    ["

// depIndent matches the indentation phx.new uses for dependency entries.
const depIndent = "      "

// DepsInjector inserts dependency declarations into the mix.exs manifest.
//
// Entries already present (by their exact rendering) are skipped, so re-running
// a module's setup never duplicates a dependency line. New entries land
// directly below the deps anchor; everything else in the manifest is preserved
// byte-for-byte.
type DepsInjector struct {
	fs filesystem.FileSystem
}

// NewDepsInjector creates a new DepsInjector
func NewDepsInjector(fs filesystem.FileSystem) *DepsInjector {
	return &DepsInjector{fs: fs}
}

// Inject adds the given dependencies to the manifest at manifestPath.
func (di *DepsInjector) Inject(manifestPath string, deps ...models.Dependency) error {
	data, err := di.fs.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to read manifest %s: %w", manifestPath, err)
	}

	content := string(data)
	for _, dep := range deps {
		entry := dep.Render()
		if strings.Contains(content, entry) {
			continue
		}

		anchorIdx := strings.Index(content, DepsAnchor)
		if anchorIdx == -1 {
			return fmt.Errorf("deps anchor %q not found in %s", DepsAnchor, manifestPath)
		}

		// Insert on a fresh line directly below the anchor line.
		insertAt := anchorIdx + len(DepsAnchor)
		if nl := strings.IndexByte(content[insertAt:], '\n'); nl != -1 {
			insertAt += nl + 1
		} else {
			content += "\n"
			insertAt = len(content)
		}

		content = content[:insertAt] + depIndent + entry + ",\n" + content[insertAt:]
	}

	if err := di.fs.WriteFile(manifestPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", manifestPath, err)
	}

	return nil
}
