package docs

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/jakoblorz/phxforge/internal/filesystem"
)

// ModuleDoc is the frontmatter header of an emitted module document.
type ModuleDoc struct {
	Key   string `yaml:"key"`
	Title string `yaml:"title"`
}

// ListInstalled reads docs/modules/*.md under the project root and returns
// the frontmatter of every module document found there. Files without a
// parseable header are skipped with a warning, matching how other readers in
// this codebase treat individually broken files.
func ListInstalled(fs filesystem.FileSystem, rootPath string) ([]ModuleDoc, error) {
	dir := Dir(rootPath)
	if !fs.Exists(dir) {
		return []ModuleDoc{}, nil
	}

	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read docs directory %s: %w", dir, err)
	}

	var docs []ModuleDoc
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		data, err := fs.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Printf("Warning: failed to read module doc %s: %v\n", entry.Name(), err)
			continue
		}

		var doc ModuleDoc
		if _, err := frontmatter.Parse(bytes.NewReader(data), &doc); err != nil || doc.Key == "" {
			fmt.Printf("Warning: skipping module doc %s without frontmatter\n", entry.Name())
			continue
		}

		docs = append(docs, doc)
	}

	return docs, nil
}
