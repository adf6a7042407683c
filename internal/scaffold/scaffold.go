package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/phxforge/internal/mix"
	"github.com/jakoblorz/phxforge/internal/models"
)

// Generate runs the base Phoenix generator and derives the ProjectContext
// for the freshly generated tree.
//
// A failure here is fatal to the whole run: no modules execute without a
// base project. That is the one tier above the per-module failures the
// orchestrator absorbs.
func Generate(runner mix.Runner, parentDir, name, database string) (*models.ProjectContext, error) {
	if err := models.ValidateProjectName(name); err != nil {
		return nil, err
	}

	appName := models.AppName(name)
	if err := runner.PhxNew(parentDir, appName, database); err != nil {
		return nil, fmt.Errorf("base project generation failed: %w", err)
	}

	rootPath := filepath.Join(parentDir, appName)
	return models.NewProjectContext(name, rootPath, database), nil
}
