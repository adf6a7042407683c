package modules

import (
	"fmt"

	"github.com/jakoblorz/phxforge/internal/inject"
	"github.com/jakoblorz/phxforge/internal/models"
)

const paginationDocsTemplate = `# Pagination

Scrivener was added to **{{ .AppModule }}** and wired into the Repo.

## Usage

    {{ .AppModule }}.Repo.paginate(MyQuery, page: 2, page_size: 20)
`

// setupPagination adds Scrivener and patches the Repo module to use it.
func setupPagination(d *Deps, ctx *models.ProjectContext) error {
	if err := d.DepsInjector.Inject(manifestPath(ctx), models.NewDependency("scrivener_ecto", "~> 3.0")); err != nil {
		return err
	}

	marker := fmt.Sprintf("defmodule %s.Repo do", ctx.AppModule)
	block := "\n  use Scrivener, page_size: 20"
	if err := d.Patcher.Patch(repoPath(ctx), marker, block, inject.PatchOptions{SkipIfPresent: true}); err != nil {
		return err
	}

	doc, err := render("pagination_docs", paginationDocsTemplate, templateData{ProjectContext: ctx})
	if err != nil {
		return err
	}
	return d.Docs.Emit(ctx, "pagination", "Pagination", doc)
}
