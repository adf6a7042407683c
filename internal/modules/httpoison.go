package modules

import (
	"github.com/jakoblorz/phxforge/internal/models"
)

const httpoisonDocsTemplate = `# HTTP Client

HTTPoison was added to **{{ .AppModule }}**.

## Usage

    HTTPoison.get!("https://api.example.com/status")

Run ` + "`mix deps.get`" + ` if dependencies have not been fetched yet.
`

// setupHTTPoison is a manifest-only module: one dependency plus docs.
func setupHTTPoison(d *Deps, ctx *models.ProjectContext) error {
	if err := d.DepsInjector.Inject(manifestPath(ctx), models.NewDependency("httpoison", "~> 2.0")); err != nil {
		return err
	}

	doc, err := render("httpoison_docs", httpoisonDocsTemplate, templateData{ProjectContext: ctx})
	if err != nil {
		return err
	}
	return d.Docs.Emit(ctx, "httpoison", "HTTP Client", doc)
}
