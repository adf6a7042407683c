package modules

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/phxforge/internal/inject"
	"github.com/jakoblorz/phxforge/internal/models"
)

const notifierTemplate = `defmodule {{ .AppModule }}.Notifier do
  @moduledoc """
  Delivers transactional mail through the configured SMTP adapter.
  """

  import Swoosh.Email

  alias {{ .AppModule }}.Mailer

  def deliver_welcome(recipient) do
    new()
    |> to(recipient)
    |> from({"{{ .AppModule }}", "noreply@{{ .AppName | replace "_" "-" }}.example"})
    |> subject("Welcome!")
    |> text_body("Welcome to {{ .AppModule }}.")
    |> Mailer.deliver()
  end
end
`

const mailerDocsTemplate = `# SMTP Mailer

gen_smtp was added to **{{ .AppModule }}** and Swoosh was switched to the
SMTP adapter.

## What was generated

- an SMTP adapter block in ` + "`config/config.exs`" + `
- ` + "`lib/{{ .AppName }}/notifier.ex`" + ` — a welcome-mail notifier

Set ` + "`SMTP_RELAY`" + `, ` + "`SMTP_USERNAME`" + ` and ` + "`SMTP_PASSWORD`" + `
in the runtime environment before delivering mail.
`

// setupMailer switches the generated Swoosh mailer to a real SMTP adapter.
func setupMailer(d *Deps, ctx *models.ProjectContext) error {
	if err := d.DepsInjector.Inject(manifestPath(ctx), models.NewDependency("gen_smtp", "~> 1.2")); err != nil {
		return err
	}

	block := fmt.Sprintf("\n\nconfig :%s, %s.Mailer,\n  adapter: Swoosh.Adapters.SMTP,\n  relay: System.get_env(\"SMTP_RELAY\"),\n  port: 587",
		ctx.AppName, ctx.AppModule)
	if err := d.Patcher.Patch(configPath(ctx), configMarker, block, inject.PatchOptions{SkipIfPresent: true}); err != nil {
		return err
	}

	data := templateData{ProjectContext: ctx}

	notifier, err := render("notifier", notifierTemplate, data)
	if err != nil {
		return err
	}
	if _, err := d.Materializer.Materialize(filepath.Join(ctx.RootPath, "lib", ctx.AppName), "notifier.ex", notifier); err != nil {
		return err
	}

	doc, err := render("mailer_docs", mailerDocsTemplate, data)
	if err != nil {
		return err
	}
	return d.Docs.Emit(ctx, "mailer", "SMTP Mailer", doc)
}
