package modules

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/phxforge/internal/inject"
	"github.com/jakoblorz/phxforge/internal/models"
)

const obanWorkerTemplate = `defmodule {{ .AppModule }}.Workers.Example do
  @moduledoc """
  Example Oban worker. Enqueue with:

      %{message: "hello"}
      |> {{ .AppModule }}.Workers.Example.new()
      |> Oban.insert()
  """

  use Oban.Worker, queue: :default

  @impl Oban.Worker
  def perform(%Oban.Job{args: %{"message" => message}}) do
    IO.puts("Example worker received: " <> message)
    :ok
  end
end
`

const obanDocsTemplate = `# Background Jobs

Oban was configured for **{{ .AppModule }}** with a default queue and the
pruner plugin.

## What was generated

- an Oban config block in ` + "`config/config.exs`" + `
- ` + "`lib/{{ .AppName }}/workers/example.ex`" + ` — an example worker

## Next steps

Add Oban to the supervision tree in ` + "`lib/{{ .AppName }}/application.ex`" + `:

    {Oban, Application.fetch_env!({{ .AppName | printf ":%s" }}, Oban)}

Then create the jobs table:

    mix ecto.gen.migration add_oban_jobs_table
`

// setupOban layers Oban background jobs onto the project. Fetching the new
// dependency is part of the setup so a failed download is reported for this
// module alone.
func setupOban(d *Deps, ctx *models.ProjectContext) error {
	if err := d.DepsInjector.Inject(manifestPath(ctx), models.NewDependency("oban", "~> 2.17")); err != nil {
		return err
	}

	block := fmt.Sprintf("\n\nconfig :%s, Oban,\n  repo: %s.Repo,\n  plugins: [Oban.Plugins.Pruner],\n  queues: [default: 10]",
		ctx.AppName, ctx.AppModule)
	if err := d.Patcher.Patch(configPath(ctx), configMarker, block, inject.PatchOptions{SkipIfPresent: true}); err != nil {
		return err
	}

	data := templateData{ProjectContext: ctx}

	worker, err := render("oban_worker", obanWorkerTemplate, data)
	if err != nil {
		return err
	}
	workersDir := filepath.Join(ctx.RootPath, "lib", ctx.AppName, "workers")
	if _, err := d.Materializer.Materialize(workersDir, "example.ex", worker); err != nil {
		return err
	}

	if err := d.Mix.DepsGet(ctx.RootPath); err != nil {
		return err
	}

	// Oban stores jobs in the database, so make sure it exists. Re-runs are
	// fine: ecto.create is a no-op on an existing database.
	if err := d.Mix.EctoCreate(ctx.RootPath); err != nil {
		return err
	}

	doc, err := render("oban_docs", obanDocsTemplate, data)
	if err != nil {
		return err
	}
	return d.Docs.Emit(ctx, "oban", "Background Jobs", doc)
}
