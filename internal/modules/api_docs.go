package modules

import (
	"path/filepath"

	"github.com/jakoblorz/phxforge/internal/inject"
	"github.com/jakoblorz/phxforge/internal/models"
)

const apiSpecTemplate = `defmodule {{ .AppModule }}Web.ApiSpec do
  @moduledoc false

  alias OpenApiSpex.{Info, OpenApi, Paths}
  alias {{ .AppModule }}Web.{Endpoint, Router}

  @behaviour OpenApi

  @impl OpenApi
  def spec do
    %OpenApi{
      servers: [OpenApiSpex.Server.from_endpoint(Endpoint)],
      info: %Info{
        title: {{ .Name | quote }},
        version: "0.1.0"
      },
      paths: Paths.from_router(Router)
    }
    |> OpenApiSpex.resolve_schema_modules()
  end
end
`

const apiDocsRouterBlock = `

  scope "/api" do
    pipe_through :api

    get "/openapi", OpenApiSpex.Plug.RenderSpec, []
  end`

const apiDocsDocsTemplate = `# OpenAPI Documentation

OpenApiSpex was added to **{{ .AppModule }}**.

## What was generated

- ` + "`lib/{{ .AppName }}_web/api_spec.ex`" + ` — the OpenAPI spec module
- a ` + "`/api/openapi`" + ` route serving the rendered spec

Annotate controllers with ` + "`OpenApiSpex.ControllerSpecs`" + ` to grow the
spec from your routes.
`

// setupAPIDocs adds OpenApiSpex with a spec module and a rendering route.
func setupAPIDocs(d *Deps, ctx *models.ProjectContext) error {
	if err := d.DepsInjector.Inject(manifestPath(ctx), models.NewDependency("open_api_spex", "~> 3.18")); err != nil {
		return err
	}

	data := templateData{ProjectContext: ctx}

	spec, err := render("api_spec", apiSpecTemplate, data)
	if err != nil {
		return err
	}
	webDir := filepath.Join(ctx.RootPath, "lib", ctx.AppName+"_web")
	if _, err := d.Materializer.Materialize(webDir, "api_spec.ex", spec); err != nil {
		return err
	}

	marker := "pipeline :api do\n    plug :accepts, [\"json\"]\n  end"
	if err := d.Patcher.Patch(routerPath(ctx), marker, apiDocsRouterBlock, inject.PatchOptions{SkipIfPresent: true}); err != nil {
		return err
	}

	doc, err := render("api_docs_docs", apiDocsDocsTemplate, data)
	if err != nil {
		return err
	}
	return d.Docs.Emit(ctx, "api_docs", "OpenAPI Documentation", doc)
}
