package modules

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/phxforge/internal/inject"
	"github.com/jakoblorz/phxforge/internal/models"
)

const adminControllerTemplate = `defmodule {{ .AppModule }}Web.AdminController do
  use {{ .AppModule }}Web, :controller

  def index(conn, _params) do
    render(conn, :index,
      app: {{ .Name | quote }},
      uptime: :erlang.statistics(:wall_clock) |> elem(0)
    )
  end
end
`

const adminRouterBlock = `

  scope "/admin", %sWeb do
    pipe_through :browser

    get "/", AdminController, :index
  end`

const adminDocsTemplate = `# Admin Dashboard

A minimal admin surface was generated for **{{ .AppModule }}**.

## What was generated

- ` + "`lib/{{ .AppName }}_web/controllers/admin_controller.ex`" + `
- an ` + "`/admin`" + ` scope in the router

The dashboard intentionally ships without authorization; combine it with the
auth module's ` + "`:auth`" + ` pipeline before exposing it.
`

// setupAdmin generates an admin controller and routes it. No new manifest
// dependencies are involved.
func setupAdmin(d *Deps, ctx *models.ProjectContext) error {
	data := templateData{ProjectContext: ctx}

	controller, err := render("admin_controller", adminControllerTemplate, data)
	if err != nil {
		return err
	}
	controllersDir := filepath.Join(ctx.RootPath, "lib", ctx.AppName+"_web", "controllers")
	if _, err := d.Materializer.Materialize(controllersDir, "admin_controller.ex", controller); err != nil {
		return err
	}

	block := fmt.Sprintf(adminRouterBlock, ctx.AppModule)
	if err := d.Patcher.Patch(routerPath(ctx), routerMarker(ctx), block, inject.PatchOptions{SkipIfPresent: true}); err != nil {
		return err
	}

	doc, err := render("admin_docs", adminDocsTemplate, data)
	if err != nil {
		return err
	}
	return d.Docs.Emit(ctx, "admin", "Admin Dashboard", doc)
}
