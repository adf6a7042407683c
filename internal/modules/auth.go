package modules

import (
	"fmt"
	"path/filepath"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/jakoblorz/phxforge/internal/inject"
	"github.com/jakoblorz/phxforge/internal/models"
)

const secretAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const guardianTemplate = `defmodule {{ .AppModule }}.Guardian do
  use Guardian, otp_app: {{ .AppName | printf ":%s" }}

  def subject_for_token(%{id: id}, _claims), do: {:ok, to_string(id)}
  def subject_for_token(_, _), do: {:error, :no_subject}

  def resource_from_claims(%{"sub" => id}) do
    {:ok, %{id: id}}
  end

  def resource_from_claims(_claims), do: {:error, :no_resource}
end
`

const authPlugTemplate = `defmodule {{ .AppModule }}Web.Plugs.Auth do
  @moduledoc """
  Verifies the Guardian session token and assigns the current user.
  """

  import Plug.Conn

  def init(opts), do: opts

  def call(conn, _opts) do
    case Guardian.Plug.current_resource(conn) do
      nil -> conn |> put_status(:unauthorized) |> halt()
      user -> assign(conn, :current_user, user)
    end
  end
end
`

const authRouterBlock = `

  pipeline :auth do
    plug Guardian.Plug.Pipeline,
      module: %s.Guardian,
      error_handler: %sWeb.Plugs.Auth

    plug Guardian.Plug.VerifySession
    plug Guardian.Plug.LoadResource, allow_blank: true
  end`

const authDocsTemplate = `# Authentication

Password hashing via bcrypt and token auth via Guardian were added to
**{{ .AppModule }}**.

## What was generated

- ` + "`lib/{{ .AppName }}/guardian.ex`" + ` — the Guardian token module
- ` + "`lib/{{ .AppName }}_web/plugs/auth.ex`" + ` — a plug assigning the current user
- an ` + "`:auth`" + ` pipeline in the router
- a Guardian secret in ` + "`config/config.exs`" + `

## Next steps

Pipe protected scopes through the pipeline:

    scope "/app", {{ .AppModule }}Web do
      pipe_through [:browser, :auth]
    end
`

// setupAuth layers bcrypt + Guardian authentication onto the project.
func setupAuth(d *Deps, ctx *models.ProjectContext) error {
	deps := []models.Dependency{
		models.NewDependency("bcrypt_elixir", "~> 3.0"),
		models.NewDependency("guardian", "~> 2.3"),
	}
	if err := d.DepsInjector.Inject(manifestPath(ctx), deps...); err != nil {
		return err
	}

	data := templateData{ProjectContext: ctx}

	guardian, err := render("guardian", guardianTemplate, data)
	if err != nil {
		return err
	}
	if _, err := d.Materializer.Materialize(filepath.Join(ctx.RootPath, "lib", ctx.AppName), "guardian.ex", guardian); err != nil {
		return err
	}

	plug, err := render("auth_plug", authPlugTemplate, data)
	if err != nil {
		return err
	}
	plugsDir := filepath.Join(ctx.RootPath, "lib", ctx.AppName+"_web", "plugs")
	if _, err := d.Materializer.Materialize(plugsDir, "auth.ex", plug); err != nil {
		return err
	}

	block := fmt.Sprintf(authRouterBlock, ctx.AppModule, ctx.AppModule)
	if err := d.Patcher.Patch(routerPath(ctx), routerMarker(ctx), block, inject.PatchOptions{SkipIfPresent: true}); err != nil {
		return err
	}

	if err := injectGuardianConfig(d, ctx); err != nil {
		return err
	}

	doc, err := render("auth_docs", authDocsTemplate, data)
	if err != nil {
		return err
	}
	return d.Docs.Emit(ctx, "auth", "Authentication", doc)
}

// injectGuardianConfig writes the Guardian secret into config.exs. The
// generated secret differs per run, so presence is checked against the stable
// module reference instead of relying on the patcher's block guard.
func injectGuardianConfig(d *Deps, ctx *models.ProjectContext) error {
	configFile := configPath(ctx)

	existing, err := d.FS.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", configFile, err)
	}
	if strings.Contains(string(existing), ctx.AppModule+".Guardian,") {
		return nil
	}

	secret, err := gonanoid.Generate(secretAlphabet, 64)
	if err != nil {
		return fmt.Errorf("failed to generate Guardian secret: %w", err)
	}

	block := fmt.Sprintf("\n\nconfig :%s, %s.Guardian,\n  issuer: %q,\n  secret_key: %q",
		ctx.AppName, ctx.AppModule, ctx.AppName, secret)

	return d.Patcher.Patch(configFile, configMarker, block, inject.PatchOptions{SkipIfPresent: false})
}
