package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/phxforge/internal/filesystem"
	"github.com/jakoblorz/phxforge/internal/models"
)

// ProjectBuilder assembles an in-memory replica of a phx.new output tree.
// Tests use it instead of running the real generator.
type ProjectBuilder struct {
	ctx *models.ProjectContext
}

// NewProjectBuilder creates a builder for a project generated under parentDir.
func NewProjectBuilder(parentDir, name, database string) *ProjectBuilder {
	appName := models.AppName(name)
	return &ProjectBuilder{
		ctx: models.NewProjectContext(name, filepath.Join(parentDir, appName), database),
	}
}

// Context returns the ProjectContext of the project being built.
func (b *ProjectBuilder) Context() *models.ProjectContext {
	return b.ctx
}

// Build writes the base project files into a fresh mock filesystem.
func (b *ProjectBuilder) Build() *filesystem.MockFileSystem {
	fs := filesystem.NewMockFileSystem()
	b.BuildInto(fs)
	return fs
}

// BuildInto writes the base project files into an existing mock filesystem.
func (b *ProjectBuilder) BuildInto(fs *filesystem.MockFileSystem) {
	root := b.ctx.RootPath
	app := b.ctx.AppName
	mod := b.ctx.AppModule

	fs.AddFile(filepath.Join(root, "mix.exs"), []byte(fmt.Sprintf(`defmodule %s.MixProject do
  use Mix.Project

  def project do
    [
      app: :%s,
      version: "0.1.0",
      elixir: "~> 1.14",
      start_permanent: Mix.env() == :prod,
      deps: deps()
    ]
  end

  defp deps do
    [
      {:phoenix, "~> 1.7.10"},
      {:ecto_sql, "~> 3.10"},
      {:jason, "~> 1.2"},
      {:plug_cowboy, "~> 2.5"}
    ]
  end
end
`, mod, app)))

	fs.AddFile(filepath.Join(root, "config", "config.exs"), []byte(fmt.Sprintf(`import Config

config :%s,
  ecto_repos: [%s.Repo]

config :%s, %sWeb.Endpoint,
  url: [host: "localhost"],
  adapter: Phoenix.Endpoint.Cowboy2Adapter

import_config "#{config_env()}.exs"
`, app, mod, app, mod)))

	fs.AddFile(filepath.Join(root, "lib", app, "repo.ex"), []byte(fmt.Sprintf(`defmodule %s.Repo do
  use Ecto.Repo,
    otp_app: :%s,
    adapter: Ecto.Adapters.Postgres
end
`, mod, app)))

	fs.AddFile(filepath.Join(root, "lib", app+"_web", "router.ex"), []byte(fmt.Sprintf(`defmodule %sWeb.Router do
  use %sWeb, :router

  pipeline :browser do
    plug :accepts, ["html"]
    plug :fetch_session
    plug :protect_from_forgery
    plug :put_secure_browser_headers
  end

  pipeline :api do
    plug :accepts, ["json"]
  end

  scope "/", %sWeb do
    pipe_through :browser

    get "/", PageController, :home
  end
end
`, mod, mod, mod)))

	fs.AddFile(filepath.Join(root, ".gitignore"), []byte(`/_build/
/deps/
/cover/
erl_crash.dump
*.ez
`))
}
