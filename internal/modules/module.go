package modules

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/phxforge/internal/docs"
	"github.com/jakoblorz/phxforge/internal/filesystem"
	"github.com/jakoblorz/phxforge/internal/inject"
	"github.com/jakoblorz/phxforge/internal/mix"
	"github.com/jakoblorz/phxforge/internal/models"
)

// Deps bundles the collaborators every module builds its setup from.
type Deps struct {
	FS           filesystem.FileSystem
	Mix          mix.Runner
	Materializer *inject.Materializer
	DepsInjector *inject.DepsInjector
	Patcher      *inject.Patcher
	Docs         *docs.Emitter
}

// NewDeps creates the shared module collaborators
func NewDeps(fs filesystem.FileSystem, runner mix.Runner) *Deps {
	return &Deps{
		FS:           fs,
		Mix:          runner,
		Materializer: inject.NewMaterializer(fs),
		DepsInjector: inject.NewDepsInjector(fs),
		Patcher:      inject.NewPatcher(fs),
		Docs:         docs.NewEmitter(fs),
	}
}

// SetupFunc is the single operation a feature module implements. It must be
// safe to invoke against a project that a previous run already set up, fully
// or partially, and must report failures instead of panicking.
type SetupFunc func(d *Deps, ctx *models.ProjectContext) error

// Descriptor declares a feature module.
type Descriptor struct {
	// Key is the symbolic module name; it doubles as the docs filename stem
	Key string

	// Prompt is the question shown during interactive selection
	Prompt string

	// Setup is the module's setup capability
	Setup SetupFunc
}

// Registry returns the static module registry. Order here is the execution
// order; modules carry no dependency declarations between each other.
func Registry() []Descriptor {
	return []Descriptor{
		{Key: "auth", Prompt: "Authentication (bcrypt + Guardian)", Setup: setupAuth},
		{Key: "oban", Prompt: "Background jobs (Oban)", Setup: setupOban},
		{Key: "httpoison", Prompt: "HTTP client (HTTPoison)", Setup: setupHTTPoison},
		{Key: "pagination", Prompt: "Pagination (Scrivener)", Setup: setupPagination},
		{Key: "mailer", Prompt: "SMTP mailer (gen_smtp)", Setup: setupMailer},
		{Key: "api_docs", Prompt: "OpenAPI documentation (OpenApiSpex)", Setup: setupAPIDocs},
		{Key: "admin", Prompt: "Admin dashboard", Setup: setupAdmin},
	}
}

// Lookup finds a descriptor by key.
func Lookup(key string) (Descriptor, bool) {
	for _, desc := range Registry() {
		if desc.Key == key {
			return desc, true
		}
	}
	return Descriptor{}, false
}

// Select resolves keys into descriptors, preserving registry order regardless
// of the order keys were given in. Unknown keys are an error up front, before
// anything runs.
func Select(keys []string) ([]Descriptor, error) {
	wanted := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := Lookup(key); !ok {
			return nil, fmt.Errorf("unknown module %q", key)
		}
		wanted[key] = struct{}{}
	}

	var selection []Descriptor
	for _, desc := range Registry() {
		if _, ok := wanted[desc.Key]; ok {
			selection = append(selection, desc)
		}
	}

	return selection, nil
}

// Shared artifact paths, always derived from the ProjectContext.

func manifestPath(ctx *models.ProjectContext) string {
	return filepath.Join(ctx.RootPath, "mix.exs")
}

func routerPath(ctx *models.ProjectContext) string {
	return filepath.Join(ctx.RootPath, "lib", ctx.AppName+"_web", "router.ex")
}

func configPath(ctx *models.ProjectContext) string {
	return filepath.Join(ctx.RootPath, "config", "config.exs")
}

func repoPath(ctx *models.ProjectContext) string {
	return filepath.Join(ctx.RootPath, "lib", ctx.AppName, "repo.ex")
}

// routerMarker is the one line every generated router is guaranteed to carry.
func routerMarker(ctx *models.ProjectContext) string {
	return fmt.Sprintf("use %sWeb, :router", ctx.AppModule)
}

// configMarker is the first line of every generated config/config.exs.
const configMarker = "import Config"
