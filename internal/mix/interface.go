package mix

import (
	"context"
)

// Runner provides an abstraction over mix task invocations for testability
//
// IMPORTANT: every per-project task runs with the project root as its working
// directory, passed explicitly by the caller. Nothing in this package relies
// on the process working directory.
//
// Tasks are blocking and have no timeout of their own; callers that need
// cancellation wire it through WithContext.
type Runner interface {
	// Base generation. Runs `mix phx.new` inside parentDir; the generated
	// project lands at parentDir/appName.
	PhxNew(parentDir, appName, database string) error

	// Per-project tasks
	DepsGet(projectRoot string) error
	EctoCreate(projectRoot string) error

	// Context support for subprocess invocations
	WithContext(ctx context.Context) Runner
}
