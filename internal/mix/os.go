package mix

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// OSRunner implements Runner using real mix commands
type OSRunner struct {
	ctx context.Context
}

// NewOSRunner creates a new OSRunner
func NewOSRunner() *OSRunner {
	return &OSRunner{
		ctx: context.Background(),
	}
}

// WithContext returns a new runner with the given context
func (r *OSRunner) WithContext(ctx context.Context) Runner {
	return &OSRunner{
		ctx: ctx,
	}
}

// PhxNew generates a fresh Phoenix project under parentDir.
// --no-install keeps dependency fetching a separate, reportable step.
func (r *OSRunner) PhxNew(parentDir, appName, database string) error {
	cmd := exec.CommandContext(r.ctx, "mix", "phx.new", appName, "--database", database, "--no-install")
	cmd.Dir = parentDir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("mix phx.new failed for %s: %w: %s", appName, err, stderr.String())
	}

	return nil
}

// DepsGet fetches dependencies for the project at projectRoot
func (r *OSRunner) DepsGet(projectRoot string) error {
	return r.runTask(projectRoot, "deps.get")
}

// EctoCreate creates the database for the project at projectRoot
func (r *OSRunner) EctoCreate(projectRoot string) error {
	return r.runTask(projectRoot, "ecto.create")
}

func (r *OSRunner) runTask(projectRoot string, task string) error {
	cmd := exec.CommandContext(r.ctx, "mix", task)
	cmd.Dir = projectRoot

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("mix %s failed: %w: %s", task, err, stderr.String())
	}

	return nil
}
