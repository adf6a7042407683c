package orchestrator

import (
	"fmt"
	"io"

	"github.com/jakoblorz/phxforge/internal/models"
	"github.com/jakoblorz/phxforge/internal/modules"
)

// Orchestrator sequences module setup against a generated project.
//
// Execution is strictly sequential in selection order. One module's failure
// never blocks the remaining modules, and a panicking module is converted
// into a failed outcome instead of taking the process down. The orchestrator
// itself never touches the filesystem.
type Orchestrator struct {
	deps *modules.Deps
}

// New creates a new Orchestrator
func New(deps *modules.Deps) *Orchestrator {
	return &Orchestrator{deps: deps}
}

// Run invokes each selected module's setup and collects exactly one outcome
// per module, in invocation order.
func (o *Orchestrator) Run(ctx *models.ProjectContext, selection []modules.Descriptor) []models.Outcome {
	outcomes := make([]models.Outcome, 0, len(selection))
	for _, desc := range selection {
		outcomes = append(outcomes, o.runOne(ctx, desc))
	}
	return outcomes
}

func (o *Orchestrator) runOne(ctx *models.ProjectContext, desc modules.Descriptor) (outcome models.Outcome) {
	// Modules signal failure through their error return; recover is the
	// boundary for faults they did not anticipate.
	defer func() {
		if r := recover(); r != nil {
			outcome = models.Failure(desc.Key, fmt.Errorf("unexpected error: %v", r))
		}
	}()

	if err := desc.Setup(o.deps, ctx); err != nil {
		return models.Failure(desc.Key, err)
	}

	return models.Success(desc.Key)
}

// Report writes one human-readable line per outcome, in processing order.
func Report(w io.Writer, outcomes []models.Outcome) {
	for _, outcome := range outcomes {
		if outcome.Failed() {
			fmt.Fprintf(w, "⚠️  %s failed: %v\n", outcome.Module, outcome.Err)
		} else {
			fmt.Fprintf(w, "✓ %s\n", outcome.Module)
		}
	}
}

// HasFailures reports whether any outcome failed.
func HasFailures(outcomes []models.Outcome) bool {
	for _, outcome := range outcomes {
		if outcome.Failed() {
			return true
		}
	}
	return false
}
