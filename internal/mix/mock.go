package mix

import (
	"context"
	"fmt"
)

// MockCall records a single task invocation against the mock runner.
type MockCall struct {
	Task string
	Dir  string
	Args []string
}

// MockRunner implements Runner for testing, recording every invocation and
// failing tasks on demand.
type MockRunner struct {
	Calls []MockCall

	// OnPhxNew, when set, runs after a phx.new invocation is recorded.
	// Tests use it to materialize the generated tree the real task would
	// have written.
	OnPhxNew func(parentDir, appName, database string)

	// failures maps a task name ("phx.new", "deps.get", "ecto.create") to
	// the error its next invocation should return
	failures map[string]error
}

// NewMockRunner creates a new MockRunner
func NewMockRunner() *MockRunner {
	return &MockRunner{
		failures: make(map[string]error),
	}
}

// FailTask makes every subsequent invocation of task return err.
func (m *MockRunner) FailTask(task string, err error) {
	m.failures[task] = err
}

// CallsFor returns the recorded invocations of a task.
func (m *MockRunner) CallsFor(task string) []MockCall {
	var calls []MockCall
	for _, call := range m.Calls {
		if call.Task == task {
			calls = append(calls, call)
		}
	}
	return calls
}

func (m *MockRunner) WithContext(ctx context.Context) Runner {
	return m
}

func (m *MockRunner) PhxNew(parentDir, appName, database string) error {
	m.Calls = append(m.Calls, MockCall{
		Task: "phx.new",
		Dir:  parentDir,
		Args: []string{appName, "--database", database},
	})

	if err := m.failures["phx.new"]; err != nil {
		return fmt.Errorf("mix phx.new failed for %s: %w", appName, err)
	}

	if m.OnPhxNew != nil {
		m.OnPhxNew(parentDir, appName, database)
	}
	return nil
}

func (m *MockRunner) DepsGet(projectRoot string) error {
	return m.runTask(projectRoot, "deps.get")
}

func (m *MockRunner) EctoCreate(projectRoot string) error {
	return m.runTask(projectRoot, "ecto.create")
}

func (m *MockRunner) runTask(projectRoot, task string) error {
	m.Calls = append(m.Calls, MockCall{Task: task, Dir: projectRoot})

	if err := m.failures[task]; err != nil {
		return fmt.Errorf("mix %s failed: %w", task, err)
	}
	return nil
}
