package create

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"

	"github.com/jakoblorz/phxforge/internal/models"
	"github.com/jakoblorz/phxforge/internal/modules"
	"github.com/jakoblorz/phxforge/internal/tui"
	"github.com/jakoblorz/phxforge/internal/tui/components"
)

// Flow collects everything the new command needs using huh forms.
type Flow struct {
	theme *huh.Theme

	// initialName skips the name prompt when the user passed a name as an
	// argument and it validates
	initialName string
}

// Result captures the successful output of the flow. A nil Result means the
// user aborted.
type Result struct {
	ProjectName string
	Database    string
	ModuleKeys  []string
}

// NewFlow constructs a Flow with the shared huh theme.
func NewFlow(initialName string) *Flow {
	return &Flow{
		theme:       tui.NewHuhTheme(),
		initialName: initialName,
	}
}

// Run executes the forms sequentially; returns nil result on user abort.
func (f *Flow) Run() (*Result, error) {
	name, err := f.inputProjectName()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	database, err := f.selectDatabase()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	keys, err := f.selectModules()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	confirmed, err := f.confirm(name, database, keys)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, nil
	}

	return &Result{
		ProjectName: name,
		Database:    database,
		ModuleKeys:  keys,
	}, nil
}

func (f *Flow) inputProjectName() (string, error) {
	if f.initialName != "" {
		if err := models.ValidateProjectName(f.initialName); err == nil {
			return f.initialName, nil
		}
		// fall through to the prompt so the user can correct it
	}

	name := f.initialName

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Value(&name).
				Placeholder("my_shop").
				Validate(models.ValidateProjectName),
		).
			Title("Project Name").
			Description("Names the generated Phoenix application."),
	).
		WithTheme(f.theme).
		WithShowHelp(true)

	if err := form.Run(); err != nil {
		return "", err
	}

	return strings.TrimSpace(name), nil
}

func (f *Flow) selectDatabase() (string, error) {
	database := "postgres"

	opts := []huh.Option[string]{
		huh.NewOption("PostgreSQL (recommended)", "postgres"),
		huh.NewOption("MySQL", "mysql"),
		huh.NewOption("SQLite3", "sqlite3"),
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(opts...).
				Value(&database),
		).
			Title("Database").
			Description("Passed to the generator as --database."),
	).
		WithTheme(f.theme).
		WithShowHelp(true)

	if err := form.Run(); err != nil {
		return "", err
	}

	return database, nil
}

func (f *Flow) selectModules() ([]string, error) {
	var selected []string

	registry := modules.Registry()
	opts := make([]huh.Option[string], 0, len(registry))
	for _, desc := range registry {
		opts = append(opts, huh.NewOption(desc.Prompt, desc.Key))
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.MultiSelect.Filter.SetEnabled(false)
	keyMap.MultiSelect.Toggle.SetKeys(" ")
	keyMap.MultiSelect.Toggle.SetHelp("space", "toggle selection")
	keyMap.MultiSelect.Submit.SetKeys("enter")
	keyMap.MultiSelect.Submit.SetHelp("enter", "continue")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Options(opts...).
				Value(&selected),
		).
			Title("Feature Modules").
			Description("Select the modules to layer onto the base project."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithKeyMap(keyMap)

	if err := form.Run(); err != nil {
		return nil, err
	}

	return selected, nil
}

func (f *Flow) confirm(name, database string, keys []string) (bool, error) {
	summary := fmt.Sprintf("Generate %s (database: %s, modules: %s)?",
		tui.TitleStyle.Render(name), database, formatKeys(keys))

	model := components.NewConfirm(summary)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}

	confirm, ok := final.(components.ConfirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected model type from confirmation prompt")
	}

	return confirm.IsConfirmed(), nil
}

func formatKeys(keys []string) string {
	if len(keys) == 0 {
		return "none"
	}
	return strings.Join(keys, ", ")
}
