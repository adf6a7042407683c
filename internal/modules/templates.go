package modules

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/jakoblorz/phxforge/internal/models"
)

// templateData is what every module template is executed against.
type templateData struct {
	*models.ProjectContext

	// Secret carries a generated secret for templates that need one
	Secret string
}

// render executes a module template against the project context.
func render(name, tmpl string, data templateData) (string, error) {
	parsed, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := parsed.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}
