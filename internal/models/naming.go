package models

import (
	"fmt"
	"regexp"
	"strings"
)

var projectNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_\- ]*$`)

// ValidateProjectName checks that a raw project name can be normalized into
// an OTP application name. The prompt layer re-asks on error instead of
// failing the run.
func ValidateProjectName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if !projectNamePattern.MatchString(trimmed) {
		return fmt.Errorf("project name %q must start with a letter and contain only letters, digits, underscores, dashes or spaces", name)
	}
	return nil
}

// AppName normalizes a project name into an OTP application name
// ("My Shop" -> "my_shop").
func AppName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")
	return normalized
}

// AppModule camelizes an OTP application name into the top-level Elixir
// module name ("my_shop" -> "MyShop"), matching Macro.camelize/1.
func AppModule(appName string) string {
	parts := strings.Split(appName, "_")

	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}

	return b.String()
}
