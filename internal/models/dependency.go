package models

import (
	"fmt"
	"strings"
)

// Dependency is a single declaration destined for the mix.exs deps list.
type Dependency struct {
	// Name is the hex package name (e.g. "oban")
	Name string

	// Requirement is the version requirement (e.g. "~> 2.17"); may be empty
	// for packages pulled without a constraint
	Requirement string

	// Options are extra keyword options rendered verbatim after the
	// requirement (e.g. `only: :dev`, `runtime: false`)
	Options []string
}

// NewDependency creates a Dependency with a version requirement.
func NewDependency(name, requirement string, options ...string) Dependency {
	return Dependency{Name: name, Requirement: requirement, Options: options}
}

// Render returns the canonical manifest entry for the dependency, without
// trailing comma or indentation. The injector checks for this exact string
// before inserting, so rendering must stay deterministic.
func (d Dependency) Render() string {
	parts := []string{fmt.Sprintf(":%s", d.Name)}
	if d.Requirement != "" {
		parts = append(parts, fmt.Sprintf("%q", d.Requirement))
	}
	parts = append(parts, d.Options...)

	// A one-element tuple is not valid in a deps list; a dependency with
	// neither requirement nor options renders as a bare atom.
	if len(parts) == 1 {
		return parts[0]
	}

	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}
