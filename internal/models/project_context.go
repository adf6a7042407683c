package models

// ProjectContext describes a freshly generated project.
//
// It is constructed exactly once after the base generator has run and is
// treated as read-only afterwards: modules receive it by pointer but never
// mutate it. All paths derived from it are anchored at RootPath, never at
// the process working directory.
type ProjectContext struct {
	// Name is the project name exactly as the user entered it
	Name string

	// RootPath is the absolute path to the generated project root
	RootPath string

	// AppName is the normalized OTP application name (snake_case)
	AppName string

	// AppModule is the top-level Elixir module name (CamelCase)
	AppModule string

	// Database is the database flavor passed to the base generator
	// (postgres, mysql or sqlite3)
	Database string
}

// NewProjectContext derives a ProjectContext from the raw project name.
func NewProjectContext(name, rootPath, database string) *ProjectContext {
	appName := AppName(name)

	return &ProjectContext{
		Name:      name,
		RootPath:  rootPath,
		AppName:   appName,
		AppModule: AppModule(appName),
		Database:  database,
	}
}
