package doctor

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"

	gitignore "github.com/denormal/go-gitignore"

	"github.com/jakoblorz/phxforge/internal/docs"
	"github.com/jakoblorz/phxforge/internal/filesystem"
	"github.com/jakoblorz/phxforge/internal/inject"
)

// Check is one verified property of a generated project tree.
type Check struct {
	Name   string
	OK     bool
	Detail string
}

// Doctor verifies that the shared artifacts of a generated project still
// carry the anchors module setup relies on. Useful before re-running setup
// against a project the user has been editing.
type Doctor struct {
	fs filesystem.FileSystem
}

// New creates a new Doctor
func New(fs filesystem.FileSystem) *Doctor {
	return &Doctor{fs: fs}
}

var appNamePattern = regexp.MustCompile(`app: :([a-z][a-z0-9_]*)`)

// Examine runs all checks against the project at rootPath.
func (d *Doctor) Examine(rootPath string) ([]Check, error) {
	if !d.fs.Exists(rootPath) {
		return nil, fmt.Errorf("project root %s does not exist", rootPath)
	}

	var checks []Check

	manifestCheck, appName := d.checkManifest(rootPath)
	checks = append(checks, manifestCheck)
	checks = append(checks, d.checkConfig(rootPath))
	checks = append(checks, d.checkRouter(rootPath, appName))
	checks = append(checks, d.checkDocs(rootPath))

	return checks, nil
}

func (d *Doctor) checkManifest(rootPath string) (Check, string) {
	check := Check{Name: "mix.exs deps anchor"}

	data, err := d.fs.ReadFile(filepath.Join(rootPath, "mix.exs"))
	if err != nil {
		check.Detail = "mix.exs not readable"
		return check, ""
	}

	// Check the exact anchor the injector searches for, opening bracket
	// included: "defp deps do" with the list on the same line would still
	// break injection.
	content := string(data)
	if !strings.Contains(content, inject.DepsAnchor) {
		check.Detail = "deps anchor missing; dependency injection would fail"
		return check, ""
	}

	check.OK = true
	check.Detail = "found"

	appName := ""
	if m := appNamePattern.FindStringSubmatch(content); m != nil {
		appName = m[1]
	}
	return check, appName
}

func (d *Doctor) checkConfig(rootPath string) Check {
	check := Check{Name: "config/config.exs marker"}

	data, err := d.fs.ReadFile(filepath.Join(rootPath, "config", "config.exs"))
	if err != nil {
		check.Detail = "config/config.exs not readable"
		return check
	}

	if !strings.Contains(string(data), "import Config") {
		check.Detail = "import Config marker missing; config patches would fail"
		return check
	}

	check.OK = true
	check.Detail = "found"
	return check
}

func (d *Doctor) checkRouter(rootPath, appName string) Check {
	check := Check{Name: "router marker"}

	routers, err := d.findRouters(rootPath)
	if err != nil {
		check.Detail = fmt.Sprintf("failed to scan for routers: %v", err)
		return check
	}

	if len(routers) == 0 {
		check.Detail = "no router.ex found under lib/"
		return check
	}

	for _, router := range routers {
		data, err := d.fs.ReadFile(router)
		if err != nil {
			check.Detail = fmt.Sprintf("%s not readable", router)
			return check
		}
		if !strings.Contains(string(data), ", :router") {
			rel, _ := filepath.Rel(rootPath, router)
			check.Detail = fmt.Sprintf("router marker missing in %s; router patches would fail", rel)
			return check
		}
	}

	check.OK = true
	if appName != "" {
		check.Detail = fmt.Sprintf("found for app :%s", appName)
	} else {
		check.Detail = "found"
	}
	return check
}

func (d *Doctor) checkDocs(rootPath string) Check {
	check := Check{Name: "module docs"}

	installed, err := docs.ListInstalled(d.fs, rootPath)
	if err != nil {
		check.Detail = fmt.Sprintf("failed to read docs tree: %v", err)
		return check
	}

	check.OK = true
	if len(installed) == 0 {
		check.Detail = "no modules installed"
		return check
	}

	var keys []string
	for _, doc := range installed {
		keys = append(keys, doc.Key)
	}
	check.Detail = fmt.Sprintf("%d installed (%s)", len(installed), strings.Join(keys, ", "))
	return check
}

// findRouters walks the project tree for router.ex files, honoring the
// project's .gitignore so deps/ and _build/ are never scanned.
func (d *Doctor) findRouters(rootPath string) ([]string, error) {
	libDir := filepath.Join(rootPath, "lib")
	if !d.fs.Exists(libDir) {
		return nil, nil
	}

	ignore, err := d.loadGitIgnore(rootPath)
	if err != nil {
		return nil, err
	}

	var routers []string
	err = d.fs.WalkDir(libDir, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if ignore != nil {
			rel, relErr := filepath.Rel(rootPath, path)
			if relErr != nil {
				return relErr
			}
			rel = filepath.ToSlash(rel)

			if match := ignore.Relative(rel, entry.IsDir()); match != nil && match.Ignore() {
				if entry.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if !entry.IsDir() && entry.Name() == "router.ex" {
			routers = append(routers, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return routers, nil
}

func (d *Doctor) loadGitIgnore(rootPath string) (gitignore.GitIgnore, error) {
	ignorePath := filepath.Join(rootPath, ".gitignore")
	if !d.fs.Exists(ignorePath) {
		return nil, nil
	}

	data, err := d.fs.ReadFile(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	return gitignore.New(bytes.NewReader(data), rootPath, nil), nil
}
