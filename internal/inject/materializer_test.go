package inject

import (
	"path/filepath"
	"testing"

	"github.com/jakoblorz/phxforge/internal/filesystem"
)

func TestMaterializer_WritesFileAndCreatesDirectories(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	m := NewMaterializer(fs)

	existed, err := m.Materialize("/app/lib/my_app_web/plugs", "auth.ex", "defmodule Auth do\nend\n")
	if err != nil {
		t.Fatalf("Materialize failed: %v", err)
	}
	if existed {
		t.Error("expected existed=false for a fresh file")
	}

	data, err := fs.ReadFile("/app/lib/my_app_web/plugs/auth.ex")
	if err != nil {
		t.Fatalf("failed to read materialized file: %v", err)
	}
	if string(data) != "defmodule Auth do\nend\n" {
		t.Errorf("unexpected content: %q", string(data))
	}
}

func TestMaterializer_NeverClobbersExistingFile(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	m := NewMaterializer(fs)

	path := filepath.Join("/app", "config", "oban.exs")
	fs.AddFile(path, []byte("user edited content"))

	existed, err := m.Materialize("/app/config", "oban.exs", "template content")
	if err != nil {
		t.Fatalf("Materialize failed: %v", err)
	}
	if !existed {
		t.Error("expected existed=true for a pre-existing file")
	}

	data, _ := fs.ReadFile(path)
	if string(data) != "user edited content" {
		t.Errorf("existing file was overwritten: %q", string(data))
	}
}

func TestMaterializer_SecondCallIsNoOp(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	m := NewMaterializer(fs)

	existed, err := m.Materialize("/app/docs/modules", "auth.md", "# Auth\n")
	if err != nil {
		t.Fatalf("first Materialize failed: %v", err)
	}
	if existed {
		t.Error("first call should report existed=false")
	}

	existed, err = m.Materialize("/app/docs/modules", "auth.md", "# Auth\n")
	if err != nil {
		t.Fatalf("second Materialize failed: %v", err)
	}
	if !existed {
		t.Error("second call should report existed=true")
	}

	data, _ := fs.ReadFile("/app/docs/modules/auth.md")
	if string(data) != "# Auth\n" {
		t.Errorf("content changed on second call: %q", string(data))
	}
}
