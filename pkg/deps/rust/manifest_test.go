package rust

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/agentsgen/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadManifest(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Cargo.toml", `
[package]
name = "app"
version = "0.1.0"
edition = "2021"

[dependencies]
errgonomic = "0.3"
serde = { version = "1", features = ["derive"] }

[dev-dependencies]
pretty_assertions = "1"

[build-dependencies]
serde = "1"
`)

	m, err := ReadManifest(path)
	if err != nil {
		t.Fatalf("ReadManifest() error = %v", err)
	}
	if m.Package.Name != "app" || m.Package.Version != "0.1.0" {
		t.Errorf("Package = %+v, want app 0.1.0", m.Package)
	}

	want := []string{"errgonomic", "pretty_assertions", "serde"}
	if got := m.DependencyNames(); !slices.Equal(got, want) {
		t.Errorf("DependencyNames() = %v, want %v", got, want)
	}
	if !m.Declares("pretty_assertions") {
		t.Error("Declares(pretty_assertions) = false, want true")
	}
	if m.Declares("tokio") {
		t.Error("Declares(tokio) = true, want false")
	}
}

func TestReadManifestErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadManifest(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}

	bad := writeFile(t, dir, "Cargo.toml", "[package\nname = ")
	_, err = ReadManifest(bad)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("invalid toml error = %v, want %v", err, errors.ErrCodeInvalidInput)
	}
}
