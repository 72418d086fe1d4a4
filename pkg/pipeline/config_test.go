package pipeline

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/agentsgen/pkg/errors"
	"github.com/matzehuels/agentsgen/pkg/render"
)

func TestDefaultConfigPlan(t *testing.T) {
	want := []Part{
		Literal(DefaultMarker),
		Literal("# Guidelines"),
		File(".agents/general.md"),
		OptionalFile(".agents/project.md"),
		OptionalFile(".agents/knowledge.md"),
		OptionalFile(".agents/gotchas.md"),
		DependencyFile("cargo", "errgonomic", "DOCS.md"),
		Literal("## Project files"),
		File("Cargo.toml"),
		OptionalFile("src/main.rs"),
		OptionalFile("src/lib.rs"),
	}
	if got := DefaultConfig().Plan(); !reflect.DeepEqual(got, want) {
		t.Errorf("Plan() =\n%v\nwant\n%v", got, want)
	}
	if err := DefaultConfig().Validate(Languages); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(`title = "Rules"`)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	def := DefaultConfig()
	if cfg.Title != "Rules" {
		t.Errorf("Title = %q, want Rules", cfg.Title)
	}
	if cfg.Marker != def.Marker || cfg.ProjectHeading != def.ProjectHeading || cfg.Style != def.Style {
		t.Errorf("scalar defaults not applied: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Guidelines, def.Guidelines) ||
		!reflect.DeepEqual(cfg.Dependencies, def.Dependencies) ||
		!reflect.DeepEqual(cfg.Files, def.Files) {
		t.Errorf("list defaults not applied: %+v", cfg)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	cfg, err := ParseConfig(`
title = ""
style = "xml"
dependencies = []

[[guidelines]]
path = "docs/agents.md"

[[files]]
path = "go.mod"
optional = true
`)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Style != "xml" {
		t.Errorf("Style = %q, want xml", cfg.Style)
	}
	want := []Part{
		Literal(DefaultMarker),
		File("docs/agents.md"),
		Literal("## Project files"),
		OptionalFile("go.mod"),
	}
	if got := cfg.Plan(); !reflect.DeepEqual(got, want) {
		t.Errorf("Plan() =\n%v\nwant\n%v", got, want)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `title = `},
		{"unknown key", `heading = "x"`},
		{"unknown nested key", "[[files]]\npath = \"a.rs\"\nrequired = true\n"},
		{"wrong type", `title = 3`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(tt.data)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("ParseConfig() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "agents.toml", "[[dependencies]]\necosystem = \"go\"\nname = \"golang.org/x/sync\"\npath = \"README\"\n")

	cfg, err := LoadConfig(filepath.Join(dir, "agents.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if len(cfg.Dependencies) != 1 || cfg.Dependencies[0].Name != "golang.org/x/sync" {
		t.Errorf("Dependencies = %+v", cfg.Dependencies)
	}

	_, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadConfig(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"bad style", func(c *Config) { c.Style = "html" }},
		{"empty guideline path", func(c *Config) { c.Guidelines = []FileSource{{Path: " "}} }},
		{"empty file path", func(c *Config) { c.Files = []FileSource{{}} }},
		{"unknown ecosystem", func(c *Config) { c.Dependencies[0].Ecosystem = "npm" }},
		{"bad crate name", func(c *Config) { c.Dependencies[0].Name = "1bad" }},
		{"escaping path", func(c *Config) { c.Dependencies[0].Path = "../secret.md" }},
		{"absolute path", func(c *Config) { c.Dependencies[0].Path = "/etc/passwd" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(Languages); !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Validate() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestPartSource(t *testing.T) {
	tests := []struct {
		part    Part
		source  string
		display string
	}{
		{Literal("# Guidelines"), `"# Guidelines"`, ""},
		{File("Cargo.toml"), "Cargo.toml", "Cargo.toml"},
		{OptionalFile("src/lib.rs"), "src/lib.rs", "src/lib.rs"},
		{DependencyFile("cargo", "errgonomic", "DOCS.md"), "cargo:errgonomic/DOCS.md", "errgonomic/DOCS.md"},
	}
	for _, tt := range tests {
		if got := tt.part.Source(); got != tt.source {
			t.Errorf("Source() = %q, want %q", got, tt.source)
		}
		if got := tt.part.DisplayPath(); got != tt.display {
			t.Errorf("DisplayPath() = %q, want %q", got, tt.display)
		}
	}
}

func TestConfigRenderer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Style = "xml"
	r, err := cfg.Renderer()
	if err != nil {
		t.Fatalf("Renderer() error = %v", err)
	}
	if r.Style != render.StyleXML {
		t.Errorf("Style = %q, want xml", r.Style)
	}
}
