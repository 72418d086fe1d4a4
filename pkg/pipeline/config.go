package pipeline

import (
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/agentsgen/pkg/deps"
	"github.com/matzehuels/agentsgen/pkg/errors"
	"github.com/matzehuels/agentsgen/pkg/render"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultConfigPath is where the CLI looks for a config, relative to the
	// project root.
	DefaultConfigPath = ".agents/agents.toml"

	// DefaultMarker is the first line of every generated document.
	DefaultMarker = "<!-- This file is autogenerated by agentsgen -->"

	// DefaultTitle is the text of the top-level heading.
	DefaultTitle = "Guidelines"

	// DefaultProjectHeading introduces the project files section.
	DefaultProjectHeading = "Project files"
)

// =============================================================================
// Config
// =============================================================================

// Config describes the document to assemble. It is read from TOML:
//
//	marker = "<!-- generated -->"
//	title = "Guidelines"
//
//	[[guidelines]]
//	path = ".agents/general.md"
//
//	[[dependencies]]
//	ecosystem = "cargo"
//	name = "errgonomic"
//	path = "DOCS.md"
//
//	[[files]]
//	path = "src/lib.rs"
//	optional = true
type Config struct {
	Marker         string             `toml:"marker"`
	Title          string             `toml:"title"`
	ProjectHeading string             `toml:"project_heading"`
	Style          string             `toml:"style"`
	Guidelines     []FileSource       `toml:"guidelines"`
	Dependencies   []DependencySource `toml:"dependencies"`
	Files          []FileSource       `toml:"files"`
}

// FileSource is a project file, relative to the project root.
type FileSource struct {
	Path     string `toml:"path"`
	Optional bool   `toml:"optional"`
}

// DependencySource is a file inside a direct dependency.
type DependencySource struct {
	Ecosystem string `toml:"ecosystem"`
	Name      string `toml:"name"`
	Path      string `toml:"path"`
}

// DefaultConfig returns the layout used when no config file exists: shared
// and project guidelines from .agents/, the errgonomic crate's DOCS.md and
// the crate's manifest and entry points.
func DefaultConfig() Config {
	return Config{
		Marker:         DefaultMarker,
		Title:          DefaultTitle,
		ProjectHeading: DefaultProjectHeading,
		Style:          string(render.DefaultStyle),
		Guidelines: []FileSource{
			{Path: ".agents/general.md"},
			{Path: ".agents/project.md", Optional: true},
			{Path: ".agents/knowledge.md", Optional: true},
			{Path: ".agents/gotchas.md", Optional: true},
		},
		Dependencies: []DependencySource{
			{Ecosystem: "cargo", Name: "errgonomic", Path: "DOCS.md"},
		},
		Files: []FileSource{
			{Path: "Cargo.toml"},
			{Path: "src/main.rs", Optional: true},
			{Path: "src/lib.rs", Optional: true},
		},
	}
}

// LoadConfig reads a TOML config. Keys the file does not set keep their
// DefaultConfig values; an explicitly empty list stays empty. Unknown keys
// are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.WrapFile(err, "read config %s", path)
	}
	return ParseConfig(string(data))
}

// ParseConfig decodes a TOML config document. See LoadConfig.
func ParseConfig(data string) (Config, error) {
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}

	def := DefaultConfig()
	if !md.IsDefined("marker") {
		cfg.Marker = def.Marker
	}
	if !md.IsDefined("title") {
		cfg.Title = def.Title
	}
	if !md.IsDefined("project_heading") {
		cfg.ProjectHeading = def.ProjectHeading
	}
	if !md.IsDefined("style") {
		cfg.Style = def.Style
	}
	if !md.IsDefined("guidelines") {
		cfg.Guidelines = def.Guidelines
	}
	if !md.IsDefined("dependencies") {
		cfg.Dependencies = def.Dependencies
	}
	if !md.IsDefined("files") {
		cfg.Files = def.Files
	}
	return cfg, nil
}

// Validate checks the config against the given ecosystems.
func (c Config) Validate(langs []*deps.Language) error {
	if _, err := c.Renderer(); err != nil {
		return err
	}
	for i, f := range c.Guidelines {
		if strings.TrimSpace(f.Path) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "guidelines[%d]: path is required", i)
		}
	}
	for i, f := range c.Files {
		if strings.TrimSpace(f.Path) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "files[%d]: path is required", i)
		}
	}
	for i, d := range c.Dependencies {
		lang, err := deps.Find(langs, d.Ecosystem)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "dependencies[%d]", i)
		}
		if err := lang.Validate(d.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "dependencies[%d]", i)
		}
		if err := errors.ValidateRelativePath(d.Path); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "dependencies[%d]", i)
		}
	}
	return nil
}

// Renderer returns a renderer using the configured code style.
func (c Config) Renderer() (render.Renderer, error) {
	style, err := render.ParseStyle(c.Style)
	if err != nil {
		return render.Renderer{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "style")
	}
	return render.Renderer{Style: style}, nil
}

// Plan returns the parts of the document in output order.
func (c Config) Plan() []Part {
	plan := make([]Part, 0, 3+len(c.Guidelines)+len(c.Dependencies)+len(c.Files))
	plan = append(plan, Literal(c.Marker))
	if c.Title != "" {
		plan = append(plan, Literal("# "+c.Title))
	}
	plan = appendFiles(plan, c.Guidelines)
	for _, d := range c.Dependencies {
		plan = append(plan, DependencyFile(d.Ecosystem, d.Name, d.Path))
	}
	if c.ProjectHeading != "" {
		plan = append(plan, Literal("## "+c.ProjectHeading))
	}
	return appendFiles(plan, c.Files)
}

func appendFiles(plan []Part, files []FileSource) []Part {
	for _, f := range files {
		if f.Optional {
			plan = append(plan, OptionalFile(f.Path))
		} else {
			plan = append(plan, File(f.Path))
		}
	}
	return plan
}
