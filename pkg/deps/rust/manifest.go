package rust

import (
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/agentsgen/pkg/errors"
)

// Manifest is the part of a Cargo.toml that agentsgen reads.
type Manifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
}

// ReadManifest decodes the Cargo.toml at path.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFile(err, "read %s", path)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}
	return &m, nil
}

// DependencyNames returns the sorted names of all declared dependencies,
// including dev and build dependencies.
func (m *Manifest) DependencyNames() []string {
	var names []string
	for _, table := range []map[string]any{m.Dependencies, m.DevDependencies, m.BuildDependencies} {
		for name := range table {
			if !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
	}
	slices.Sort(names)
	return names
}

// Declares reports whether the manifest declares a dependency called name.
func (m *Manifest) Declares(name string) bool {
	_, ok := m.Dependencies[name]
	if !ok {
		_, ok = m.DevDependencies[name]
	}
	if !ok {
		_, ok = m.BuildDependencies[name]
	}
	return ok
}
