package deps

import (
	"slices"
	"strings"

	"github.com/matzehuels/agentsgen/pkg/errors"
)

// Language describes one dependency ecosystem.
type Language struct {
	Name         string                    // Canonical name used in config files
	Aliases      []string                  // Alternative names
	ValidateName func(name string) error   // Dependency name check (optional)
	NewResolver  func(opts Options) Resolver
}

// Resolver creates a resolver for the project described by opts.
func (l *Language) Resolver(opts Options) Resolver {
	return l.NewResolver(opts.WithDefaults())
}

// Validate checks a dependency name against the ecosystem's naming rules.
func (l *Language) Validate(name string) error {
	if l.ValidateName == nil {
		return errors.ValidateDependencyName(name)
	}
	return l.ValidateName(name)
}

// Matches reports whether name refers to this language.
func (l *Language) Matches(name string) bool {
	name = strings.ToLower(name)
	return name == l.Name || slices.Contains(l.Aliases, name)
}

// Find returns the language in langs matching name.
func Find(langs []*Language, name string) (*Language, error) {
	for _, l := range langs {
		if l.Matches(name) {
			return l, nil
		}
	}
	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = l.Name
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown ecosystem %q (available: %s)", name, strings.Join(names, ", "))
}
