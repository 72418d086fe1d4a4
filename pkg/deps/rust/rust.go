package rust

import (
	"github.com/matzehuels/agentsgen/pkg/deps"
	"github.com/matzehuels/agentsgen/pkg/errors"
)

// Language resolves crates through cargo metadata.
var Language = &deps.Language{
	Name:         "cargo",
	Aliases:      []string{"rust", "crates", "crates.io"},
	ValidateName: errors.ValidateCrateName,
	NewResolver: func(opts deps.Options) deps.Resolver {
		return NewResolver(opts, ExecCommand)
	},
}
