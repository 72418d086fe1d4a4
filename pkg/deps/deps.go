package deps

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// Resolver finds the directory a direct dependency of the project was
// resolved to.
type Resolver interface {
	// Name returns the ecosystem identifier (e.g., "cargo").
	Name() string
	// PackageDir returns the root directory of the named direct dependency.
	PackageDir(ctx context.Context, dependency string) (string, error)
}

// Options configures a Resolver.
type Options struct {
	Dir    string      // Project root the build system is queried from
	Logger *log.Logger // Debug output (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return opts
}
