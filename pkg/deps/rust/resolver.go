package rust

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/agentsgen/pkg/deps"
)

// Resolver finds crate directories using a single memoized cargo metadata
// query. It is safe for concurrent use.
type Resolver struct {
	dir    string
	run    Command
	logger *log.Logger

	once sync.Once
	meta *Metadata
	err  error
}

// NewResolver returns a Resolver for the project in opts.Dir that queries
// cargo through run. A nil run uses ExecCommand.
func NewResolver(opts deps.Options, run Command) *Resolver {
	opts = opts.WithDefaults()
	if run == nil {
		run = ExecCommand
	}
	return &Resolver{dir: opts.Dir, run: run, logger: opts.Logger}
}

// Name implements deps.Resolver.
func (r *Resolver) Name() string { return "cargo" }

// Metadata returns the project's cargo metadata. The first call runs the
// query with its context; every later or concurrent call gets the same
// result, including a failure.
func (r *Resolver) Metadata(ctx context.Context) (*Metadata, error) {
	r.once.Do(func() {
		start := time.Now()
		r.logger.Debug("running cargo metadata", "dir", r.dir)
		r.meta, r.err = QueryMetadata(ctx, r.run, r.dir)
		if r.err == nil {
			r.logger.Debug("cargo metadata finished",
				"packages", len(r.meta.Packages),
				"duration", time.Since(start).Round(time.Millisecond))
		}
	})
	return r.meta, r.err
}

// PackageDir implements deps.Resolver.
func (r *Resolver) PackageDir(ctx context.Context, dependency string) (string, error) {
	m, err := r.Metadata(ctx)
	if err != nil {
		return "", err
	}
	pkg, err := m.Dependency(dependency)
	if err != nil {
		return "", err
	}
	r.logger.Debug("resolved crate", "name", dependency, "version", pkg.Version, "dir", pkg.Dir())
	return pkg.Dir(), nil
}
