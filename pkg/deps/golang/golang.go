// Package golang locates Go module dependencies through go/packages.
//
// A dependency is named by a package path inside it (usually the module
// path itself). The package is loaded from the project root with the same
// build list `go build` would use, and its module's directory in the module
// cache (or the target of a local replace directive) is the dependency root.
package golang

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"
	"golang.org/x/tools/go/packages"

	"github.com/matzehuels/agentsgen/pkg/deps"
	"github.com/matzehuels/agentsgen/pkg/errors"
)

// Language resolves Go modules through go/packages.
var Language = &deps.Language{
	Name:         "go",
	Aliases:      []string{"golang", "gomod"},
	ValidateName: errors.ValidateGoModulePath,
	NewResolver: func(opts deps.Options) deps.Resolver {
		return NewResolver(opts, nil)
	},
}

// LoadFunc loads packages; packages.Load in production.
type LoadFunc func(cfg *packages.Config, patterns ...string) ([]*packages.Package, error)

// Resolver finds module directories. Each dependency is loaded once; lookups
// are safe for concurrent use.
type Resolver struct {
	dir    string
	load   LoadFunc
	logger *log.Logger

	group singleflight.Group
	mu    sync.Mutex
	dirs  map[string]string
}

// NewResolver returns a Resolver for the module in opts.Dir. A nil load uses
// packages.Load.
func NewResolver(opts deps.Options, load LoadFunc) *Resolver {
	opts = opts.WithDefaults()
	if load == nil {
		load = packages.Load
	}
	return &Resolver{
		dir:    opts.Dir,
		load:   load,
		logger: opts.Logger,
		dirs:   make(map[string]string),
	}
}

// Name implements deps.Resolver.
func (r *Resolver) Name() string { return "go" }

// PackageDir implements deps.Resolver.
func (r *Resolver) PackageDir(ctx context.Context, dependency string) (string, error) {
	r.mu.Lock()
	dir, ok := r.dirs[dependency]
	r.mu.Unlock()
	if ok {
		return dir, nil
	}

	v, err, _ := r.group.Do(dependency, func() (any, error) {
		r.mu.Lock()
		dir, ok := r.dirs[dependency]
		r.mu.Unlock()
		if ok {
			return dir, nil
		}
		dir, err := r.moduleDir(ctx, dependency)
		if err != nil {
			return "", err
		}
		r.mu.Lock()
		r.dirs[dependency] = dir
		r.mu.Unlock()
		return dir, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (r *Resolver) moduleDir(ctx context.Context, dependency string) (string, error) {
	cfg := &packages.Config{
		Context: ctx,
		Dir:     r.dir,
		Mode:    packages.NeedName | packages.NeedModule,
	}
	r.logger.Debug("loading go package", "pattern", dependency, "dir", r.dir)
	pkgs, err := r.load(cfg, dependency)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeMetadataQuery, err, "go/packages load %s failed", dependency)
	}
	if len(pkgs) == 0 {
		return "", errors.New(errors.ErrCodeDependencyNotFound, "go dependency not found: '%s'", dependency)
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return "", errors.Wrap(errors.ErrCodeDependencyNotFound, pkg.Errors[0], "go dependency not found: '%s'", dependency)
	}
	mod := pkg.Module
	if mod == nil {
		return "", errors.New(errors.ErrCodePackageNotFound, "go module not found for dependency: '%s'", dependency)
	}
	if mod.Main {
		return "", errors.New(errors.ErrCodeDependencyNotFound, "'%s' belongs to the main module, not a dependency", dependency)
	}
	if mod.Indirect {
		return "", errors.New(errors.ErrCodeDependencyNotFound, "go dependency '%s' is not a direct dependency", dependency)
	}

	dir := mod.Dir
	if mod.Replace != nil && mod.Replace.Dir != "" {
		dir = mod.Replace.Dir
	}
	if dir == "" {
		return "", errors.New(errors.ErrCodePackageNotFound, "go module %s@%s has no directory (not downloaded?)", mod.Path, mod.Version)
	}
	r.logger.Debug("resolved go module", "path", mod.Path, "version", mod.Version, "dir", dir)
	return dir, nil
}
