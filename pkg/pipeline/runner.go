package pipeline

import (
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/agentsgen/pkg/deps"
	"github.com/matzehuels/agentsgen/pkg/errors"
	"github.com/matzehuels/agentsgen/pkg/observability"
	"github.com/matzehuels/agentsgen/pkg/render"
)

// PartSeparator is written between consecutive parts.
const PartSeparator = "\n\n"

// Runner assembles documents for one project. Dependency resolvers are
// created on first use and shared by every part of every run, so each
// ecosystem's build system is queried at most once per Runner.
type Runner struct {
	Root      string
	Renderer  render.Renderer
	Languages []*deps.Language
	Logger    *log.Logger

	mu        sync.Mutex
	resolvers map[string]deps.Resolver
}

// NewRunner returns a Runner for the project at root. A nil logger discards
// output.
func NewRunner(root string, renderer render.Renderer, langs []*deps.Language, logger *log.Logger) *Runner {
	if root == "" {
		root = "."
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		Root:      root,
		Renderer:  renderer,
		Languages: langs,
		Logger:    logger,
		resolvers: make(map[string]deps.Resolver),
	}
}

// SetResolver installs res for ecosystem, replacing the one the matching
// Language would create.
func (r *Runner) SetResolver(ecosystem string, res deps.Resolver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolvers[strings.ToLower(ecosystem)] = res
}

// Resolver returns the resolver for ecosystem, creating it on first use.
func (r *Runner) Resolver(ecosystem string) (deps.Resolver, error) {
	key := strings.ToLower(ecosystem)
	r.mu.Lock()
	defer r.mu.Unlock()
	if res, ok := r.resolvers[key]; ok {
		return res, nil
	}
	lang, err := deps.Find(r.Languages, ecosystem)
	if err != nil {
		return nil, err
	}
	// Aliases share one resolver.
	if res, ok := r.resolvers[lang.Name]; ok {
		r.resolvers[key] = res
		return res, nil
	}
	res := lang.Resolver(deps.Options{Dir: r.Root, Logger: r.Logger})
	r.resolvers[lang.Name] = res
	r.resolvers[key] = res
	return res, nil
}

// Execute produces every part of plan concurrently and joins the included
// ones in plan order. Absent optional files and parts that render empty are
// left out. The first failure aborts the run.
func (r *Runner) Execute(ctx context.Context, plan []Part) ([]byte, error) {
	start := time.Now()
	hooks := observability.Pipeline()
	hooks.OnRunStart(ctx, len(plan))
	r.Logger.Debug("assembling document", "root", r.Root, "parts", len(plan))

	rendered := make([]string, len(plan))
	g, gctx := errgroup.WithContext(ctx)
	for i, part := range plan {
		i, part := i, part
		g.Go(func() error {
			partStart := time.Now()
			text, ok, err := r.produce(gctx, part)
			included := ok && text != ""
			hooks.OnPartComplete(ctx, string(part.Kind), part.Source(), included, time.Since(partStart), err)
			if err != nil {
				return err
			}
			if included {
				rendered[i] = text
			} else {
				r.Logger.Debug("skipping part", "source", part.Source())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		hooks.OnRunComplete(ctx, 0, time.Since(start), err)
		return nil, err
	}

	doc := Join(rendered)
	hooks.OnRunComplete(ctx, len(doc), time.Since(start), nil)
	r.Logger.Debug("assembled document", "bytes", len(doc), "duration", time.Since(start))
	return doc, nil
}

// Join concatenates the non-empty parts with PartSeparator and ends the
// document with a single newline.
func Join(parts []string) []byte {
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(PartSeparator)
		}
		b.WriteString(p)
	}
	b.WriteByte('\n')
	return []byte(b.String())
}

// produce renders one part. ok is false when the part is absent.
func (r *Runner) produce(ctx context.Context, part Part) (string, bool, error) {
	switch part.Kind {
	case KindLiteral:
		return part.Text, true, nil
	case KindFile:
		text, err := r.projectFile(part.Path)
		return text, err == nil, err
	case KindOptionalFile:
		text, err := r.projectFile(part.Path)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return "", false, nil
			}
			return "", false, err
		}
		return text, true, nil
	case KindDependency:
		text, err := r.dependencyFile(ctx, part)
		return text, err == nil, err
	default:
		return "", false, errors.New(errors.ErrCodeInternal, "unknown part kind %q", part.Kind)
	}
}

func (r *Runner) projectFile(path string) (string, error) {
	data, err := readFile(filepath.Join(r.Root, path))
	if err != nil {
		return "", err
	}
	return r.Renderer.File(path, string(data), "")
}

func (r *Runner) dependencyFile(ctx context.Context, part Part) (string, error) {
	res, err := r.Resolver(part.Ecosystem)
	if err != nil {
		return "", err
	}

	start := time.Now()
	dir, err := res.PackageDir(ctx, part.Dependency)
	observability.Dependency().OnResolve(ctx, res.Name(), part.Dependency, dir, time.Since(start), err)
	if err != nil {
		return "", err
	}
	r.Logger.Debug("resolved dependency", "ecosystem", res.Name(), "name", part.Dependency, "dir", dir)

	data, err := readFile(filepath.Join(dir, part.Path))
	if err != nil {
		return "", err
	}
	return r.Renderer.File(part.Path, string(data), part.DisplayPath())
}

// readFile wraps read failures in coded errors that still match
// fs.ErrNotExist.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFile(err, "read %s", path)
	}
	return data, nil
}
