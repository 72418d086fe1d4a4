// Package pipeline assembles the aggregated guidelines document.
//
// A document is described by a plan: an ordered list of [Part]s. Each part
// is fixed text, a file in the project, an optional file that is skipped
// when absent, or a file inside a dependency located through a
// [deps.Resolver]. [Runner.Execute] reads and renders every part
// concurrently, drops the absent and empty ones, and joins the rest in plan
// order with a blank line between parts.
//
// # Usage
//
//	cfg, err := pipeline.LoadConfig(path)
//	runner := pipeline.NewRunner(root, render.Renderer{}, pipeline.Languages, logger)
//	doc, err := runner.Execute(ctx, cfg.Plan())
//
// Plans usually come from a [Config]; [DefaultConfig] reproduces the layout
// the tool was written for.
//
// [deps.Resolver]: github.com/matzehuels/agentsgen/pkg/deps.Resolver
package pipeline

import (
	"fmt"

	"github.com/matzehuels/agentsgen/pkg/deps"
	"github.com/matzehuels/agentsgen/pkg/deps/golang"
	"github.com/matzehuels/agentsgen/pkg/deps/rust"
)

// Languages is the set of dependency ecosystems plans may reference.
var Languages = []*deps.Language{
	rust.Language,
	golang.Language,
}

// Kind identifies what a Part reads.
type Kind string

const (
	KindLiteral      Kind = "literal"
	KindFile         Kind = "file"
	KindOptionalFile Kind = "optional"
	KindDependency   Kind = "dependency"
)

// Part is one block of the assembled document.
type Part struct {
	Kind       Kind
	Text       string // KindLiteral
	Path       string // project-relative path, or the path inside the dependency
	Ecosystem  string // KindDependency
	Dependency string // KindDependency
}

// Literal returns a part containing text verbatim.
func Literal(text string) Part { return Part{Kind: KindLiteral, Text: text} }

// File returns a part for a required project file.
func File(path string) Part { return Part{Kind: KindFile, Path: path} }

// OptionalFile returns a part for a project file that is skipped when it
// does not exist.
func OptionalFile(path string) Part { return Part{Kind: KindOptionalFile, Path: path} }

// DependencyFile returns a part for the file at path inside a dependency.
func DependencyFile(ecosystem, dependency, path string) Part {
	return Part{Kind: KindDependency, Ecosystem: ecosystem, Dependency: dependency, Path: path}
}

// Source describes where the part comes from, for logs and listings.
func (p Part) Source() string {
	switch p.Kind {
	case KindLiteral:
		return fmt.Sprintf("%q", p.Text)
	case KindDependency:
		return fmt.Sprintf("%s:%s/%s", p.Ecosystem, p.Dependency, p.Path)
	default:
		return p.Path
	}
}

// DisplayPath is the label written for a dependency file: "<dependency>/<path>".
func (p Part) DisplayPath() string {
	if p.Kind == KindDependency {
		return p.Dependency + "/" + p.Path
	}
	return p.Path
}
