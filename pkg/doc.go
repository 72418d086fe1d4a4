// Package pkg provides the libraries behind agentsgen, which assembles an
// aggregated agent-guidelines Markdown document.
//
// # Overview
//
// A document is built from guideline fragments kept in the project, a
// documentation file shipped inside a dependency, and selected project
// files. Markdown sources are included with their headings shifted down one
// level; everything else is embedded in a fenced code block.
//
// # Architecture
//
// The data flow for one run:
//
//	.agents/agents.toml (or the default layout)
//	         ↓
//	    [pipeline] package (config → plan of parts)
//	         ↓
//	    [deps] package (locate dependency directories via cargo / go/packages)
//	         ↓
//	    [render] and [markdown] packages (fence code, shift headings)
//	         ↓
//	    [pipeline] Runner.Execute (join parts in plan order)
//
// # Quick Start
//
//	cfg := pipeline.DefaultConfig()
//	renderer, _ := cfg.Renderer()
//	runner := pipeline.NewRunner(".", renderer, pipeline.Languages, nil)
//	doc, err := runner.Execute(ctx, cfg.Plan())
//
// # Main Packages
//
// [pipeline] - Config loading, plans and the concurrent assembler.
//
// [deps] - Dependency ecosystems. [deps/rust] queries `cargo metadata` once
// per run and walks the resolve graph; [deps/golang] loads module
// information through golang.org/x/tools/go/packages.
//
// [render] - File rendering: code fences that cannot collide with the
// content, extension to language mapping, and the XML file style.
//
// [markdown] - Heading level shifting on the goldmark AST with byte-range
// edits, so everything but heading markers is preserved exactly.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Hooks for pipeline and dependency resolution events.
//
// [buildinfo] - Version information injected through ldflags.
//
// # Testing
//
//	go test ./...
//
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/agentsgen/pkg/pipeline
// [deps]: https://pkg.go.dev/github.com/matzehuels/agentsgen/pkg/deps
// [deps/rust]: https://pkg.go.dev/github.com/matzehuels/agentsgen/pkg/deps/rust
// [deps/golang]: https://pkg.go.dev/github.com/matzehuels/agentsgen/pkg/deps/golang
// [render]: https://pkg.go.dev/github.com/matzehuels/agentsgen/pkg/render
// [markdown]: https://pkg.go.dev/github.com/matzehuels/agentsgen/pkg/markdown
// [errors]: https://pkg.go.dev/github.com/matzehuels/agentsgen/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/agentsgen/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/agentsgen/pkg/buildinfo
package pkg
