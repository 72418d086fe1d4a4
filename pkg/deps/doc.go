// Package deps locates the source trees of a project's dependencies.
//
// # Overview
//
// agentsgen can embed documentation that ships inside a dependency (for
// example a crate's DOCS.md). Finding that file means asking the project's
// build system where the dependency lives on disk, which is what a
// [Resolver] does.
//
// Each supported ecosystem is described by a [Language]:
//
//   - rust ([github.com/matzehuels/agentsgen/pkg/deps/rust]): cargo metadata
//   - go ([github.com/matzehuels/agentsgen/pkg/deps/golang]): go/packages
//
// # Usage
//
//	lang, err := deps.Find(languages, "cargo")
//	res := lang.Resolver(deps.Options{Dir: root, Logger: logger})
//	dir, err := res.PackageDir(ctx, "errgonomic")
//
// Resolvers are safe for concurrent use and query the build system at most
// once; create one per run and share it.
package deps
