// Package rust locates Rust crate dependencies through Cargo.
//
// # Overview
//
// [Resolver] implements [deps.Resolver] on top of
//
//	cargo metadata --format-version=1
//
// run from the project root. The command's JSON output ([Metadata]) lists
// every package in the build and the resolve graph; a dependency's directory
// is the parent of its manifest_path. The command runs at most once per
// Resolver, however many dependencies are looked up and however many
// goroutines ask concurrently.
//
// # Manifest
//
// [ReadManifest] decodes the project's own Cargo.toml, which is used for
// display and to warn about configured dependencies that the manifest does
// not declare.
//
// [deps.Resolver]: github.com/matzehuels/agentsgen/pkg/deps.Resolver
package rust
