// Package render turns source files into Markdown blocks for the aggregated
// guidelines document.
//
// Markdown files are nested one heading level deeper (see
// [markdown.ShiftHeadings]); every other supported file becomes a level-3
// heading naming the file followed by a fenced code block:
//
//	### Cargo.toml
//
//	```toml
//	[package]
//	name = "demo"
//	```
//
// The fence is chosen by [Fence] so it can never be closed early by backticks
// inside the file, and the info string comes from the closed [Language] set.
//
// [markdown.ShiftHeadings]: github.com/matzehuels/agentsgen/pkg/markdown.ShiftHeadings
package render
