// Package markdown rewrites Markdown documents so they can be nested inside a
// larger document.
//
// Documents are parsed with goldmark to find the constructs that need to
// change, but the output is never re-rendered: changes are expressed as
// byte-range [Edit]s against the original source and applied with
// [ApplyEdits]. Everything the rewrite does not target (emphasis style, list
// markers, tables, link definitions, code blocks) survives byte for byte.
//
// # Heading Shift
//
// [ShiftHeadings] increases every heading level by a fixed amount:
//
//	out, err := markdown.ShiftHeadings([]byte("# Title\n\nBody\n"), 1)
//	// out == "## Title\n\nBody"
//
// Levels saturate at [MaxHeadingLevel]. Setext headings ("Title\n=====")
// are kept as setext where CommonMark allows it and converted to ATX
// headings otherwise.
package markdown
