package render

import (
	"strings"
	"unicode"

	"github.com/matzehuels/agentsgen/pkg/errors"
	"github.com/matzehuels/agentsgen/pkg/markdown"
)

// Style selects how non-Markdown files are embedded.
type Style string

const (
	// StyleFence renders a "### path" heading followed by a fenced code block.
	StyleFence Style = "fence"
	// StyleXML wraps the file in <file><path/><contents/></file> elements.
	StyleXML Style = "xml"
)

// DefaultStyle is used when no style is configured.
const DefaultStyle = StyleFence

// ParseStyle validates a style name. The empty string yields DefaultStyle.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case "":
		return DefaultStyle, nil
	case StyleFence, StyleXML:
		return Style(s), nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown style %q (want %q or %q)", s, StyleFence, StyleXML)
	}
}

// IsMarkdown reports whether path names a Markdown file (".md", any case).
func IsMarkdown(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".md")
}

// Renderer renders file contents into Markdown blocks.
// The zero value renders code files in DefaultStyle.
type Renderer struct {
	Style Style
}

// File renders contents read from path.
//
// path selects the rendering (Markdown vs. code, and the code language);
// display is the label written into the output and defaults to path. This
// split lets a file inside a dependency be labelled "dep/DOCS.md" while being
// dispatched on "DOCS.md".
func (r Renderer) File(path, contents, display string) (string, error) {
	if IsMarkdown(path) {
		out, err := markdown.ShiftHeadings([]byte(contents), 1)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "shift headings in %s", path)
		}
		return string(out), nil
	}

	lang, err := LanguageFor(path)
	if err != nil {
		return "", err
	}
	if display == "" {
		display = path
	}
	trimmed := strings.TrimRightFunc(contents, unicode.IsSpace)

	if r.Style == StyleXML {
		return xmlFile(display, trimmed), nil
	}
	return CodeBlock(display, lang, trimmed), nil
}

// CodeBlock renders a "### label" heading and a fenced block of body.
func CodeBlock(label string, lang Language, body string) string {
	fence := Fence(body)
	var b strings.Builder
	b.WriteString("### ")
	b.WriteString(label)
	b.WriteString("\n\n")
	b.WriteString(fence)
	b.WriteString(string(lang))
	b.WriteByte('\n')
	b.WriteString(body)
	b.WriteByte('\n')
	b.WriteString(fence)
	return b.String()
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// xmlFile renders a file as unindented XML. Newlines are kept literal, which
// encoding/xml would escape.
func xmlFile(path, contents string) string {
	return "<file><path>" + xmlEscaper.Replace(path) + "</path><contents>\n" +
		xmlEscaper.Replace(contents) + "\n</contents></file>"
}
