package markdown

import (
	"bytes"
	"fmt"
	"regexp"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MaxHeadingLevel is the deepest heading level Markdown can express.
const MaxHeadingLevel = 6

// ShiftHeadings returns src with every heading level increased by `by`,
// saturating at MaxHeadingLevel. Trailing whitespace is trimmed from the
// result. A negative shift is rejected.
func ShiftHeadings(src []byte, by int) ([]byte, error) {
	if by < 0 {
		return nil, fmt.Errorf("heading shift must not be negative: %d", by)
	}

	var edits []Edit
	if by > 0 {
		root := goldmark.New().Parser().Parse(text.NewReader(src))
		// cursor is the end of the last block content seen, in document
		// order. Empty ATX headings carry no segment and are located in the
		// source after it.
		cursor := 0
		err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering || n.Type() != ast.TypeBlock {
				return ast.WalkContinue, nil
			}
			if h, ok := n.(*ast.Heading); ok {
				level := min(h.Level+by, MaxHeadingLevel)
				if h.Lines().Len() == 0 {
					if e, next, ok := emptyHeadingEdit(src, cursor, level); ok {
						edits = append(edits, e...)
						cursor = next
					}
					return ast.WalkSkipChildren, nil
				}
				edits = append(edits, headingEdits(src, h, level)...)
			}
			if lines := n.Lines(); lines.Len() > 0 {
				cursor = max(cursor, lines.At(lines.Len()-1).Stop)
			}
			if _, ok := n.(*ast.Heading); ok {
				return ast.WalkSkipChildren, nil
			}
			return ast.WalkContinue, nil
		})
		if err != nil {
			return nil, err
		}
	}

	out, err := ApplyEdits(src, edits)
	if err != nil {
		return nil, err
	}
	return bytes.TrimRightFunc(out, unicode.IsSpace), nil
}

// headingEdits returns the edits that turn h into a heading of the given level.
func headingEdits(src []byte, h *ast.Heading, level int) []Edit {
	if level == h.Level {
		return nil
	}
	lines := h.Lines()
	first := lines.At(0)
	if start, end, ok := atxMarker(src, first.Start); ok {
		return []Edit{{Start: start, End: end, Replacement: bytes.Repeat([]byte("#"), level)}}
	}
	return setextEdits(src, lines, level)
}

// atxMarker finds the run of '#' that opens the ATX heading whose content
// starts at pos. ok is false when the heading is a setext heading.
func atxMarker(src []byte, pos int) (start, end int, ok bool) {
	i := pos - 1
	for i >= 0 && (src[i] == ' ' || src[i] == '\t') {
		i--
	}
	end = i + 1
	for i >= 0 && src[i] == '#' {
		i--
	}
	start = i + 1
	if n := end - start; n < 1 || n > MaxHeadingLevel {
		return 0, 0, false
	}
	return start, end, true
}

// setextEdits rewrites a setext heading. Level 2 keeps the setext form with a
// '-' underline; deeper levels have no setext form and become ATX headings.
func setextEdits(src []byte, lines *text.Segments, level int) []Edit {
	underStart := lines.At(lines.Len() - 1).Stop
	if underStart == 0 || src[underStart-1] != '\n' {
		i := bytes.IndexByte(src[underStart:], '\n')
		if i < 0 {
			return nil
		}
		underStart += i + 1
	}
	underEnd := len(src)
	if i := bytes.IndexByte(src[underStart:], '\n'); i >= 0 {
		underEnd = underStart + i
	}
	if underEnd > underStart && src[underEnd-1] == '\r' {
		underEnd--
	}

	if level == 2 {
		underline := bytes.ReplaceAll(src[underStart:underEnd], []byte("="), []byte("-"))
		return []Edit{{Start: underStart, End: underEnd, Replacement: underline}}
	}

	parts := make([][]byte, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		parts = append(parts, bytes.TrimSpace(seg.Value(src)))
	}
	heading := append(bytes.Repeat([]byte("#"), level), ' ')
	heading = append(heading, bytes.Join(parts, []byte(" "))...)
	return []Edit{{Start: lines.At(0).Start, End: underEnd, Replacement: heading}}
}

// emptyATXLine matches a line holding an ATX heading with no content, such
// as "##" or "## ##", optionally inside block quotes or list items. Group 1
// is the opening '#' run.
var emptyATXLine = regexp.MustCompile(`^(?:[ \t]*(?:>[ \t]?|(?:[-+*]|\d{1,9}[.)])[ \t]+))*[ \t]*(#{1,6})(?:[ \t]+#*)?[ \t]*\r?$`)

// emptyHeadingEdit finds the first empty ATX heading line starting at or
// after from and returns the edit setting it to level, plus the offset just
// past that line.
func emptyHeadingEdit(src []byte, from, level int) ([]Edit, int, bool) {
	pos := from
	if pos > 0 && src[pos-1] != '\n' {
		i := bytes.IndexByte(src[pos:], '\n')
		if i < 0 {
			return nil, 0, false
		}
		pos += i + 1
	}
	for pos < len(src) {
		end := len(src)
		next := len(src)
		if i := bytes.IndexByte(src[pos:], '\n'); i >= 0 {
			end = pos + i
			next = end + 1
		}
		if m := emptyATXLine.FindSubmatchIndex(src[pos:end]); m != nil {
			start, stop := pos+m[2], pos+m[3]
			if stop-start == level {
				return nil, next, true
			}
			return []Edit{{Start: start, End: stop, Replacement: bytes.Repeat([]byte("#"), level)}}, next, true
		}
		pos = next
	}
	return nil, 0, false
}
