package markdown

import (
	"errors"
	"fmt"
	"slices"
)

// Edit is a byte-range replacement against an original source.
//
// Start and End are byte offsets into the source with End exclusive;
// Replacement replaces source[Start:End].
type Edit struct {
	Start       int
	End         int
	Replacement []byte
}

// ApplyEdits applies non-overlapping edits to source and returns the result.
// The source slice is not modified. Edits may be given in any order; all
// offsets refer to the original source.
func ApplyEdits(source []byte, edits []Edit) ([]byte, error) {
	if len(edits) == 0 {
		return source, nil
	}

	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b Edit) int {
		return a.Start - b.Start
	})

	size := len(source)
	for i, e := range sorted {
		if e.Start < 0 || e.End < 0 {
			return nil, fmt.Errorf("invalid edit[%d]: negative range", i)
		}
		if e.End < e.Start {
			return nil, fmt.Errorf("invalid edit[%d]: end before start", i)
		}
		if e.End > len(source) {
			return nil, fmt.Errorf("invalid edit[%d]: range out of bounds", i)
		}
		if i > 0 && e.Start < sorted[i-1].End {
			return nil, errors.New("invalid edits: overlapping ranges")
		}
		size += len(e.Replacement) - (e.End - e.Start)
	}

	out := make([]byte, 0, size)
	pos := 0
	for _, e := range sorted {
		out = append(out, source[pos:e.Start]...)
		out = append(out, e.Replacement...)
		pos = e.End
	}
	out = append(out, source[pos:]...)
	return out, nil
}
