package cli

import (
	"bytes"
	"io"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/matzehuels/agentsgen/pkg/errors"
)

// checkOutput compares doc with the file at path. When they differ it
// prints a unified diff to w and returns an OUT_OF_DATE error.
func checkOutput(w io.Writer, path string, doc []byte) error {
	current, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return errors.WrapFile(err, "read %s", path)
	}
	if bytes.Equal(current, doc) {
		printSuccess(w, "%s is up to date", StyleValue.Render(path))
		return nil
	}

	diff, err := unifiedDiff(path, string(current), string(doc))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "diff %s", path)
	}
	io.WriteString(w, diff)
	return errors.New(errors.ErrCodeOutOfDate, "%s is out of date; rerun without --check to update it", path)
}

// unifiedDiff returns the diff turning current into want, with three lines
// of context.
func unifiedDiff(path, current, want string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(current),
		B:        difflib.SplitLines(want),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
	})
}
