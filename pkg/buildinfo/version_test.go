package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-01"
	t.Cleanup(func() { Version, Commit, Date = "dev", "none", "unknown" })

	got := Template()
	for _, want := range []string{"{{.Name}} version v1.2.3", "commit: abc123", "built: 2026-01-01"} {
		if !strings.Contains(got, want) {
			t.Errorf("Template() = %q, missing %q", got, want)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("Template() should end with a newline")
	}
}

func TestString(t *testing.T) {
	got := String()
	if !strings.HasPrefix(got, "version: ") {
		t.Errorf("String() = %q, want version prefix", got)
	}
}
