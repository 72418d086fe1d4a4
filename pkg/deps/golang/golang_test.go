package golang

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"golang.org/x/tools/go/packages"

	"github.com/matzehuels/agentsgen/pkg/deps"
	"github.com/matzehuels/agentsgen/pkg/errors"
)

func fakeLoad(calls *atomic.Int32, byPattern map[string]*packages.Package) LoadFunc {
	return func(cfg *packages.Config, patterns ...string) ([]*packages.Package, error) {
		calls.Add(1)
		if cfg.Mode&packages.NeedModule == 0 {
			return nil, fmt.Errorf("NeedModule not requested")
		}
		pkg, ok := byPattern[patterns[0]]
		if !ok {
			return nil, nil
		}
		return []*packages.Package{pkg}, nil
	}
}

func TestResolverPackageDir(t *testing.T) {
	var calls atomic.Int32
	r := NewResolver(deps.Options{Dir: "/work/app"}, fakeLoad(&calls, map[string]*packages.Package{
		"github.com/spf13/cobra": {
			PkgPath: "github.com/spf13/cobra",
			Module:  &packages.Module{Path: "github.com/spf13/cobra", Version: "v1.10.1", Dir: "/gomod/github.com/spf13/cobra@v1.10.1"},
		},
		"example.com/local": {
			PkgPath: "example.com/local",
			Module: &packages.Module{
				Path:    "example.com/local",
				Dir:     "/ignored",
				Replace: &packages.Module{Path: "../local", Dir: "/work/local"},
			},
		},
	}))

	tests := []struct {
		dep  string
		want string
	}{
		{"github.com/spf13/cobra", "/gomod/github.com/spf13/cobra@v1.10.1"},
		{"example.com/local", "/work/local"},
	}
	for _, tt := range tests {
		got, err := r.PackageDir(context.Background(), tt.dep)
		if err != nil {
			t.Fatalf("PackageDir(%q) error = %v", tt.dep, err)
		}
		if got != tt.want {
			t.Errorf("PackageDir(%q) = %q, want %q", tt.dep, got, tt.want)
		}
	}
}

func TestResolverErrors(t *testing.T) {
	var calls atomic.Int32
	r := NewResolver(deps.Options{}, fakeLoad(&calls, map[string]*packages.Package{
		"example.com/app":      {Module: &packages.Module{Path: "example.com/app", Main: true, Dir: "/work/app"}},
		"example.com/indirect": {Module: &packages.Module{Path: "example.com/indirect", Indirect: true, Dir: "/x"}},
		"example.com/nomodule": {PkgPath: "example.com/nomodule"},
		"example.com/nodir":    {Module: &packages.Module{Path: "example.com/nodir", Version: "v1.0.0"}},
		"example.com/broken":   {Errors: []packages.Error{{Msg: "no required module provides package"}}},
	}))

	tests := []struct {
		dep  string
		code errors.Code
	}{
		{"example.com/missing", errors.ErrCodeDependencyNotFound},
		{"example.com/app", errors.ErrCodeDependencyNotFound},
		{"example.com/indirect", errors.ErrCodeDependencyNotFound},
		{"example.com/nomodule", errors.ErrCodePackageNotFound},
		{"example.com/nodir", errors.ErrCodePackageNotFound},
		{"example.com/broken", errors.ErrCodeDependencyNotFound},
	}
	for _, tt := range tests {
		_, err := r.PackageDir(context.Background(), tt.dep)
		if got := errors.GetCode(err); got != tt.code {
			t.Errorf("PackageDir(%q) code = %v (%v), want %v", tt.dep, got, err, tt.code)
		}
	}
}

func TestResolverLoadFailure(t *testing.T) {
	r := NewResolver(deps.Options{}, func(cfg *packages.Config, patterns ...string) ([]*packages.Package, error) {
		return nil, fmt.Errorf("go command not found")
	})
	_, err := r.PackageDir(context.Background(), "example.com/x")
	if !errors.Is(err, errors.ErrCodeMetadataQuery) {
		t.Errorf("error = %v, want %v", err, errors.ErrCodeMetadataQuery)
	}
}

func TestResolverMemoizes(t *testing.T) {
	var calls atomic.Int32
	r := NewResolver(deps.Options{}, fakeLoad(&calls, map[string]*packages.Package{
		"example.com/dep": {Module: &packages.Module{Path: "example.com/dep", Dir: "/gomod/dep"}},
	}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.PackageDir(context.Background(), "example.com/dep"); err != nil {
				t.Errorf("PackageDir() error = %v", err)
			}
		}()
	}
	wg.Wait()
	if _, err := r.PackageDir(context.Background(), "example.com/dep"); err != nil {
		t.Fatal(err)
	}

	if got := calls.Load(); got != 1 {
		t.Errorf("load called %d times, want 1", got)
	}
}
