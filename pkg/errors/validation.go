package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// ValidateDependencyName validates a dependency name taken from a config file.
//
// The name is only ever compared against the build system's dependency graph,
// but it also ends up in display paths, so control characters and path
// traversal sequences are rejected.
func ValidateDependencyName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "dependency name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidConfig, "dependency name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "dependency name contains invalid control characters")
		}
	}

	for _, pattern := range []string{"..", "//", "\\"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidConfig, "dependency name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// cratesPackageNameRegex matches valid crates.io package names.
var cratesPackageNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// ValidateCrateName validates a crates.io package name.
func ValidateCrateName(name string) error {
	if err := ValidateDependencyName(name); err != nil {
		return err
	}

	if !cratesPackageNameRegex.MatchString(name) {
		return New(ErrCodeInvalidConfig, "invalid crate name: %q", name)
	}

	return nil
}

// goModulePathRegex matches valid Go module paths.
var goModulePathRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._/~-]*$`)

// ValidateGoModulePath validates a Go module path.
func ValidateGoModulePath(path string) error {
	if err := ValidateDependencyName(path); err != nil {
		return err
	}

	if !goModulePathRegex.MatchString(path) {
		return New(ErrCodeInvalidConfig, "invalid Go module path: %q", path)
	}

	return nil
}

// ValidateRelativePath validates a path that is joined onto a directory the
// user does not control, such as a dependency's source root.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - No absolute paths
//   - No ".." elements
func ValidateRelativePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative: %q", path)
	}

	for _, elem := range strings.Split(filepath.ToSlash(path), "/") {
		if elem == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..): %q", path)
		}
	}

	return nil
}
