package errors

import (
	"testing"
)

func TestValidateDependencyName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "errgonomic", false},
		{"valid with dash", "serde-json", false},
		{"valid module path", "github.com/spf13/cobra", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"path traversal ..", "foo/../bar", true},
		{"path traversal //", "foo//bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDependencyName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDependencyName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCrateName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"serde", false},
		{"serde_json", false},
		{"tokio-util", false},
		{"1password", true},
		{"github.com/x/y", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateCrateName(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateCrateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateGoModulePath(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"github.com/spf13/cobra", false},
		{"golang.org/x/tools", false},
		{"gopkg.in/yaml.v3", false},
		{"-bad", true},
		{"has space/x", true},
	}

	for _, tt := range tests {
		err := ValidateGoModulePath(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateGoModulePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateRelativePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain file", "DOCS.md", false},
		{"nested", "docs/guide.md", false},
		{"dotfile", ".agents/general.md", false},
		{"dots in name", "notes..md", false},

		{"empty", "", true},
		{"absolute", "/etc/passwd", true},
		{"traversal", "../other/DOCS.md", true},
		{"nested traversal", "docs/../../x.md", true},
		{"control char", "DOCS\x01.md", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRelativePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRelativePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidPath {
				t.Errorf("ValidateRelativePath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}
