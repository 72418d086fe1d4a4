package render

import (
	"path/filepath"

	"github.com/matzehuels/agentsgen/pkg/errors"
)

// Language is the info string written after an opening code fence.
type Language string

// Supported languages.
const (
	TypeScript Language = "typescript"
	Rust       Language = "rust"
	XML        Language = "xml"
	TOML       Language = "toml"
)

// LanguageFor returns the language of the file at path, judged by its
// extension. Extensions are matched exactly; anything outside the supported
// set is an ErrCodeUnsupportedExtension error naming the extension.
func LanguageFor(path string) (Language, error) {
	ext := filepath.Ext(path)
	switch ext {
	case ".ts":
		return TypeScript, nil
	case ".rs":
		return Rust, nil
	case ".xml":
		return XML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupportedExtension,
			"could not get a language identifier for extension: %q (%s)", ext, path)
	}
}
