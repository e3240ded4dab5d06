package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxFilterValueLength bounds a single --accounts or --regions entry.
const maxFilterValueLength = 64

// ValidateFilterValue checks a single account id or region passed on the
// command line. Values are matched verbatim against export data, so anything
// containing whitespace or control characters can never match and is almost
// certainly a quoting mistake.
func ValidateFilterValue(kind, value string) error {
	if value == "" {
		return New(ErrCodeInvalidInput, "%s cannot be empty", kind)
	}
	if len(value) > maxFilterValueLength {
		return New(ErrCodeInvalidInput, "%s too long (max %d characters): %q", kind, maxFilterValueLength, value)
	}
	for _, r := range value {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "%s contains invalid characters: %q", kind, value)
		}
	}
	return nil
}

// ValidateOutputPath validates the report destination.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path must be a file, got directory %q", path)
	}
	return nil
}
