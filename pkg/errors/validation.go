package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateColumnName validates a column name supplied on the command line or
// in a config file (drop list, group column).
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters (a tab would split the header)
//   - Maximum length of 256 characters
func ValidateColumnName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "column name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "column name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "column name %q contains control characters", name)
		}
	}

	return nil
}

// ValidatePrefix validates the measurement column prefix.
// An empty prefix would match every column, including identifiers.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return New(ErrCodeSchema, "measurement prefix cannot be empty")
	}
	for _, r := range prefix {
		if unicode.IsControl(r) {
			return New(ErrCodeSchema, "measurement prefix %q contains control characters", prefix)
		}
	}
	return nil
}

// ValidateOutputPath validates an output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	return nil
}

// ValidateDPI checks that a resolution is in a range image viewers accept.
func ValidateDPI(dpi int) error {
	if dpi < 10 || dpi > 1200 {
		return New(ErrCodeInvalidInput, "dpi %d out of range (10-1200)", dpi)
	}
	return nil
}

// ValidateDimension checks an image dimension in inches.
func ValidateDimension(name string, inches float64) error {
	if !(inches > 0) || inches > 100 {
		return New(ErrCodeInvalidInput, "%s %.2f out of range (0-100 inches)", name, inches)
	}
	return nil
}
