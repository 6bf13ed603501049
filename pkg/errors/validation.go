package errors

import (
	"strings"
	"unicode"
)

// ValidateLabel validates a user-supplied electrode label string before it
// reaches the resolver. It rejects obviously malformed input early; whether
// the label actually names an electrode is decided by the montage layer.
//
// The validation rules are intentionally conservative:
//   - No empty labels
//   - No control characters or null bytes
//   - No whitespace
//   - Maximum length of 16 characters
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidInput, "electrode label cannot be empty")
	}

	if len(label) > 16 {
		return New(ErrCodeInvalidInput, "electrode label too long (max 16 characters): %q", label)
	}

	for _, r := range label {
		if unicode.IsControl(r) || r == '\x00' {
			return New(ErrCodeInvalidInput, "electrode label contains invalid control characters")
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "electrode label cannot contain whitespace: %q", label)
		}
	}

	return nil
}

// ValidateLabels validates every label in a selection list.
func ValidateLabels(labels []string) error {
	for _, l := range labels {
		if err := ValidateLabel(l); err != nil {
			return err
		}
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
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

	return nil
}

// ValidatePrecision validates a decimal precision for tabular export.
func ValidatePrecision(p int) error {
	if p < 0 || p > 17 {
		return New(ErrCodeInvalidInput, "precision must be between 0 and 17, got %d", p)
	}
	return nil
}

// ValidateFormat validates an export format name against the supported set.
func ValidateFormat(format string, supported ...string) error {
	for _, s := range supported {
		if strings.EqualFold(format, s) {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (supported: %s)", format, strings.Join(supported, ", "))
}
