package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxNameLength bounds the root name in runes.
const maxNameLength = 256

// ValidateName validates the root display name of a diagram.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters (a newline would break row alignment)
//   - Maximum length of 256 characters
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidName, "name cannot be empty")
	}

	if utf8.RuneCountInString(name) > maxNameLength {
		return New(ErrCodeInvalidName, "name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "name contains invalid control characters")
		}
	}

	return nil
}

// ValidateLabel validates a single level label. Labels follow the same
// control-character rule as names but may be any length.
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidInput, "label cannot be empty")
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label %q contains invalid control characters", label)
		}
	}
	return nil
}
