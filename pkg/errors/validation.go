package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// ValidateLabel validates a record or category label.
// Labels end up in SVG text nodes and HTML, so the rules are conservative:
//   - No empty labels
//   - No control characters
//   - Maximum length of 128 characters
func ValidateLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return New(ErrCodeInvalidRecord, "label cannot be empty")
	}

	if len(label) > 128 {
		return New(ErrCodeInvalidRecord, "label too long (max 128 characters): %.20q", label)
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidRecord, "label %q contains control characters", label)
		}
	}

	return nil
}

// ValidateFinite rejects NaN and infinite values for the named field.
func ValidateFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidRecord, "field %q is not a finite number", field)
	}
	return nil
}

// hexColorRegex matches #rgb and #rrggbb colors.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor validates a hex color such as "#22c55e".
// An empty color is allowed and means "use the theme default".
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidInput, "invalid color %q (want #rgb or #rrggbb)", color)
	}
	return nil
}

// ValidateOutputPath validates a file path the CLI is asked to write.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No backslashes (Windows-style paths)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
