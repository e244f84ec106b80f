package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidatePositive validates that a dimensional value is finite and
// strictly positive. The field name is included in the error message.
func ValidatePositive(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return New(ErrCodeInvalidConfig, "%s must be a finite number, got %v", field, value)
	}
	if value <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be positive, got %v", field, value)
	}
	return nil
}

// ValidateNonNegative validates that a dimensional value is finite and
// not negative.
func ValidateNonNegative(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return New(ErrCodeInvalidConfig, "%s must be a finite number, got %v", field, value)
	}
	if value < 0 {
		return New(ErrCodeInvalidConfig, "%s cannot be negative, got %v", field, value)
	}
	return nil
}

// ValidateFinite validates that a value is a finite number. Unlike
// ValidatePositive it allows zero and negative values, which origin
// coordinates legitimately take.
func ValidateFinite(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return New(ErrCodeInvalidConfig, "%s must be a finite number, got %v", field, value)
	}
	return nil
}

// ValidateLayerName validates a stackup layer name for safety and
// correctness before it is embedded in callout text or file output.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateLayerName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidStack, "layer name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidStack, "layer name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidStack, "layer name contains invalid control characters")
		}
	}

	return nil
}

// ValidatePath validates a file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
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

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
