package errors

import (
	"strings"
	"unicode"
)

// ValidateDocumentID validates a document identifier for safety and
// correctness. IDs end up in file paths (file store) and database keys, so
// the rules are intentionally conservative:
//   - No empty IDs
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateDocumentID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "document ID cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "document ID too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "document ID contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidInput, "document ID contains invalid characters: %q", pattern)
		}
	}

	return nil
}
