package middleware

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Input validation and sanitization utilities

// MaxRequirementLen caps requirement text. The analyzer is linear in
// input length, so this bounds per-request work.
const MaxRequirementLen = 10000

// ValidateRequirement rejects blank/whitespace-only or oversized
// requirement text before it reaches the analyzer.
func ValidateRequirement(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("please enter a business requirement to analyze")
	}
	if utf8.RuneCountInString(text) > MaxRequirementLen {
		return fmt.Errorf("requirement too long (max %d characters)", MaxRequirementLen)
	}
	return nil
}

var exampleIDRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// ValidateExampleID validates example catalog IDs
func ValidateExampleID(id string) error {
	if id == "" {
		return fmt.Errorf("example ID cannot be empty")
	}
	if !exampleIDRe.MatchString(id) {
		return fmt.Errorf("invalid example ID format (alphanumeric, dash, underscore only, max 64 chars)")
	}
	return nil
}
