package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ValidationError represents a single field validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var messages []string
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// ToMap converts validation errors to a map keyed by field name.
func (e ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(e))
	for _, err := range e {
		result[err.Field] = err.Message
	}
	return result
}

var slugRegex = regexp.MustCompile(`^[a-z0-9_-]+$`)

// IsEmpty checks whether a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidDate checks whether a string is a valid ISO date (YYYY-MM-DD).
func IsValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsValidMonth checks whether a string is a valid ISO month (YYYY-MM).
func IsValidMonth(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}

// IsValidSlug checks whether a string is a lowercase identifier made of
// letters, digits, underscores and hyphens. Product IDs use this form so
// they stay safe as file names.
func IsValidSlug(s string) bool {
	return slugRegex.MatchString(s)
}

// SanitizeSlug lowercases a string and strips every character outside the
// slug alphabet.
func SanitizeSlug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsInSlice checks whether a value is present in a slice.
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
