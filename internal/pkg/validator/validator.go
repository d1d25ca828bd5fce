package validator

import (
	"regexp"
	"strings"

	"github.com/cmlabs-hris/retail-hr/internal/pkg/timeutil"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Clock validation, "HH:MM" 24h
func IsValidClock(s string) bool {
	return timeutil.ValidClock(s)
}

// Date validation, "YYYY-MM-DD"
func IsValidDate(s string) bool {
	return timeutil.ValidDate(s)
}

// Month validation, "YYYY-MM"
func IsValidMonth(s string) bool {
	return timeutil.ValidMonth(s)
}

var ibanRegex = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{10,30}$`)

// IBAN shape check. Spaces are ignored; the checksum is not verified.
func IsValidIBAN(iban string) bool {
	return ibanRegex.MatchString(strings.ToUpper(strings.ReplaceAll(iban, " ", "")))
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
