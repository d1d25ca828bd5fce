package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldChecks(t *testing.T) {
	tests := []struct {
		name    string
		check   func(string) bool
		valid   []string
		invalid []string
	}{
		{
			name:    "email",
			check:   IsValidEmail,
			valid:   []string{"cashier@store.sa", "user.name+1@domain.co", "a@b.cd"},
			invalid: []string{"cashier@", "@store.sa", "x@.com", "x@com", " ", ""},
		},
		{
			name:    "clock",
			check:   IsValidClock,
			valid:   []string{"00:00", "08:15", "23:59"},
			invalid: []string{"24:00", "8:15", "08:60", "0815", ""},
		},
		{
			name:    "date",
			check:   IsValidDate,
			valid:   []string{"2024-02-29", "2000-12-31"},
			invalid: []string{"2023-02-29", "2023-13-01", "2023/01/01", "01-01-2023", ""},
		},
		{
			name:    "month",
			check:   IsValidMonth,
			valid:   []string{"2024-01", "1999-12"},
			invalid: []string{"2024-1", "2024-13", "2024-01-01", ""},
		},
		{
			name:    "iban",
			check:   IsValidIBAN,
			valid:   []string{"SA0380000000608010167519", "sa03 8000 0000 6080 1016 7519"},
			invalid: []string{"", "SA03", "1234567890123456", "SA03-8000-0000"},
		},
		{
			name:    "empty",
			check:   func(s string) bool { return !IsEmpty(s) },
			valid:   []string{"abc", " abc "},
			invalid: []string{"", "   "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.valid {
				assert.True(t, tt.check(s), "%q should pass", s)
			}
			for _, s := range tt.invalid {
				assert.False(t, tt.check(s), "%q should fail", s)
			}
		})
	}
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"present", "late", "absent"}
	assert.True(t, IsInSlice("late", statuses))
	assert.False(t, IsInSlice("Late", statuses))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "clock_in", Message: "must be HH:MM"},
		{Field: "date", Message: "is required"},
	}

	assert.Equal(t, "clock_in: must be HH:MM; date: is required", errs.Error())
	assert.Equal(t, map[string]string{"clock_in": "must be HH:MM", "date": "is required"}, errs.ToMap())
}
