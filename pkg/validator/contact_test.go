package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ticketbay/formkit/pkg/validator"
)

func TestName(t *testing.T) {
	t.Run("accepts and normalises valid names", func(t *testing.T) {
		tests := []struct {
			input    string
			expected string
		}{
			{"John Doe", "John Doe"},
			{"  John   Doe  ", "John Doe"},
			{"Ana María Peña", "Ana María Peña"},
			{"O'Brien", "O'Brien"},
			{"Jean-Luc Picard", "Jean-Luc Picard"},
			{"Ñoño Núñez", "Ñoño Núñez"},
		}
		for _, tt := range tests {
			clean, msg := validator.Name(tt.input)
			assert.Empty(t, msg, "should be valid: %q", tt.input)
			assert.Equal(t, tt.expected, clean)
		}
	})

	t.Run("rejects bad lengths", func(t *testing.T) {
		clean, msg := validator.Name("J")
		assert.Empty(t, clean)
		assert.Equal(t, "Name must be between 2 and 60 characters", msg)

		clean, msg = validator.Name(strings.Repeat("a", 61))
		assert.Empty(t, clean)
		assert.Equal(t, "Name must be between 2 and 60 characters", msg)

		clean, msg = validator.Name("")
		assert.Empty(t, clean)
		assert.NotEmpty(t, msg)
	})

	t.Run("rejects disallowed characters", func(t *testing.T) {
		for _, input := range []string{"John123", "Jane<script>", "foo_bar", "Bob!"} {
			clean, msg := validator.Name(input)
			assert.Empty(t, clean)
			assert.Equal(t, "Invalid name format", msg, "should be invalid: %q", input)
		}
	})
}

func TestEmail(t *testing.T) {
	t.Run("accepts and lowercases valid addresses", func(t *testing.T) {
		tests := []struct {
			input    string
			expected string
		}{
			{"a.b@example.com", "a.b@example.com"},
			{"User@Example.COM", "user@example.com"},
			{"  user+tag@example.org ", "user+tag@example.org"},
			{"first_last@sub.domain.co", "first_last@sub.domain.co"},
		}
		for _, tt := range tests {
			clean, msg := validator.Email(tt.input)
			assert.Empty(t, msg, "should be valid: %q", tt.input)
			assert.Equal(t, tt.expected, clean)
		}
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, input := range []string{"", "not-an-email", "@missing.com", "missing@domain", "a b@example.com", "user@.com"} {
			clean, msg := validator.Email(input)
			assert.Empty(t, clean)
			assert.Equal(t, "Invalid email format", msg, "should be invalid: %q", input)
		}
	})

	t.Run("length cap applies regardless of shape", func(t *testing.T) {
		long := strings.Repeat("a", 255) + "@example.com"
		clean, msg := validator.Email(long)
		assert.Empty(t, clean)
		assert.Equal(t, "Too long", msg)
	})
}

func TestPhone(t *testing.T) {
	t.Run("accepts digit strings with spaces stripped", func(t *testing.T) {
		tests := []struct {
			input    string
			expected string
		}{
			{"5551234567", "5551234567"},
			{"555 123 4567", "5551234567"},
			{"1234567", "1234567"},
			{"123456789012345", "123456789012345"},
		}
		for _, tt := range tests {
			clean, msg := validator.Phone(tt.input)
			assert.Empty(t, msg, "should be valid: %q", tt.input)
			assert.Equal(t, tt.expected, clean)
		}
	})

	t.Run("missing phone", func(t *testing.T) {
		clean, msg := validator.Phone("   ")
		assert.Empty(t, clean)
		assert.Equal(t, "Phone number is required", msg)
	})

	t.Run("rejects malformed numbers", func(t *testing.T) {
		for _, input := range []string{"123456", "1234567890123456", "+15551234567", "555-123-4567", "phone"} {
			clean, msg := validator.Phone(input)
			assert.Empty(t, clean)
			assert.Equal(t, "Phone number must be 7 to 15 digits", msg, "should be invalid: %q", input)
		}
	})
}
