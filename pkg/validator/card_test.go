package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ticketbay/formkit/pkg/validator"
)

func TestCardNumber(t *testing.T) {
	t.Run("accepts valid numbers with formatting", func(t *testing.T) {
		tests := []struct {
			input    string
			expected string
		}{
			{"4532015112830366", "4532015112830366"},
			{"4532 0151 1283 0366", "4532015112830366"},
			{"4532-0151-1283-0366", "4532015112830366"},
			{"  4111111111111111  ", "4111111111111111"},
			{"378282246310005", "378282246310005"},
		}
		for _, tt := range tests {
			clean, msg := validator.CardNumber(tt.input)
			assert.Empty(t, msg, "should be valid: %q", tt.input)
			assert.Equal(t, tt.expected, clean)
		}
	})

	t.Run("rejects Luhn failure", func(t *testing.T) {
		clean, msg := validator.CardNumber("4532015112830367")
		assert.Empty(t, clean)
		assert.Equal(t, "Invalid card number by Luhn", msg)
	})

	t.Run("rejects bad length", func(t *testing.T) {
		// Luhn-valid but 12 digits
		clean, msg := validator.CardNumber("000000000000")
		assert.Empty(t, clean)
		assert.Equal(t, "Card number must be 13 to 19 digits", msg)

		// Luhn-valid but 20 digits
		clean, msg = validator.CardNumber("00000000000000000000")
		assert.Empty(t, clean)
		assert.Equal(t, "Card number must be 13 to 19 digits", msg)
	})

	t.Run("rejects empty and garbage input", func(t *testing.T) {
		for _, input := range []string{"", "   ", "not-a-card"} {
			clean, msg := validator.CardNumber(input)
			assert.Empty(t, clean)
			assert.NotEmpty(t, msg)
		}
	})
}

func TestExpiryDate(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	t.Run("accepts future and current month", func(t *testing.T) {
		tests := []string{"09/26", "08/26", "01/27", "12/99"}
		for _, input := range tests {
			clean, msg := validator.ExpiryDate(input, now)
			assert.Empty(t, msg, "should be valid: %q", input)
			assert.Equal(t, input, clean)
		}
	})

	t.Run("rejects expired cards", func(t *testing.T) {
		tests := []string{"07/26", "12/25", "01/20"}
		for _, input := range tests {
			clean, msg := validator.ExpiryDate(input, now)
			assert.Empty(t, clean)
			assert.Equal(t, "Out of date, use another card.", msg, "should be expired: %q", input)
		}
	})

	t.Run("expiry comparison follows the caller's clock", func(t *testing.T) {
		_, msg := validator.ExpiryDate("01/20", time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, "Out of date, use another card.", msg)

		_, msg = validator.ExpiryDate("01/20", time.Date(2020, time.January, 31, 0, 0, 0, 0, time.UTC))
		assert.Empty(t, msg, "same month and year is not expired")
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		tests := []string{"", "13/26", "00/26", "1/26", "01-26", "0126", "aa/bb", "01/2026"}
		for _, input := range tests {
			clean, msg := validator.ExpiryDate(input, now)
			assert.Empty(t, clean)
			assert.Equal(t, "Please use MM/YY format", msg, "should be malformed: %q", input)
		}
	})
}

func TestCVV(t *testing.T) {
	t.Run("clean value is always empty", func(t *testing.T) {
		clean, msg := validator.CVV("123")
		assert.Empty(t, clean)
		assert.Empty(t, msg)

		clean, msg = validator.CVV("1234")
		assert.Empty(t, clean)
		assert.Empty(t, msg)
	})

	t.Run("rejects wrong shapes", func(t *testing.T) {
		for _, input := range []string{"", "12", "12345", "12a", "abc", "1 23"} {
			clean, msg := validator.CVV(input)
			assert.Empty(t, clean)
			assert.Equal(t, "Invalid CVV", msg, "should be invalid: %q", input)
		}
	})
}
