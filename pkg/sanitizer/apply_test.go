package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ticketbay/formkit/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	result := sanitizer.Apply("  Mixed CASE   Input\n",
		sanitizer.Normalize,
		sanitizer.NormalizeWhitespace,
		sanitizer.ToLower,
	)
	assert.Equal(t, "mixed case input", result)
}

func TestCompose(t *testing.T) {
	cleanName := sanitizer.Compose(
		sanitizer.Normalize,
		sanitizer.NormalizeWhitespace,
	)

	assert.Equal(t, "Ana María", cleanName("  Ana   María\t "))
	assert.Equal(t, "", cleanName("   "))
}
