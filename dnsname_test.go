package url

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDNSHostForScheme(t *testing.T) {
	t.Parallel()

	valid := []string{"example.com", "a.b.c", "x-1.example", "localhost"}
	for _, h := range valid {
		assert.NoErrorf(t, validateDNSHostForScheme(h), "expected %q to be a valid DNS name", h)
	}

	invalid := []string{
		"",
		".",
		"example..com",
		"1example.com",
		"-example.com",
		"example-.com",
		"example.com.",
		strings.Repeat("a", 64) + ".com",
	}
	for _, h := range invalid {
		assert.Errorf(t, validateDNSHostForScheme(h), "expected %q to be rejected", h)
	}
}

func TestValidateDNSHostForSchemeTooLong(t *testing.T) {
	t.Parallel()

	label := strings.Repeat("a", 50)
	name := strings.Join([]string{label, label, label, label, label, "com"}, ".")

	err := validateDNSHostForScheme(name)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidDNSName)
}
