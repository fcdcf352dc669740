package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsIPv6(t *testing.T) {
	t.Parallel()

	valid := []string{"::1", "2001:db8::1", "::", "fe80::1"}
	for _, h := range valid {
		assert.Truef(t, IsIPv6(h), "expected %q to be a valid IPv6 address", h)
	}

	invalid := []string{"not-an-address", "192.168.0.1", ""}
	for _, h := range invalid {
		assert.Falsef(t, IsIPv6(h), "expected %q to be rejected", h)
	}
}

func TestParseIPLiteralIPvFuture(t *testing.T) {
	t.Parallel()

	_, ht, err := parseIPLiteral("v1.fe80::1")
	require.NoError(t, err)
	assert.Equal(t, HostIPvFuture, ht)
}

func TestParseIPLiteralRejectsEmpty(t *testing.T) {
	t.Parallel()

	_, _, err := parseIPLiteral("")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidHostAddress)
}

func TestParseIPv6RejectsBareZoneID(t *testing.T) {
	t.Parallel()

	_, err := parseIPv6("fe80::1%eth0")
	require.Error(t, err)
}

func TestParseIPv6AcceptsEscapedZoneID(t *testing.T) {
	t.Parallel()

	_, err := parseIPv6("fe80::1%25eth0")
	require.NoError(t, err)
}

func TestValidateIPvFuture(t *testing.T) {
	t.Parallel()

	require.NoError(t, validateIPvFuture("v1.abc"))
	require.NoError(t, validateIPvFuture("vA.a:b-c_d~e"))

	require.Error(t, validateIPvFuture("1.abc"))
	require.Error(t, validateIPvFuture("v.abc"))
	require.Error(t, validateIPvFuture("v1"))
	require.Error(t, validateIPvFuture("v1."))
}
