package url

import (
	"encoding"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ encoding.TextMarshaler     = (*Url)(nil)
	_ encoding.TextUnmarshaler   = (*Url)(nil)
	_ encoding.BinaryMarshaler   = (*Url)(nil)
	_ encoding.BinaryUnmarshaler = (*Url)(nil)
)

func TestMarshalText(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://example.com/a?x=1")
	require.NoError(t, err)

	b, err := u.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/a?x=1", string(b))

	bb, err := u.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, b, bb)
}

func TestUnmarshalText(t *testing.T) {
	t.Parallel()

	u := New()
	require.NoError(t, u.UnmarshalText([]byte("https://example.com/path")))

	assert.Equal(t, "https", u.Scheme())
	assert.Equal(t, "example.com", u.Host())
	assert.Equal(t, "/path", u.Path())
}

func TestUnmarshalTextRejectsInvalid(t *testing.T) {
	t.Parallel()

	u := New()
	err := u.UnmarshalText([]byte("http://example.com:port"))
	require.Error(t, err)
}

func TestUnmarshalBinaryRoundTrip(t *testing.T) {
	t.Parallel()

	orig, err := Parse("https://fred@example.com:8443/a/b?x=1#frag")
	require.NoError(t, err)

	b, err := orig.MarshalBinary()
	require.NoError(t, err)

	restored := New()
	require.NoError(t, restored.UnmarshalBinary(b))
	assert.True(t, orig.Equal(restored))
}
