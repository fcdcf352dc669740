package url

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These twelve scenarios are the concrete end-to-end walkthroughs pinning
// the container's externally observable behavior, including two resolved
// ambiguities: a port string that parses but doesn't fit a uint16 keeps its
// digit form while clearing the numeric one, and a bare "/" path counts as
// one (empty) segment. Scheme removal's "./" rewrite of an otherwise
// ambiguous rootless path is pinned in setters_test.go.

func TestScenarioBuildFromEmpty(t *testing.T) {
	t.Parallel()

	u := New()
	require.NoError(t, u.SetScheme("http"))
	require.NoError(t, u.SetHost("example.com"))
	require.NoError(t, u.SetPath("/a b"))
	require.NoError(t, u.SetQuery("x=1&y=2"))
	require.NoError(t, u.SetFragment("top"))

	assert.Equal(t, "http://example.com/a%20b?x=1&y=2#top", u.String())
}

func TestScenarioRemovePasswordKeepsUser(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://u:p@h:8080/")
	require.NoError(t, err)

	require.NoError(t, u.RemovePassword())
	assert.Equal(t, "http://u@h:8080/", u.String())
}

func TestScenarioRemoveUserKeepsPassword(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://u:p@h/")
	require.NoError(t, err)

	require.NoError(t, u.RemoveUser())
	assert.Equal(t, "http://:p@h/", u.String(), "userinfo is retained because a password remains")
}

func TestScenarioRemoveUserDropsEmptyUserinfo(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://u@h/")
	require.NoError(t, err)

	require.NoError(t, u.RemoveUser())
	assert.Equal(t, "http://h/", u.String(), "userinfo is dropped entirely once empty")
}

func TestScenarioSetSchemeOnAbsolutePathStaysAbsolute(t *testing.T) {
	t.Parallel()

	u, err := ParseReference("/a/b/c")
	require.NoError(t, err)

	require.NoError(t, u.SetScheme("urn"))
	assert.Equal(t, "urn:/a/b/c", u.String(), "a path already starting with '/' needs no rewrite when a scheme is added")
}

func TestScenarioSetHostIPv6(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://h/")
	require.NoError(t, err)

	require.NoError(t, u.SetHostIPv6(netip.MustParseAddr("::1")))
	assert.Equal(t, "http://[::1]/", u.String())
}

func TestScenarioSetEncodedPathRejectsAmbiguousAuthorityLessSlashSlash(t *testing.T) {
	t.Parallel()

	u := New()
	err := u.SetEncodedPath("//evil")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidPath)
	assert.Equal(t, "", u.String(), "a failed mutation leaves the container unchanged")
}

func TestScenarioSetPortLeadingZerosPreserveDigitsButParseNumerically(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://h/")
	require.NoError(t, err)

	require.NoError(t, u.SetPort("0080"))
	assert.Equal(t, "http://h:0080/", u.String())

	digits, numeric, ok := u.Port()
	assert.True(t, ok)
	assert.Equal(t, "0080", digits)
	assert.EqualValues(t, 80, numeric)
}

func TestScenarioSetPortOverflowKeepsDigitsButClearsNumeric(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://h/")
	require.NoError(t, err)

	require.NoError(t, u.SetPort("70000"))
	assert.Equal(t, "http://h:70000/", u.String())

	digits, numeric, ok := u.Port()
	assert.True(t, ok)
	assert.Equal(t, "70000", digits)
	assert.EqualValues(t, 0, numeric, "a port string that overflows uint16 clears the numeric value")
}

func TestScenarioPercentEncodedSlashDoesNotSplitSegments(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://h/p%2fq")
	require.NoError(t, err)

	var segments []string
	it := u.PathSegments()
	for {
		seg, ok := it.Next()
		if !ok {
			break
		}
		segments = append(segments, seg)
	}

	assert.Equal(t, []string{"p%2fq"}, segments)
	assert.Equal(t, 1, u.SegmentCount())
}

func TestScenarioCountQueryParamsByKey(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://h/?a=1&a=2&b=3")
	require.NoError(t, err)

	count := 0
	it := u.QueryParams()
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		if p.Key == "a" {
			count++
		}
	}

	assert.Equal(t, 2, count)
}

func TestScenarioBareSlashIsOneEmptySegment(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://h/")
	require.NoError(t, err)

	assert.Equal(t, 1, u.SegmentCount())

	seg, ok := u.PathSegments().Next()
	require.True(t, ok)
	assert.Equal(t, "", seg)
}
