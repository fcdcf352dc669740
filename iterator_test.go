package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathSegmentIterator(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://example.com/a/b%20c/")
	require.NoError(t, err)

	var got []string
	it := u.PathSegments()
	for {
		seg, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, seg)
	}

	assert.Equal(t, []string{"a", "b%20c", ""}, got)
	assert.Equal(t, len(got), u.SegmentCount())
}

func TestPathSegmentIteratorEmptyPath(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://example.com")
	require.NoError(t, err)

	_, ok := u.PathSegments().Next()
	assert.False(t, ok)
	assert.Equal(t, 0, u.SegmentCount())
}

func TestQueryParamIterator(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://example.com/?a=1&b&c=3")
	require.NoError(t, err)

	var got []QueryParam
	it := u.QueryParams()
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, p)
	}

	require.Len(t, got, 3)
	assert.Equal(t, QueryParam{Key: "a", Value: "1", HasValue: true}, got[0])
	assert.Equal(t, QueryParam{Key: "b", HasValue: false}, got[1])
	assert.Equal(t, QueryParam{Key: "c", Value: "3", HasValue: true}, got[2])
	assert.Equal(t, 3, u.ParamCount())
}

func TestQueryParamIteratorNoQuery(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://example.com/")
	require.NoError(t, err)

	_, ok := u.QueryParams().Next()
	assert.False(t, ok)
}
