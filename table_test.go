package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexRegionAndLength(t *testing.T) {
	t.Parallel()

	var ix index
	ix[compScheme] = 0
	ix[compUser] = 5
	ix[compPassword] = 5
	ix[compHost] = 5
	ix[compPort] = 16
	ix[compPath] = 16
	ix[compQuery] = 20
	ix[compFragment] = 20
	ix[compEnd] = 20

	s, e := ix.region(compHost)
	assert.Equal(t, 5, s)
	assert.Equal(t, 16, e)
	assert.Equal(t, 11, ix.length(compHost))
	assert.Equal(t, 20, ix.end())
}

func TestIndexShift(t *testing.T) {
	t.Parallel()

	var ix index
	for i := range ix {
		ix[i] = i * 10
	}

	ix.shift(compHost, 5)

	assert.Equal(t, 30, ix[compHost])
	assert.Equal(t, 45, ix[compPort])
	assert.Equal(t, 85, ix[compEnd])
}

func TestIndexSetRegion(t *testing.T) {
	t.Parallel()

	var ix index
	ix[compScheme] = 0
	ix[compUser] = 5
	ix[compPassword] = 10
	ix[compHost] = 10
	ix[compPort] = 20
	ix[compPath] = 20
	ix[compQuery] = 30
	ix[compFragment] = 30
	ix[compEnd] = 30

	ix.setRegion(compHost, 3)

	assert.Equal(t, 3, ix.length(compHost))
	assert.Equal(t, 13, ix[compPort])
	assert.Equal(t, 23, ix[compQuery])
	assert.Equal(t, 23, ix[compEnd])
}
