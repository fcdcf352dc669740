package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufNewIsEmpty(t *testing.T) {
	t.Parallel()

	b := newBuf()
	assert.Equal(t, 0, b.len())
	assert.Equal(t, "", b.string())
	assert.Equal(t, []byte{0}, b.cstr())
}

func TestBufFromString(t *testing.T) {
	t.Parallel()

	b := newBufFromString("hello")
	assert.Equal(t, 5, b.len())
	assert.Equal(t, "hello", b.string())
	assert.Equal(t, byte(0), b.cstr()[5])
}

func TestBufSpliceGrow(t *testing.T) {
	t.Parallel()

	b := newBufFromString("hello world")
	delta := b.splice(5, 6, []byte(", "))
	assert.Equal(t, 1, delta)
	assert.Equal(t, "hello, world", b.string())
}

func TestBufSpliceShrink(t *testing.T) {
	t.Parallel()

	b := newBufFromString("hello, world")
	delta := b.splice(5, 7, []byte(" "))
	assert.Equal(t, -1, delta)
	assert.Equal(t, "hello world", b.string())
}

func TestBufSpliceAtEnds(t *testing.T) {
	t.Parallel()

	b := newBufFromString("world")
	b.splice(0, 0, []byte("hello "))
	assert.Equal(t, "hello world", b.string())

	b.splice(b.len(), b.len(), []byte("!"))
	assert.Equal(t, "hello world!", b.string())
}

func TestBufSpliceBeyondCapacityReallocates(t *testing.T) {
	t.Parallel()

	b := newBuf()
	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'x'
	}

	b.splice(0, 0, long)
	assert.Equal(t, 1000, b.len())
	assert.Equal(t, string(long), b.string())
}

func TestBufReserveDoesNotAlterContent(t *testing.T) {
	t.Parallel()

	b := newBufFromString("abc")
	b.reserve(500)

	assert.GreaterOrEqual(t, b.cap(), 501)
	assert.Equal(t, "abc", b.string())
}

func TestBufClearKeepsCapacity(t *testing.T) {
	t.Parallel()

	b := newBufFromString("abcdef")
	cap0 := b.cap()
	b.clear()

	assert.Equal(t, 0, b.len())
	assert.Equal(t, "", b.string())
	assert.Equal(t, cap0, b.cap())
}

func TestBufBytesAliasesUnderlyingData(t *testing.T) {
	t.Parallel()

	b := newBufFromString("abc")
	s := b.bytes()
	s[0] = 'X'

	assert.Equal(t, "Xbc", b.string())
}
