package url

// Component IDs for the nine-offset index table.
const (
	compScheme = iota
	compUser
	compPassword
	compHost
	compPort
	compPath
	compQuery
	compFragment
	compEnd
	numComponents = compEnd + 1
)

// index holds the nine byte offsets o[0..8] delimiting the eight
// component regions of a Url's buffer: o[0] = 0, o[8] = len, o[i] <= o[i+1].
// Component i occupies buf[o[i]:o[i+1]).
type index [numComponents]int

// region returns the byte range [start, end) of component id.
func (ix index) region(id int) (int, int) {
	return ix[id], ix[id+1]
}

// length returns the byte length of component id's region.
func (ix index) length(id int) int {
	return ix[id+1] - ix[id]
}

// end returns the logical length of the buffer (o[8]).
func (ix index) end() int {
	return ix[compEnd]
}

// shift adds delta to every offset strictly after "after" (inclusive of
// after+1..8), used once a splice has changed the byte length of a region.
func (ix *index) shift(after, delta int) {
	for i := after + 1; i < numComponents; i++ {
		ix[i] += delta
	}
}

// setRegion rewrites the boundary between id and id+1 so that component id
// has length newLen, shifting every later offset by the same delta.
func (ix *index) setRegion(id, newLen int) {
	delta := newLen - ix.length(id)
	ix.shift(id, delta)
}
