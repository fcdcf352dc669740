package url

import "strings"

// PathSegmentIterator walks the '/'-separated segments of a path
// component lazily, without allocating a slice up front.
type PathSegmentIterator struct {
	rest string
	done bool
}

// PathSegments returns an iterator over the still-encoded path segments.
// A single leading '/' (as in an absolute or abempty path) is skipped
// before splitting, so an absolute path does not produce a spurious
// leading empty segment; a bare "/" yields one empty segment. This is
// consistent with SegmentCount/countSegments.
func (u *Url) PathSegments() *PathSegmentIterator {
	orig := u.EncodedPath()
	rest := orig
	if strings.HasPrefix(rest, "/") {
		rest = rest[1:]
	}

	return &PathSegmentIterator{rest: rest, done: orig == ""}
}

// Next advances the iterator and reports whether a segment was produced.
func (it *PathSegmentIterator) Next() (string, bool) {
	if it.done {
		return "", false
	}

	idx := strings.IndexByte(it.rest, '/')
	if idx < 0 {
		seg := it.rest
		it.done = true

		return seg, true
	}

	seg := it.rest[:idx]
	it.rest = it.rest[idx+1:]

	return seg, true
}

// QueryParam is one '&'-separated key[=value] pair of a query component.
type QueryParam struct {
	Key      string
	Value    string
	HasValue bool
}

// QueryParamIterator walks the '&'-separated parameters of a query
// component lazily.
type QueryParamIterator struct {
	rest string
	done bool
}

// QueryParams returns an iterator over the still-encoded query
// parameters.
func (u *Url) QueryParams() *QueryParamIterator {
	q := u.EncodedQuery()

	return &QueryParamIterator{rest: q, done: q == ""}
}

// Next advances the iterator and reports whether a parameter was
// produced.
func (it *QueryParamIterator) Next() (QueryParam, bool) {
	if it.done {
		return QueryParam{}, false
	}

	var raw string
	if idx := strings.IndexByte(it.rest, '&'); idx >= 0 {
		raw = it.rest[:idx]
		it.rest = it.rest[idx+1:]
	} else {
		raw = it.rest
		it.done = true
	}

	if eq := strings.IndexByte(raw, '='); eq >= 0 {
		return QueryParam{Key: raw[:eq], Value: raw[eq+1:], HasValue: true}, true
	}

	return QueryParam{Key: raw, HasValue: false}, true
}
