// Package url implements a mutable, buffer-owning RFC 3986 URI/URL
// container.
//
// A Url owns a single contiguous, NUL-terminated byte buffer holding the
// fully percent-encoded representation of the reference, together with a
// small index table locating each of its eight components within that
// buffer. Bytes and CStr borrow directly from the buffer; the string
// accessors return copies. A component mutation builds the complete new
// content, re-parses it, and only then rewrites the buffer and replaces the
// index table, so a failed mutation leaves the Url unchanged.
//
// The zero value is not a usable Url; construct one with Parse,
// ParseReference or New.
package url

import "strings"

// UrlView exposes the read side of a Url. It exists so a caller can write
// an immutable façade or a test double without depending on Url's
// mutating methods; *Url implements it directly.
type UrlView interface {
	Scheme() string
	HasAuthority() bool
	UserInfo() (user, password string, hasPassword bool)
	Host() string
	HostType() HostType
	Port() (port string, numeric uint16, ok bool)
	Path() string
	Query() string
	Fragment() string
	String() string
	Bytes() []byte
}

var _ UrlView = (*Url)(nil)

// Url is a mutable RFC 3986 URI/URL. It is not safe for concurrent use by
// multiple goroutines without external synchronization, since every
// mutating method rewrites the shared buffer in place.
type Url struct {
	b        *buf
	ix       index
	hostType HostType
	port     *uint16
	nseg     int
	nparam   int

	schemeIsDNSFunc func(string) bool
	defaultPortFunc func(string) (uint16, bool)
}

// New returns an empty Url (an empty path, no scheme or authority).
func New(opts ...Option) *Url {
	o, done := borrowOptions(packageLevelDefaults, opts)
	defer done()

	u := &Url{
		b:               newBuf(),
		schemeIsDNSFunc: o.schemeIsDNSFunc,
		defaultPortFunc: o.defaultPortFunc,
	}
	if o.capacityHint > 0 {
		u.b.reserve(o.capacityHint)
	}

	return u
}

// Parse parses raw as an absolute URI: a scheme is required.
func Parse(raw string, opts ...Option) (*Url, error) {
	return parseInto(raw, false, opts)
}

// ParseReference parses raw as a URI reference (RFC 3986 §4.1): the scheme
// may be absent, in which case the reference is relative.
func ParseReference(raw string, opts ...Option) (*Url, error) {
	return parseInto(raw, true, opts)
}

func parseInto(raw string, allowRelative bool, opts []Option) (*Url, error) {
	defaults := packageLevelDefaults
	if allowRelative {
		defaults = packageLevelReferenceDefaults
	}

	o, done := borrowOptions(defaults, opts)
	defer done()

	if o.withStrictURI {
		if err := validateASCIIOnly(raw); err != nil {
			return nil, err
		}
	}

	ix, hostType, port, nseg, nparam, err := parseURIReference(raw, allowRelative, o.schemeIsDNSFunc)
	if err != nil {
		return nil, err
	}

	b := newBufFromString(raw)
	if o.capacityHint > b.cap() {
		b.reserve(o.capacityHint)
	}

	return &Url{
		b:               b,
		ix:              ix,
		hostType:        hostType,
		port:            port,
		nseg:            nseg,
		nparam:          nparam,
		schemeIsDNSFunc: o.schemeIsDNSFunc,
		defaultPortFunc: o.defaultPortFunc,
	}, nil
}

func validateASCIIOnly(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return errorsJoin(ErrInvalidURI, errPrintf("non-ASCII byte 0x%x at offset %d", s[i], i))
		}
	}

	return nil
}

// IsURI reports whether raw parses as a valid absolute URI.
func IsURI(raw string, opts ...Option) bool {
	_, err := Parse(raw, opts...)

	return err == nil
}

// IsURIReference reports whether raw parses as a valid URI reference.
func IsURIReference(raw string, opts ...Option) bool {
	_, err := ParseReference(raw, opts...)

	return err == nil
}

func (u *Url) region(id int) string {
	s, e := u.ix.region(id)

	return u.b.string2(s, e)
}

// string2 is a tiny helper kept out of buf so buf stays allocation-neutral
// for the hot borrow path (bytes()); Url.region needs a string, not a
// slice, for comparisons and stripping fixed delimiters below.
func (b *buf) string2(s, e int) string {
	return string(b.bytes()[s:e])
}

// Scheme returns the scheme component, without the trailing ':'.
func (u *Url) Scheme() string {
	s := u.region(compScheme)
	if s == "" {
		return ""
	}

	return s[:len(s)-1]
}

// KnownScheme classifies the scheme against the package's fixed enum.
func (u *Url) KnownScheme() KnownScheme {
	return ParseKnownScheme(u.Scheme())
}

// HasAuthority reports whether the URL carries an authority (a "//"
// introducer), as opposed to a bare hier-part/relative-part.
func (u *Url) HasAuthority() bool {
	return strings.HasPrefix(u.region(compUser), "//")
}

// UserInfo returns the decoded user and password sub-components of the
// userinfo production, and whether a password (possibly empty) was present.
func (u *Url) UserInfo() (user, password string, hasPassword bool) {
	eu, ep, hp := u.EncodedUserInfo()

	du, err := PolicyUserInfo.Decode(eu)
	if err != nil {
		du = eu
	}
	dp, err := PolicyUserInfo.Decode(ep)
	if err != nil {
		dp = ep
	}

	return du, dp, hp
}

// EncodedUserInfo is like UserInfo but returns the still percent-encoded
// sub-components verbatim.
func (u *Url) EncodedUserInfo() (user, password string, hasPassword bool) {
	userRegion := strings.TrimPrefix(u.region(compUser), "//")
	passRegion := u.region(compPassword)

	if passRegion == "" {
		return userRegion, "", false
	}

	// passRegion is either "@" (no password) or ":password@".
	body := passRegion[:len(passRegion)-1] // drop trailing '@'
	if body == "" {
		return userRegion, "", false
	}

	return userRegion, body[1:], true // drop leading ':'
}

// Host returns the decoded host component, brackets stripped for an
// IP-literal.
func (u *Url) Host() string {
	h := u.bracketlessHost()
	if u.hostType == HostName {
		d, err := PolicyRegName.Decode(h)
		if err == nil {
			return d
		}
	}

	return h
}

// EncodedHost returns the still percent-encoded host component, brackets
// included for an IP-literal.
func (u *Url) EncodedHost() string {
	return u.region(compHost)
}

func (u *Url) bracketlessHost() string {
	h := u.region(compHost)
	if len(h) >= 2 && h[0] == '[' && h[len(h)-1] == ']' {
		return h[1 : len(h)-1]
	}

	return h
}

// HostType classifies the host component.
func (u *Url) HostType() HostType {
	return u.hostType
}

// Port returns the port component as a string (without the leading ':'),
// its numeric value (0 if absent or out of uint16 range) and whether a
// port was present at all.
func (u *Url) Port() (string, uint16, bool) {
	p := u.region(compPort)
	if p == "" {
		return "", 0, false
	}

	digits := p[1:]
	if u.port == nil {
		return digits, 0, true
	}

	return digits, *u.port, true
}

// Path returns the decoded path component.
func (u *Url) Path() string {
	d, err := PolicyPath.Decode(u.region(compPath))
	if err != nil {
		return u.region(compPath)
	}

	return d
}

// EncodedPath returns the still percent-encoded path component.
func (u *Url) EncodedPath() string {
	return u.region(compPath)
}

// SegmentCount returns the number of '/'-separated path segments.
func (u *Url) SegmentCount() int {
	return u.nseg
}

// Query returns the decoded query component, without the leading '?'.
func (u *Url) Query() string {
	q := u.region(compQuery)
	if q == "" {
		return ""
	}

	d, err := PolicyQuery.Decode(q[1:])
	if err != nil {
		return q[1:]
	}

	return d
}

// EncodedQuery returns the still percent-encoded query component, without
// the leading '?'.
func (u *Url) EncodedQuery() string {
	q := u.region(compQuery)
	if q == "" {
		return ""
	}

	return q[1:]
}

// HasQuery reports whether a query component (even an empty one) is
// present.
func (u *Url) HasQuery() bool {
	return u.region(compQuery) != ""
}

// ParamCount returns the number of '&'-separated query parameters.
func (u *Url) ParamCount() int {
	return u.nparam
}

// Fragment returns the decoded fragment component, without the leading '#'.
func (u *Url) Fragment() string {
	f := u.region(compFragment)
	if f == "" {
		return ""
	}

	d, err := PolicyFragment.Decode(f[1:])
	if err != nil {
		return f[1:]
	}

	return d
}

// EncodedFragment is like Fragment but returns the still percent-encoded
// content verbatim.
func (u *Url) EncodedFragment() string {
	f := u.region(compFragment)
	if f == "" {
		return ""
	}

	return f[1:]
}

// HasFragment reports whether a fragment component (even an empty one) is
// present.
func (u *Url) HasFragment() bool {
	return u.region(compFragment) != ""
}

// String returns the full encoded representation of the URL. The returned
// string is a copy; it does not alias the Url's internal buffer.
func (u *Url) String() string {
	return u.b.string()
}

// Bytes returns the full encoded representation of the URL as a borrowed
// byte slice, valid only until the next mutating call on u.
func (u *Url) Bytes() []byte {
	return u.b.bytes()
}

// CStr returns the encoded representation including its trailing NUL byte,
// borrowed and valid only until the next mutating call on u.
func (u *Url) CStr() []byte {
	return u.b.cstr()
}

// CapacityInBytes reports the current allocated capacity of the internal
// buffer, not counting the trailing NUL.
func (u *Url) CapacityInBytes() int {
	c := u.b.cap()
	if c == 0 {
		return 0
	}

	return c - 1
}

// Reserve grows the internal buffer's capacity to at least n bytes without
// altering its content.
func (u *Url) Reserve(n int) {
	u.b.reserve(n)
}

// Clone returns an independent deep copy of u: mutating the clone never
// affects u, and vice versa.
func (u *Url) Clone() *Url {
	clone := *u
	clone.b = newBufFromString(u.b.string())

	if u.port != nil {
		p := *u.port
		clone.port = &p
	}

	return &clone
}

// Equal reports whether u and other have byte-identical encoded
// representations.
func (u *Url) Equal(other *Url) bool {
	if other == nil {
		return false
	}

	return u.b.string() == other.b.string()
}
