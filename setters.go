package url

import (
	"net/netip"
	"strconv"
	"strings"
)

// tryReplace validates candidate as a full URI reference and, only on
// success, commits it as u's new content: the buffer is spliced in one
// shot and the index table, host classification, port and segment/param
// counts are replaced with values derived directly from the very parse
// that validated candidate. Any error leaves u completely unchanged,
// satisfying the strong exception safety guarantee without per-component
// bookkeeping: re-running the grammar engine on the whole candidate string
// is what actually enforces cross-component invariants such as I8 (path
// form depends on scheme/authority presence) after an edit.
func (u *Url) tryReplace(candidate string) error {
	ix, hostType, port, nseg, nparam, err := parseURIReference(candidate, true, u.schemeIsDNSFunc)
	if err != nil {
		return err
	}

	u.b.splice(0, u.b.len(), []byte(candidate))
	u.ix = ix
	u.hostType = hostType
	u.port = port
	u.nseg = nseg
	u.nparam = nparam

	return nil
}

func (u *Url) tail(fromID int) string {
	return string(u.b.bytes()[u.ix[fromID]:])
}

func (u *Url) head(toID int) string {
	return string(u.b.bytes()[:u.ix[toID]])
}

// SetScheme replaces the scheme component. An empty scheme removes it
// (equivalent to RemoveScheme).
func (u *Url) SetScheme(scheme string) error {
	if scheme == "" {
		return u.RemoveScheme()
	}
	if err := validateASCIIComponent(scheme, classScheme); err != nil || !classAlpha.Allowed(scheme[0]) {
		return errorsJoin(ErrInvalidScheme, errPrintf("invalid scheme: %q", scheme))
	}

	return u.tryReplace(scheme + ":" + u.tail(compUser))
}

// SetEncodedScheme is an alias for SetScheme: RFC 3986 never allows
// percent-encoding within a scheme.
func (u *Url) SetEncodedScheme(scheme string) error {
	return u.SetScheme(scheme)
}

// SetKnownScheme sets the scheme from the fixed enum. Passing SchemeUnknown
// is a programming error and panics with a *ProgrammingError.
func (u *Url) SetKnownScheme(k KnownScheme) error {
	if k == SchemeUnknown {
		panicProgrammingError("SetKnownScheme", "SchemeUnknown cannot be assigned")
	}

	return u.SetScheme(k.String())
}

// dotSlashIfAmbiguous returns "./" when a schemeless, authority-less
// reference starting with path would have its first segment mistaken for
// a scheme (because it contains a ':' before the first '/'), and ""
// otherwise. Inserting this prefix is how a scheme or authority removal
// keeps path-noscheme legal instead of failing or silently reinterpreting
// the first segment as a scheme.
func dotSlashIfAmbiguous(path string) string {
	seg := path
	if i := strings.IndexByte(path, '/'); i >= 0 {
		seg = path[:i]
	}

	if strings.IndexByte(seg, ':') >= 0 {
		return "./"
	}

	return ""
}

// RemoveScheme drops the scheme component entirely. If the remaining
// reference would have no authority and a first path segment containing
// ':', a leading "./" segment is inserted so the path stays unambiguously
// a path-noscheme rather than being reinterpreted as a scheme.
func (u *Url) RemoveScheme() error {
	rest := u.tail(compUser)
	if !u.HasAuthority() {
		rest = dotSlashIfAmbiguous(u.region(compPath)) + rest
	}

	return u.tryReplace(rest)
}

func (u *Url) userAuthPart() string {
	return strings.TrimPrefix(u.region(compUser), "//") + u.region(compPassword)
}

// SetUserInfo sets the user and (optional) password sub-components,
// percent-encoding user and password as needed and ensuring an authority
// is present.
func (u *Url) SetUserInfo(user, password string, hasPassword bool) error {
	return u.SetEncodedUserInfo(PolicyUserInfo.EncodeString(user), PolicyUserInfo.EncodeString(password), hasPassword)
}

// SetEncodedUserInfo is like SetUserInfo but user and password are taken
// as already percent-encoded.
func (u *Url) SetEncodedUserInfo(user, password string, hasPassword bool) error {
	if err := PolicyUserInfo.Validate(user); err != nil {
		return errorsJoin(ErrInvalidUserInfo, err)
	}
	if hasPassword {
		if err := PolicyUserInfo.Validate(password); err != nil {
			return errorsJoin(ErrInvalidUserInfo, err)
		}
	}

	var userinfoPart string
	if user != "" || hasPassword {
		userinfoPart = user
		if hasPassword {
			userinfoPart += ":" + password
		}
		userinfoPart += "@"
	}

	return u.tryReplace(u.head(compUser) + "//" + userinfoPart + u.tail(compHost))
}

// RemoveUser clears the user sub-component, keeping any password.
func (u *Url) RemoveUser() error {
	_, password, hasPassword := u.EncodedUserInfo()

	return u.SetEncodedUserInfo("", password, hasPassword)
}

// RemovePassword clears the password sub-component, keeping the user.
func (u *Url) RemovePassword() error {
	user, _, _ := u.EncodedUserInfo()

	return u.SetEncodedUserInfo(user, "", false)
}

// SetHost replaces the host component, percent-encoding plain as a
// registered name. Use SetHostIPv4/SetHostIPv6 for address literals, or
// SetEncodedHost to pass a bracketed IP-literal or pre-encoded reg-name
// directly. Setting the host ensures an authority is present.
func (u *Url) SetHost(plain string) error {
	return u.SetEncodedHost(PolicyRegName.EncodeString(plain))
}

// SetEncodedHost replaces the host component verbatim, brackets included
// for an IP-literal.
func (u *Url) SetEncodedHost(host string) error {
	if _, err := validateHost(host, u.Scheme(), u.schemeIsDNSFunc); err != nil {
		return err
	}

	return u.tryReplace(u.head(compUser) + "//" + u.userAuthPart() + host + u.tail(compPort))
}

// SetHostIPv4 sets the host to an IPv4 address literal.
func (u *Url) SetHostIPv4(addr netip.Addr) error {
	if !addr.Is4() {
		return errorsJoin(ErrInvalidHostAddress, errPrintf("not an IPv4 address: %s", addr))
	}

	return u.SetEncodedHost(addr.String())
}

// SetHostIPv6 sets the host to a bracketed IPv6 address literal.
func (u *Url) SetHostIPv6(addr netip.Addr) error {
	if !addr.Is6() {
		return errorsJoin(ErrInvalidHostAddress, errPrintf("not an IPv6 address: %s", addr))
	}

	return u.SetEncodedHost("[" + addr.String() + "]")
}

// RemoveHost clears the host component while keeping the authority
// introducer and any userinfo in place (e.g. "file:///path"). If a port is
// present the call fails with ErrMissingHost, since a port requires a host.
func (u *Url) RemoveHost() error {
	return u.SetEncodedHost("")
}

// RemoveAuthority drops the authority entirely: the "//" introducer,
// userinfo, host and port are all removed. If the URL has no scheme, the
// same "./" ambiguity rewrite as RemoveScheme applies to the remaining
// path.
func (u *Url) RemoveAuthority() error {
	prefix := ""
	if u.Scheme() == "" {
		prefix = dotSlashIfAmbiguous(u.region(compPath))
	}

	return u.tryReplace(u.head(compUser) + prefix + u.tail(compPath))
}

// SetPort sets the port component from its decimal digit-string form. The
// host must already be set; setting a port with no host is a structural
// error.
func (u *Url) SetPort(digits string) error {
	host := u.region(compHost)
	if err := validatePortDigits(digits, host); err != nil {
		return err
	}

	return u.tryReplace(u.head(compHost) + host + ":" + digits + u.tail(compPath))
}

// SetPortNumber sets the port component from a numeric value.
func (u *Url) SetPortNumber(port uint16) error {
	return u.SetPort(strconv.FormatUint(uint64(port), 10))
}

// RemovePort clears the port component.
func (u *Url) RemovePort() error {
	return u.tryReplace(u.head(compHost) + u.region(compHost) + u.tail(compPath))
}

// SetPath replaces the path component, percent-encoding plain per segment.
func (u *Url) SetPath(plain string) error {
	return u.SetEncodedPath(encodePathPlain(plain))
}

func encodePathPlain(plain string) string {
	segments := strings.Split(plain, "/")
	for i, seg := range segments {
		segments[i] = PolicyPath.EncodeString(seg)
	}

	return strings.Join(segments, "/")
}

// SetEncodedPath replaces the path component verbatim.
func (u *Url) SetEncodedPath(path string) error {
	if err := validatePath(path, u.Scheme() != "", u.HasAuthority()); err != nil {
		return err
	}

	return u.tryReplace(u.head(compPath) + path + u.tail(compQuery))
}

// SetQuery replaces the query component, percent-encoding plain as a whole
// (use SetEncodedQuery if you have already-encoded key=value pairs you do
// not want re-escaped).
func (u *Url) SetQuery(plain string) error {
	return u.SetEncodedQuery(PolicyQuery.EncodeString(plain))
}

// SetEncodedQuery replaces the query component verbatim, without a
// leading '?'.
func (u *Url) SetEncodedQuery(query string) error {
	if err := PolicyQuery.Validate(query); err != nil {
		return errorsJoin(ErrInvalidQuery, err)
	}

	return u.tryReplace(u.head(compQuery) + "?" + query + u.tail(compFragment))
}

// RemoveQuery drops the query component (and its leading '?') entirely.
func (u *Url) RemoveQuery() error {
	return u.tryReplace(u.head(compQuery) + u.tail(compFragment))
}

// SetFragment replaces the fragment component, percent-encoding plain.
func (u *Url) SetFragment(plain string) error {
	return u.SetEncodedFragment(PolicyFragment.EncodeString(plain))
}

// SetEncodedFragment replaces the fragment component verbatim, without a
// leading '#'.
func (u *Url) SetEncodedFragment(fragment string) error {
	if err := PolicyFragment.Validate(fragment); err != nil {
		return errorsJoin(ErrInvalidFragment, err)
	}

	return u.tryReplace(u.head(compFragment) + "#" + fragment)
}

// RemoveFragment drops the fragment component (and its leading '#')
// entirely.
func (u *Url) RemoveFragment() error {
	return u.tryReplace(u.head(compFragment))
}
