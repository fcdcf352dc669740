package url

import (
	"net/netip"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// NormalizeOption tunes Normalized's behavior.
type NormalizeOption func(*normalizeOptions)

type normalizeOptions struct {
	asciiHost     bool
	dropEmptyPath bool
}

// WithASCIIHost requests punycode (IDNA) conversion of a non-ASCII host
// during normalization.
func WithASCIIHost(enabled bool) NormalizeOption {
	return func(o *normalizeOptions) { o.asciiHost = enabled }
}

// WithEmptyPathAsRoot requests that an empty path on a URL with an
// authority normalize to "/", per the common web convention.
func WithEmptyPathAsRoot(enabled bool) NormalizeOption {
	return func(o *normalizeOptions) { o.dropEmptyPath = enabled }
}

func normalizeOptionsWithDefaults(opts []NormalizeOption) *normalizeOptions {
	o := &normalizeOptions{dropEmptyPath: true}
	for _, apply := range opts {
		apply(o)
	}

	return o
}

// Normalize returns the normalized string form of u, per
// https://en.wikipedia.org/wiki/URI_normalization: lower-cased scheme and
// host, an elided default port, a cleaned path, and upper-cased
// percent-encoding throughout.
func (u *Url) Normalize(opts ...NormalizeOption) (string, error) {
	n, err := u.Normalized(opts...)
	if err != nil {
		return "", err
	}

	return n.String(), nil
}

// Normalized returns a new Url holding a canonicalized copy of u's content.
// u itself is left untouched.
func (u *Url) Normalized(opts ...NormalizeOption) (*Url, error) {
	o := normalizeOptionsWithDefaults(opts)

	scheme := strings.ToLower(u.Scheme())

	eu, ep, hasPassword := u.EncodedUserInfo()
	userNorm := normalizePercentCase(eu)
	passNorm := normalizePercentCase(ep)

	host, err := u.normalizedHost(o)
	if err != nil {
		return nil, err
	}

	portDigits, portNum, hasPort := u.Port()
	if hasPort {
		if def, ok := u.defaultPort(scheme); ok && portNum == def {
			hasPort = false
			portDigits = ""
		}
	}

	path := cleanPath(normalizePercentCase(u.EncodedPath()))
	if path == "" && o.dropEmptyPath && u.HasAuthority() {
		path = "/"
	}

	query := normalizePercentCase(u.EncodedQuery())
	fragment := normalizePercentCase(u.EncodedFragment())

	var b strings.Builder
	b.Grow(len(scheme) + len(userNorm) + len(passNorm) + len(host) + len(portDigits) + len(path) + len(query) + len(fragment) + 8)

	if scheme != "" {
		b.WriteString(scheme)
		b.WriteByte(':')
	}

	if u.HasAuthority() {
		b.WriteString("//")
		if userNorm != "" || hasPassword {
			b.WriteString(userNorm)
			if hasPassword {
				b.WriteByte(':')
				b.WriteString(passNorm)
			}
			b.WriteByte('@')
		}
		b.WriteString(host)
		if hasPort {
			b.WriteByte(':')
			b.WriteString(portDigits)
		}
	}

	b.WriteString(path)

	if u.HasQuery() {
		b.WriteByte('?')
		b.WriteString(query)
	}

	if u.HasFragment() {
		b.WriteByte('#')
		b.WriteString(fragment)
	}

	return ParseReference(b.String())
}

func (u *Url) defaultPort(scheme string) (uint16, bool) {
	if u.defaultPortFunc != nil {
		return u.defaultPortFunc(scheme)
	}

	return ParseKnownScheme(scheme).DefaultPort()
}

// normalizedHost lower-cases the host, collapses it to its canonical
// net/netip form for an IP literal, and optionally punycode-encodes a
// non-ASCII DNS name.
func (u *Url) normalizedHost(o *normalizeOptions) (string, error) {
	switch u.hostType {
	case HostIPv4, HostIPv6:
		addr, err := netip.ParseAddr(u.bracketlessHost())
		if err != nil {
			return "", errorsJoin(ErrInvalidHostAddress, err)
		}
		if u.hostType == HostIPv6 {
			return "[" + addr.String() + "]", nil
		}

		return addr.String(), nil
	case HostIPvFuture:
		return strings.ToLower(u.region(compHost)), nil
	default:
		decoded, err := PolicyRegName.Decode(u.region(compHost))
		if err != nil {
			decoded = u.region(compHost)
		}

		lowered := strings.ToLower(decoded)
		nfc := norm.NFC.String(lowered)

		if o.asciiHost && nfc != "" {
			ascii, err := idna.ToASCII(nfc)
			if err == nil {
				return ascii, nil
			}
		}

		return PolicyRegName.EncodeString(nfc), nil
	}
}

// cleanPath removes "." and ".." segments from an already-percent-encoded
// path, in the manner of RFC 3986 §5.2.4, operating on its encoded segments
// so it never has to re-validate decoded bytes. It differs from that
// algorithm in two ways: empty segments are dropped too (so "/a//b" becomes
// "/a/b"), and a final "." or ".." segment leaves no trailing '/' (so
// "/a/b/.." becomes "/a").
func cleanPath(path string) string {
	if path == "" {
		return ""
	}

	absolute := strings.HasPrefix(path, "/")
	trailingSlash := len(path) > 1 && strings.HasSuffix(path, "/")

	segments := strings.Split(path, "/")
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		default:
			out = append(out, seg)
		}
	}

	joined := strings.Join(out, "/")
	switch {
	case absolute:
		joined = "/" + joined
	case joined == "":
		return ""
	}

	if trailingSlash && !strings.HasSuffix(joined, "/") {
		joined += "/"
	}

	return joined
}
