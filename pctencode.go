package url

import "strings"

const upperhex = "0123456789ABCDEF"

// Policy pairs a character class with the percent-encoding behavior to
// apply around it. A Policy is immutable once built and is safe for
// concurrent use across many Url instances.
type Policy struct {
	mask charClass
	// plusIsLiteral marks the "key/value" policy: '+' is treated as an
	// ordinary allowed byte, never decoded to space. The container itself
	// is form-encoding agnostic; callers that want application/
	// x-www-form-urlencoded semantics convert at their own boundary.
	plusIsLiteral bool
}

// Predefined policies for each addressable component.
var (
	PolicyUserInfo = Policy{mask: classUserInfo}
	PolicyRegName  = Policy{mask: classRegName}
	PolicyPath     = Policy{mask: classPChar}
	PolicyQuery    = Policy{mask: classQuery, plusIsLiteral: true}
	PolicyFragment = Policy{mask: classFragment}
	PolicyQueryKey = Policy{mask: classQKey, plusIsLiteral: true}
	PolicyQueryVal = Policy{mask: classQVal, plusIsLiteral: true}
)

// EncodedSize returns the number of bytes needed to percent-encode raw
// under p: each byte outside p's mask expands to 3 bytes ("%HH").
func (p Policy) EncodedSize(raw string) int {
	n := len(raw)
	for i := 0; i < len(raw); i++ {
		if !p.allowedRaw(raw[i]) {
			n += 2
		}
	}

	return n
}

// Encode writes the percent-encoded form of raw into dst, which must be at
// least p.EncodedSize(raw) bytes long, and returns the number of bytes
// written. Hex digits are always emitted upper case.
func (p Policy) Encode(raw string, dst []byte) int {
	n := 0
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if p.allowedRaw(b) {
			dst[n] = b
			n++

			continue
		}

		dst[n] = '%'
		dst[n+1] = upperhex[b>>4]
		dst[n+2] = upperhex[b&0x0f]
		n += 3
	}

	return n
}

// EncodeString is a convenience wrapper around Encode for callers that do
// not already own a destination buffer.
func (p Policy) EncodeString(raw string) string {
	var b strings.Builder
	b.Grow(p.EncodedSize(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if p.allowedRaw(c) {
			b.WriteByte(c)

			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}

	return b.String()
}

// Validate succeeds iff every byte of s is either a member of p's mask or
// part of a well-formed %HH triplet (either case accepted on parse).
func (p Policy) Validate(s string) error {
	for i := 0; i < len(s); {
		b := s[i]
		if b == '%' {
			if i+2 >= len(s) || !classHexDig.Allowed(s[i+1]) || !classHexDig.Allowed(s[i+2]) {
				return errorsJoin(ErrBadPercentHexDigit, errInvalidEscapeNear(s[i:]))
			}
			i += 3

			continue
		}

		if !p.mask.Allowed(b) {
			return errorsJoin(ErrIllegalReservedChar, errIllegalByteNear(b, s[i:]))
		}

		i++
	}

	return nil
}

// DecodedSize returns the length, in bytes, of Decode(s)'s result, without
// allocating it. s is assumed to have already passed Validate.
func (p Policy) DecodedSize(s string) int {
	n := 0
	for i := 0; i < len(s); {
		if s[i] == '%' {
			i += 3
		} else {
			i++
		}
		n++
	}

	return n
}

// Decode validates then decodes s, the inverse of Encode. Decoding a
// sequence encoded under a different policy that happens to validate under
// this one still round-trips correctly, since decoding never consults the
// mask — only Validate does.
func (p Policy) Decode(s string) (string, error) {
	if err := p.Validate(s); err != nil {
		return "", err
	}

	return p.decodeUnchecked(s), nil
}

func (p Policy) decodeUnchecked(s string) string {
	var b strings.Builder
	b.Grow(p.DecodedSize(s))
	for i := 0; i < len(s); {
		if s[i] == '%' {
			b.WriteByte(unhexByte(s[i+1])<<4 | unhexByte(s[i+2]))
			i += 3

			continue
		}

		b.WriteByte(s[i])
		i++
	}

	return b.String()
}

func (p Policy) allowedRaw(b byte) bool {
	if p.plusIsLiteral && b == '+' {
		return true
	}

	return p.mask.Allowed(b)
}

func unhexByte(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}

	return 0
}

// normalizePercentCase rewrites every %HH escape in s so its hex digits are
// upper case, leaving everything else untouched. Used by normalization
// only. The plain setters always write upper case via Policy.Encode;
// lower-case escapes reach a Url only through input that arrives
// pre-encoded, e.g. through Parse or SetEncodedX, which store it verbatim.
func normalizePercentCase(s string) string {
	hasLower := false
	for i := 0; i+2 < len(s); i++ {
		if s[i] == '%' && isLowerHex(s[i+1]) || s[i] == '%' && isLowerHex(s[i+2]) {
			hasLower = true

			break
		}
	}
	if !hasLower {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			b.WriteByte('%')
			b.WriteByte(upperHexDigit(s[i+1]))
			b.WriteByte(upperHexDigit(s[i+2]))
			i += 2

			continue
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

func isLowerHex(c byte) bool { return c >= 'a' && c <= 'f' }

func upperHexDigit(c byte) byte {
	if c >= 'a' && c <= 'f' {
		return c - 'a' + 'A'
	}

	return c
}
