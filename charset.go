package url

import (
	"unicode/utf8"

	"github.com/bits-and-blooms/bitset"
)

// charClass answers, for a single byte, whether that byte may appear
// unencoded within a given RFC 3986 component. Classes are expressed as a
// 256-entry bitset, with one instance per named grammar production so the
// percent-encoding engine can compute an encoded size ahead of a splice
// using the mask for the destination component.
type charClass struct {
	*bitset.BitSet
}

func newCharClass(members ...byte) charClass {
	c := charClass{BitSet: bitset.New(256)}
	for _, b := range members {
		c.Set(uint(b))
	}

	return c
}

// Allowed reports whether b may appear unencoded in this class.
func (c charClass) Allowed(b byte) bool {
	return c.Test(uint(b))
}

func (c charClass) allowRange(lo, hi byte) charClass {
	for b := int(lo); b <= int(hi); b++ {
		c.Set(uint(b))
	}

	return c
}

func (c charClass) clone() charClass {
	return charClass{BitSet: c.BitSet.Clone()}
}

func (c charClass) union(others ...charClass) charClass {
	out := c.clone()
	for _, o := range others {
		out.BitSet = out.BitSet.Union(o.BitSet)
	}

	return out
}

func (c charClass) with(members ...byte) charClass {
	out := c.clone()
	for _, b := range members {
		out.Set(uint(b))
	}

	return out
}

// Character classes per RFC 3986, built once at init time and treated as
// read-only process-wide state.
var (
	classAlpha      charClass
	classDigit      charClass
	classHexDig     charClass
	classUnreserved charClass
	classSubDelims  charClass
	classGenDelims  charClass

	classUserInfoNC charClass // unreserved | sub-delims
	classUserInfo   charClass // userinfo-nc | ":"
	classRegName    charClass // unreserved | sub-delims | pct-encoded (pct handled separately)
	classPChar      charClass // unreserved | sub-delims | ":" | "@"
	classQuery      charClass // pchar | "/" | "?"
	classFragment   charClass // pchar | "/" | "?"
	classQKey       charClass // pchar | "/" | "?" minus "=" minus "&"
	classQVal       charClass // qkey | "="
	classScheme     charClass // ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
)

func init() {
	classAlpha = newCharClass().allowRange('a', 'z').allowRange('A', 'Z')
	classDigit = newCharClass().allowRange('0', '9')
	classHexDig = classDigit.union(newCharClass().allowRange('a', 'f').allowRange('A', 'F'))

	classUnreserved = classAlpha.union(classDigit).with('-', '.', '_', '~')
	classSubDelims = newCharClass('!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=')
	classGenDelims = newCharClass(':', '/', '?', '#', '[', ']', '@')

	classUserInfoNC = classUnreserved.union(classSubDelims)
	classUserInfo = classUserInfoNC.with(':')
	classRegName = classUnreserved.union(classSubDelims)
	classPChar = classUserInfoNC.with(':', '@')
	classQuery = classPChar.with('/', '?')
	classFragment = classPChar.with('/', '?')
	classQKey = classUnreserved.union(newCharClass('!', '$', '\'', '(', ')', '*', '+', ',', ';')).with(':', '@', '/', '?')
	classQVal = classQKey.with('=')
	classScheme = classAlpha.union(classDigit).with('+', '-', '.')
}

// validateASCIIComponent validates a component string against a mask,
// accepting well-formed %HH escapes regardless of class membership and
// rejecting any other byte not present in the mask. Operates byte-wise,
// with no UTF-8 decoding, so raw multi-byte UTF-8 is rejected as a set of
// illegal bytes rather than inspected rune by rune.
func validateASCIIComponent(s string, mask charClass) error {
	for i := 0; i < len(s); {
		b := s[i]
		if b == '%' {
			if i+2 >= len(s) || !classHexDig.Allowed(s[i+1]) || !classHexDig.Allowed(s[i+2]) {
				return errorsJoin(ErrBadPercentHexDigit,
					errInvalidEscapeNear(s[i:]))
			}
			i += 3

			continue
		}

		if !mask.Allowed(b) {
			return errorsJoin(ErrIllegalReservedChar, errIllegalByteNear(b, s[i:]))
		}

		i++
	}

	return nil
}

func errInvalidEscapeNear(near string) error {
	if len(near) > 8 {
		near = near[:8]
	}

	return errPrintf("malformed percent-encoded sequence near %q", near)
}

func errIllegalByteNear(b byte, near string) error {
	if len(near) > 8 {
		near = near[:8]
	}

	return errPrintf("illegal character %q near %q", rune(b), near)
}

// utf8Valid reports whether s is well-formed UTF-8, used only by
// normalization, which operates on decoded runes; grammar validation and
// percent-encoding stay strictly byte-oriented.
func utf8Valid(s string) bool {
	return utf8.ValidString(s)
}
