package url

import (
	"net/netip"
	"strconv"
	"strings"
)

// parseIPv4 validates host against the RFC 3986 IPv4address production:
//
//	IPv4address = dec-octet "." dec-octet "." dec-octet "." dec-octet
//	dec-octet   = DIGIT                 ; 0-9
//	            / %x31-39 DIGIT         ; 10-99
//	            / "1" 2DIGIT            ; 100-199
//	            / "2" %x30-34 DIGIT     ; 200-249
//	            / "25" %x30-35          ; 250-255
//
// net/netip.ParseAddr alone is not strict enough here: it is happy to
// canonicalize some non-RFC-3986 octet spellings (e.g. leading zeros), so
// dec-octet is checked by hand first and netip.ParseAddr is only used
// afterwards to obtain the address value.
func parseIPv4(host string) (netip.Addr, error) {
	parts := strings.Split(host, ".")
	if len(parts) != 4 {
		return netip.Addr{}, errorsJoin(ErrInvalidHostAddress, errPrintf("IPv4 address must have 4 octets: %q", host))
	}

	for _, octet := range parts {
		if err := validateDecOctet(octet); err != nil {
			return netip.Addr{}, errorsJoin(ErrInvalidHostAddress, err)
		}
	}

	addr, err := netip.ParseAddr(host)
	if err != nil || !addr.Is4() {
		return netip.Addr{}, errorsJoin(ErrInvalidHostAddress, errPrintf("not a valid IPv4 address: %q", host))
	}

	return addr, nil
}

func validateDecOctet(octet string) error {
	if len(octet) == 0 || len(octet) > 3 {
		return errPrintf("invalid octet %q", octet)
	}

	for i := 0; i < len(octet); i++ {
		if !classDigit.Allowed(octet[i]) {
			return errPrintf("octet %q contains a non-digit", octet)
		}
	}

	if len(octet) > 1 && octet[0] == '0' {
		// a leading zero is only legal when the octet denotes "0" itself
		return errPrintf("octet %q has a disallowed leading zero", octet)
	}

	n, err := strconv.Atoi(octet)
	if err != nil || n > 255 {
		return errPrintf("octet %q out of range 0-255", octet)
	}

	return nil
}

// IsIPv4 reports whether host parses as an RFC 3986 IPv4address.
func IsIPv4(host string) bool {
	_, err := parseIPv4(host)

	return err == nil
}
