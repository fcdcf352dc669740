package url

import (
	"hash/crc64"
	"strings"
)

// KnownScheme is the fixed enum of schemes the package special-cases for
// default-port lookup and DNS-style host validation.
type KnownScheme uint8

const (
	SchemeUnknown KnownScheme = iota
	SchemeNone
	SchemeFTP
	SchemeFile
	SchemeHTTP
	SchemeHTTPS
	SchemeWS
	SchemeWSS
)

func (k KnownScheme) String() string {
	switch k {
	case SchemeNone:
		return ""
	case SchemeFTP:
		return "ftp"
	case SchemeFile:
		return "file"
	case SchemeHTTP:
		return "http"
	case SchemeHTTPS:
		return "https"
	case SchemeWS:
		return "ws"
	case SchemeWSS:
		return "wss"
	default:
		return "unknown"
	}
}

// ParseKnownScheme maps a scheme name (case-insensitive) to its KnownScheme
// value, or SchemeUnknown if it is not one of the fixed set. An empty
// string maps to SchemeNone.
func ParseKnownScheme(scheme string) KnownScheme {
	if scheme == "" {
		return SchemeNone
	}

	switch strings.ToLower(scheme) {
	case "ftp":
		return SchemeFTP
	case "file":
		return SchemeFile
	case "http":
		return SchemeHTTP
	case "https":
		return SchemeHTTPS
	case "ws":
		return SchemeWS
	case "wss":
		return SchemeWSS
	default:
		return SchemeUnknown
	}
}

// DefaultPort returns the well-known port number for k, if any.
func (k KnownScheme) DefaultPort() (uint16, bool) {
	switch k {
	case SchemeFTP:
		return 21, true
	case SchemeHTTP, SchemeWS:
		return 80, true
	case SchemeHTTPS, SchemeWSS:
		return 443, true
	default:
		return 0, false
	}
}

// crc64DNSHash speeds up UsesDNSHostValidation for hot parse loops. The
// readable table below (dnsHostValidationSchemes) is the source of truth;
// this hash map is derived from it once at init.
var crc64DNSHash = crc64.MakeTable(crc64.ISO)

var dnsSchemesHashSet map[uint64]struct{}

func init() {
	dnsSchemesHashSet = make(map[uint64]struct{}, len(dnsHostValidationSchemes))
	for _, scheme := range dnsHostValidationSchemes {
		dnsSchemesHashSet[crc64.Checksum([]byte(scheme), crc64DNSHash)] = struct{}{}
	}
}

// dnsHostValidationSchemes lists schemes whose host component is expected
// to be a DNS name (RFC 1035) rather than a bare RFC 3986 reg-name.
//
// See: https://www.iana.org/assignments/uri-schemes/uri-schemes.xhtml
var dnsHostValidationSchemes = []string{
	"https", "http",
	"aaa", "aaas", "acap", "acct",
	"cap", "cid",
	"coap", "coaps", "coap+tcp", "coap+ws", "coaps+tcp", "coaps+ws",
	"dav", "dict",
	"dns",
	"dntp",
	"finger",
	"ftp",
	"git",
	"gopher",
	"h323",
	"iax",
	"icap",
	"im",
	"imap",
	"ipp", "ipps",
	"irc", "irc6", "ircs",
	"jms",
	"ldap",
	"mailto",
	"mid",
	"msrp", "msrps",
	"nfs",
	"nntp",
	"ntp",
	"postgresql",
	"radius",
	"redis",
	"rmi",
	"rtsp", "rtsps", "rtspu",
	"rsync",
	"sftp",
	"skype",
	"smtp",
	"snmp",
	"soap",
	"ssh",
	"steam",
	"svn",
	"tcp",
	"telnet",
	"udp",
	"vnc",
	"wais",
	"ws",
	"wss",
}

// UsesDNSHostValidation returns true if the provided scheme (matched
// case-insensitively) has host validation that follows RFC 1035
// DNS naming rather than the generic RFC 3986 reg-name grammar.
//
// This is declared as a package-level variable so it may be overridden.
var UsesDNSHostValidation = func(scheme string) bool {
	_, ok := dnsSchemesHashSet[crc64.Checksum([]byte(strings.ToLower(scheme)), crc64DNSHash)]

	return ok
}
