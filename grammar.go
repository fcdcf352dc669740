package url

import "strings"

// parseURIReference is the composed C3 grammar entry point. It validates
// raw against RFC 3986's URI-reference production:
//
//	URI-reference = URI / relative-ref
//	URI           = scheme ":" hier-part [ "?" query ] [ "#" fragment ]
//	relative-ref  = relative-part [ "?" query ] [ "#" fragment ]
//	hier-part     = "//" authority path-abempty
//	              / path-absolute / path-rootless / path-empty
//
// and returns the component index table describing byte
// offsets into raw, along with derived metadata (host type, numeric port,
// segment/param counts). When allowRelative is false, a missing scheme is
// rejected (this is Parse's "URI", not "URI reference").
func parseURIReference(raw string, allowRelative bool, isDNSScheme func(string) bool) (index, HostType, *uint16, int, int, error) {
	var ix index

	i, hasScheme, err := scanScheme(raw)
	if err != nil {
		return ix, HostNone, nil, 0, 0, err
	}
	if !hasScheme && !allowRelative {
		return ix, HostNone, nil, 0, 0, errorsJoin(ErrNoSchemeFound, errPrintf("scheme is required: %q", raw))
	}

	ix[compScheme] = 0
	if hasScheme {
		ix[compUser] = i
	} else {
		ix[compUser] = 0
	}

	qIdx, fIdx := -1, -1
	for p := i; p < len(raw); p++ {
		switch raw[p] {
		case '?':
			if qIdx < 0 {
				qIdx = p
			}
		case '#':
			fIdx = p
		}
		if fIdx >= 0 {
			break
		}
	}

	hierEnd := len(raw)
	switch {
	case qIdx >= 0:
		hierEnd = qIdx
	case fIdx >= 0:
		hierEnd = fIdx
	}

	hostType, portNumber, err := parseHierPart(raw, i, hierEnd, hasScheme, raw[:i0(hasScheme, i)], &ix, isDNSScheme)
	if err != nil {
		return ix, HostNone, nil, 0, 0, err
	}

	ix[compQuery] = hierEnd
	queryContentEnd := len(raw)
	if fIdx >= 0 {
		queryContentEnd = fIdx
	}
	if qIdx < 0 {
		queryContentEnd = hierEnd
	} else if err := PolicyQuery.Validate(raw[qIdx+1 : queryContentEnd]); err != nil {
		return ix, HostNone, nil, 0, 0, errorsJoin(ErrInvalidQuery, err)
	}

	ix[compFragment] = queryContentEnd
	if fIdx >= 0 {
		if err := PolicyFragment.Validate(raw[fIdx+1:]); err != nil {
			return ix, HostNone, nil, 0, 0, errorsJoin(ErrInvalidFragment, err)
		}
	}

	ix[compEnd] = len(raw)

	nseg := countSegments(raw[ix[compPath]:ix[compQuery]])
	nparam := countParams(raw[ix[compQuery]:ix[compFragment]])

	return ix, hostType, portNumber, nseg, nparam, nil
}

func i0(hasScheme bool, i int) int {
	if hasScheme {
		return i - 1
	}

	return 0
}

// scanScheme scans an optional "ALPHA *(ALPHA/DIGIT/+/-/.) ':'" prefix of
// raw. It returns the index right after the matched ':' (the start of the
// hier-part) and whether a scheme was found. A scheme is only recognized
// when followed immediately by ':'; any other outcome means no scheme and
// i=0.
func scanScheme(raw string) (int, bool, error) {
	if len(raw) == 0 || !classAlpha.Allowed(raw[0]) {
		return 0, false, nil
	}

	j := 1
	for j < len(raw) && classScheme.Allowed(raw[j]) {
		j++
	}

	if j >= len(raw) || raw[j] != ':' {
		return 0, false, nil
	}

	return j + 1, true, nil
}

// parseHierPart parses raw[start:end] (the hier-part or relative-part) and
// fills in ix[compUser..compPath] plus ix[compPath] itself. scheme is the
// already-validated scheme name (without colon), used only for I8 and for
// DNS-style host validation.
func parseHierPart(raw string, start, end int, hasScheme bool, scheme string, ix *index, isDNSScheme func(string) bool) (HostType, *uint16, error) {
	hier := raw[start:end]
	authorityPresent := strings.HasPrefix(hier, "//")

	var hostType HostType
	var portNumber *uint16

	if !authorityPresent {
		ix[compUser] = start
		ix[compPassword] = start
		ix[compHost] = start
		ix[compPort] = start
		ix[compPath] = start

		if err := validatePath(hier, hasScheme, false); err != nil {
			return HostNone, nil, err
		}

		return HostNone, nil, nil
	}

	afterSlashes := hier[2:]
	pathRelStart := len(afterSlashes)
	if slash := strings.IndexByte(afterSlashes, '/'); slash >= 0 {
		pathRelStart = slash
	}
	authorityStr := afterSlashes[:pathRelStart]
	pathStart := start + 2 + pathRelStart

	ix[compPath] = pathStart
	if err := validatePath(raw[pathStart:end], hasScheme, true); err != nil {
		return HostNone, nil, err
	}

	atIdx := -1
	if bracket := strings.IndexByte(authorityStr, '['); bracket < 0 {
		atIdx = strings.IndexByte(authorityStr, '@')
	} else {
		// '@' cannot legally appear inside an IP-literal; only look for it
		// before the bracket (userinfo is required to precede the host).
		if at := strings.IndexByte(authorityStr[:bracket], '@'); at >= 0 {
			atIdx = at
		}
	}

	userinfoAbs := start + 2
	hostPortStart := userinfoAbs

	if atIdx >= 0 {
		userinfoStr := authorityStr[:atIdx]
		if err := PolicyUserInfo.Validate(userinfoStr); err != nil {
			return HostNone, nil, errorsJoin(ErrInvalidUserInfo, err)
		}

		colonIdx := strings.IndexByte(userinfoStr, ':')
		if colonIdx < 0 {
			ix[compUser] = userinfoAbs - 2
			ix[compPassword] = userinfoAbs + len(userinfoStr)
		} else {
			ix[compUser] = userinfoAbs - 2
			ix[compPassword] = userinfoAbs + colonIdx
		}

		hostPortStart = userinfoAbs + atIdx + 1
	} else {
		ix[compUser] = userinfoAbs - 2
		ix[compPassword] = hostPortStart
	}

	hostPortStr := authorityStr[hostPortStart-userinfoAbs:]

	hostStr, portStr, hostRelEnd := splitHostPort(hostPortStr)
	ix[compHost] = hostPortStart
	ix[compPort] = hostPortStart + hostRelEnd

	var err error
	hostType, err = validateHost(hostStr, scheme, isDNSScheme)
	if err != nil {
		return HostNone, nil, err
	}

	if len(portStr) > 0 {
		if err := validatePortDigits(portStr, hostStr); err != nil {
			return HostNone, nil, err
		}
		portNumber = parsePortNumber(portStr)
	}

	return hostType, portNumber, nil
}

// splitHostPort splits hostPort (everything in the authority after any
// userinfo "@") into its host and port substrings, returning also the
// byte offset within hostPort where the port region (including its
// leading ':' when present) begins.
func splitHostPort(hostPort string) (host, port string, portRegionStart int) {
	if len(hostPort) > 0 && hostPort[0] == '[' {
		closeIdx := strings.IndexByte(hostPort, ']')
		if closeIdx < 0 {
			return hostPort, "", len(hostPort)
		}

		rest := hostPort[closeIdx+1:]
		if len(rest) > 0 && rest[0] == ':' {
			return hostPort[:closeIdx+1], rest[1:], closeIdx + 1
		}

		return hostPort[:closeIdx+1], "", len(hostPort)
	}

	if colon := strings.IndexByte(hostPort, ':'); colon >= 0 {
		return hostPort[:colon], hostPort[colon+1:], colon
	}

	return hostPort, "", len(hostPort)
}

// validateHost validates host (the literal region, brackets included for
// IP-literals) and classifies it. isDNSScheme decides whether scheme's host
// must additionally satisfy the stricter RFC 1035 DNS-name grammar; a nil
// isDNSScheme falls back to the package-level UsesDNSHostValidation.
func validateHost(host, scheme string, isDNSScheme func(string) bool) (HostType, error) {
	if len(host) == 0 {
		return HostNone, nil
	}

	if host[0] == '[' {
		if host[len(host)-1] != ']' {
			return HostNone, errorsJoin(ErrInvalidHost, errPrintf("IP-literal missing closing bracket: %q", host))
		}

		_, ht, err := parseIPLiteral(host[1 : len(host)-1])
		if err != nil {
			return HostNone, errorsJoin(ErrInvalidHost, err)
		}

		return ht, nil
	}

	if _, err := parseIPv4(host); err == nil {
		return HostIPv4, nil
	}

	if isDNSScheme == nil {
		isDNSScheme = UsesDNSHostValidation
	}

	if isDNSScheme(scheme) {
		if err := validateDNSHostForScheme(host); err != nil {
			return HostNone, errorsJoin(ErrInvalidHost, err)
		}
	}

	if err := PolicyRegName.Validate(host); err != nil {
		return HostNone, errorsJoin(ErrInvalidRegisteredName, err)
	}

	return HostName, nil
}

// validatePortDigits validates the port production: port = *DIGIT. An
// empty host with a non-empty port is a structural error.
func validatePortDigits(port, host string) error {
	for i := 0; i < len(port); i++ {
		if !classDigit.Allowed(port[i]) {
			return errorsJoin(ErrInvalidPort, errPrintf("port must be all digits: %q", port))
		}
	}

	if host == "" {
		return errorsJoin(ErrMissingHost, errPrintf("a port requires a host"))
	}

	return nil
}

// parsePortNumber returns the numeric value of port iff it fits in a
// uint16.
func parsePortNumber(port string) *uint16 {
	var n uint32
	for i := 0; i < len(port); i++ {
		n = n*10 + uint32(port[i]-'0')
		if n > 0xFFFF {
			return nil
		}
	}

	v := uint16(n)

	return &v
}

// validatePath enforces the context-sensitive path constraint: which of path-abempty / path-absolute / path-rootless /
// path-noscheme applies depends on whether an authority and/or scheme is
// present.
func validatePath(path string, hasScheme, hasAuthority bool) error {
	switch {
	case hasAuthority:
		if len(path) > 0 && path[0] != '/' {
			return errorsJoin(ErrInvalidPath, errPrintf("path must be empty or start with '/' when an authority is present: %q", path))
		}
	case strings.HasPrefix(path, "//"):
		return errorsJoin(ErrInvalidPath, errPrintf("path cannot start with '//' without an authority: %q", path))
	case hasScheme:
		// path-rootless / path-absolute / path-empty: no further
		// first-segment restriction beyond pchar.
	default:
		// path-noscheme / path-absolute / path-empty: first segment must
		// not contain an unencoded ':'.
		firstSegEnd := strings.IndexByte(path, '/')
		firstSeg := path
		if firstSegEnd >= 0 {
			firstSeg = path[:firstSegEnd]
		}
		if strings.IndexByte(firstSeg, ':') >= 0 && (len(path) == 0 || path[0] != '/') {
			return errorsJoin(ErrInvalidPath, errPrintf("first segment of a schemeless relative path cannot contain ':': %q", firstSeg))
		}
	}

	return validatePathChars(path)
}

// validatePathChars validates every segment of path against pchar, with
// '/' as the separator.
func validatePathChars(path string) error {
	start := 0
	for i := 0; i <= len(path); i++ {
		if i < len(path) && path[i] != '/' {
			continue
		}
		if i > start {
			if err := PolicyPath.Validate(path[start:i]); err != nil {
				return errorsJoin(ErrInvalidPath, err)
			}
		}
		start = i + 1
	}

	return nil
}

// countSegments counts the '/'-separated segments of a path region,
// consistent with the PathSegments iterator: a single leading '/' is
// skipped before counting, so "/a/b" and "a/b" both report 2 segments
// and a bare "/" reports 1 (its one empty trailing segment).
func countSegments(path string) int {
	if path == "" {
		return 0
	}

	if path[0] == '/' {
		path = path[1:]
	}

	if path == "" {
		return 1
	}

	return strings.Count(path, "/") + 1
}

// countParams counts the '&'-separated key[=value] pairs of a query
// region (including its leading '?'), consistent with the QueryParams
// iterator.
func countParams(query string) int {
	if len(query) <= 1 {
		return 0
	}

	return strings.Count(query[1:], "&") + 1
}
