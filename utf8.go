package rope

// codepointSize returns the total byte length of the UTF-8 scalar value
// whose lead byte is b, or 0 if b cannot legally start a scalar value.
//
// This intentionally recognizes the pre-RFC-3629 5- and 6-byte lead-byte
// ranges (0xF8-0xFD) in addition to the modern 1-4 byte forms: the node
// splitter below only needs to find scalar boundaries and never decodes
// a codepoint's semantic value, so accepting the wider historical range
// costs nothing and matches the reference implementation this package is
// ported from.
func codepointSize(b byte) int {
	switch {
	case b == 0x00:
		return 0 // the rope stores no NUL byte
	case b <= 0x7f:
		return 1
	case b <= 0xbf:
		return 0 // continuation byte, invalid as a lead byte
	case b <= 0xdf:
		return 2
	case b <= 0xef:
		return 3
	case b <= 0xf7:
		return 4
	case b <= 0xfb:
		return 5
	case b <= 0xfd:
		return 6
	default:
		return 0 // 0xfe, 0xff: invalid
	}
}

// needsTwoWChars reports whether the scalar value led by b costs two
// UTF-16 code units (non-BMP, 4-byte UTF-8 lead bytes 0xf0-0xf7).
func needsTwoWChars(b byte) bool {
	return b >= 0xf0 && b <= 0xf7
}

// validateAndCountBytes scans str, verifying every lead byte is legal and
// every continuation byte matches 0b10xxxxxx. It returns the number of
// bytes in str and ok=true if str is well-formed; otherwise ok=false and
// the rope must be left unchanged.
func validateAndCountBytes(str []byte) (n int, ok bool) {
	p := 0
	for p < len(str) {
		size := codepointSize(str[p])
		if size == 0 {
			return 0, false
		}
		p++
		for size > 1 {
			if p >= len(str) || str[p]&0xc0 != 0x80 {
				return 0, false
			}
			p++
			size--
		}
	}
	return p, true
}

// bytesInFirstNChars walks forward n scalar values in str and returns the
// number of bytes consumed. str must contain at least n whole scalars.
func bytesInFirstNChars(str []byte, n int) int {
	p := 0
	for i := 0; i < n; i++ {
		p += codepointSize(str[p])
	}
	return p
}

// charsInFirstNBytes returns the number of whole scalar values in
// str[:nBytes]. nBytes must land exactly on a scalar boundary.
func charsInFirstNBytes(str []byte, nBytes int) int {
	p := 0
	chars := 0
	for p < nBytes {
		p += codepointSize(str[p])
		chars++
	}
	return chars
}

// wcharsInFirstNChars returns the number of UTF-16 code units needed to
// represent the first n scalar values of str.
func wcharsInFirstNChars(str []byte, n int) int {
	p := 0
	wchars := 0
	for i := 0; i < n; i++ {
		if needsTwoWChars(str[p]) {
			wchars += 2
		} else {
			wchars++
		}
		p += codepointSize(str[p])
	}
	return wchars
}

// charsInFirstNWChars returns the number of whole scalar values whose
// UTF-16 encoding occupies the first nWChars code units of str.
//
// Passing an nWChars that lands between a surrogate pair's high and low
// unit is a caller error: the spec declares this case undefined, and this
// function does not guard against it (see original_source's
// count_utf8_in_wchars, whose boundary behavior this preserves).
func charsInFirstNWChars(str []byte, nWChars int) int {
	p := 0
	chars := 0
	for i := 0; i < nWChars; i++ {
		chars++
		if needsTwoWChars(str[p]) {
			i++
		}
		p += codepointSize(str[p])
	}
	return chars
}
