package query

import (
	"strings"

	"github.com/pkg/errors"
)

func hex(c byte) (h [2]byte) {
	const hexSet = "0123456789ABCDEF"
	h[0] = hexSet[c>>4]
	h[1] = hexSet[c&0xF]
	return
}

func unhex(h [2]byte) (c byte) {
	return (hexToNum(h[0]) << 4) | hexToNum(h[1])
}

func hexToNum(h byte) byte {
	switch {
	case '0' <= h && h <= '9':
		return h - '0'
	case 'a' <= h && h <= 'f':
		return h - 'a' + 10
	case 'A' <= h && h <= 'F':
		return h - 'A' + 10
	}
	return 0
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-2.3
func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return false
}

// shouldEscape reports whether c must be percent-encoded inside a single
// query component (a key or a value).
// '&' and '=' delimit components, so they are escaped even though they are sub-delims.
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.4
func shouldEscape(c byte) bool {
	if isUnreserved(c) {
		return false
	}

	switch c {
	case '!', '$', '\'', '(', ')', '*', '+', ',', ';':
		return false
	case '?', '/':
		return false
	}

	return true
}

// Escape percent-encodes every byte of s that is not allowed literally in a
// query component. Hex digits are uppercase.
func Escape(s string) string {
	b := new(strings.Builder)
	b.Grow(len(s))

	for idx := 0; idx < len(s); idx++ {
		c := s[idx]
		if shouldEscape(c) {
			hex := hex(c)
			b.Write([]byte{'%', hex[0], hex[1]})
		} else {
			b.WriteByte(c)
		}
	}

	return b.String()
}

// Unescape decodes percent-encoded octets in s.
// '+' is kept as is since [StandardEncoder] never produces it for a space.
func Unescape(s string) (string, error) {
	if !strings.Contains(s, "%") {
		return s, nil
	}

	b := new(strings.Builder)
	b.Grow(len(s))

	for idx := 0; idx < len(s); idx++ {
		c := s[idx]
		if c == '%' {
			if idx+2 >= len(s) || !isHex(s[idx+1]) || !isHex(s[idx+2]) {
				bad := s[idx:min(len(s), idx+3)]
				return "", errors.Errorf("percent encoding not properly applied: %q", bad)
			}
			b.WriteByte(unhex([2]byte{s[idx+1], s[idx+2]}))
			idx += 2
			continue
		}
		b.WriteByte(c)
	}

	return b.String(), nil
}
