// Package rule holds character classes shared by the header and query code.
package rule

// whitespaces are trimmed around header names and values.
var whitespaces = []byte{' ', '\t', 0x0B, 0x0C, '\r'}

func IsWhitespace(r rune) bool {
	for _, ws := range whitespaces {
		if r == rune(ws) {
			return true
		}
	}
	return false
}

func IsAlpha(r rune) bool { return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') }
func IsDigit(r rune) bool { return '0' <= r && r <= '9' }
