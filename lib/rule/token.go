package rule

import "strings"

// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-5.6.2-2
func IsValidToken(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if IsAlpha(c) || IsDigit(c) {
			continue
		}

		switch c {
		case '!', '#', '$', '%', '&', '\'', '*', '+',
			'-', '.', '^', '_', '`', '|', '~':
			continue
		}

		return false
	}

	return true
}

// TrimWhitespace strips leading and trailing whitespace as defined by [IsWhitespace].
func TrimWhitespace(s string) string {
	return strings.TrimFunc(s, IsWhitespace)
}
