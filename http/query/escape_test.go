package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHex(t *testing.T) {
	assert.Equal(t, [2]byte{'F', 'F'}, hex(0xFF))
	assert.Equal(t, [2]byte{'2', '0'}, hex(' '))
}

func TestUnhex(t *testing.T) {
	assert.Equal(t, byte(0xFF), unhex([2]byte{'F', 'F'}))
	assert.Equal(t, byte(0xFF), unhex([2]byte{'f', 'f'}))
	assert.Equal(t, byte(' '), unhex([2]byte{'2', '0'}))
}

func TestShouldEscape(t *testing.T) {
	literal := "!$'()*+,;-._~?/azAZ09"
	for idx := 0; idx < len(literal); idx++ {
		c := literal[idx]
		t.Run(fmt.Sprintf("literal %c", c), func(t *testing.T) {
			assert.False(t, shouldEscape(c))
		})
	}

	escaped := " &=#%@:\"<>[]{}|\\^`"
	for idx := 0; idx < len(escaped); idx++ {
		c := escaped[idx]
		t.Run(fmt.Sprintf("escaped %c", c), func(t *testing.T) {
			assert.True(t, shouldEscape(c))
		})
	}

	assert.True(t, shouldEscape(0x00))
	assert.True(t, shouldEscape(0x7F))
	assert.True(t, shouldEscape(0xE2))
}

func TestEscape(t *testing.T) {
	testcases := []struct {
		desc     string
		input    string
		expected string
	}{
		{
			desc:     "space",
			input:    "angular core",
			expected: "angular%20core",
		},
		{
			desc:     "allowed punctuation",
			input:    "a-b_c.d~e!f$g'h(i)j*k+l,m;n?o/p",
			expected: "a-b_c.d~e!f$g'h(i)j*k+l,m;n?o/p",
		},
		{
			desc:     "delimiters",
			input:    "a=b&c#d",
			expected: "a%3Db%26c%23d",
		},
		{
			desc:     "at and colon",
			input:    "user@host:8080",
			expected: "user%40host%3A8080",
		},
		{
			desc:     "multibyte",
			input:    "한글",
			expected: "%ED%95%9C%EA%B8%80",
		},
		{
			desc:     "percent",
			input:    "100%",
			expected: "100%25",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.expected, Escape(tc.input))
		})
	}
}

func TestUnescape(t *testing.T) {
	testcases := []struct {
		desc     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			desc:     "normal escaped",
			input:    "hey%20%5Bthere%5D",
			expected: "hey [there]",
		},
		{
			desc:     "normal escaped (lowercase)",
			input:    "hey%20%5bthere%5d",
			expected: "hey [there]",
		},
		{
			desc:     "plus is not a space",
			input:    "a+b",
			expected: "a+b",
		},
		{
			desc:    "malformed (not enough length)",
			input:   "hey%5",
			wantErr: true,
		},
		{
			desc:    "malformed (non-hex)",
			input:   "hey%5Z",
			wantErr: true,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			s, err := Unescape(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, s)
		})
	}
}

func TestEncoderFuncs(t *testing.T) {
	enc := EncoderFuncs{Value: func(s string) string { return "<" + s + ">" }}
	assert.Equal(t, "a b", enc.EncodeKey("a b"))
	assert.Equal(t, "<a b>", enc.EncodeValue("a b"))
}
