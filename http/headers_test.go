package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHeaders(t *testing.T) {
	initial := map[string][]string{
		"Hello":     {"world!"},
		"some-word": {"A"},
	}

	h := NewHeaders(initial)

	assert.Equal(t, []string{"Hello", "Some-Word"}, h.Keys())
	v, ok := h.Get("SOME-WORD")
	assert.True(t, ok)
	assert.Equal(t, "A", v)

	initial["Hello"][0] = "there"

	v, _ = h.Get("hello")
	assert.Equal(t, "world!", v)
}

func TestNewHeadersCollapsesCase(t *testing.T) {
	h := NewHeaders(map[string][]string{
		"X-Token": {"a"},
		"x-token": {"b", "c"},
	})

	assert.Equal(t, 1, h.Len())
	values, ok := h.Values("X-TOKEN")
	assert.True(t, ok)
	assert.Equal(t, []string{"b", "c"}, values)
}

func TestHeadersFromResponseString(t *testing.T) {
	raw := "Date: Fri, 20 Nov 2015 01:45:26 GMT\r\n" +
		"Content-Type: application/json; charset=utf-8\r\n" +
		"Transfer-Encoding: chunked\r\n" +
		"Set-Cookie: a=1\r\n" +
		"set-cookie: b=2\r\n" +
		": no-name\r\n" +
		"garbage line\r\n"

	h := HeadersFromResponseString(raw)

	assert.Equal(t, []string{"Date", "Content-Type", "Transfer-Encoding", "Set-Cookie"}, h.Keys())

	v, ok := h.Get("date")
	assert.True(t, ok)
	assert.Equal(t, "Fri, 20 Nov 2015 01:45:26 GMT", v)

	v, _ = h.Get("content-type")
	assert.Equal(t, "application/json; charset=utf-8", v)

	values, _ := h.Values("Set-Cookie")
	assert.Equal(t, []string{"a=1", "b=2"}, values)
}

func TestHeadersAppendSet(t *testing.T) {
	h := NewHeaders(nil)
	h.Append("Accept", "text/html")
	h.Append("accept", "application/json")

	values, ok := h.Values("ACCEPT")
	require.True(t, ok)
	assert.Equal(t, []string{"text/html", "application/json"}, values)

	h.Set("Accept", "*/*")
	values, _ = h.Values("Accept")
	assert.Equal(t, []string{"*/*"}, values)

	h.SetValues("Accept", []string{"a", "b"})
	v, _ := h.Get("Accept")
	assert.Equal(t, "a,b", v)

	h.SetValues("Accept", nil)
	v, _ = h.Get("Accept")
	assert.Equal(t, "a,b", v)
}

func TestHeadersGet(t *testing.T) {
	h := NewHeaders(map[string][]string{
		"abc": {"abc", "def"},
		"ghi": {},
	})

	v, ok := h.Get("abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	_, ok = h.Get("ghi")
	assert.False(t, ok)

	_, ok = h.Get("missing")
	assert.False(t, ok)

	_, ok = h.Values("missing")
	assert.False(t, ok)
}

func TestHeadersDelete(t *testing.T) {
	h := NewHeaders(map[string][]string{
		"A": {"a"},
		"B": {"b"},
	})

	h.Delete("a")
	assert.False(t, h.Has("A"))
	assert.Equal(t, []string{"B"}, h.Keys())

	assert.NotPanics(t, func() { h.Delete("missing") })
}

func TestHeadersNonTokenName(t *testing.T) {
	h := NewHeaders(nil)
	h.Set("weird name", "x")

	assert.Equal(t, []string{"weird name"}, h.Keys())
	assert.True(t, h.Has("WEIRD NAME"))
}

func TestHeadersFields(t *testing.T) {
	h := NewHeaders(map[string][]string{
		"a": {"1"},
		"B": {"2", "3"},
	})

	fields := h.Fields()
	assert.Equal(t, map[string][]string{
		"A": {"1"},
		"B": {"2", "3"},
	}, fields)

	fields["A"][0] = "mutated"
	v, _ := h.Get("A")
	assert.Equal(t, "1", v)
}

func TestHeadersForEach(t *testing.T) {
	h := NewHeaders(nil)
	h.Append("b", "1")
	h.Append("a", "2")

	var names []string
	h.ForEach(func(name string, values []string) {
		names = append(names, name)
	})
	assert.Equal(t, []string{"B", "A"}, names)
}

func TestHeadersLineAndString(t *testing.T) {
	h := NewHeaders(nil)
	h.Append("Accept", "text/html")
	h.Append("Accept", "a b")
	h.Set("X-Id", "1")

	assert.Equal(t, `text/html, "a b"`, h.Line("accept"))
	assert.Equal(t, "Accept: text/html, \"a b\"\r\nX-Id: 1\r\n", h.String())
}

func TestHeadersClone(t *testing.T) {
	h := NewHeaders(map[string][]string{"A": {"1"}})
	clone := h.Clone()
	assert.Equal(t, h, clone)

	clone.Append("A", "2")
	clone.Set("B", "3")

	values, _ := h.Values("A")
	assert.Equal(t, []string{"1"}, values)
	assert.False(t, h.Has("B"))

	var nilHeaders *Headers
	assert.Nil(t, nilHeaders.Clone())
}

func TestHeadersZeroValue(t *testing.T) {
	var h Headers
	assert.False(t, h.Has("a"))
	h.Set("a", "1")
	assert.Equal(t, []string{"A"}, h.Keys())
}

func TestHeadersNilReads(t *testing.T) {
	var h *Headers

	v, ok := h.Get("a")
	assert.False(t, ok)
	assert.Equal(t, "", v)

	values, ok := h.Values("a")
	assert.False(t, ok)
	assert.Nil(t, values)

	assert.False(t, h.Has("a"))
	assert.Empty(t, h.Keys())
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Fields())
	assert.Equal(t, "", h.Line("a"))
	assert.Equal(t, "", h.String())

	called := false
	h.ForEach(func(string, []string) { called = true })
	assert.False(t, called)
}

func TestToCanonicalFieldName(t *testing.T) {
	assert.Equal(t, "Content-Type", toCanonicalFieldName("content-TYPE"))
	assert.Equal(t, "X-Xsrf-Token", toCanonicalFieldName("x-xsrf-token"))
}
