package http

import (
	"legacy-http/lib/rule"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Headers is an ordered, case-insensitive, multi-valued header map.
// Names are reported in the order they were first added.
// Read methods treat a nil *Headers as empty; writes need a non-nil receiver.
type Headers struct {
	names      []string // lowercased, insertion order
	display    map[string]string
	underlying map[string][]string
}

// NewHeaders copies initial into a new header map.
// Since maps are unordered, names are added in sorted order.
// Names differing only in case collapse, the later one in sorted order wins.
func NewHeaders(initial map[string][]string) *Headers {
	h := &Headers{
		display:    make(map[string]string, len(initial)),
		underlying: make(map[string][]string, len(initial)),
	}

	names := make([]string, 0, len(initial))
	for name := range initial {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		h.Delete(name)
		for _, v := range initial[name] {
			h.Append(name, v)
		}
	}

	return h
}

// HeadersFromResponseString parses a raw header block with one "Name: value" per line.
// Lines without a name before the colon are ignored.
// Repeated names accumulate their values.
func HeadersFromResponseString(raw string) *Headers {
	h := NewHeaders(nil)
	for _, line := range strings.Split(raw, "\n") {
		idx := strings.IndexByte(line, ':')
		if idx <= 0 {
			continue
		}
		name := rule.TrimWhitespace(line[:idx])
		if name == "" {
			continue
		}
		h.Append(name, rule.TrimWhitespace(line[idx+1:]))
	}
	return h
}

func (h *Headers) init() {
	if h.underlying == nil {
		h.underlying = make(map[string][]string)
		h.display = make(map[string]string)
	}
}

// Append adds value to the existing values of name.
func (h *Headers) Append(name, value string) {
	h.init()
	key := h.remember(name)
	h.underlying[key] = append(h.underlying[key], value)
}

// Set overwrites every existing value of name.
func (h *Headers) Set(name, value string) {
	h.init()
	key := h.remember(name)
	h.underlying[key] = []string{value}
}

// SetValues sets name to the comma-joined values.
// An empty list leaves the header untouched.
func (h *Headers) SetValues(name string, values []string) {
	if len(values) == 0 {
		return
	}
	h.Set(name, strings.Join(values, ","))
}

func (h *Headers) Delete(name string) {
	key := strings.ToLower(name)
	if _, ok := h.underlying[key]; !ok {
		return
	}
	delete(h.underlying, key)
	delete(h.display, key)
	h.names = slices.DeleteFunc(h.names, func(n string) bool { return n == key })
}

// Get assumes the field is a singleton field.
// Even if name has multiple values, it will only return the first one.
// For list-based fields, use [Headers.Values].
func (h *Headers) Get(name string) (value string, ok bool) {
	if h == nil {
		return "", false
	}
	v := h.underlying[strings.ToLower(name)]
	if len(v) == 0 {
		return "", false
	}
	return v[0], true
}

func (h *Headers) Has(name string) bool {
	if h == nil {
		return false
	}
	_, ok := h.underlying[strings.ToLower(name)]
	return ok
}

// Values returns a copy of every value of name.
func (h *Headers) Values(name string) (values []string, ok bool) {
	if h == nil {
		return nil, false
	}
	v, ok := h.underlying[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

// Keys returns the display names in insertion order.
func (h *Headers) Keys() []string {
	if h == nil {
		return []string{}
	}
	keys := make([]string, 0, len(h.names))
	for _, key := range h.names {
		keys = append(keys, h.display[key])
	}
	return keys
}

func (h *Headers) Len() int {
	if h == nil {
		return 0
	}
	return len(h.names)
}

// ForEach calls fn for every header in insertion order.
// values is a copy and may be kept by fn.
func (h *Headers) ForEach(fn func(name string, values []string)) {
	if h == nil {
		return
	}
	for _, key := range h.names {
		fn(h.display[key], slices.Clone(h.underlying[key]))
	}
}

// Fields returns all the key-values in the header, keyed by display name.
func (h *Headers) Fields() map[string][]string {
	if h == nil {
		return map[string][]string{}
	}
	clone := make(map[string][]string, len(h.names))
	for _, key := range h.names {
		clone[h.display[key]] = slices.Clone(h.underlying[key])
	}
	return clone
}

// Line combines the values of name into a single field value.
// Values containing a space or a comma are quoted.
func (h *Headers) Line(name string) string {
	if h == nil {
		return ""
	}
	return toRawFieldValues(h.underlying[strings.ToLower(name)])
}

// Clone returns a deep copy. Clone of a nil *Headers is nil.
func (h *Headers) Clone() *Headers {
	if h == nil {
		return nil
	}
	clone := &Headers{
		names:      slices.Clone(h.names),
		display:    make(map[string]string, len(h.display)),
		underlying: make(map[string][]string, len(h.underlying)),
	}
	for key, name := range h.display {
		clone.display[key] = name
	}
	for key, values := range h.underlying {
		clone.underlying[key] = slices.Clone(values)
	}
	return clone
}

// String renders the headers as "Name: value" lines terminated by CRLF.
func (h *Headers) String() string {
	if h == nil {
		return ""
	}
	b := new(strings.Builder)
	for _, key := range h.names {
		b.WriteString(h.display[key])
		b.WriteString(": ")
		b.WriteString(toRawFieldValues(h.underlying[key]))
		b.WriteString("\r\n")
	}
	return b.String()
}

// remember registers name if it is new and returns its lookup key.
func (h *Headers) remember(name string) string {
	key := strings.ToLower(name)
	if _, ok := h.display[key]; !ok {
		h.display[key] = canonical(name)
		h.names = append(h.names, key)
	}
	return key
}

func canonical(s string) string {
	if rule.IsValidToken(s) {
		s = toCanonicalFieldName(s)
	}
	return s
}

// This only works for valid token.
func toCanonicalFieldName(s string) string {
	const capitalDiff = 'a' - 'A'
	b := []byte(s)
	upper := true
	for i, c := range b {
		if upper && 'a' <= c && c <= 'z' {
			c -= capitalDiff
		} else if !upper && 'A' <= c && c <= 'Z' {
			c += capitalDiff
		}
		b[i] = c
		upper = c == '-'
	}
	return string(b)
}

func shouldQuote(s string) bool {
	return strings.ContainsAny(s, " ,")
}

func toRawFieldValues(values []string) string {
	clone := make([]string, len(values))
	for idx, v := range values {
		if shouldQuote(v) {
			v = strconv.Quote(v)
		}
		clone[idx] = v
	}
	return strings.Join(clone, ", ")
}
