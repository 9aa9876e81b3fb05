package query

import (
	"slices"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Params is an ordered multi-valued mapping from parameter names to values.
// Names keep the order they were first added in, values keep insertion order.
//
// Params does no locking. Confine an instance to one goroutine at a time.
type Params struct {
	names   []string
	entries map[string][]string

	encoder Encoder
}

// New creates an empty set. A nil encoder means [StandardEncoder].
func New(enc Encoder) *Params {
	if enc == nil {
		enc = StandardEncoder{}
	}
	return &Params{entries: make(map[string][]string), encoder: enc}
}

// Parse creates a set from a raw query string such as "a=1&b=2&a=3".
// A leading '?' is not stripped. A pair without '=' gets an empty value,
// and empty pairs are skipped. Percent-encoded keys and values are decoded;
// a key or value with a malformed escape is kept undecoded.
func Parse(raw string, enc Encoder) *Params {
	p := New(enc)
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		p.Append(decodeLenient(key), decodeLenient(value))
	}
	return p
}

// ParseStrict is like [Parse] but fails on malformed percent-encoding.
func ParseStrict(raw string, enc Encoder) (*Params, error) {
	p := New(enc)
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")

		key, err := Unescape(rawKey)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding key %q", rawKey)
		}
		value, err := Unescape(rawValue)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding value of %q", key)
		}

		p.Append(key, value)
	}
	return p, nil
}

// FromMap creates a set from a map. Since maps are unordered,
// names are added in sorted order so serialization stays deterministic.
func FromMap(values map[string][]string, enc Encoder) *Params {
	p := New(enc)

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, v := range values[name] {
			p.Append(name, v)
		}
	}
	return p
}

func decodeLenient(s string) string {
	if decoded, err := Unescape(s); err == nil {
		return decoded
	}
	return s
}

// Encoder returns the encoding strategy used by [Params.String].
func (p *Params) Encoder() Encoder { return p.encoder }

// Len returns the number of names that hold at least one value.
func (p *Params) Len() int {
	n := 0
	for _, name := range p.names {
		if len(p.entries[name]) > 0 {
			n++
		}
	}
	return n
}

// Keys returns names in first-insertion order.
func (p *Params) Keys() []string {
	return slices.Clone(p.names)
}

func (p *Params) Has(name string) bool {
	return len(p.entries[name]) > 0
}

// Get returns the first value of name.
func (p *Params) Get(name string) (value string, ok bool) {
	values := p.entries[name]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// GetAll returns a copy of every value of name. It never returns nil.
func (p *Params) GetAll(name string) []string {
	values := p.entries[name]
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// Set replaces all values of name with value.
func (p *Params) Set(name, value string) {
	p.put(name, []string{value})
}

// Append adds value after the existing values of name.
func (p *Params) Append(name, value string) {
	p.touch(name)
	p.entries[name] = append(p.entries[name], value)
}

// SetAll replaces, for every name in other, this set's values with other's values.
// Names that other doesn't hold are left alone.
func (p *Params) SetAll(other *Params) {
	if other == nil {
		return
	}
	for _, name := range other.names {
		values := other.entries[name]
		if len(values) == 0 {
			continue
		}
		p.put(name, slices.Clone(values))
	}
}

// ReplaceAll is an alias of [Params.SetAll].
func (p *Params) ReplaceAll(other *Params) { p.SetAll(other) }

// AppendAll appends every value of other to the matching names of this set.
func (p *Params) AppendAll(other *Params) {
	if other == nil {
		return
	}
	for _, name := range other.names {
		for _, v := range other.entries[name] {
			p.Append(name, v)
		}
	}
}

// Delete removes name and all of its values. Deleting a missing name is a no-op.
func (p *Params) Delete(name string) {
	if _, ok := p.entries[name]; !ok {
		return
	}
	delete(p.entries, name)
	p.names = slices.DeleteFunc(p.names, func(n string) bool { return n == name })
}

// Clone returns a deep copy sharing the same encoder.
func (p *Params) Clone() *Params {
	clone := &Params{
		names:   slices.Clone(p.names),
		entries: make(map[string][]string, len(p.entries)),
		encoder: p.encoder,
	}
	for name, values := range p.entries {
		clone.entries[name] = slices.Clone(values)
	}
	return clone
}

// String serializes the set into "k=v&k=v2&k2=v3". Every key and value
// goes through the encoder; names without values are omitted.
func (p *Params) String() string {
	b := new(strings.Builder)
	for _, name := range p.names {
		values := p.entries[name]
		if len(values) == 0 {
			continue
		}

		key := p.encoder.EncodeKey(name)
		for _, v := range values {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(key)
			b.WriteByte('=')
			b.WriteString(p.encoder.EncodeValue(v))
		}
	}
	return b.String()
}

func (p *Params) put(name string, values []string) {
	p.touch(name)
	p.entries[name] = values
}

func (p *Params) touch(name string) {
	if p.entries == nil {
		p.entries = make(map[string][]string)
	}
	if p.encoder == nil {
		p.encoder = StandardEncoder{}
	}
	if _, ok := p.entries[name]; !ok {
		p.names = append(p.names, name)
	}
}
