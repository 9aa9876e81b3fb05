package query

// Encoder escapes parameter keys and values before they are joined into a query string.
type Encoder interface {
	EncodeKey(key string) string
	EncodeValue(value string) string
}

// StandardEncoder percent-encodes everything except
// ALPHA, DIGIT and the characters "!$'()*+,;-._~?/".
// Keys and values follow the same rule.
type StandardEncoder struct{}

var _ Encoder = StandardEncoder{}

func (StandardEncoder) EncodeKey(key string) string     { return Escape(key) }
func (StandardEncoder) EncodeValue(value string) string { return Escape(value) }

// EncoderFuncs adapts a pair of functions to [Encoder].
// A nil function leaves its input untouched.
type EncoderFuncs struct {
	Key   func(string) string
	Value func(string) string
}

var _ Encoder = EncoderFuncs{}

func (e EncoderFuncs) EncodeKey(key string) string {
	if e.Key == nil {
		return key
	}
	return e.Key(key)
}

func (e EncoderFuncs) EncodeValue(value string) string {
	if e.Value == nil {
		return value
	}
	return e.Value(value)
}
