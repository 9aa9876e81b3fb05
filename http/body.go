package http

import (
	"bytes"
	"encoding/json"
	"legacy-http/http/query"
	"reflect"

	"github.com/pkg/errors"
)

// Body holds a request or response payload.
// The payload is one of nil, string, []byte, *query.Params,
// or any other value which is treated as a JSON-serializable object.
type Body struct {
	body any
}

// Raw returns the payload as it was given.
func (b *Body) Raw() any { return b.body }

// Text returns the payload as a string.
// Structured objects are rendered as indented JSON.
func (b *Body) Text() (string, error) {
	switch v := b.body.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case *query.Params:
		return v.String(), nil
	}

	out, err := json.MarshalIndent(b.body, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "rendering body as json")
	}
	return string(out), nil
}

// Bytes returns a copy of the payload as bytes.
func (b *Body) Bytes() ([]byte, error) {
	if v, ok := b.body.([]byte); ok {
		return bytes.Clone(v), nil
	}

	text, err := b.Text()
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// JSON decodes the payload into v.
// It fails with [*ParseError] if the payload is not well-formed JSON.
func (b *Body) JSON(v any) error {
	var raw []byte
	switch body := b.body.(type) {
	case string:
		raw = []byte(body)
	case []byte:
		raw = body
	default:
		text, err := b.Text()
		if err != nil {
			return err
		}
		raw = []byte(text)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}

func cloneBody(body any) any {
	switch v := body.(type) {
	case nil:
		return nil
	case []byte:
		return bytes.Clone(v)
	case *query.Params:
		if v == nil {
			return v
		}
		return v.Clone()
	}
	return deepCopy(reflect.ValueOf(body)).Interface()
}

// deepCopy copies maps, slices, arrays, pointers and the exported fields of structs.
// Unexported struct fields are copied shallowly. v must not contain cycles,
// which holds for any JSON-serializable value.
func deepCopy(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), deepCopy(iter.Value()))
		}
		return out
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(deepCopy(v.Elem()))
		return out
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(deepCopy(v.Elem()))
		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		for i := 0; i < v.NumField(); i++ {
			if out.Field(i).CanSet() {
				out.Field(i).Set(deepCopy(v.Field(i)))
			}
		}
		return out
	}
	return v
}
