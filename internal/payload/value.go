// Package payload models arbitrary third-party JSON as an ordered tree and
// provides loose key matching and depth-first search over it.
package payload

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Value is one node of a decoded JSON document: Mapping, Sequence, String,
// Number, Bool or Null.
type Value interface {
	isValue()
}

// Entry is a single key/value pair of a Mapping.
type Entry struct {
	Key   string
	Value Value
}

// Mapping is a JSON object. Entries keep the order they had in the document.
type Mapping []Entry

// Sequence is a JSON array.
type Sequence []Value

// String is a JSON string.
type String string

// Number is a JSON number kept as its literal text, so integers and floats
// print exactly as the provider sent them.
type Number string

// Bool is a JSON boolean.
type Bool bool

// Null is JSON null.
type Null struct{}

func (Mapping) isValue()  {}
func (Sequence) isValue() {}
func (String) isValue()   {}
func (Number) isValue()   {}
func (Bool) isValue()     {}
func (Null) isValue()     {}

// Get returns the value stored under key (exact match).
func (m Mapping) Get(key string) (Value, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// MaxDepth bounds how deeply objects and arrays may nest in a decoded
// document, which in turn bounds the recursion of FindFirst.
const MaxDepth = 10000

// Parse decodes a single JSON document.
func Parse(data []byte) (Value, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads exactly one JSON document from r. Trailing non-whitespace
// data is an error.
func Decode(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec, 0)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return nil, errors.New("decode: unexpected data after top-level value")
		}
		return nil, errors.Wrap(err, "decode")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder, depth int) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}

	switch t := tok.(type) {
	case json.Delim:
		if depth >= MaxDepth {
			return nil, errors.Errorf("decode: nesting exceeds %d levels", MaxDepth)
		}
		switch t {
		case '{':
			return decodeMapping(dec, depth+1)
		case '[':
			return decodeSequence(dec, depth+1)
		default:
			return nil, errors.Errorf("decode: unexpected delimiter %q", t)
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	default:
		return nil, errors.Errorf("decode: unexpected token %T", tok)
	}
}

func decodeMapping(dec *json.Decoder, depth int) (Value, error) {
	m := Mapping{}
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "decode")
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.Errorf("decode: object key is %T", tok)
		}
		v, err := decodeValue(dec, depth)
		if err != nil {
			return nil, err
		}
		// A repeated key keeps its first position and takes the last value.
		if i, dup := index[key]; dup {
			m[i].Value = v
			continue
		}
		index[key] = len(m)
		m = append(m, Entry{Key: key, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	return m, nil
}

func decodeSequence(dec *json.Decoder, depth int) (Value, error) {
	s := Sequence{}
	for dec.More() {
		v, err := decodeValue(dec, depth)
		if err != nil {
			return nil, err
		}
		s = append(s, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	return s, nil
}

// MarshalJSON writes the mapping in document key order.
func (m Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := marshalValue(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s Sequence) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		v, err := marshalValue(item)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("0"), nil
	}
	return []byte(n), nil
}

func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

func marshalValue(v Value) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// Indent renders v as indented JSON for diagnostic display.
func Indent(v Value) string {
	raw, err := marshalValue(v)
	if err != nil {
		return ""
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return out.String()
}
