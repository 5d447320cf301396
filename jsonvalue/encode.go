package jsonvalue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// MarshalJSON implements json.Marshaler. Object members are written in
// insertion order, HTML characters are not escaped, and non-ASCII characters
// are written as \u escapes.
func (v *Value) MarshalJSON() ([]byte, error) {
	e := newEncoder()
	if err := e.encode(v); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

// MarshalIndent is like MarshalJSON but applies indentation the same way as
// json.MarshalIndent.
func (v *Value) MarshalIndent(prefix, indent string) ([]byte, error) {
	compact, err := v.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns the compact JSON encoding of v, for debugging and messages.
func (v *Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<invalid json: %v>", err)
	}
	return string(data)
}

type encoder struct {
	buf     bytes.Buffer
	scratch bytes.Buffer
	str     *json.Encoder
}

func newEncoder() *encoder {
	e := &encoder{}
	e.str = json.NewEncoder(&e.scratch)
	e.str.SetEscapeHTML(false)
	return e
}

func (e *encoder) encode(v *Value) error {
	switch v.Kind() {
	case KindNull:
		e.buf.WriteString("null")
	case KindBool:
		if v.b {
			e.buf.WriteString("true")
		} else {
			e.buf.WriteString("false")
		}
	case KindNumber:
		if v.num == "" {
			e.buf.WriteByte('0')
			return nil
		}
		if !json.Valid([]byte(v.num)) {
			return fmt.Errorf("jsonvalue: invalid number literal %q", string(v.num))
		}
		e.buf.WriteString(string(v.num))
	case KindString:
		return e.writeString(v.str)
	case KindArray:
		e.buf.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			if err := e.encode(item); err != nil {
				return err
			}
		}
		e.buf.WriteByte(']')
	case KindObject:
		e.buf.WriteByte('{')
		first := true
		for key, member := range v.obj.All() {
			if !first {
				e.buf.WriteByte(',')
			}
			first = false
			if err := e.writeString(key); err != nil {
				return err
			}
			e.buf.WriteByte(':')
			if err := e.encode(member); err != nil {
				return err
			}
		}
		e.buf.WriteByte('}')
	default:
		return fmt.Errorf("jsonvalue: cannot encode %s", v.Kind())
	}
	return nil
}

func (e *encoder) writeString(s string) error {
	e.scratch.Reset()
	if err := e.str.Encode(s); err != nil {
		return err
	}
	// json.Encoder terminates each value with a newline.
	out := bytes.TrimSuffix(e.scratch.Bytes(), []byte{'\n'})
	writeASCII(&e.buf, out)
	return nil
}

// writeASCII copies an encoded JSON string to buf, escaping DEL and every
// non-ASCII rune as \uXXXX (a surrogate pair above the BMP).
func writeASCII(buf *bytes.Buffer, encoded []byte) {
	for len(encoded) > 0 {
		if c := encoded[0]; c < utf8.RuneSelf && c != 0x7f {
			buf.WriteByte(c)
			encoded = encoded[1:]
			continue
		}
		r, size := utf8.DecodeRune(encoded)
		encoded = encoded[size:]
		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			fmt.Fprintf(buf, `\u%04x\u%04x`, r1, r2)
			continue
		}
		fmt.Fprintf(buf, `\u%04x`, r)
	}
}
