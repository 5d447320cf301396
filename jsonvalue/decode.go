package jsonvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// SyntaxError describes malformed JSON input and where it was found.
type SyntaxError struct {
	// Msg describes the problem.
	Msg string
	// Offset is the byte offset after which the error was detected.
	Offset int64
	// Line is the 1-based line of Offset.
	Line int
	// Column is the 1-based column of Offset.
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid JSON at line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Parse decodes a single JSON value from data. Trailing non-whitespace data
// after the value is an error.
func Parse(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, wrapSyntax(data, dec, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, wrapSyntax(data, dec, err)
	}
	return v, nil
}

// Decode reads all of r and parses it as a single JSON value.
func Decode(r io.Reader) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}

func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, unexpectedEOF(err)
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", rune(t))
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (*Value, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", tok)
		}
		member, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.obj.Set(key, member)
	}
	if _, err := dec.Token(); err != nil {
		return nil, unexpectedEOF(err)
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (*Value, error) {
	arr := Array()
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr.arr = append(arr.arr, item)
	}
	if _, err := dec.Token(); err != nil {
		return nil, unexpectedEOF(err)
	}
	return arr, nil
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// wrapSyntax converts a decoding failure into a SyntaxError positioned in data.
func wrapSyntax(data []byte, dec *json.Decoder, err error) error {
	offset := dec.InputOffset()
	var jsonErr *json.SyntaxError
	if errors.As(err, &jsonErr) {
		offset = jsonErr.Offset
	}
	line, col := position(data, offset)
	return &SyntaxError{Msg: err.Error(), Offset: offset, Line: line, Column: col}
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	if offset < 0 {
		offset = 0
	}
	prefix := data[:offset]
	line = bytes.Count(prefix, []byte{'\n'}) + 1
	col = int(offset) - (bytes.LastIndexByte(prefix, '\n') + 1) + 1
	return line, col
}
