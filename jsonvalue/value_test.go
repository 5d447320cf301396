package jsonvalue

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func mustParse(t *testing.T, s string) *Value {
	t.Helper()
	v, err := Parse([]byte(s))
	require.NoError(t, err, "Parse(%q)", s)
	return v
}

func TestParse_Kinds(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{`null`, KindNull},
		{`true`, KindBool},
		{`false`, KindBool},
		{`42`, KindNumber},
		{`-1.5e3`, KindNumber},
		{`"hello"`, KindString},
		{`[]`, KindArray},
		{`[1, "a", null]`, KindArray},
		{`{}`, KindObject},
		{`{"a": {"b": [1, 2]}}`, KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v := mustParse(t, tt.input)
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestParse_PreservesKeyOrder(t *testing.T) {
	v := mustParse(t, `{"zebra": 1, "apple": 2, "mango": {"y": true, "b": false}}`)

	assert.Equal(t, []string{"zebra", "apple", "mango"}, v.Object().Keys())
	assert.Equal(t, []string{"y", "b"}, v.Lookup("mango").Object().Keys())
}

func TestParse_DuplicateKeyKeepsFirstPositionLastValue(t *testing.T) {
	v := mustParse(t, `{"a": 1, "b": 2, "a": 3}`)

	assert.Equal(t, []string{"a", "b"}, v.Object().Keys())
	assert.Equal(t, json.Number("3"), v.Lookup("a").NumberValue())
}

func TestParse_NumbersKeepSourceText(t *testing.T) {
	v := mustParse(t, `[1, 1.0, 12345678901234567890, 2.50]`)
	got := make([]json.Number, 0, v.Len())
	for _, item := range v.Items() {
		got = append(got, item.NumberValue())
	}
	assert.Equal(t, []json.Number{"1", "1.0", "12345678901234567890", "2.50"}, got)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		line   int
		column int
	}{
		{"empty input", ``, 1, 1},
		{"unterminated object", `{"a": 1`, 1, 8},
		{"missing colon", "{\n  \"a\" 1\n}", 2, 7},
		{"trailing data", `{} {}`, 1, 4},
		{"bare word", `nope`, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)

			var se *SyntaxError
			require.True(t, errors.As(err, &se), "expected *SyntaxError, got %T", err)
			assert.Equal(t, tt.line, se.Line, "line")
			assert.GreaterOrEqual(t, se.Column, 1, "column")
			assert.Contains(t, se.Error(), "invalid JSON at line")
		})
	}
}

func TestDecode_Reader(t *testing.T) {
	v, err := Decode(strings.NewReader(`{"swagger": "2.0"}`))
	require.NoError(t, err)
	assert.Equal(t, "2.0", v.Lookup("swagger").Str())
}

func TestUnmarshalJSON_EmbeddedValue(t *testing.T) {
	var holder struct {
		Doc *Value `json:"doc"`
	}
	err := json.Unmarshal([]byte(`{"doc": {"b": 1, "a": 2}}`), &holder)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, holder.Doc.Object().Keys())
}

func TestMarshalJSON_RoundTripsOrderAndText(t *testing.T) {
	input := `{"paths":{"/x":{"get":{"summary":"<a&b>"}}},"info":{"version":"1.0.0"},"n":1.50,"ok":true,"none":null,"list":[3,2,1]}`
	v := mustParse(t, input)

	out, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestMarshalIndent(t *testing.T) {
	v := mustParse(t, `{"b": [], "a": {}, "c": [1, {"d": "e"}]}`)

	out, err := v.MarshalIndent("", "  ")
	require.NoError(t, err)

	want := `{
  "b": [],
  "a": {},
  "c": [
    1,
    {
      "d": "e"
    }
  ]
}`
	assert.Equal(t, want, string(out))
}

func TestMarshalJSON_EscapesNonASCII(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii", "plain text", `"plain text"`},
		{"latin", "café", `"caf\u00e9"`},
		{"cjk", "日本", `"\u65e5\u672c"`},
		{"astral", "😀", `"\ud83d\ude00"`},
		{"delete", "a\x7fb", `"a\u007fb"`},
		{"control", "a\nb\x01", `"a\nb\u0001"`},
		{"quote and backslash", `"\`, `"\"\\"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := String(tt.in).MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))

			back, err := Parse(out)
			require.NoError(t, err)
			assert.Equal(t, tt.in, back.Str())
		})
	}

	t.Run("object keys", func(t *testing.T) {
		v := NewObject()
		v.Object().Set("ñ", String("ü"))
		out, err := v.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"\u00f1":"\u00fc"}`, string(out))
	})
}

func TestMarshalJSON_InvalidNumber(t *testing.T) {
	_, err := Number("not-a-number").MarshalJSON()
	assert.Error(t, err)
}

func TestObject_SetKeepsPosition(t *testing.T) {
	v := NewObject()
	o := v.Object()
	o.Set("info", String("old"))
	o.Set("paths", NewObject())
	o.Set("info", String("new"))
	o.Set("tags", Array())

	assert.Equal(t, []string{"info", "paths", "tags"}, o.Keys())
	got, ok := o.Get("info")
	require.True(t, ok)
	assert.Equal(t, "new", got.Str())
}

func TestObject_Delete(t *testing.T) {
	v := mustParse(t, `{"a": 1, "b": 2, "c": 3}`)
	o := v.Object()

	o.Delete("b")
	o.Delete("missing")

	assert.Equal(t, []string{"a", "c"}, o.Keys())
	assert.False(t, o.Has("b"))
	assert.Equal(t, 2, o.Len())
}

func TestObject_AllAllowsMutation(t *testing.T) {
	v := mustParse(t, `{"a": 1, "b": 2}`)
	o := v.Object()

	var seen []string
	for k := range o.All() {
		seen = append(seen, k)
		o.Set(k+"_copy", Int(0))
	}

	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Equal(t, []string{"a", "b", "a_copy", "b_copy"}, o.Keys())
}

func TestNilValue(t *testing.T) {
	var v *Value

	assert.Equal(t, KindNull, v.Kind())
	assert.True(t, v.IsNull())
	assert.Nil(t, v.Object())
	assert.Nil(t, v.Items())
	assert.Equal(t, 0, v.Len())
	assert.Nil(t, v.Lookup("a"))
	assert.Nil(t, v.Clone())
	assert.True(t, Equal(v, Null()))
}

func TestClone_IsDeep(t *testing.T) {
	orig := mustParse(t, `{"a": {"b": [1, 2]}}`)
	cp := orig.Clone()

	cp.Lookup("a", "b").Append(Int(3))
	cp.Lookup("a").Object().Set("c", String("x"))

	assert.Equal(t, 2, orig.Lookup("a", "b").Len())
	assert.False(t, orig.Lookup("a").Object().Has("c"))
	assert.True(t, Equal(mustParse(t, `{"a": {"b": [1, 2, 3], "c": "x"}}`), cp))
}

func TestAppend_OnlyArrays(t *testing.T) {
	s := String("x")
	s.Append(Int(1))
	assert.Equal(t, KindString, s.Kind())

	arr := Array(Int(1))
	arr.Append(Int(2), Int(3))
	assert.Equal(t, 3, arr.Len())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "array", KindArray.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestMarshalYAML_PreservesOrder(t *testing.T) {
	v := mustParse(t, `{"openapi": "3.0.0", "info": {"title": "T", "version": "1"}, "count": 2, "ratio": 0.5, "flag": true, "nothing": null, "tags": ["b", "a"], "quoted": "true"}`)

	out, err := yaml.Marshal(v)
	require.NoError(t, err)

	text := string(out)
	assert.Less(t, strings.Index(text, "openapi:"), strings.Index(text, "info:"))
	assert.Less(t, strings.Index(text, "info:"), strings.Index(text, "count:"))
	assert.Contains(t, text, "count: 2")
	assert.Contains(t, text, "ratio: 0.5")
	assert.Contains(t, text, "flag: true")

	// Round trip through a generic decode to make sure the string "true"
	// was not turned into a boolean.
	var back map[string]any
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, "true", back["quoted"])
	assert.Equal(t, "3.0.0", back["openapi"])
	assert.Nil(t, back["nothing"])
}
