package jsonvalue

import (
	"encoding/json"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindNull is the JSON null literal. A nil *Value also reports KindNull.
	KindNull Kind = iota
	// KindBool is true or false.
	KindBool
	// KindNumber is any JSON number, kept in its source text form.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindArray is an ordered sequence of values.
	KindArray
	// KindObject is an ordered set of key/value members.
	KindObject
)

// String returns the JSON type name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a single JSON value.
//
// The zero Value is null. Values are mutable: arrays and objects are shared by
// pointer, so inserting a value into a container does not copy it. Use
// [Value.Clone] when an independent copy is needed.
type Value struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	arr  []*Value
	obj  *Object
}

// Null returns a new null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool returns a new boolean value.
func Bool(b bool) *Value {
	return &Value{kind: KindBool, b: b}
}

// Number returns a new number value from its JSON text.
func Number(n json.Number) *Value {
	return &Value{kind: KindNumber, num: n}
}

// Int returns a new integer number value.
func Int(n int64) *Value {
	return &Value{kind: KindNumber, num: json.Number(strconv.FormatInt(n, 10))}
}

// String returns a new string value.
func String(s string) *Value {
	return &Value{kind: KindString, str: s}
}

// Array returns a new array value holding items in order.
func Array(items ...*Value) *Value {
	arr := make([]*Value, 0, len(items))
	arr = append(arr, items...)
	return &Value{kind: KindArray, arr: arr}
}

// NewObject returns a new, empty object value.
func NewObject() *Value {
	return &Value{kind: KindObject, obj: newObject()}
}

// FromObject wraps an existing Object in a Value.
func FromObject(o *Object) *Value {
	if o == nil {
		o = newObject()
	}
	return &Value{kind: KindObject, obj: o}
}

// Kind reports the variant held by v. A nil Value is null.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether v is null or nil.
func (v *Value) IsNull() bool { return v.Kind() == KindNull }

// IsObject reports whether v is an object.
func (v *Value) IsObject() bool { return v.Kind() == KindObject }

// IsArray reports whether v is an array.
func (v *Value) IsArray() bool { return v.Kind() == KindArray }

// IsString reports whether v is a string.
func (v *Value) IsString() bool { return v.Kind() == KindString }

// Object returns the members of an object value, or nil for any other kind.
func (v *Value) Object() *Object {
	if v.Kind() != KindObject {
		return nil
	}
	return v.obj
}

// Items returns the elements of an array value, or nil for any other kind.
// The returned slice must not be modified; use Append to grow the array.
func (v *Value) Items() []*Value {
	if v.Kind() != KindArray {
		return nil
	}
	return v.arr
}

// Len returns the number of array elements or object members, and 0 otherwise.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	default:
		return 0
	}
}

// Append adds items to the end of an array value. It is a no-op for other kinds.
func (v *Value) Append(items ...*Value) {
	if v.Kind() != KindArray {
		return
	}
	v.arr = append(v.arr, items...)
}

// Str returns the string held by v, or "" when v is not a string.
func (v *Value) Str() string {
	if v.Kind() != KindString {
		return ""
	}
	return v.str
}

// BoolValue returns the boolean held by v, or false when v is not a boolean.
func (v *Value) BoolValue() bool {
	if v.Kind() != KindBool {
		return false
	}
	return v.b
}

// NumberValue returns the number text held by v, or "" when v is not a number.
func (v *Value) NumberValue() json.Number {
	if v.Kind() != KindNumber {
		return ""
	}
	return v.num
}

// Get returns the member named key when v is an object.
func (v *Value) Get(key string) (*Value, bool) {
	o := v.Object()
	if o == nil {
		return nil, false
	}
	return o.Get(key)
}

// Lookup walks nested objects along path and returns the value found there,
// or nil if any step is missing or not an object.
func (v *Value) Lookup(path ...string) *Value {
	cur := v
	for _, key := range path {
		next, ok := cur.Get(key)
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	c := &Value{kind: v.kind, b: v.b, num: v.num, str: v.str}
	switch v.kind {
	case KindArray:
		c.arr = make([]*Value, len(v.arr))
		for i, item := range v.arr {
			c.arr[i] = item.Clone()
		}
	case KindObject:
		c.obj = v.obj.clone()
	}
	return c
}
