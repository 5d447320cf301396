package jsonvalue

import (
	"iter"
	"slices"
)

// Object is an ordered set of JSON object members.
//
// Keys keep the position of their first insertion. Setting an existing key
// replaces its value in place.
type Object struct {
	keys   []string
	values map[string]*Value
}

func newObject() *Object {
	return &Object{values: make(map[string]*Value)}
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Has reports whether key is a member.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}
	_, ok := o.values[key]
	return ok
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (*Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Set stores v under key. A new key is appended after the existing members;
// an existing key keeps its position.
func (o *Object) Set(key string, v *Value) {
	if v == nil {
		v = Null()
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Delete removes key. It is a no-op when key is not a member.
func (o *Object) Delete(key string) {
	if !o.Has(key) {
		return
	}
	delete(o.values, key)
	if i := slices.Index(o.keys, key); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
}

// Keys returns a copy of the member names in order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Clone(o.keys)
}

// All iterates over the members in order. The iteration sees a snapshot of
// the keys taken when it starts, so the object may be modified while ranging.
func (o *Object) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if o == nil {
			return
		}
		for _, k := range slices.Clone(o.keys) {
			v, ok := o.values[k]
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

func (o *Object) clone() *Object {
	c := newObject()
	if o == nil {
		return c
	}
	c.keys = slices.Clone(o.keys)
	for k, v := range o.values {
		c.values[k] = v.Clone()
	}
	return c
}
