// Package merger deep-merges JSON documents.
//
// Merge folds an update document into a base document in place:
//
//   - object members are combined key by key, recursing when both sides
//     hold objects;
//   - arrays are unioned: each element of the update is appended unless a
//     structurally equal element is already present, so the base keeps its
//     order and new elements follow in update order;
//   - any other pairing (two scalars, or two different JSON types) resolves
//     to the update's value.
//
// The merge never fails. JSON trees are acyclic, so recursion depth is bounded
// by the depth of the inputs.
package merger

import (
	"slices"

	"github.com/erraggy/oasmerge/jsonvalue"
)

// Merge folds update into base and returns the merged value.
//
// When both are objects, base is modified in place and returned. When both
// are arrays, update's new elements are appended to base, which is returned.
// Otherwise update is returned and base is left untouched. Values taken from
// update are inserted as-is, not copied.
func Merge(base, update *jsonvalue.Value) *jsonvalue.Value {
	switch {
	case base.IsObject() && update.IsObject():
		mergeObjects(base.Object(), update.Object())
		return base
	case base.IsArray() && update.IsArray():
		return Union(base, update)
	default:
		return update
	}
}

func mergeObjects(dst, src *jsonvalue.Object) {
	for key, value := range src.All() {
		current, ok := dst.Get(key)
		if !ok {
			dst.Set(key, value)
			continue
		}
		dst.Set(key, Merge(current, value))
	}
}

// Union appends each element of update to base unless base already holds a
// structurally equal element, and returns base. Elements are checked against
// the growing base, so duplicates within update are dropped as well.
// Union is a no-op unless both values are arrays.
func Union(base, update *jsonvalue.Value) *jsonvalue.Value {
	if !base.IsArray() || !update.IsArray() {
		return base
	}
	for _, item := range update.Items() {
		if !Contains(base, item) {
			base.Append(item)
		}
	}
	return base
}

// Contains reports whether the array arr holds an element structurally equal
// to item.
func Contains(arr, item *jsonvalue.Value) bool {
	return slices.ContainsFunc(arr.Items(), func(x *jsonvalue.Value) bool {
		return jsonvalue.Equal(x, item)
	})
}
