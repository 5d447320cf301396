package jsonvalue

import (
	"encoding/json"
	"math/big"
)

// Equal reports whether a and b are structurally equal.
//
// Arrays must hold equal elements in the same order. Objects must hold the
// same keys with equal values, in any order. Numbers are equal when they
// denote the same numeric value, so 1, 1.0 and 1e0 are all equal. A nil
// Value equals null.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch a.Kind() {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return numbersEqual(a.num, b.num)
	case KindString:
		return a.str == b.str
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for key, av := range a.obj.All() {
			bv, ok := b.obj.Get(key)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func numbersEqual(x, y json.Number) bool {
	if x == y {
		return true
	}
	xr, okX := new(big.Rat).SetString(string(x))
	yr, okY := new(big.Rat).SetString(string(y))
	if !okX || !okY {
		return false
	}
	return xr.Cmp(yr) == 0
}
