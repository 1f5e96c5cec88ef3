// File: utils/deepequal.go
package utils

import "reflect"

// DeepEqual reports whether two JSON-like values (primitives, []any,
// map[string]any) are structurally equal. Arrays compare element-wise in
// order; maps compare by key set and then value-wise; mismatched kinds are
// never equal. Cyclic values are not detected and will not terminate --
// inputs are expected to be plain decoded form state.
func DeepEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch av := a.(type) {
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !DeepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bw, ok := bv[k]
			if !ok || !DeepEqual(v, bw) {
				return false
			}
		}
		return true
	default:
		if _, ok := b.([]any); ok {
			return false
		}
		if _, ok := b.(map[string]any); ok {
			return false
		}
		return scalarEqual(a, b)
	}
}

// scalarEqual compares leaf values. Numeric leaves are normalized to float64
// so that values arriving via JSON decoding and values built in Go code
// compare equal. The reflect fallback keeps the comparison panic-free for
// leaves with uncomparable dynamic types.
func scalarEqual(a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af == bf
	}
	if aok != bok {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
