package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepEqualScalars(t *testing.T) {
	assert.True(t, DeepEqual("hello", "hello"))
	assert.False(t, DeepEqual("hello", "world"))
	assert.True(t, DeepEqual(true, true))
	assert.False(t, DeepEqual(true, false))
	assert.True(t, DeepEqual(nil, nil))
	assert.False(t, DeepEqual(nil, "x"))
	assert.False(t, DeepEqual("x", nil))
}

func TestDeepEqualNumericNormalization(t *testing.T) {
	// Values decoded from JSON arrive as float64; values built in Go code
	// are often ints. They must compare equal.
	assert.True(t, DeepEqual(float64(25), 25))
	assert.True(t, DeepEqual(int64(120), float64(120)))
	assert.True(t, DeepEqual(float32(1.5), float64(1.5)))
	assert.False(t, DeepEqual(float64(25), 26))
	assert.False(t, DeepEqual(float64(25), "25"))
}

func TestDeepEqualSlices(t *testing.T) {
	assert.True(t, DeepEqual(
		[]any{"princess", "pirates"},
		[]any{"princess", "pirates"},
	))
	// Order matters for arrays.
	assert.False(t, DeepEqual(
		[]any{"princess", "pirates"},
		[]any{"pirates", "princess"},
	))
	assert.False(t, DeepEqual([]any{"a"}, []any{"a", "b"}))
	assert.True(t, DeepEqual([]any{}, []any{}))
	assert.False(t, DeepEqual([]any{"a"}, "a"))
	assert.False(t, DeepEqual("a", []any{"a"}))
	// An empty array and an empty object are different things.
	assert.False(t, DeepEqual([]any{}, map[string]any{}))

	assert.True(t, DeepEqual(
		[]any{float64(1), []any{float64(2), float64(3)}},
		[]any{1, []any{2, 3}},
	))
}

func TestDeepEqualMaps(t *testing.T) {
	a := map[string]any{
		"hourlyRate": float64(85),
		"address": map[string]any{
			"city":     "Leeds",
			"postcode": "LS1 4AP",
		},
	}
	b := map[string]any{
		"hourlyRate": float64(85),
		"address": map[string]any{
			"city":     "Leeds",
			"postcode": "LS1 4AP",
		},
	}
	assert.True(t, DeepEqual(a, b))

	// One nested leaf differs.
	b["address"].(map[string]any)["postcode"] = "LS2 7EY"
	assert.False(t, DeepEqual(a, b))
}

func TestDeepEqualMapKeySets(t *testing.T) {
	assert.False(t, DeepEqual(
		map[string]any{"a": 1},
		map[string]any{"a": 1, "b": 2},
	))
	assert.False(t, DeepEqual(
		map[string]any{"a": 1},
		map[string]any{"b": 1},
	))
	assert.False(t, DeepEqual(map[string]any{}, "not a map"))
}

func TestDeepEqualMixedNesting(t *testing.T) {
	a := map[string]any{
		"packages": []any{
			map[string]any{"name": "Gold", "price": float64(250)},
			map[string]any{"name": "Silver", "price": float64(150)},
		},
	}
	b := map[string]any{
		"packages": []any{
			map[string]any{"name": "Gold", "price": 250},
			map[string]any{"name": "Silver", "price": 150},
		},
	}
	assert.True(t, DeepEqual(a, b))

	b["packages"].([]any)[1].(map[string]any)["price"] = 175
	assert.False(t, DeepEqual(a, b))
}

func TestDeepEqualNeverPanics(t *testing.T) {
	// Uncomparable leaf types fall back to reflect and must not panic.
	assert.NotPanics(t, func() {
		DeepEqual(func() {}, func() {})
		DeepEqual(map[int]string{1: "a"}, map[int]string{1: "a"})
		DeepEqual([]int{1}, []int{1})
	})
	assert.True(t, DeepEqual([]int{1, 2}, []int{1, 2}))
}
