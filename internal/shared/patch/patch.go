package patch

import (
	"bytes"
	"encoding/json"
)

// Field distinguishes the three states a key can be in inside a sparse
// PATCH body: absent (leave the column alone), null (clear it), or a value.
// The dynamic UPDATE statements this replaces treated the three cases the
// same way.
type Field[T any] struct {
	set  bool
	null bool
	val  T
}

// Set builds a present field carrying a value.
func Set[T any](v T) Field[T] {
	return Field[T]{set: true, val: v}
}

// Null builds a present field carrying an explicit null.
func Null[T any]() Field[T] {
	return Field[T]{set: true, null: true}
}

// Present reports whether the key appeared in the patch at all.
func (f Field[T]) Present() bool { return f.set }

// IsNull reports whether the key was present and explicitly null.
func (f Field[T]) IsNull() bool { return f.set && f.null }

// Value returns the carried value and whether one was carried.
func (f Field[T]) Value() (T, bool) {
	if !f.set || f.null {
		var zero T
		return zero, false
	}
	return f.val, true
}

// UnmarshalJSON is only invoked by encoding/json for keys that exist in the
// body, which is what makes the absent/null distinction possible.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.set = true
	if bytes.Equal(b, []byte("null")) {
		f.null = true
		return nil
	}
	return json.Unmarshal(b, &f.val)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.val)
}
