package dto

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Nullable is an update field for a nullable column. It tells three payloads
// apart: key absent (Set false), explicit null (Set true, Valid false) and a
// value (Set and Valid true).
type Nullable[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// NullableValue builds a Nullable carrying v.
func NullableValue[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Valid: true, Value: v}
}

// NullableNull builds a Nullable carrying an explicit null.
func NullableNull[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// UnmarshalJSON is only invoked for keys present in the payload, null included.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		n.Valid, n.Value = false, zero
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns a copy of the value, or nil for null and absent fields.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// nullableValue exposes the inner value to the validator so tags such as
// "omitempty,email" apply to it; null and absent fields validate as empty.
func nullableValue[T any](field reflect.Value) any {
	n, ok := field.Interface().(Nullable[T])
	if !ok || !n.Valid {
		return nil
	}
	return n.Value
}
