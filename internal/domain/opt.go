package domain

import (
	"bytes"
	"encoding/json"
)

// Opt is a value that may be absent. Partial updates only touch fields whose Opt is Set,
// so a zero value sent by a client is never confused with a missing one.
type Opt[T any] struct {
	Value T
	Set   bool
}

func Some[T any](v T) Opt[T] {
	return Opt[T]{Value: v, Set: true}
}

func (o Opt[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// Apply overwrites o with src when src is set.
func (o *Opt[T]) Apply(src Opt[T]) {
	if src.Set {
		*o = src
	}
}

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Opt[T]{}
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
