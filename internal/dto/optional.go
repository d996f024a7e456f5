package dto

import (
	"encoding/json"
)

// Optional is a presence-aware field for PATCH bodies. It distinguishes a
// field that was absent from the request (Present=false) from one that was
// explicitly set to null (Present=true, Value=nil), so partial updates never
// clear fields that were simply omitted.
type Optional[T any] struct {
	Present bool
	Value   *T
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked for fields
// that appear in the payload, which is what makes presence tracking work.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true

	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	o.Value = &value
	return nil
}

// MarshalJSON implements json.Marshaler
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// IsNull reports whether the field was explicitly set to null
func (o Optional[T]) IsNull() bool {
	return o.Present && o.Value == nil
}
