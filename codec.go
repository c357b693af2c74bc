package xtd

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Interface checks for the codec surface of Option.
var (
	_ fmt.Formatter    = Option[int]{}
	_ json.Marshaler   = Option[int]{}
	_ json.Unmarshaler = &Option[int]{}
	_ sql.Scanner      = &Option[int]{}
	_ driver.Valuer    = Option[int]{}
)

// Format implements fmt.Formatter.
// A Some Option formats exactly as its contained value would with the same
// verb and flags; a None Option formats the string "<none>".
func (o Option[T]) Format(f fmt.State, verb rune) {
	if o.ok {
		fmt.Fprintf(f, fmt.FormatString(f, verb), o.item)
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, 's'), "<none>")
}

// IsZero reports whether the Option is None. It implements the IsZeroer
// interface understood by encoding/json ("omitzero") and yaml ("omitempty"),
// so None fields can be omitted from marshalled output.
func (o Option[T]) IsZero() bool {
	return !o.ok
}

// MarshalJSON implements json.Marshaler.
// Some marshals as the contained value, None as null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.item)
}

// UnmarshalJSON implements json.Unmarshaler.
// null becomes None; any other document becomes Some of the decoded value.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	var p *T
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*o = FromPtr(p)
	return nil
}

type yamlMarshaler interface {
	MarshalYAML() (any, error)
}

// MarshalYAML implements the yaml.Marshaler interface of gopkg.in/yaml.v3.
// Some marshals as the contained value, None as null.
func (o Option[T]) MarshalYAML() (any, error) {
	if !o.ok {
		return nil, nil
	}
	// Returning o.item directly would bypass a MarshalYAML defined on T, so
	// that one indirection is handled here.
	if m, ok := any(o.item).(yamlMarshaler); ok {
		return m.MarshalYAML()
	}
	return o.item, nil
}

// UnmarshalYAML implements the legacy yaml.Unmarshaler signature, which
// gopkg.in/yaml.v3 still honors; the v3 node-based signature is avoided so
// v2 keeps working too.
func (o *Option[T]) UnmarshalYAML(unmarshal func(any) error) error {
	var p *T
	if err := unmarshal(&p); err != nil {
		return err
	}
	*o = FromPtr(p)
	return nil
}

// Scan implements sql.Scanner. SQL NULL becomes None; any other column
// value becomes Some of the converted value.
func (o *Option[T]) Scan(src any) error {
	var n sql.Null[T]
	if err := n.Scan(src); err != nil {
		return err
	}
	if n.Valid {
		*o = Some(n.V)
	} else {
		*o = None[T]()
	}
	return nil
}

// Value implements driver.Valuer. None maps to SQL NULL.
func (o Option[T]) Value() (driver.Value, error) {
	if !o.ok {
		return nil, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(o.item)
}
