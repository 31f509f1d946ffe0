// Package optional modela campos de PATCH/PUT parcial donde hay que distinguir
// "no enviado", "enviado como null" y "enviado con valor".
package optional

import (
	"bytes"
	"encoding/json"
)

// Value es un campo opcional con presencia explícita.
// El valor cero es "no enviado".
type Value[T any] struct {
	set  bool
	null bool
	v    T
}

// Of construye un Value presente con v.
func Of[T any](v T) Value[T] {
	return Value[T]{set: true, v: v}
}

// Null construye un Value presente en null.
func Null[T any]() Value[T] {
	return Value[T]{set: true, null: true}
}

// IsSet indica si el cliente envió el campo (aunque sea null).
func (o Value[T]) IsSet() bool { return o.set }

// IsNull indica si el campo llegó explícitamente como null.
func (o Value[T]) IsNull() bool { return o.set && o.null }

// Get devuelve el valor y true solo si llegó un valor no nulo.
func (o Value[T]) Get() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.v, true
}

// Ptr devuelve un puntero al valor, o nil si no se envió o llegó null.
func (o Value[T]) Ptr() *T {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}

// UnmarshalJSON solo se invoca cuando la clave existe en el documento.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.null = true
		var zero T
		o.v = zero
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.v)
}

// MarshalJSON serializa null cuando no hay valor.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if v, ok := o.Get(); ok {
		return json.Marshal(v)
	}
	return []byte("null"), nil
}
