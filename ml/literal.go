// Package ml - Konstanten-Container
// Dieses Modul definiert Literal: unveraenderliche, form-getaggte Rohdaten
// eines DTypes (Wertsemantik, alle Zugriffe kopieren).
package ml

import (
	"bytes"
	"fmt"
	"log/slog"
)

// Literal is an immutable constant: packed little-endian elements of one
// DType in row-major order.
type Literal struct {
	dtype DType
	shape Shape
	data  []byte
}

// NewLiteral copies data into a new literal. len(data) must match the
// element count of shape.
func NewLiteral(dtype DType, shape Shape, data []byte) (*Literal, error) {
	if !dtype.Valid() {
		return nil, fmt.Errorf("literal: invalid dtype %s", dtype)
	}
	if !shape.Valid() {
		return nil, fmt.Errorf("literal: invalid shape %s", shape)
	}
	if want := shape.NumElements() * dtype.Size(); len(data) != want {
		return nil, fmt.Errorf("literal: %d bytes for %s%s, expected %d", len(data), dtype, shape, want)
	}

	return &Literal{
		dtype: dtype,
		shape: shape.Clone(),
		data:  bytes.Clone(data),
	}, nil
}

// LiteralFromValues encodes values into a literal of the given shape.
func LiteralFromValues(dtype DType, shape Shape, values []Value) (*Literal, error) {
	if len(values) != shape.NumElements() {
		return nil, fmt.Errorf("literal: %d values for shape %s", len(values), shape)
	}
	data := make([]byte, 0, len(values)*dtype.Size())
	for _, v := range values {
		data = append(data, Encode(dtype, v)...)
	}
	return NewLiteral(dtype, shape, data)
}

// ScalarLiteral wraps one packed element as a rank-0 literal.
func ScalarLiteral(dtype DType, element []byte) (*Literal, error) {
	return NewLiteral(dtype, Shape{}, element)
}

func (l *Literal) DType() DType { return l.dtype }

func (l *Literal) Shape() Shape { return l.shape.Clone() }

func (l *Literal) NumElements() int { return l.shape.NumElements() }

// Bytes returns a copy of the packed elements.
func (l *Literal) Bytes() []byte { return bytes.Clone(l.data) }

// Value decodes the i-th element in row-major order.
func (l *Literal) Value(i int) Value {
	n := l.dtype.Size()
	return Decode(l.dtype, l.data[i*n:(i+1)*n])
}

// Values decodes every element in row-major order.
func (l *Literal) Values() []Value {
	values := make([]Value, l.NumElements())
	for i := range values {
		values[i] = l.Value(i)
	}
	return values
}

// Equal reports whether both literals have the same type, shape and bits.
func (l *Literal) Equal(other *Literal) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.dtype == other.dtype && l.shape.Equal(other.shape) && bytes.Equal(l.data, other.data)
}

func (l *Literal) String() string {
	return fmt.Sprintf("%s%s", l.dtype, l.shape)
}

// LogValue gibt einen slog.Value fuer Logging zurueck
func (l *Literal) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", l.dtype.String()),
		slog.Any("shape", []int(l.shape)),
	)
}
