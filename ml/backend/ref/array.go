// Package ref - Array-Grundstruktur und Datenzugriff
//
// Hauptfunktionen:
// - Array: ausgewerteter Tensor-Handle mit Context-Bindung
// - Literal/Values: Daten als Literal bzw. dekodierte Werte
// - Floats/Ints/Bools: Daten als Go-Slices
package ref

import (
	"log/slog"

	"github.com/7blacky7/tensorlower/ml"
)

// Array ist ein ausgewerteter Tensor eines Referenz-Contexts
type Array struct {
	id     int
	c      *Context
	dtype  ml.DType
	shape  ml.Shape
	values []ml.Value
}

// newArray erstellt ein Array; Werte werden auf die Praezision von dtype gerundet
func newArray(c *Context, dtype ml.DType, shape ml.Shape, values []ml.Value) *Array {
	for i, v := range values {
		values[i] = ml.Decode(dtype, ml.Encode(dtype, v))
	}
	return &Array{
		c:      c,
		dtype:  dtype,
		shape:  shape.Clone(),
		values: values,
	}
}

func (a *Array) DType() ml.DType { return a.dtype }

func (a *Array) Shape() ml.Shape { return a.shape.Clone() }

// Literal gibt die Daten als Literal zurueck
func (a *Array) Literal() *ml.Literal {
	lit, err := ml.LiteralFromValues(a.dtype, a.shape, a.values)
	if err != nil {
		// Arrays werden nur mit passender Wertanzahl erstellt
		panic(err)
	}
	return lit
}

// Values gibt eine Kopie der dekodierten Werte zurueck
func (a *Array) Values() []ml.Value {
	return append([]ml.Value(nil), a.values...)
}

// Floats gibt die Werte als float64 zurueck
func (a *Array) Floats() []float64 {
	out := make([]float64, len(a.values))
	for i, v := range a.values {
		out[i] = v.Convert(a.dtype, ml.DTypeFloat64).Float
	}
	return out
}

// Ints gibt die Werte als int64 zurueck
func (a *Array) Ints() []int64 {
	out := make([]int64, len(a.values))
	for i, v := range a.values {
		out[i] = v.Convert(a.dtype, ml.DTypeInt64).Int
	}
	return out
}

// Bools gibt die Werte als bool zurueck
func (a *Array) Bools() []bool {
	out := make([]bool, len(a.values))
	for i, v := range a.values {
		out[i] = v.Convert(a.dtype, ml.DTypeBool).Bool
	}
	return out
}

// LogValue gibt einen slog.Value fuer Logging zurueck
func (a *Array) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("id", a.id),
		slog.String("type", a.dtype.String()),
		slog.Any("shape", []int(a.shape)),
	)
}
