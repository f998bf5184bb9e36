// Package ref - Grundlegende Graph-Operationen
//
// Hauptfunktionen:
// - Constant, Iota: Erzeugende Operationen
// - BroadcastInDim, Reshape: Form-Operationen
// - ConvertElementType: Typkonvertierung ueber Primitive-Tags
// - Compare, Select, Binary: Elementweise Operationen
package ref

import (
	"github.com/pkg/errors"

	"github.com/7blacky7/tensorlower/ml"
)

// Constant haengt ein Literal als Konstante an
func (c *Context) Constant(lit *ml.Literal) (ml.Tensor, error) {
	if lit == nil {
		return nil, errors.New("constant: nil literal")
	}
	out := newArray(c, lit.DType(), lit.Shape(), lit.Values())
	if err := c.add("constant", []*Array{out}, "value", lit); err != nil {
		return nil, err
	}
	return out, nil
}

// Iota erzeugt einen Tensor mit der Koordinate entlang axis
func (c *Context) Iota(dtype ml.DType, shape ml.Shape, axis int) (ml.Tensor, error) {
	switch {
	case !shape.Valid():
		return nil, errors.Errorf("iota: invalid shape %s", shape)
	case axis < 0 || axis >= shape.Rank():
		return nil, errors.Errorf("iota: axis %d out of range for shape %s", axis, shape)
	case dtype.Kind() == ml.KindBool || dtype.Kind() == ml.KindInvalid:
		return nil, errors.Errorf("iota: unsupported dtype %s", dtype)
	}

	strides := shape.Strides()
	values := make([]ml.Value, shape.NumElements())
	for i := range values {
		coord := (i / strides[axis]) % shape[axis]
		values[i] = ml.FromInt64(dtype, int64(coord))
	}

	out := newArray(c, dtype, shape, values)
	if err := c.add("iota", []*Array{out}, "axis", axis); err != nil {
		return nil, err
	}
	return out, nil
}

// BroadcastInDim erweitert t auf shape; dims ordnet Eingabe- den Ausgabeachsen zu
func (c *Context) BroadcastInDim(t ml.Tensor, shape ml.Shape, dims []int) (ml.Tensor, error) {
	a, err := c.array("broadcast_in_dim", t)
	if err != nil {
		return nil, err
	}
	if len(dims) != a.shape.Rank() {
		return nil, errors.Errorf("broadcast_in_dim: %d dims for operand of rank %d", len(dims), a.shape.Rank())
	}
	for i, d := range dims {
		if d < 0 || d >= shape.Rank() || (i > 0 && d <= dims[i-1]) {
			return nil, errors.Errorf("broadcast_in_dim: invalid dims %v for shape %s", dims, shape)
		}
		if a.shape[i] != 1 && a.shape[i] != shape[d] {
			return nil, errors.Errorf("broadcast_in_dim: operand %s incompatible with %s at dim %d", a.shape, shape, i)
		}
	}

	inStrides := a.shape.Strides()
	outStrides := shape.Strides()
	values := make([]ml.Value, shape.NumElements())
	for i := range values {
		src := 0
		for j, d := range dims {
			if a.shape[j] == 1 {
				continue
			}
			src += (i / outStrides[d]) % shape[d] * inStrides[j]
		}
		values[i] = a.values[src]
	}

	out := newArray(c, a.dtype, shape, values)
	if err := c.add("broadcast_in_dim", []*Array{out}, "shape", shape, "dims", dims); err != nil {
		return nil, err
	}
	return out, nil
}

// Reshape interpretiert die Elemente in Zeilen-Reihenfolge mit neuer Form
func (c *Context) Reshape(t ml.Tensor, shape ml.Shape) (ml.Tensor, error) {
	a, err := c.array("reshape", t)
	if err != nil {
		return nil, err
	}
	if !shape.Valid() || shape.NumElements() != a.shape.NumElements() {
		return nil, errors.Errorf("reshape: cannot reshape %s to %s", a.shape, shape)
	}

	out := newArray(c, a.dtype, shape, a.Values())
	if err := c.add("reshape", []*Array{out}, "shape", shape); err != nil {
		return nil, err
	}
	return out, nil
}

// ConvertElementType konvertiert jedes Element in den physischen Typ p
func (c *Context) ConvertElementType(t ml.Tensor, p ml.PrimitiveType) (ml.Tensor, error) {
	a, err := c.array("convert", t)
	if err != nil {
		return nil, err
	}
	dtype, err := ml.DTypeOf(p)
	if err != nil {
		return nil, errors.WithMessage(err, "convert")
	}

	values := make([]ml.Value, len(a.values))
	for i, v := range a.values {
		values[i] = v.Convert(a.dtype, dtype)
	}

	out := newArray(c, dtype, a.shape, values)
	if err := c.add("convert", []*Array{out}, "type", p); err != nil {
		return nil, err
	}
	return out, nil
}

// Compare vergleicht zwei Tensoren gleicher Form elementweise
func (c *Context) Compare(lhs, rhs ml.Tensor, direction ml.ComparisonDirection) (ml.Tensor, error) {
	a, b, err := c.operands("compare", lhs, rhs)
	if err != nil {
		return nil, err
	}
	if a.dtype.Kind() == ml.KindComplex && direction != ml.CompareEQ && direction != ml.CompareNE {
		return nil, errors.Errorf("compare: %s undefined for %s", direction, a.dtype)
	}

	values := make([]ml.Value, len(a.values))
	for i := range values {
		values[i] = ml.Value{Bool: compare(a.dtype, a.values[i], b.values[i], direction)}
	}

	out := newArray(c, ml.DTypeBool, a.shape, values)
	if err := c.add("compare", []*Array{out}, "direction", direction); err != nil {
		return nil, err
	}
	return out, nil
}

// Select waehlt onTrue, wo pred gilt, sonst onFalse
func (c *Context) Select(pred, onTrue, onFalse ml.Tensor) (ml.Tensor, error) {
	p, err := c.array("select", pred)
	if err != nil {
		return nil, err
	}
	a, b, err := c.operands("select", onTrue, onFalse)
	if err != nil {
		return nil, err
	}
	if p.dtype != ml.DTypeBool || !p.shape.Equal(a.shape) {
		return nil, errors.Errorf("select: predicate %s%s does not match operands %s", p.dtype, p.shape, a.shape)
	}

	values := make([]ml.Value, len(a.values))
	for i := range values {
		if p.values[i].Bool {
			values[i] = a.values[i]
		} else {
			values[i] = b.values[i]
		}
	}

	out := newArray(c, a.dtype, a.shape, values)
	if err := c.add("select", []*Array{out}); err != nil {
		return nil, err
	}
	return out, nil
}

// Binary wendet op elementweise an
func (c *Context) Binary(op ml.BinaryOp, lhs, rhs ml.Tensor) (ml.Tensor, error) {
	a, b, err := c.operands(op.String(), lhs, rhs)
	if err != nil {
		return nil, err
	}

	values := make([]ml.Value, len(a.values))
	for i := range values {
		v, err := binary(op, a.dtype, a.values[i], b.values[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	out := newArray(c, a.dtype, a.shape, values)
	if err := c.add(op.String(), []*Array{out}); err != nil {
		return nil, err
	}
	return out, nil
}

// operands prueft zwei Operanden auf gleichen Typ und gleiche Form
func (c *Context) operands(op string, lhs, rhs ml.Tensor) (*Array, *Array, error) {
	a, err := c.array(op, lhs)
	if err != nil {
		return nil, nil, err
	}
	b, err := c.array(op, rhs)
	if err != nil {
		return nil, nil, err
	}
	if a.dtype != b.dtype || !a.shape.Equal(b.shape) {
		return nil, nil, errors.Errorf("%s: operand mismatch %s%s vs %s%s", op, a.dtype, a.shape, b.dtype, b.shape)
	}
	return a, b, nil
}
