// Package ref - Variadische Reduktion
//
// Hauptfunktionen:
// - Reduce: Faltet mehrere Operanden gemeinsam entlang von Achsen
package ref

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/7blacky7/tensorlower/ml"
)

// Reduce faltet inputs entlang axes mit body. Die Elemente werden pro
// Ausgabeposition in Zeilen-Reihenfolge gefaltet; der Akkumulator ist lhs.
func (c *Context) Reduce(inputs, inits []ml.Tensor, axes []int, body ml.ReduceFunc) ([]ml.Tensor, error) {
	if len(inputs) == 0 || len(inputs) != len(inits) {
		return nil, errors.Errorf("reduce: %d inputs with %d init values", len(inputs), len(inits))
	}
	if body == nil {
		return nil, errors.New("reduce: nil body")
	}

	ins := make([]*Array, len(inputs))
	accs := make([]*Array, len(inits))
	for i := range inputs {
		var err error
		if ins[i], err = c.array("reduce", inputs[i]); err != nil {
			return nil, err
		}
		if accs[i], err = c.array("reduce", inits[i]); err != nil {
			return nil, err
		}
		if !ins[i].shape.Equal(ins[0].shape) {
			return nil, errors.Errorf("reduce: input shapes %s and %s differ", ins[0].shape, ins[i].shape)
		}
		if accs[i].shape.Rank() != 0 || accs[i].dtype != ins[i].dtype {
			return nil, errors.Errorf("reduce: init %d is %s%s, expected scalar %s", i, accs[i].dtype, accs[i].shape, ins[i].dtype)
		}
	}

	shape := ins[0].shape
	reduced := make([]bool, shape.Rank())
	for _, axis := range axes {
		if axis < 0 || axis >= shape.Rank() || reduced[axis] {
			return nil, errors.Errorf("reduce: invalid axes %v for shape %s", axes, shape)
		}
		reduced[axis] = true
	}

	var outShape ml.Shape
	for i, d := range shape {
		if !reduced[i] {
			outShape = append(outShape, d)
		}
	}

	acc := make([][]ml.Value, outShape.NumElements())
	for j := range acc {
		acc[j] = make([]ml.Value, len(ins))
		for i, init := range accs {
			acc[j][i] = init.values[0]
		}
	}

	inStrides := shape.Strides()
	outStrides := outShape.Strides()
	for flat := 0; flat < shape.NumElements(); flat++ {
		dst, k := 0, 0
		for axis, d := range shape {
			if reduced[axis] {
				continue
			}
			dst += (flat / inStrides[axis]) % d * outStrides[k]
			k++
		}

		rhs := make([]ml.Value, len(ins))
		for i, in := range ins {
			rhs[i] = in.values[flat]
		}

		next, err := c.apply(body, ins, acc[dst], rhs)
		if err != nil {
			return nil, err
		}
		acc[dst] = next
	}

	outs := make([]*Array, len(ins))
	tensors := make([]ml.Tensor, len(ins))
	for i, in := range ins {
		values := make([]ml.Value, len(acc))
		for j := range acc {
			values[j] = acc[j][i]
		}
		outs[i] = newArray(c, in.dtype, outShape, values)
		tensors[i] = outs[i]
	}

	if err := c.add("reduce", outs, "axes", slices.Clone(axes), "operands", len(ins)); err != nil {
		return nil, err
	}
	return tensors, nil
}

// apply wertet body fuer ein (Akkumulator, Element)-Paar in einem Kind-Context aus
func (c *Context) apply(body ml.ReduceFunc, ins []*Array, lhs, rhs []ml.Value) ([]ml.Value, error) {
	sub := c.closure()
	lhsT := make([]ml.Tensor, len(ins))
	rhsT := make([]ml.Tensor, len(ins))
	for i, in := range ins {
		l := newArray(sub, in.dtype, ml.Shape{}, []ml.Value{lhs[i]})
		r := newArray(sub, in.dtype, ml.Shape{}, []ml.Value{rhs[i]})
		if err := sub.add("parameter", []*Array{l}, "index", i); err != nil {
			return nil, err
		}
		if err := sub.add("parameter", []*Array{r}, "index", len(ins)+i); err != nil {
			return nil, err
		}
		lhsT[i], rhsT[i] = l, r
	}

	outs, err := body(sub, lhsT, rhsT)
	if err != nil {
		return nil, errors.WithMessage(err, "reduce body")
	}
	if len(outs) != len(ins) {
		return nil, errors.Errorf("reduce body: returned %d values, expected %d", len(outs), len(ins))
	}

	next := make([]ml.Value, len(outs))
	for i, t := range outs {
		a, err := sub.array("reduce body", t)
		if err != nil {
			return nil, err
		}
		if a.dtype != ins[i].dtype || a.shape.Rank() != 0 {
			return nil, errors.Errorf("reduce body: output %d is %s%s, expected scalar %s", i, a.dtype, a.shape, ins[i].dtype)
		}
		next[i] = a.values[0]
	}
	return next, nil
}
