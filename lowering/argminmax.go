// argminmax.go - ArgMax/ArgMin als variadische Reduktion
//
// Dieses Modul enthaelt:
// - ArgMax/ArgMin: Index des Extremums entlang einer Achse
// - direction: gemeinsamer Algorithmus, parametrisiert ueber die Richtung
package lowering

import (
	"github.com/pkg/errors"

	"github.com/7blacky7/tensorlower/ml"
)

type direction int

const (
	maximum direction = iota
	minimum
)

func (d direction) String() string {
	if d == minimum {
		return "argmin"
	}
	return "argmax"
}

// initField is the identity of the value half of the reduction.
func (d direction) initField() Field {
	if d == minimum {
		return FieldMax
	}
	return FieldMin
}

func (d direction) comparison() ml.ComparisonDirection {
	if d == minimum {
		return ml.CompareLT
	}
	return ml.CompareGT
}

// ArgMax returns the index of the largest element of input along axis as
// outputType, with axis removed from the shape. Ties resolve to the lowest
// index; for float inputs a NaN counts as the extremum. Failures are also
// reported to kctx when it is non-nil.
func ArgMax(c ml.Context, kctx KernelContext, input ml.Tensor, inputShape ml.Shape, inputType, outputType ml.DType, axis int) (ml.Tensor, error) {
	out, err := argMinMax(c, maximum, input, inputShape, inputType, outputType, axis)
	return out, report(kctx, err)
}

// ArgMin is ArgMax for the smallest element.
func ArgMin(c ml.Context, kctx KernelContext, input ml.Tensor, inputShape ml.Shape, inputType, outputType ml.DType, axis int) (ml.Tensor, error) {
	out, err := argMinMax(c, minimum, input, inputShape, inputType, outputType, axis)
	return out, report(kctx, err)
}

func argMinMax(c ml.Context, d direction, input ml.Tensor, inputShape ml.Shape, inputType, outputType ml.DType, axis int) (ml.Tensor, error) {
	switch {
	case axis < 0 || axis >= inputShape.Rank():
		return nil, errors.Wrapf(ErrInvalidArgument, "%s: axis %d out of range for rank %d", d, axis, inputShape.Rank())
	case !outputType.IsInteger():
		return nil, errors.Wrapf(ErrInvalidArgument, "%s: output type %s is not an integer type", d, outputType)
	case inputType.Kind() == ml.KindComplex || inputType.Kind() == ml.KindInvalid:
		return nil, errors.Wrapf(ErrUnsupportedType, "%s: %s has no ordering", d, inputType)
	case input.DType() != inputType || !input.Shape().Equal(inputShape):
		return nil, errors.Wrapf(ErrInvalidArgument, "%s: input is %s%s, declared %s%s",
			d, input.DType(), input.Shape(), inputType, inputShape)
	}

	if n := inputShape[axis]; n > 0 && !indexFits(outputType, uint64(n-1)) {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s: output type %s cannot index %d elements along axis %d",
			d, outputType, n, axis)
	}

	initValue, err := traitConstant(c, inputType, d.initField())
	if err != nil {
		return nil, err
	}
	initIndex, err := Zero(c, outputType)
	if err != nil {
		return nil, err
	}
	indices, err := c.Iota(outputType, inputShape, axis)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s: iota", d)
	}

	outs, err := c.Reduce(
		[]ml.Tensor{input, indices},
		[]ml.Tensor{initValue, initIndex},
		[]int{axis},
		d.reducer(inputType.IsFloat()),
	)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s: reduce", d)
	}
	return outs[1], nil
}

// indexFits reports whether index is representable in the integer type dtype.
func indexFits(dtype ml.DType, index uint64) bool {
	tr, err := TraitsOf(dtype)
	if err != nil {
		return false
	}
	limit, err := tr.Value(FieldMaxFinite)
	if err != nil {
		return false
	}
	if dtype.Kind() == ml.KindSigned {
		return index <= uint64(limit.Int)
	}
	return index <= limit.Uint
}

// reducer waehlt zwischen (Wert, Index)-Paaren. lhs bleibt, wenn sein Wert
// strikt besser ist oder die Werte gleich sind und sein Index kleiner ist.
func (d direction) reducer(nanAware bool) ml.ReduceFunc {
	return func(c ml.Context, lhs, rhs []ml.Tensor) ([]ml.Tensor, error) {
		lhsValue, lhsIndex := lhs[0], lhs[1]
		rhsValue, rhsIndex := rhs[0], rhs[1]

		better, err := c.Compare(lhsValue, rhsValue, d.comparison())
		if err != nil {
			return nil, err
		}
		equal, err := c.Compare(lhsValue, rhsValue, ml.CompareEQ)
		if err != nil {
			return nil, err
		}

		if nanAware {
			if better, equal, err = withNaN(c, lhsValue, rhsValue, better, equal); err != nil {
				return nil, err
			}
		}

		lower, err := c.Compare(lhsIndex, rhsIndex, ml.CompareLT)
		if err != nil {
			return nil, err
		}
		tie, err := c.Binary(ml.OpAnd, equal, lower)
		if err != nil {
			return nil, err
		}
		keep, err := c.Binary(ml.OpOr, better, tie)
		if err != nil {
			return nil, err
		}

		value, err := c.Select(keep, lhsValue, rhsValue)
		if err != nil {
			return nil, err
		}
		index, err := c.Select(keep, lhsIndex, rhsIndex)
		if err != nil {
			return nil, err
		}
		return []ml.Tensor{value, index}, nil
	}
}

// withNaN behandelt NaN als Extremum: NaN schlaegt jede Zahl, zwei NaN sind gleich.
func withNaN(c ml.Context, lhsValue, rhsValue, better, equal ml.Tensor) (ml.Tensor, ml.Tensor, error) {
	lhsNaN, err := c.Compare(lhsValue, lhsValue, ml.CompareNE)
	if err != nil {
		return nil, nil, err
	}
	rhsNaN, err := c.Compare(rhsValue, rhsValue, ml.CompareNE)
	if err != nil {
		return nil, nil, err
	}
	rhsNumber, err := c.Compare(rhsValue, rhsValue, ml.CompareEQ)
	if err != nil {
		return nil, nil, err
	}

	nanWins, err := c.Binary(ml.OpAnd, lhsNaN, rhsNumber)
	if err != nil {
		return nil, nil, err
	}
	if better, err = c.Binary(ml.OpOr, better, nanWins); err != nil {
		return nil, nil, err
	}

	bothNaN, err := c.Binary(ml.OpAnd, lhsNaN, rhsNaN)
	if err != nil {
		return nil, nil, err
	}
	if equal, err = c.Binary(ml.OpOr, equal, bothNaN); err != nil {
		return nil, nil, err
	}
	return better, equal, nil
}
