// onehot.go - One-Hot-Kodierung ueber Iota-Vergleich
package lowering

import (
	"github.com/pkg/errors"

	"github.com/7blacky7/tensorlower/ml"
)

// OneHot expands indices into a tensor with a new axis of size depth at
// position axis of the output. Each output element is onValue where the
// index equals its coordinate along the new axis and offValue elsewhere.
// onValue and offValue must be scalars of the same type, which becomes
// the output type.
//
// Indices outside [0, depth) are not rejected; their rows are all
// offValue.
func OneHot(c ml.Context, depth int, axis int, indexType ml.DType, indicesShape ml.Shape, indices, onValue, offValue ml.Tensor) (ml.Tensor, error) {
	rank := indicesShape.Rank()
	switch {
	case axis < 0 || axis > rank:
		return nil, errors.Wrapf(ErrInvalidArgument, "one_hot: axis %d out of range [0, %d]", axis, rank)
	case depth <= 0:
		return nil, errors.Wrapf(ErrInvalidArgument, "one_hot: depth %d must be positive", depth)
	case !indexType.IsInteger():
		return nil, errors.Wrapf(ErrInvalidArgument, "one_hot: index type %s is not an integer type", indexType)
	case indices.DType() != indexType || !indices.Shape().Equal(indicesShape):
		return nil, errors.Wrapf(ErrInvalidArgument, "one_hot: indices are %s%s, declared %s%s",
			indices.DType(), indices.Shape(), indexType, indicesShape)
	case onValue.DType() != offValue.DType():
		return nil, errors.Wrapf(ErrInvalidArgument, "one_hot: on value is %s, off value is %s", onValue.DType(), offValue.DType())
	case onValue.Shape().Rank() != 0 || offValue.Shape().Rank() != 0:
		return nil, errors.Wrapf(ErrInvalidArgument, "one_hot: on/off values must be scalars, got %s and %s", onValue.Shape(), offValue.Shape())
	}

	outShape := indicesShape.Insert(axis, depth)

	// Eingabeachsen ab axis rutschen um eine Position nach hinten
	dims := make([]int, rank)
	for i := range dims {
		if i < axis {
			dims[i] = i
		} else {
			dims[i] = i + 1
		}
	}

	broadcast, err := c.BroadcastInDim(indices, outShape, dims)
	if err != nil {
		return nil, errors.WithMessage(err, "one_hot: indices")
	}
	iota, err := c.Iota(indexType, outShape, axis)
	if err != nil {
		return nil, errors.WithMessage(err, "one_hot: iota")
	}
	hot, err := c.Compare(broadcast, iota, ml.CompareEQ)
	if err != nil {
		return nil, errors.WithMessage(err, "one_hot: compare")
	}

	on, err := c.BroadcastInDim(onValue, outShape, nil)
	if err != nil {
		return nil, errors.WithMessage(err, "one_hot: on value")
	}
	off, err := c.BroadcastInDim(offValue, outShape, nil)
	if err != nil {
		return nil, errors.WithMessage(err, "one_hot: off value")
	}
	return c.Select(hot, on, off)
}
