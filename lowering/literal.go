// literal.go - Umformen von Konstanten-Literalen
package lowering

import (
	"github.com/pkg/errors"

	"github.com/7blacky7/tensorlower/ml"
)

// ReshapeLiteral returns a copy of input with the given shape. The flat
// row-major element sequence is unchanged, so both shapes must hold the
// same number of elements.
func ReshapeLiteral(input *ml.Literal, shape ml.Shape) (*ml.Literal, error) {
	if input == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "reshape of nil literal")
	}
	if !shape.Valid() {
		return nil, errors.Wrapf(ErrInvalidArgument, "negative dimension in %s", shape)
	}
	if n := shape.NumElements(); n != input.NumElements() {
		return nil, errors.Wrapf(ErrInvalidArgument, "element count mismatch: %s has %d elements, %s has %d",
			input, input.NumElements(), shape, n)
	}

	return ml.NewLiteral(input.DType(), shape, input.Bytes())
}
