// convert.go - Typkonvertierung mit logischen Typen
package lowering

import (
	"github.com/pkg/errors"

	"github.com/7blacky7/tensorlower/ml"
)

// ConvertElementType converts t to dtype through the builder's conversion
// op. Rounding, saturation and wraparound are left to the builder.
func ConvertElementType(c ml.Context, t ml.Tensor, dtype ml.DType) (ml.Tensor, error) {
	p, err := ml.PrimitiveTypeOf(dtype)
	if err != nil {
		return nil, errors.Wrap(ErrUnsupportedType, err.Error())
	}
	return c.ConvertElementType(t, p)
}
