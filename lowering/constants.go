// constants.go - Skalare Konstanten auf dem Graph-Builder
//
// Dieses Modul enthaelt:
// - MinValue/MaxValue/MinFiniteValue/MaxFiniteValue/Zero/One/Epsilon
// - IntegerLiteral/FloatLiteral: beliebige Werte mit Bereichspruefung
package lowering

import (
	"math"

	"github.com/pkg/errors"

	"github.com/7blacky7/tensorlower/logutil"
	"github.com/7blacky7/tensorlower/ml"
)

// MinValue returns the smallest value of dtype; -inf for floating point types.
func MinValue(c ml.Context, dtype ml.DType) (ml.Tensor, error) {
	return traitConstant(c, dtype, FieldMin)
}

// MinFiniteValue returns the smallest finite value of dtype.
func MinFiniteValue(c ml.Context, dtype ml.DType) (ml.Tensor, error) {
	return traitConstant(c, dtype, FieldMinFinite)
}

// MaxValue returns the largest value of dtype; +inf for floating point types.
func MaxValue(c ml.Context, dtype ml.DType) (ml.Tensor, error) {
	return traitConstant(c, dtype, FieldMax)
}

// MaxFiniteValue returns the largest finite value of dtype.
func MaxFiniteValue(c ml.Context, dtype ml.DType) (ml.Tensor, error) {
	return traitConstant(c, dtype, FieldMaxFinite)
}

// Zero returns 0 of dtype. Not defined for bool.
func Zero(c ml.Context, dtype ml.DType) (ml.Tensor, error) {
	return traitConstant(c, dtype, FieldZero)
}

// One returns 1 of dtype. Not defined for bool.
func One(c ml.Context, dtype ml.DType) (ml.Tensor, error) {
	return traitConstant(c, dtype, FieldOne)
}

// Epsilon returns the difference between 1 and the next representable
// value of a floating point dtype.
func Epsilon(c ml.Context, dtype ml.DType) (ml.Tensor, error) {
	return traitConstant(c, dtype, FieldEpsilon)
}

// IntegerLiteral returns value as a scalar of dtype. Integer targets must
// hold value exactly; float and complex targets round to nearest. Unlike
// Zero and One the failure on bool is an invalid argument.
func IntegerLiteral(c ml.Context, dtype ml.DType, value int64) (ml.Tensor, error) {
	var v ml.Value
	switch dtype.Kind() {
	case ml.KindBool:
		return nil, errors.Wrapf(ErrInvalidArgument, "integer literal %d for bool", value)
	case ml.KindSigned:
		lo := int64(-1) << (dtype.BitSize() - 1)
		if value < lo || value > ^lo {
			return nil, errors.Wrapf(ErrInvalidArgument, "integer literal %d out of range for %s", value, dtype)
		}
		v.Int = value
	case ml.KindUnsigned:
		hi := ^uint64(0) >> (64 - dtype.BitSize())
		if value < 0 || uint64(value) > hi {
			return nil, errors.Wrapf(ErrInvalidArgument, "integer literal %d out of range for %s", value, dtype)
		}
		v.Uint = uint64(value)
	case ml.KindFloat, ml.KindComplex:
		v = ml.FromInt64(dtype, value)
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "integer literal for %s", dtype)
	}

	return scalarConstant(c, dtype, ml.Encode(dtype, v))
}

// FloatLiteral returns value as a scalar of dtype. Float targets round to
// nearest, complex targets get a zero imaginary part, and integer targets
// require an exactly representable integral value.
func FloatLiteral(c ml.Context, dtype ml.DType, value float64) (ml.Tensor, error) {
	var v ml.Value
	switch dtype.Kind() {
	case ml.KindBool:
		return nil, errors.Wrapf(ErrInvalidArgument, "float literal %g for bool", value)
	case ml.KindSigned, ml.KindUnsigned:
		if math.Trunc(value) != value {
			return nil, errors.Wrapf(ErrInvalidArgument, "float literal %g is not an integer", value)
		}
		bits := dtype.BitSize()
		if dtype.Kind() == ml.KindSigned {
			// [-2^(n-1), 2^(n-1)) ist exakt als float64 darstellbar
			if value < -math.Ldexp(1, bits-1) || value >= math.Ldexp(1, bits-1) {
				return nil, errors.Wrapf(ErrInvalidArgument, "float literal %g out of range for %s", value, dtype)
			}
			v.Int = int64(value)
		} else {
			if value < 0 || value >= math.Ldexp(1, bits) {
				return nil, errors.Wrapf(ErrInvalidArgument, "float literal %g out of range for %s", value, dtype)
			}
			v.Uint = uint64(value)
		}
	case ml.KindFloat:
		v.Float = value
	case ml.KindComplex:
		v.Complex = complex(value, 0)
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "float literal for %s", dtype)
	}

	return scalarConstant(c, dtype, ml.Encode(dtype, v))
}

func traitConstant(c ml.Context, dtype ml.DType, f Field) (ml.Tensor, error) {
	b, err := Lookup(dtype, f)
	if err != nil {
		return nil, err
	}
	return scalarConstant(c, dtype, b)
}

// scalarConstant haengt ein einzelnes kodiertes Element als Konstante an
func scalarConstant(c ml.Context, dtype ml.DType, element []byte) (ml.Tensor, error) {
	lit, err := ml.ScalarLiteral(dtype, element)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidArgument, err.Error())
	}
	logutil.Trace("scalar constant", "dtype", dtype, "value", ml.FormatValue(dtype, lit.Value(0)))
	return c.Constant(lit)
}
