// Package ref - Skalare Hilfsfunktionen
//
// Hauptfunktionen:
// - compare: Vergleich zweier Elemente eines DTypes
// - binary: Elementweise Arithmetik und Logik
package ref

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/7blacky7/tensorlower/ml"
)

func cmp3[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// order vergleicht a und b; ok ist false fuer NaN-Operanden
func order(dtype ml.DType, a, b ml.Value) (c int, ok bool) {
	switch dtype.Kind() {
	case ml.KindBool:
		return cmp3(boolInt(a.Bool), boolInt(b.Bool)), true
	case ml.KindSigned:
		return cmp3(a.Int, b.Int), true
	case ml.KindUnsigned:
		return cmp3(a.Uint, b.Uint), true
	case ml.KindFloat:
		if math.IsNaN(a.Float) || math.IsNaN(b.Float) {
			return 0, false
		}
		return cmp3(a.Float, b.Float), true
	}
	return 0, false
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func compare(dtype ml.DType, a, b ml.Value, direction ml.ComparisonDirection) bool {
	if dtype.Kind() == ml.KindComplex {
		eq := a.Complex == b.Complex
		if direction == ml.CompareNE {
			return !eq
		}
		return eq
	}

	c, ok := order(dtype, a, b)
	switch direction {
	case ml.CompareEQ:
		return ok && c == 0
	case ml.CompareNE:
		return !ok || c != 0
	case ml.CompareLT:
		return ok && c < 0
	case ml.CompareLE:
		return ok && c <= 0
	case ml.CompareGT:
		return ok && c > 0
	case ml.CompareGE:
		return ok && c >= 0
	}
	return false
}

func binary(op ml.BinaryOp, dtype ml.DType, a, b ml.Value) (ml.Value, error) {
	kind := dtype.Kind()
	switch op {
	case ml.OpAdd:
		switch kind {
		case ml.KindSigned:
			return ml.Value{Int: a.Int + b.Int}.Convert(ml.DTypeInt64, dtype), nil
		case ml.KindUnsigned:
			return ml.Value{Uint: a.Uint + b.Uint}.Convert(ml.DTypeUint64, dtype), nil
		case ml.KindFloat:
			return ml.Value{Float: a.Float + b.Float}, nil
		case ml.KindComplex:
			return ml.Value{Complex: a.Complex + b.Complex}, nil
		}
	case ml.OpMin, ml.OpMax:
		if kind == ml.KindComplex {
			break
		}
		c, ok := order(dtype, a, b)
		switch {
		case !ok && math.IsNaN(a.Float):
			return a, nil
		case !ok:
			return b, nil
		case (op == ml.OpMin) == (c <= 0):
			return a, nil
		default:
			return b, nil
		}
	case ml.OpAnd, ml.OpOr:
		and := op == ml.OpAnd
		switch kind {
		case ml.KindBool:
			if and {
				return ml.Value{Bool: a.Bool && b.Bool}, nil
			}
			return ml.Value{Bool: a.Bool || b.Bool}, nil
		case ml.KindSigned:
			if and {
				return ml.Value{Int: a.Int & b.Int}, nil
			}
			return ml.Value{Int: a.Int | b.Int}, nil
		case ml.KindUnsigned:
			if and {
				return ml.Value{Uint: a.Uint & b.Uint}, nil
			}
			return ml.Value{Uint: a.Uint | b.Uint}, nil
		}
	}
	return ml.Value{}, errors.Errorf("%s: unsupported dtype %s", op, dtype)
}
