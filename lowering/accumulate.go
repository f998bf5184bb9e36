// accumulate.go - Akkumulationstyp fuer Reduktionen
package lowering

import "github.com/7blacky7/tensorlower/ml"

// accumulationBits ist die Mindestbreite fuer Summen-Akkumulatoren
const accumulationBits = 32

// SumAccumulationType returns the type partial sums over dtype should be
// held in. Floats and integers narrower than 32 bits widen to the 32-bit
// type of the same kind; every other type maps to itself. Applying it
// twice gives the same result as applying it once.
func SumAccumulationType(dtype ml.DType) ml.DType {
	if dtype.BitSize() >= accumulationBits {
		return dtype
	}

	switch dtype.Kind() {
	case ml.KindFloat:
		return ml.DTypeFloat32
	case ml.KindSigned:
		return ml.DTypeInt32
	case ml.KindUnsigned:
		return ml.DTypeUint32
	default:
		return dtype
	}
}
