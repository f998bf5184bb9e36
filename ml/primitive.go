// Package ml - Physische Typ-Tags
// Dieses Modul bildet logische DTypes auf die physischen Primitive-Tags
// des Graph-Builders ab (Nummerierung der PJRT-Puffertypen).
package ml

import "fmt"

// PrimitiveType is the physical element tag understood by a graph builder.
type PrimitiveType int32

const (
	PrimitiveInvalid PrimitiveType = 0
	PrimitivePRED    PrimitiveType = 1
	PrimitiveS8      PrimitiveType = 2
	PrimitiveS16     PrimitiveType = 3
	PrimitiveS32     PrimitiveType = 4
	PrimitiveS64     PrimitiveType = 5
	PrimitiveU8      PrimitiveType = 6
	PrimitiveU16     PrimitiveType = 7
	PrimitiveU32     PrimitiveType = 8
	PrimitiveU64     PrimitiveType = 9
	PrimitiveF16     PrimitiveType = 10
	PrimitiveF32     PrimitiveType = 11
	PrimitiveF64     PrimitiveType = 12
	PrimitiveBF16    PrimitiveType = 13
	PrimitiveC64     PrimitiveType = 14
	PrimitiveC128    PrimitiveType = 15
)

var primitives = map[DType]PrimitiveType{
	DTypeBool:       PrimitivePRED,
	DTypeInt8:       PrimitiveS8,
	DTypeInt16:      PrimitiveS16,
	DTypeInt32:      PrimitiveS32,
	DTypeInt64:      PrimitiveS64,
	DTypeUint8:      PrimitiveU8,
	DTypeUint16:     PrimitiveU16,
	DTypeUint32:     PrimitiveU32,
	DTypeUint64:     PrimitiveU64,
	DTypeFloat16:    PrimitiveF16,
	DTypeFloat32:    PrimitiveF32,
	DTypeFloat64:    PrimitiveF64,
	DTypeBfloat16:   PrimitiveBF16,
	DTypeComplex64:  PrimitiveC64,
	DTypeComplex128: PrimitiveC128,
}

func (p PrimitiveType) String() string {
	switch p {
	case PrimitivePRED:
		return "PRED"
	case PrimitiveS8:
		return "S8"
	case PrimitiveS16:
		return "S16"
	case PrimitiveS32:
		return "S32"
	case PrimitiveS64:
		return "S64"
	case PrimitiveU8:
		return "U8"
	case PrimitiveU16:
		return "U16"
	case PrimitiveU32:
		return "U32"
	case PrimitiveU64:
		return "U64"
	case PrimitiveF16:
		return "F16"
	case PrimitiveF32:
		return "F32"
	case PrimitiveF64:
		return "F64"
	case PrimitiveBF16:
		return "BF16"
	case PrimitiveC64:
		return "C64"
	case PrimitiveC128:
		return "C128"
	default:
		return fmt.Sprintf("PrimitiveType(%d)", int32(p))
	}
}

// PrimitiveTypeOf returns the physical tag for a logical type.
func PrimitiveTypeOf(dtype DType) (PrimitiveType, error) {
	if p, ok := primitives[dtype]; ok {
		return p, nil
	}
	return PrimitiveInvalid, fmt.Errorf("no primitive type for %s", dtype)
}

// DTypeOf is the inverse of PrimitiveTypeOf.
func DTypeOf(p PrimitiveType) (DType, error) {
	for dtype, q := range primitives {
		if p == q {
			return dtype, nil
		}
	}
	return 0, fmt.Errorf("no dtype for %s", p)
}
