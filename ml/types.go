// Package ml - Datentypen
// Dieses Modul definiert den Katalog der logischen Elementtypen (DType)
// mit ihren Deskriptoren (Art, Bitbreite, Gleitkommaformat).
package ml

import "fmt"

// DType is a logical element type. The set is closed; consumers should
// branch on the descriptors (Kind, BitSize, FloatFormat) rather than on
// individual values.
type DType int

const (
	DTypeBool DType = iota
	DTypeUint8
	DTypeUint16
	DTypeUint32
	DTypeUint64
	DTypeInt8
	DTypeInt16
	DTypeInt32
	DTypeInt64
	DTypeFloat16
	DTypeFloat32
	DTypeFloat64
	DTypeBfloat16
	DTypeComplex64
	DTypeComplex128
)

// Kind groups element types that share an encoding.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindUnsigned
	KindSigned
	KindFloat
	KindComplex
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindUnsigned:
		return "unsigned"
	case KindSigned:
		return "signed"
	case KindFloat:
		return "float"
	case KindComplex:
		return "complex"
	default:
		return "invalid"
	}
}

type dtypeInfo struct {
	name    string
	kind    Kind
	bits    int
	expBits int // nur fuer KindFloat
	manBits int
}

var catalog = [...]dtypeInfo{
	DTypeBool:       {"bool", KindBool, 8, 0, 0},
	DTypeUint8:      {"uint8", KindUnsigned, 8, 0, 0},
	DTypeUint16:     {"uint16", KindUnsigned, 16, 0, 0},
	DTypeUint32:     {"uint32", KindUnsigned, 32, 0, 0},
	DTypeUint64:     {"uint64", KindUnsigned, 64, 0, 0},
	DTypeInt8:       {"int8", KindSigned, 8, 0, 0},
	DTypeInt16:      {"int16", KindSigned, 16, 0, 0},
	DTypeInt32:      {"int32", KindSigned, 32, 0, 0},
	DTypeInt64:      {"int64", KindSigned, 64, 0, 0},
	DTypeFloat16:    {"float16", KindFloat, 16, 5, 10},
	DTypeFloat32:    {"float32", KindFloat, 32, 8, 23},
	DTypeFloat64:    {"float64", KindFloat, 64, 11, 52},
	DTypeBfloat16:   {"bfloat16", KindFloat, 16, 8, 7},
	DTypeComplex64:  {"complex64", KindComplex, 64, 0, 0},
	DTypeComplex128: {"complex128", KindComplex, 128, 0, 0},
}

// DTypes returns every element type in the catalog.
func DTypes() []DType {
	dtypes := make([]DType, len(catalog))
	for i := range catalog {
		dtypes[i] = DType(i)
	}
	return dtypes
}

// ParseDType returns the catalog entry with the given name.
func ParseDType(s string) (DType, error) {
	for i, info := range catalog {
		if info.name == s {
			return DType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown dtype %q", s)
}

// Valid reports whether d is part of the catalog.
func (d DType) Valid() bool {
	return d >= 0 && int(d) < len(catalog)
}

func (d DType) String() string {
	if !d.Valid() {
		return fmt.Sprintf("dtype(%d)", int(d))
	}
	return catalog[d].name
}

// Kind returns the encoding family of d, KindInvalid outside the catalog.
func (d DType) Kind() Kind {
	if !d.Valid() {
		return KindInvalid
	}
	return catalog[d].kind
}

// BitSize is the width of one element in bits. Bool occupies a full byte.
func (d DType) BitSize() int {
	if !d.Valid() {
		return 0
	}
	return catalog[d].bits
}

// Size is the width of one element in bytes.
func (d DType) Size() int {
	return d.BitSize() / 8
}

// IsFloat reports whether d is a real floating point type.
func (d DType) IsFloat() bool {
	return d.Kind() == KindFloat
}

// IsInteger reports whether d is a signed or unsigned integer type.
func (d DType) IsInteger() bool {
	k := d.Kind()
	return k == KindSigned || k == KindUnsigned
}

// FloatFormat returns the exponent and mantissa widths of a float type.
func (d DType) FloatFormat() (exponent, mantissa int, ok bool) {
	if d.Kind() != KindFloat {
		return 0, 0, false
	}
	return catalog[d].expBits, catalog[d].manBits, true
}

// Component returns the real type of each half of a complex type.
func (d DType) Component() (DType, bool) {
	switch {
	case d.Kind() != KindComplex:
		return d, false
	case d.BitSize() == 64:
		return DTypeFloat32, true
	default:
		return DTypeFloat64, true
	}
}
