// Package ml - Element-Codec
// Dieses Modul kodiert und dekodiert einzelne Elemente aller Katalogtypen
// im little-endian Format (float16 via x448/float16, bfloat16 via go-bfloat16).
package ml

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"
)

// Value is one decoded element. Only the slot matching the Kind of the
// element's DType is meaningful.
type Value struct {
	Bool    bool
	Int     int64
	Uint    uint64
	Float   float64
	Complex complex128
}

// FromInt64 builds the Value of dtype closest to i.
func FromInt64(dtype DType, i int64) Value {
	return Value{Int: i}.Convert(DTypeInt64, dtype)
}

// FromFloat64 builds the Value of dtype closest to f.
func FromFloat64(dtype DType, f float64) Value {
	return Value{Float: f}.Convert(DTypeFloat64, dtype)
}

// Convert interprets v as an element of type from and converts it to type
// to with Go conversion semantics. Narrower targets are not rounded here;
// Encode does that.
func (v Value) Convert(from, to DType) Value {
	var (
		b bool
		i int64
		u uint64
		f float64
		c complex128
	)

	switch from.Kind() {
	case KindBool:
		b = v.Bool
		if b {
			i, u, f, c = 1, 1, 1, 1
		}
	case KindSigned:
		b, i, u, f, c = v.Int != 0, v.Int, uint64(v.Int), float64(v.Int), complex(float64(v.Int), 0)
	case KindUnsigned:
		b, i, u, f, c = v.Uint != 0, int64(v.Uint), v.Uint, float64(v.Uint), complex(float64(v.Uint), 0)
	case KindFloat:
		b, i, u, f, c = v.Float != 0, int64(v.Float), floatToUint(v.Float), v.Float, complex(v.Float, 0)
	case KindComplex:
		r := real(v.Complex)
		b, i, u, f, c = v.Complex != 0, int64(r), floatToUint(r), r, v.Complex
	}

	switch to.Kind() {
	case KindBool:
		return Value{Bool: b}
	case KindSigned:
		return Value{Int: truncSigned(i, to.BitSize())}
	case KindUnsigned:
		return Value{Uint: truncUnsigned(u, to.BitSize())}
	case KindFloat:
		return Value{Float: f}
	case KindComplex:
		return Value{Complex: c}
	default:
		return Value{}
	}
}

func floatToUint(f float64) uint64 {
	if f < 0 {
		return uint64(int64(f))
	}
	return uint64(f)
}

func truncSigned(i int64, bits int) int64 {
	shift := 64 - bits
	return i << shift >> shift
}

func truncUnsigned(u uint64, bits int) uint64 {
	if bits >= 64 {
		return u
	}
	return u & (1<<bits - 1)
}

// Encode packs v as an element of dtype. Floats are rounded to the nearest
// value representable in dtype.
func Encode(dtype DType, v Value) []byte {
	b := make([]byte, dtype.Size())
	switch dtype.Kind() {
	case KindBool:
		if v.Bool {
			b[0] = 1
		}
	case KindSigned:
		putBits(b, uint64(v.Int))
	case KindUnsigned:
		putBits(b, v.Uint)
	case KindFloat:
		putFloat(dtype, b, v.Float)
	case KindComplex:
		part, _ := dtype.Component()
		n := part.Size()
		putFloat(part, b[:n], real(v.Complex))
		putFloat(part, b[n:], imag(v.Complex))
	}
	return b
}

// Decode unpacks one element of dtype from the front of b.
func Decode(dtype DType, b []byte) Value {
	switch dtype.Kind() {
	case KindBool:
		return Value{Bool: b[0] != 0}
	case KindSigned:
		return Value{Int: truncSigned(int64(getBits(b[:dtype.Size()])), dtype.BitSize())}
	case KindUnsigned:
		return Value{Uint: getBits(b[:dtype.Size()])}
	case KindFloat:
		return Value{Float: getFloat(dtype, b)}
	case KindComplex:
		part, _ := dtype.Component()
		n := part.Size()
		return Value{Complex: complex(getFloat(part, b[:n]), getFloat(part, b[n:]))}
	default:
		return Value{}
	}
}

// FormatValue renders v as an element of dtype.
func FormatValue(dtype DType, v Value) string {
	switch dtype.Kind() {
	case KindBool:
		return fmt.Sprint(v.Bool)
	case KindSigned:
		return fmt.Sprint(v.Int)
	case KindUnsigned:
		return fmt.Sprint(v.Uint)
	case KindFloat:
		return fmt.Sprintf("%g", v.Float)
	case KindComplex:
		return fmt.Sprint(v.Complex)
	default:
		return "<invalid>"
	}
}

func putBits(b []byte, bits uint64) {
	switch len(b) {
	case 1:
		b[0] = byte(bits)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(bits))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(bits))
	case 8:
		binary.LittleEndian.PutUint64(b, bits)
	}
}

func getBits(b []byte) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	case 8:
		return binary.LittleEndian.Uint64(b)
	}
	return 0
}

func putFloat(dtype DType, b []byte, f float64) {
	switch dtype {
	case DTypeFloat16:
		binary.LittleEndian.PutUint16(b, float16.Fromfloat32(float32(f)).Bits())
	case DTypeBfloat16:
		// EncodeFloat32 schneidet ab, daher vorher zur geraden Mantisse runden
		bits := math.Float32bits(float32(f))
		if !math.IsNaN(f) {
			bits += 0x7fff + (bits>>16)&1
		}
		copy(b, bfloat16.EncodeFloat32([]float32{math.Float32frombits(bits)}))
	case DTypeFloat32:
		binary.LittleEndian.PutUint32(b, math.Float32bits(float32(f)))
	case DTypeFloat64:
		binary.LittleEndian.PutUint64(b, math.Float64bits(f))
	}
}

func getFloat(dtype DType, b []byte) float64 {
	switch dtype {
	case DTypeFloat16:
		return float64(float16.Frombits(binary.LittleEndian.Uint16(b)).Float32())
	case DTypeBfloat16:
		return float64(bfloat16.DecodeFloat32(b[:2])[0])
	case DTypeFloat32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	case DTypeFloat64:
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	}
	return 0
}
