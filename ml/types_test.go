// MODUL: types_test
// ZWECK: Tests fuer DType-Katalog, Primitive-Tags, Shape und Element-Codec
// INPUT: alle Katalogtypen
// OUTPUT: Testresultate
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: testing, testify
// HINWEISE: keine

package ml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogDescriptors(t *testing.T) {
	for _, dtype := range DTypes() {
		t.Run(dtype.String(), func(t *testing.T) {
			assert.True(t, dtype.Valid())
			assert.NotEqual(t, KindInvalid, dtype.Kind())
			assert.Equal(t, dtype.BitSize()/8, dtype.Size())

			parsed, err := ParseDType(dtype.String())
			require.NoError(t, err)
			assert.Equal(t, dtype, parsed)

			exp, man, ok := dtype.FloatFormat()
			assert.Equal(t, dtype.IsFloat(), ok)
			if ok {
				// Vorzeichen + Exponent + Mantisse fuellen die Bitbreite
				assert.Equal(t, dtype.BitSize(), 1+exp+man)
			}

			p, err := PrimitiveTypeOf(dtype)
			require.NoError(t, err)
			back, err := DTypeOf(p)
			require.NoError(t, err)
			assert.Equal(t, dtype, back)
		})
	}

	assert.False(t, DType(99).Valid())
	assert.Equal(t, KindInvalid, DType(-1).Kind())
	_, err := ParseDType("float8")
	assert.Error(t, err)
	_, err = PrimitiveTypeOf(DType(99))
	assert.Error(t, err)
}

func TestComponent(t *testing.T) {
	part, ok := DTypeComplex64.Component()
	assert.True(t, ok)
	assert.Equal(t, DTypeFloat32, part)

	part, ok = DTypeComplex128.Component()
	assert.True(t, ok)
	assert.Equal(t, DTypeFloat64, part)

	_, ok = DTypeFloat32.Component()
	assert.False(t, ok)
}

func TestShape(t *testing.T) {
	s := Shape{2, 3, 4}
	assert.Equal(t, 24, s.NumElements())
	assert.Equal(t, 1, Shape{}.NumElements())
	assert.Equal(t, 0, Shape{3, 0}.NumElements())
	assert.Equal(t, []int{12, 4, 1}, s.Strides())
	assert.Equal(t, Shape{2, 5, 3, 4}, s.Insert(1, 5))
	assert.Equal(t, Shape{2, 3, 4, 5}, s.Insert(3, 5))
	assert.Equal(t, Shape{2, 4}, s.Remove(1))
	assert.Equal(t, Shape{2, 3, 4}, s, "Insert/Remove duerfen s nicht veraendern")
	assert.False(t, Shape{2, -1}.Valid())
}

func TestCodecRoundTrip(t *testing.T) {
	tests := []struct {
		dtype DType
		value Value
	}{
		{DTypeBool, Value{Bool: true}},
		{DTypeInt8, Value{Int: -128}},
		{DTypeInt16, Value{Int: -2}},
		{DTypeInt32, Value{Int: math.MaxInt32}},
		{DTypeInt64, Value{Int: math.MinInt64}},
		{DTypeUint8, Value{Uint: 255}},
		{DTypeUint64, Value{Uint: math.MaxUint64}},
		{DTypeFloat16, Value{Float: -0.5}},
		{DTypeBfloat16, Value{Float: 3}},
		{DTypeFloat32, Value{Float: math.Inf(-1)}},
		{DTypeFloat64, Value{Float: 0.1}},
		{DTypeComplex64, Value{Complex: complex(1, -2)}},
		{DTypeComplex128, Value{Complex: complex(0.1, 0.2)}},
	}

	for _, tt := range tests {
		t.Run(tt.dtype.String(), func(t *testing.T) {
			b := Encode(tt.dtype, tt.value)
			assert.Len(t, b, tt.dtype.Size())
			assert.Equal(t, tt.value, Decode(tt.dtype, b))
		})
	}
}

func TestBfloat16Rounding(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"exact", 1.0078125, 1.0078125},
		{"nearest above", 1.01484375, 1.015625},
		{"nearest below", 1.0109375, 1.0078125},
		{"tie to even up", 1.01171875, 1.015625},
		{"tie to even down", 1.01953125, 1.015625},
		{"negative", -1.01484375, -1.015625},
		{"overflow", math.MaxFloat32, math.Inf(1)},
		{"inf", math.Inf(-1), math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(DTypeBfloat16, Encode(DTypeBfloat16, Value{Float: tt.value}))
			assert.Equal(t, tt.want, got.Float)
		})
	}

	got := Decode(DTypeBfloat16, Encode(DTypeBfloat16, Value{Float: math.NaN()}))
	assert.True(t, math.IsNaN(got.Float))
}

func TestConvert(t *testing.T) {
	assert.Equal(t, Value{Int: -1}, FromInt64(DTypeInt8, 255))
	assert.Equal(t, Value{Uint: 1}, FromInt64(DTypeUint8, 257))
	assert.Equal(t, Value{Float: 3}, FromInt64(DTypeFloat32, 3))
	assert.Equal(t, Value{Bool: true}, FromFloat64(DTypeBool, 0.5))
	assert.Equal(t, Value{Int: 2}, FromFloat64(DTypeInt32, 2.9))
	assert.Equal(t, Value{Complex: complex(2, 0)}, FromInt64(DTypeComplex64, 2))
	assert.Equal(t, Value{Float: 1}, Value{Bool: true}.Convert(DTypeBool, DTypeFloat16))
}

func TestLiteral(t *testing.T) {
	lit, err := LiteralFromValues(DTypeInt16, Shape{2, 2}, []Value{{Int: 1}, {Int: 2}, {Int: 3}, {Int: 4}})
	require.NoError(t, err)
	assert.Equal(t, 4, lit.NumElements())
	assert.Equal(t, Value{Int: 3}, lit.Value(2))
	assert.Equal(t, "int16[2 2]", lit.String())

	// Wertsemantik: Aenderungen an Kopien wirken nicht zurueck
	b := lit.Bytes()
	b[0] = 9
	s := lit.Shape()
	s[0] = 9
	assert.Equal(t, Value{Int: 1}, lit.Value(0))
	assert.Equal(t, Shape{2, 2}, lit.Shape())

	other, err := NewLiteral(DTypeInt16, Shape{2, 2}, lit.Bytes())
	require.NoError(t, err)
	assert.True(t, lit.Equal(other))

	flat, err := NewLiteral(DTypeInt16, Shape{4}, lit.Bytes())
	require.NoError(t, err)
	assert.False(t, lit.Equal(flat))

	_, err = NewLiteral(DTypeInt16, Shape{3}, lit.Bytes())
	assert.Error(t, err)
	_, err = NewLiteral(DTypeInt16, Shape{-4}, nil)
	assert.Error(t, err)
}
