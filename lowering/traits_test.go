// MODUL: traits_test
// ZWECK: Tests fuer die Tabelle numerischer Eigenschaften
// INPUT: alle Katalogtypen
// OUTPUT: Testresultate
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: testing, testify
// HINWEISE: Prueft Unendlich/Endlich-Extrema, Epsilon und Ganzzahlgrenzen

package lowering

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7blacky7/tensorlower/ml"
)

func mustValue(t *testing.T, dtype ml.DType, f Field) ml.Value {
	t.Helper()
	tr, err := TraitsOf(dtype)
	require.NoError(t, err)
	v, err := tr.Value(f)
	require.NoError(t, err, "%s %s", dtype, f)
	return v
}

func TestFloatTraits(t *testing.T) {
	for _, dtype := range ml.DTypes() {
		if !dtype.IsFloat() {
			continue
		}
		t.Run(dtype.String(), func(t *testing.T) {
			assert.True(t, math.IsInf(mustValue(t, dtype, FieldMin).Float, -1))
			assert.True(t, math.IsInf(mustValue(t, dtype, FieldMax).Float, 1))

			lo := mustValue(t, dtype, FieldMinFinite).Float
			hi := mustValue(t, dtype, FieldMaxFinite).Float
			assert.False(t, math.IsInf(lo, 0) || math.IsNaN(lo))
			assert.False(t, math.IsInf(hi, 0) || math.IsNaN(hi))
			assert.Less(t, lo, hi)
			assert.Equal(t, -hi, lo)

			assert.Equal(t, 0.0, mustValue(t, dtype, FieldZero).Float)
			assert.Equal(t, 1.0, mustValue(t, dtype, FieldOne).Float)

			eps := mustValue(t, dtype, FieldEpsilon).Float
			assert.Greater(t, eps, 0.0)
			onePlus := ml.Decode(dtype, ml.Encode(dtype, ml.Value{Float: 1 + eps}))
			assert.NotEqual(t, 1.0, onePlus.Float, "1+eps muss von 1 unterscheidbar sein")
		})
	}
}

func TestFloatTraitValues(t *testing.T) {
	tests := []struct {
		dtype     ml.DType
		maxFinite float64
		epsilon   float64
	}{
		{ml.DTypeFloat16, 65504, math.Ldexp(1, -10)},
		{ml.DTypeBfloat16, float64(math.Float32frombits(0x7f7f0000)), math.Ldexp(1, -7)},
		{ml.DTypeFloat32, math.MaxFloat32, float64(math.Nextafter32(1, 2) - 1)},
		{ml.DTypeFloat64, math.MaxFloat64, math.Nextafter(1, 2) - 1},
	}

	for _, tt := range tests {
		t.Run(tt.dtype.String(), func(t *testing.T) {
			assert.Equal(t, tt.maxFinite, mustValue(t, tt.dtype, FieldMaxFinite).Float)
			assert.Equal(t, tt.epsilon, mustValue(t, tt.dtype, FieldEpsilon).Float)
		})
	}
}

func TestIntegerTraits(t *testing.T) {
	for _, dtype := range ml.DTypes() {
		if !dtype.IsInteger() {
			continue
		}
		t.Run(dtype.String(), func(t *testing.T) {
			assert.Equal(t, mustValue(t, dtype, FieldMin), mustValue(t, dtype, FieldMinFinite))
			assert.Equal(t, mustValue(t, dtype, FieldMax), mustValue(t, dtype, FieldMaxFinite))

			_, err := Lookup(dtype, FieldEpsilon)
			assert.True(t, errors.Is(err, ErrUnsupportedType))
		})
	}

	assert.Equal(t, ml.Value{Int: -128}, mustValue(t, ml.DTypeInt8, FieldMin))
	assert.Equal(t, ml.Value{Int: math.MaxInt16}, mustValue(t, ml.DTypeInt16, FieldMax))
	assert.Equal(t, ml.Value{Int: math.MinInt64}, mustValue(t, ml.DTypeInt64, FieldMin))
	assert.Equal(t, ml.Value{Uint: 0}, mustValue(t, ml.DTypeUint32, FieldMin))
	assert.Equal(t, ml.Value{Uint: math.MaxUint16}, mustValue(t, ml.DTypeUint16, FieldMax))
	assert.Equal(t, ml.Value{Uint: math.MaxUint64}, mustValue(t, ml.DTypeUint64, FieldMaxFinite))
}

func TestBoolAndComplexTraits(t *testing.T) {
	assert.Equal(t, ml.Value{Bool: false}, mustValue(t, ml.DTypeBool, FieldMin))
	assert.Equal(t, ml.Value{Bool: true}, mustValue(t, ml.DTypeBool, FieldMaxFinite))
	for _, f := range []Field{FieldZero, FieldOne, FieldEpsilon} {
		_, err := Lookup(ml.DTypeBool, f)
		assert.ErrorIs(t, err, ErrUnsupportedType, f.String())
	}

	assert.Equal(t, ml.Value{Complex: 1}, mustValue(t, ml.DTypeComplex64, FieldOne))
	assert.Equal(t, ml.Value{Complex: 0}, mustValue(t, ml.DTypeComplex128, FieldZero))
	for _, f := range []Field{FieldMin, FieldMax, FieldMinFinite, FieldMaxFinite, FieldEpsilon} {
		_, err := Lookup(ml.DTypeComplex64, f)
		assert.ErrorIs(t, err, ErrUnsupportedType, f.String())
	}
}

func TestTraitsOfUnknown(t *testing.T) {
	_, err := TraitsOf(ml.DType(42))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	tr, err := TraitsOf(ml.DTypeInt32)
	require.NoError(t, err)
	assert.False(t, tr.Defined(Field(-1)))
	assert.Equal(t, "field(?)", Field(99).String())
	assert.Len(t, Fields(), 7)
}

func TestLookupReturnsCopy(t *testing.T) {
	b, err := Lookup(ml.DTypeInt32, FieldOne)
	require.NoError(t, err)
	b[0] = 0xff

	again, err := Lookup(ml.DTypeInt32, FieldOne)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 0, 0}, again)
}
