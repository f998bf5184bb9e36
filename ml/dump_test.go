// MODUL: dump_test
// ZWECK: Tests fuer die Literal-Ausgabe
// INPUT: kleine Literale verschiedener Typen
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

func literalOf(t *testing.T, dtype DType, shape Shape, values ...float64) *Literal {
	t.Helper()
	vs := make([]Value, len(values))
	for i, v := range values {
		vs[i] = FromFloat64(dtype, v)
	}
	lit, err := LiteralFromValues(dtype, shape, vs)
	require.NoError(t, err)
	return lit
}

func TestDump(t *testing.T) {
	tests := []struct {
		name string
		lit  *Literal
		opts []DumpOptions
		want string
	}{
		{
			name: "scalar",
			lit:  literalOf(t, DTypeInt32, Shape{}, 7),
			want: "7",
		},
		{
			name: "vector",
			lit:  literalOf(t, DTypeFloat32, Shape{3}, 1, -2.5, 0),
			want: "[ 1.0000, -2.5000,  0.0000]",
		},
		{
			name: "matrix shortest",
			lit:  literalOf(t, DTypeFloat16, Shape{2, 2}, 1, 0, 0.5, math.Inf(-1)),
			opts: []DumpOptions{DumpWithPrecision(-1)},
			want: "[[ 1,  0],\n [ 0.5, -Inf]]",
		},
		{
			name: "edge items",
			lit:  literalOf(t, DTypeUint8, Shape{8}, 0, 1, 2, 3, 4, 5, 6, 7),
			opts: []DumpOptions{DumpWithThreshold(4), DumpWithEdgeItems(2)},
			want: "[ 0,  1, ...,  6,  7]",
		},
		{
			name: "bool",
			lit:  literalOf(t, DTypeBool, Shape{2}, 1, 0),
			want: "[ true,  false]",
		},
		{
			name: "empty",
			lit:  literalOf(t, DTypeInt8, Shape{0}),
			want: "[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dump(tt.lit, tt.opts...))
		})
	}
}

func TestDumpRows(t *testing.T) {
	lit := literalOf(t, DTypeInt64, Shape{6, 1}, 0, 1, 2, 3, 4, 5)

	got := Dump(lit, DumpWithThreshold(2), DumpWithEdgeItems(1))
	assert.Equal(t, "[[ 0],\n ..., \n [ 5]]", got)
}
