// MODUL: onehot_test
// ZWECK: Tests fuer die One-Hot-Kodierung
// INPUT: Index-Tensoren auf dem Referenz-Context
// OUTPUT: Testresultate
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: testing, testify, go-cmp, ml/backend/ref
// HINWEISE: Indizes ausserhalb von [0, depth) ergeben reine Off-Zeilen

package lowering

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7blacky7/tensorlower/ml"
	"github.com/7blacky7/tensorlower/ml/backend/ref"
)

func TestOneHot(t *testing.T) {
	tests := []struct {
		name      string
		indexType ml.DType
		shape     ml.Shape
		indices   []float64
		depth     int
		axis      int
		want      []float64
		out       ml.Shape
	}{
		{
			name:      "last axis",
			indexType: ml.DTypeInt32,
			shape:     ml.Shape{2},
			indices:   []float64{2, 0},
			depth:     4,
			axis:      1,
			want:      []float64{0, 0, 1, 0, 1, 0, 0, 0},
			out:       ml.Shape{2, 4},
		},
		{
			name:      "leading axis",
			indexType: ml.DTypeInt32,
			shape:     ml.Shape{2},
			indices:   []float64{2, 0},
			depth:     4,
			axis:      0,
			want:      []float64{0, 1, 0, 0, 1, 0, 0, 0},
			out:       ml.Shape{4, 2},
		},
		{
			name:      "out of range rows stay off",
			indexType: ml.DTypeInt64,
			shape:     ml.Shape{3},
			indices:   []float64{5, -1, 1},
			depth:     3,
			axis:      1,
			want:      []float64{0, 0, 0, 0, 0, 0, 0, 1, 0},
			out:       ml.Shape{3, 3},
		},
		{
			name:      "scalar index",
			indexType: ml.DTypeUint8,
			shape:     ml.Shape{},
			indices:   []float64{1},
			depth:     3,
			axis:      0,
			want:      []float64{0, 1, 0},
			out:       ml.Shape{3},
		},
		{
			name:      "middle axis",
			indexType: ml.DTypeInt32,
			shape:     ml.Shape{2, 2},
			indices:   []float64{0, 1, 1, 0},
			depth:     2,
			axis:      1,
			// out[i][k][j] = indices[i][j] == k
			want: []float64{1, 0, 0, 1, 0, 1, 1, 0},
			out:  ml.Shape{2, 2, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ref.NewContext()
			indices := tensor(t, c, tt.indexType, tt.shape, tt.indices...)
			on := tensor(t, c, ml.DTypeFloat32, ml.Shape{}, 1)
			off := tensor(t, c, ml.DTypeFloat32, ml.Shape{}, 0)

			out, err := OneHot(c, tt.depth, tt.axis, tt.indexType, tt.shape, indices, on, off)
			require.NoError(t, err)
			assert.Equal(t, ml.DTypeFloat32, out.DType())
			assert.Equal(t, tt.out, out.Shape())
			if diff := cmp.Diff(tt.want, out.(*ref.Array).Floats()); diff != "" {
				t.Errorf("one hot (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOneHotCustomValues(t *testing.T) {
	c := ref.NewContext()
	indices := tensor(t, c, ml.DTypeInt32, ml.Shape{2}, 1, 0)
	on := tensor(t, c, ml.DTypeInt8, ml.Shape{}, 7)
	off := tensor(t, c, ml.DTypeInt8, ml.Shape{}, -1)

	out, err := OneHot(c, 2, 1, ml.DTypeInt32, ml.Shape{2}, indices, on, off)
	require.NoError(t, err)
	assert.Equal(t, ml.DTypeInt8, out.DType())
	assert.Equal(t, []int64{-1, 7, 7, -1}, ints(t, out))
}

func TestOneHotErrors(t *testing.T) {
	tests := []struct {
		name      string
		depth     int
		axis      int
		indexType ml.DType
		offType   ml.DType
		offShape  ml.Shape
	}{
		{"axis above rank", 3, 2, ml.DTypeInt32, ml.DTypeFloat32, ml.Shape{}},
		{"negative axis", 3, -1, ml.DTypeInt32, ml.DTypeFloat32, ml.Shape{}},
		{"zero depth", 0, 0, ml.DTypeInt32, ml.DTypeFloat32, ml.Shape{}},
		{"negative depth", -2, 0, ml.DTypeInt32, ml.DTypeFloat32, ml.Shape{}},
		{"float index type", 3, 0, ml.DTypeFloat32, ml.DTypeFloat32, ml.Shape{}},
		{"on/off type mismatch", 3, 0, ml.DTypeInt32, ml.DTypeFloat64, ml.Shape{}},
		{"off not scalar", 3, 0, ml.DTypeInt32, ml.DTypeFloat32, ml.Shape{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ref.NewContext()
			indices := tensor(t, c, tt.indexType, ml.Shape{2}, 0, 1)
			on := tensor(t, c, ml.DTypeFloat32, ml.Shape{}, 1)
			off := tensor(t, c, tt.offType, tt.offShape, make([]float64, tt.offShape.NumElements())...)
			before := c.Nodes()

			_, err := OneHot(c, tt.depth, tt.axis, tt.indexType, ml.Shape{2}, indices, on, off)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Equal(t, before, c.Nodes())
		})
	}
}

func TestOneHotDeclaredIndices(t *testing.T) {
	c := ref.NewContext()
	indices := tensor(t, c, ml.DTypeInt32, ml.Shape{2}, 0, 1)
	on := tensor(t, c, ml.DTypeFloat32, ml.Shape{}, 1)
	off := tensor(t, c, ml.DTypeFloat32, ml.Shape{}, 0)

	_, err := OneHot(c, 2, 0, ml.DTypeInt64, ml.Shape{2}, indices, on, off)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = OneHot(c, 2, 0, ml.DTypeInt32, ml.Shape{3}, indices, on, off)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
